package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

// UserService fronts the user collection for the dashboard screens.
type UserService struct {
	users *store.Collection[domain.User]
}

// NewUserService builds the service.
func NewUserService(users *store.Collection[domain.User]) *UserService {
	return &UserService{users: users}
}

// UserCreateInput describes user creation payload.
type UserCreateInput struct {
	ID     string
	Name   string
	Email  string
	Role   domain.UserRole
	Status domain.UserStatus
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns one user; absence is reported through the boolean.
func (s *UserService) Get(ctx context.Context, id string) (domain.User, bool, error) {
	return s.users.Get(ctx, id)
}

// Create stores a new user, stamping the creation timestamp and filling
// defaults.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (domain.User, error) {
	user := domain.User{
		ID:        input.ID,
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		Status:    input.Status,
		CreatedAt: time.Now(),
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}
	return s.users.Create(ctx, user)
}

// Update applies a partial update.
func (s *UserService) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	return s.users.Update(ctx, id, patch)
}

// Delete removes a user; unknown ids are a no-op.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
