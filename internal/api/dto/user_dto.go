package dto

import "github.com/spec-kit/admin-dashboard/internal/domain"

// UserCreateRequest payload for new dashboard users.
type UserCreateRequest struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   domain.UserRole   `json:"role"`
	Status domain.UserStatus `json:"status"`
}

// UserUpdateRequest carries a partial update; omitted fields stay as-is.
type UserUpdateRequest struct {
	Name   *string            `json:"name"`
	Email  *string            `json:"email"`
	Role   *domain.UserRole   `json:"role"`
	Status *domain.UserStatus `json:"status"`
}

// Patch converts the request to a domain patch.
func (r UserUpdateRequest) Patch() domain.UserPatch {
	return domain.UserPatch{
		Name:   r.Name,
		Email:  r.Email,
		Role:   r.Role,
		Status: r.Status,
	}
}
