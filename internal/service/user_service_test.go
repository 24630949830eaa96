package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	blobs := blobstore.NewMemoryStore()
	cfg := config.StoreConfig{KeyPrefix: "test_"}
	users := store.NewCollection[domain.User](store.CollectionUsers, cfg, blobs, zap.NewNop())
	return NewUserService(users)
}

func TestCreateUserFillsDefaults(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(context.Background(), UserCreateInput{
		Name: "Ada", Email: "ada@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Nil(t, user.LastLogin)
}

func TestUserLastLoginPatch(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, UserCreateInput{ID: "u1", Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	lastLogin := created.CreatedAt.Add(1)
	updated, err := svc.Update(ctx, "u1", domain.UserPatch{LastLogin: &lastLogin})
	require.NoError(t, err)

	require.NotNil(t, updated.LastLogin)
	assert.Equal(t, "Ada", updated.Name)
}
