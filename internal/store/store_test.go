package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

func testConfig() config.StoreConfig {
	return config.StoreConfig{KeyPrefix: "test_"}
}

func newUserCollection(t *testing.T) (*Collection[domain.User], *blobstore.MemoryStore) {
	t.Helper()
	blobs := blobstore.NewMemoryStore()
	return NewCollection[domain.User](CollectionUsers, testConfig(), blobs, zap.NewNop()), blobs
}

func TestCreateThenGet(t *testing.T) {
	users, _ := newUserCollection(t)
	ctx := context.Background()

	created, err := users.Create(ctx, domain.User{
		ID: "u1", Name: "Ada", Email: "ada@example.com",
		Role: domain.RoleAdmin, Status: domain.UserStatusActive,
	})
	require.NoError(t, err)

	got, found, err := users.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created, got)
}

func TestListAbsentKeyIsEmpty(t *testing.T) {
	users, _ := newUserCollection(t)

	list, err := users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetMissingReportsAbsent(t *testing.T) {
	users, _ := newUserCollection(t)

	_, found, err := users.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreateDuplicateIDConflicts(t *testing.T) {
	users, _ := newUserCollection(t)
	ctx := context.Background()

	_, err := users.Create(ctx, domain.User{ID: "u1", Name: "Ada", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = users.Create(ctx, domain.User{ID: "u1", Name: "Grace", Email: "g@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
}

func TestUpdatePreservesUnnamedFields(t *testing.T) {
	users, _ := newUserCollection(t)
	ctx := context.Background()

	_, err := users.Create(ctx, domain.User{
		ID: "u1", Name: "Ada", Email: "ada@example.com",
		Role: domain.RoleManager, Status: domain.UserStatusActive,
	})
	require.NoError(t, err)

	name := "Ada Lovelace"
	updated, err := users.Update(ctx, "u1", domain.UserPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, domain.RoleManager, updated.Role)
	assert.Equal(t, domain.UserStatusActive, updated.Status)
}

func TestSequentialUpdatesBothStick(t *testing.T) {
	blobs := blobstore.NewMemoryStore()
	tickets := NewCollection[domain.SupportTicket](CollectionTickets, testConfig(), blobs, zap.NewNop())
	ctx := context.Background()

	_, err := tickets.Create(ctx, domain.SupportTicket{
		ID: "T1", Subject: "Broken", Priority: domain.TicketPriorityLow,
		Status: domain.TicketStatusOpen, CustomerID: "2",
	})
	require.NoError(t, err)

	closed := domain.TicketStatusClosed
	_, err = tickets.Update(ctx, "T1", domain.TicketPatch{Status: &closed})
	require.NoError(t, err)

	high := domain.TicketPriorityHigh
	_, err = tickets.Update(ctx, "T1", domain.TicketPatch{Priority: &high})
	require.NoError(t, err)

	got, found, err := tickets.Get(ctx, "T1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.TicketStatusClosed, got.Status)
	assert.Equal(t, domain.TicketPriorityHigh, got.Priority)
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	users, _ := newUserCollection(t)

	name := "Ada"
	_, err := users.Update(context.Background(), "ghost", domain.UserPatch{Name: &name})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	users, _ := newUserCollection(t)
	ctx := context.Background()

	_, err := users.Create(ctx, domain.User{ID: "u1", Name: "Ada", Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, "ghost"))

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateDeleteGetAbsent(t *testing.T) {
	blobs := blobstore.NewMemoryStore()
	products := NewCollection[domain.Product](CollectionProducts, testConfig(), blobs, zap.NewNop())
	ctx := context.Background()

	_, err := products.Create(ctx, domain.Product{ID: "P1", Name: "Widget", Status: domain.ProductInStock})
	require.NoError(t, err)
	require.NoError(t, products.Delete(ctx, "P1"))

	_, found, err := products.Get(ctx, "P1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMalformedPayloadRecoveredAsEmpty(t *testing.T) {
	users, blobs := newUserCollection(t)
	ctx := context.Background()

	require.NoError(t, blobs.Set(ctx, "test_users", []byte("{not json")))

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The store stays writable after recovery.
	_, err = users.Create(ctx, domain.User{ID: "u1", Name: "Ada", Email: "a@example.com"})
	require.NoError(t, err)
}

func TestSeedOnlyWhenKeyAbsent(t *testing.T) {
	users, _ := newUserCollection(t)
	ctx := context.Background()

	require.NoError(t, users.Seed(ctx, SeedUsers()))

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)

	// Emptying the collection must not trigger another seed.
	for _, u := range list {
		require.NoError(t, users.Delete(ctx, u.ID))
	}
	require.NoError(t, users.Seed(ctx, SeedUsers()))

	list, err = users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSeedDefaultsPopulatesAllCollections(t *testing.T) {
	blobs := blobstore.NewMemoryStore()
	collections := NewCollections(testConfig(), blobs, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, collections.SeedDefaults(ctx))

	users, err := collections.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	tickets, err := collections.Tickets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, 3)

	products, err := collections.Products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	orders, err := collections.Orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
}
