package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/store"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

func newTicketService(t *testing.T) *TicketService {
	t.Helper()
	blobs := blobstore.NewMemoryStore()
	cfg := config.StoreConfig{KeyPrefix: "test_"}
	tickets := store.NewCollection[domain.SupportTicket](store.CollectionTickets, cfg, blobs, zap.NewNop())
	return NewTicketService(tickets)
}

func TestCreateTicketFillsDefaults(t *testing.T) {
	svc := newTicketService(t)

	ticket, err := svc.Create(context.Background(), TicketCreateInput{
		Subject:    "Printer on fire",
		CustomerID: "2",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
	assert.False(t, ticket.CreatedAt.IsZero())
	assert.Equal(t, ticket.CreatedAt, ticket.UpdatedAt)
	assert.Empty(t, ticket.Comments)
}

func TestAddCommentAppendsAndBumpsUpdatedAt(t *testing.T) {
	svc := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.Create(ctx, TicketCreateInput{
		ID: "TKT-001", Subject: "Login Issues", CustomerID: "2",
	})
	require.NoError(t, err)
	before := ticket.UpdatedAt

	first, err := svc.AddComment(ctx, "TKT-001", "Reported by several users.", "1")
	require.NoError(t, err)
	second, err := svc.AddComment(ctx, "TKT-001", "Fix rolled out.", "1")
	require.NoError(t, err)

	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, found, err := svc.Get(ctx, "TKT-001")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, first.ID, got.Comments[0].ID)
	assert.Equal(t, second.ID, got.Comments[1].ID)
	assert.Equal(t, "Reported by several users.", got.Comments[0].Content)
	assert.GreaterOrEqual(t, got.UpdatedAt.UnixNano(), before.UnixNano())
}

func TestAddCommentUnknownTicketIsNotFound(t *testing.T) {
	svc := newTicketService(t)

	_, err := svc.AddComment(context.Background(), "ghost", "hello", "1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestTicketUpdateBumpsUpdatedAt(t *testing.T) {
	svc := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.Create(ctx, TicketCreateInput{ID: "T1", Subject: "Slow", CustomerID: "3"})
	require.NoError(t, err)

	closed := domain.TicketStatusClosed
	updated, err := svc.Update(ctx, "T1", domain.TicketPatch{Status: &closed})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusClosed, updated.Status)
	assert.Equal(t, "Slow", updated.Subject)
	assert.GreaterOrEqual(t, updated.UpdatedAt.UnixNano(), ticket.UpdatedAt.UnixNano())
}
