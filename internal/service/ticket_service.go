package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/observability"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

// TicketService coordinates ticket workflows on top of the record store.
type TicketService struct {
	tickets *store.Collection[domain.SupportTicket]
}

// NewTicketService builds the service.
func NewTicketService(tickets *store.Collection[domain.SupportTicket]) *TicketService {
	return &TicketService{tickets: tickets}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	ID             string
	Subject        string
	Description    string
	Priority       domain.TicketPriority
	Status         domain.TicketStatus
	AssignedUserID *string
	CustomerID     string
}

// List returns all tickets.
func (s *TicketService) List(ctx context.Context) ([]domain.SupportTicket, error) {
	return s.tickets.List(ctx)
}

// Get returns one ticket; absence is reported through the boolean.
func (s *TicketService) Get(ctx context.Context, id string) (domain.SupportTicket, bool, error) {
	return s.tickets.Get(ctx, id)
}

// Create stores a new ticket, stamping timestamps and filling defaults.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (domain.SupportTicket, error) {
	now := time.Now()
	ticket := domain.SupportTicket{
		ID:             input.ID,
		Subject:        input.Subject,
		Description:    input.Description,
		Priority:       input.Priority,
		Status:         input.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
		AssignedUserID: input.AssignedUserID,
		CustomerID:     input.CustomerID,
		Comments:       []domain.TicketComment{},
	}
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}
	return s.tickets.Create(ctx, ticket)
}

// Update applies a partial update and bumps the ticket's update timestamp.
func (s *TicketService) Update(ctx context.Context, id string, patch domain.TicketPatch) (domain.SupportTicket, error) {
	return s.tickets.Mutate(ctx, id, func(t *domain.SupportTicket) {
		patch.Apply(t)
		t.UpdatedAt = time.Now()
	})
}

// Delete removes a ticket; unknown ids are a no-op.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	return s.tickets.Delete(ctx, id)
}

// AddComment appends a comment to the ticket's thread, generates its id,
// and advances the ticket's update timestamp. Fails with not-found when the
// ticket does not resolve.
func (s *TicketService) AddComment(ctx context.Context, ticketID, content, authorID string) (domain.TicketComment, error) {
	ctx, span := observability.StartSpan(ctx, "tickets.add_comment")
	defer span.End()

	comment := domain.TicketComment{
		ID:        uuid.NewString(),
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}

	_, err := s.tickets.Mutate(ctx, ticketID, func(t *domain.SupportTicket) {
		t.Comments = append(t.Comments, comment)
		t.UpdatedAt = comment.CreatedAt
	})
	if err != nil {
		return domain.TicketComment{}, err
	}

	observability.CommentsAddedTotal.Inc()
	return comment, nil
}
