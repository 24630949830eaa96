package dto

import "github.com/spec-kit/admin-dashboard/internal/domain"

// TicketCreateRequest payload for new support tickets.
type TicketCreateRequest struct {
	ID             string                `json:"id"`
	Subject        string                `json:"subject"`
	Description    string                `json:"description"`
	Priority       domain.TicketPriority `json:"priority"`
	Status         domain.TicketStatus   `json:"status"`
	AssignedUserID *string               `json:"assignedUserId"`
	CustomerID     string                `json:"customerId"`
}

// TicketUpdateRequest carries a partial update; omitted fields stay as-is.
type TicketUpdateRequest struct {
	Subject        *string                `json:"subject"`
	Description    *string                `json:"description"`
	Priority       *domain.TicketPriority `json:"priority"`
	Status         *domain.TicketStatus   `json:"status"`
	AssignedUserID *string                `json:"assignedUserId"`
	CustomerID     *string                `json:"customerId"`
}

// Patch converts the request to a domain patch.
func (r TicketUpdateRequest) Patch() domain.TicketPatch {
	return domain.TicketPatch{
		Subject:        r.Subject,
		Description:    r.Description,
		Priority:       r.Priority,
		Status:         r.Status,
		AssignedUserID: r.AssignedUserID,
		CustomerID:     r.CustomerID,
	}
}

// CommentCreateRequest payload for appending a ticket comment.
type CommentCreateRequest struct {
	Content  string `json:"content"`
	AuthorID string `json:"authorId"`
}
