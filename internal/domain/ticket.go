package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusClosed     TicketStatus = "Closed"
)

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
)

// SupportTicket is the aggregate for support requests.
type SupportTicket struct {
	ID             string          `json:"id"`
	Subject        string          `json:"subject"`
	Description    string          `json:"description"`
	Priority       TicketPriority  `json:"priority"`
	Status         TicketStatus    `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	AssignedUserID *string         `json:"assignedUserId,omitempty"`
	CustomerID     string          `json:"customerId"`
	Comments       []TicketComment `json:"comments"`
}

// RecordID returns the unique identifier.
func (t SupportTicket) RecordID() string { return t.ID }

// TicketComment captures a reply in a ticket thread. Comments are
// append-only and owned by their parent ticket.
type TicketComment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TicketPatch is a partial update; nil fields leave the record untouched.
// Comments are excluded on purpose: they are appended through the ticket
// service, never replaced wholesale.
type TicketPatch struct {
	Subject        *string
	Description    *string
	Priority       *TicketPriority
	Status         *TicketStatus
	AssignedUserID *string
	CustomerID     *string
}

// Apply merges the patch onto the ticket field by field.
func (p TicketPatch) Apply(t *SupportTicket) {
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.AssignedUserID != nil {
		t.AssignedUserID = p.AssignedUserID
	}
	if p.CustomerID != nil {
		t.CustomerID = *p.CustomerID
	}
}
