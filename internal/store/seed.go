package store

import (
	"time"

	"github.com/spec-kit/admin-dashboard/internal/domain"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad seed timestamp " + value)
	}
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

func sp(value string) *string { return &value }

// SeedUsers returns the initial user dataset.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID: "1", Name: "John Doe", Email: "john.doe@example.com",
			Role: domain.RoleAdmin, Status: domain.UserStatusActive,
			CreatedAt: ts("2024-01-15T08:30:00Z"), LastLogin: tsp("2024-01-20T14:22:00Z"),
		},
		{
			ID: "2", Name: "Jane Smith", Email: "jane.smith@example.com",
			Role: domain.RoleManager, Status: domain.UserStatusActive,
			CreatedAt: ts("2024-01-16T09:15:00Z"), LastLogin: tsp("2024-01-20T16:45:00Z"),
		},
		{
			ID: "3", Name: "Bob Johnson", Email: "bob.johnson@example.com",
			Role: domain.RoleUser, Status: domain.UserStatusInactive,
			CreatedAt: ts("2024-01-17T11:00:00Z"), LastLogin: tsp("2024-01-18T10:30:00Z"),
		},
		{
			ID: "4", Name: "Alice Brown", Email: "alice.brown@example.com",
			Role: domain.RoleUser, Status: domain.UserStatusActive,
			CreatedAt: ts("2024-01-18T13:45:00Z"), LastLogin: tsp("2024-01-20T12:15:00Z"),
		},
		{
			ID: "5", Name: "Charlie Wilson", Email: "charlie.wilson@example.com",
			Role: domain.RoleManager, Status: domain.UserStatusActive,
			CreatedAt: ts("2024-01-19T15:30:00Z"), LastLogin: tsp("2024-01-20T17:00:00Z"),
		},
	}
}

// SeedTickets returns the initial ticket dataset.
func SeedTickets() []domain.SupportTicket {
	return []domain.SupportTicket{
		{
			ID: "TKT-001", Subject: "Login Issues",
			Description: "Unable to login to the system with correct credentials.",
			Priority:    domain.TicketPriorityHigh, Status: domain.TicketStatusOpen,
			CreatedAt: ts("2024-01-20T09:00:00Z"), UpdatedAt: ts("2024-01-20T09:00:00Z"),
			AssignedUserID: sp("1"), CustomerID: "2",
			Comments: []domain.TicketComment{
				{
					ID: "c1", Content: "This issue has been reported by multiple users.",
					AuthorID: "1", CreatedAt: ts("2024-01-20T09:30:00Z"),
				},
			},
		},
		{
			ID: "TKT-002", Subject: "Feature Request: Dark Mode",
			Description: "Request for dark mode implementation in the dashboard.",
			Priority:    domain.TicketPriorityMedium, Status: domain.TicketStatusInProgress,
			CreatedAt: ts("2024-01-19T14:30:00Z"), UpdatedAt: ts("2024-01-20T10:15:00Z"),
			AssignedUserID: sp("2"), CustomerID: "3",
			Comments: []domain.TicketComment{},
		},
		{
			ID: "TKT-003", Subject: "Bug: Incorrect Data Display",
			Description: "Some data is not displaying correctly in the reports section.",
			Priority:    domain.TicketPriorityLow, Status: domain.TicketStatusClosed,
			CreatedAt: ts("2024-01-18T16:20:00Z"), UpdatedAt: ts("2024-01-19T11:45:00Z"),
			AssignedUserID: sp("1"), CustomerID: "4",
			Comments: []domain.TicketComment{
				{
					ID: "c2", Content: "Issue has been resolved with the latest update.",
					AuthorID: "1", CreatedAt: ts("2024-01-19T11:45:00Z"),
				},
			},
		},
	}
}

// SeedProducts returns the initial product dataset.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "P001", Name: "Wireless Headphones", Category: "Electronics",
			Price: 99.99, Stock: 45, Status: domain.ProductInStock,
			Description: "High-quality wireless headphones with noise cancellation.",
			CreatedAt:   ts("2024-01-15T10:00:00Z"),
		},
		{
			ID: "P002", Name: "Smartphone Case", Category: "Accessories",
			Price: 24.99, Stock: 5, Status: domain.ProductLowStock,
			Description: "Durable smartphone case with drop protection.",
			CreatedAt:   ts("2024-01-16T11:30:00Z"),
		},
		{
			ID: "P003", Name: "Bluetooth Speaker", Category: "Electronics",
			Price: 79.99, Stock: 0, Status: domain.ProductOutOfStock,
			Description: "Portable bluetooth speaker with excellent sound quality.",
			CreatedAt:   ts("2024-01-17T14:15:00Z"),
		},
		{
			ID: "P004", Name: "USB Charging Cable", Category: "Accessories",
			Price: 12.99, Stock: 120, Status: domain.ProductInStock,
			Description: "Fast charging USB cable compatible with most devices.",
			CreatedAt:   ts("2024-01-18T09:45:00Z"),
		},
	}
}

// SeedOrders returns the initial order dataset.
func SeedOrders() []domain.Order {
	return []domain.Order{
		{
			ID: "ORD-001", CustomerName: "Michael Chen", CustomerEmail: "michael.chen@example.com",
			Status: domain.OrderStatusDelivered, OrderDate: ts("2024-01-20T08:30:00Z"), TotalAmount: 124.98,
			Items: []domain.OrderItem{
				{ProductID: "P001", ProductName: "Wireless Headphones", Quantity: 1, Price: 99.99},
				{ProductID: "P002", ProductName: "Smartphone Case", Quantity: 1, Price: 24.99},
			},
			StatusHistory: []domain.StatusHistory{
				{Status: domain.OrderStatusPending, Timestamp: ts("2024-01-20T08:30:00Z")},
				{Status: domain.OrderStatusShipped, Timestamp: ts("2024-01-20T14:00:00Z"), Note: "Shipped via FedEx"},
				{Status: domain.OrderStatusDelivered, Timestamp: ts("2024-01-21T16:30:00Z")},
			},
		},
		{
			ID: "ORD-002", CustomerName: "Sarah Williams", CustomerEmail: "sarah.williams@example.com",
			Status: domain.OrderStatusShipped, OrderDate: ts("2024-01-19T15:45:00Z"), TotalAmount: 79.99,
			Items: []domain.OrderItem{
				{ProductID: "P003", ProductName: "Bluetooth Speaker", Quantity: 1, Price: 79.99},
			},
			StatusHistory: []domain.StatusHistory{
				{Status: domain.OrderStatusPending, Timestamp: ts("2024-01-19T15:45:00Z")},
				{Status: domain.OrderStatusShipped, Timestamp: ts("2024-01-20T09:20:00Z"), Note: "Shipped via UPS"},
			},
		},
		{
			ID: "ORD-003", CustomerName: "David Martinez", CustomerEmail: "david.martinez@example.com",
			Status: domain.OrderStatusPending, OrderDate: ts("2024-01-20T12:15:00Z"), TotalAmount: 38.97,
			Items: []domain.OrderItem{
				{ProductID: "P004", ProductName: "USB Charging Cable", Quantity: 3, Price: 12.99},
			},
			StatusHistory: []domain.StatusHistory{
				{Status: domain.OrderStatusPending, Timestamp: ts("2024-01-20T12:15:00Z")},
			},
		},
	}
}
