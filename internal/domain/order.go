package domain

import "time"

// OrderStatus enumerates fulfillment states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is the aggregate for customer purchases.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Status        OrderStatus     `json:"status"`
	OrderDate     time.Time       `json:"orderDate"`
	TotalAmount   float64         `json:"totalAmount"`
	Items         []OrderItem     `json:"items"`
	StatusHistory []StatusHistory `json:"statusHistory"`
}

// RecordID returns the unique identifier.
func (o Order) RecordID() string { return o.ID }

// OrderItem snapshots a purchased product line. ProductName and Price are
// copied at order time so later catalog edits do not rewrite history.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// StatusHistory records one fulfillment transition. Entries are append-only.
type StatusHistory struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
}

// OrderPatch is a partial update; nil fields leave the record untouched.
// Status and StatusHistory are excluded: transitions go through the order
// service so every change lands in the history log.
type OrderPatch struct {
	CustomerName  *string
	CustomerEmail *string
	TotalAmount   *float64
	Items         []OrderItem
}

// Apply merges the patch onto the order field by field.
func (p OrderPatch) Apply(o *Order) {
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		o.CustomerEmail = *p.CustomerEmail
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
	if p.Items != nil {
		o.Items = p.Items
	}
}
