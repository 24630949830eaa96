package dto

import "github.com/spec-kit/admin-dashboard/internal/domain"

// OrderCreateRequest payload for new orders.
type OrderCreateRequest struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	TotalAmount   float64            `json:"totalAmount"`
	Items         []domain.OrderItem `json:"items"`
}

// OrderUpdateRequest carries a partial update; omitted fields stay as-is.
// Status is not patchable here; transitions go through OrderStatusRequest.
type OrderUpdateRequest struct {
	CustomerName  *string            `json:"customerName"`
	CustomerEmail *string            `json:"customerEmail"`
	TotalAmount   *float64           `json:"totalAmount"`
	Items         []domain.OrderItem `json:"items"`
}

// Patch converts the request to a domain patch.
func (r OrderUpdateRequest) Patch() domain.OrderPatch {
	return domain.OrderPatch{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		TotalAmount:   r.TotalAmount,
		Items:         r.Items,
	}
}

// OrderStatusRequest payload for a fulfillment transition.
type OrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
	Note   string             `json:"note"`
}
