package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/observability"
	"github.com/spec-kit/admin-dashboard/internal/store"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// OrderService fronts the order collection. Status changes always go
// through UpdateStatus so every transition lands in the history log.
type OrderService struct {
	orders *store.Collection[domain.Order]
}

// NewOrderService builds the service.
func NewOrderService(orders *store.Collection[domain.Order]) *OrderService {
	return &OrderService{orders: orders}
}

// OrderCreateInput describes order creation payload.
type OrderCreateInput struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	TotalAmount   float64
	Items         []domain.OrderItem
}

// List returns all orders.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// Get returns one order; absence is reported through the boolean.
func (s *OrderService) Get(ctx context.Context, id string) (domain.Order, bool, error) {
	return s.orders.Get(ctx, id)
}

// Create stores a new pending order. The total is derived from items when
// the caller leaves it zero, and the history opens with the pending entry.
func (s *OrderService) Create(ctx context.Context, input OrderCreateInput) (domain.Order, error) {
	now := time.Now()
	order := domain.Order{
		ID:            input.ID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Status:        domain.OrderStatusPending,
		OrderDate:     now,
		TotalAmount:   input.TotalAmount,
		Items:         input.Items,
		StatusHistory: []domain.StatusHistory{
			{Status: domain.OrderStatusPending, Timestamp: now},
		},
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	if order.TotalAmount == 0 {
		for _, item := range order.Items {
			order.TotalAmount += float64(item.Quantity) * item.Price
		}
	}
	return s.orders.Create(ctx, order)
}

// Update applies a partial update to customer and line-item fields.
func (s *OrderService) Update(ctx context.Context, id string, patch domain.OrderPatch) (domain.Order, error) {
	return s.orders.Update(ctx, id, patch)
}

// UpdateStatus transitions the order and appends the matching history
// entry. History is append-only; prior entries are never rewritten.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, note string) (domain.Order, error) {
	ctx, span := observability.StartSpan(ctx, "orders.update_status")
	defer span.End()

	switch status {
	case domain.OrderStatusPending, domain.OrderStatusShipped,
		domain.OrderStatusDelivered, domain.OrderStatusCancelled:
	default:
		return domain.Order{}, apperrors.NewValidationError("unknown order status", map[string]any{
			"status": string(status),
		})
	}

	return s.orders.Mutate(ctx, id, func(o *domain.Order) {
		o.Status = status
		o.StatusHistory = append(o.StatusHistory, domain.StatusHistory{
			Status:    status,
			Timestamp: time.Now(),
			Note:      note,
		})
	})
}

// Delete removes an order; unknown ids are a no-op.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}
