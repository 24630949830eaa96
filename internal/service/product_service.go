package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/store"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// ProductService fronts the product collection and keeps the derived stock
// status consistent.
type ProductService struct {
	products *store.Collection[domain.Product]
}

// NewProductService builds the service.
func NewProductService(products *store.Collection[domain.Product]) *ProductService {
	return &ProductService{products: products}
}

// ProductCreateInput describes product creation payload.
type ProductCreateInput struct {
	ID          string
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// Get returns one product; absence is reported through the boolean.
func (s *ProductService) Get(ctx context.Context, id string) (domain.Product, bool, error) {
	return s.products.Get(ctx, id)
}

// Create stores a new product with its status derived from stock.
func (s *ProductService) Create(ctx context.Context, input ProductCreateInput) (domain.Product, error) {
	if input.Price < 0 {
		return domain.Product{}, apperrors.NewValidationError("price must be non-negative", nil)
	}
	if input.Stock < 0 {
		return domain.Product{}, apperrors.NewValidationError("stock must be non-negative", nil)
	}

	product := domain.Product{
		ID:          input.ID,
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Status:      domain.StockStatus(input.Stock),
		Description: input.Description,
		CreatedAt:   time.Now(),
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	return s.products.Create(ctx, product)
}

// Update applies a partial update; the stock status is re-derived by the
// patch itself.
func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return domain.Product{}, apperrors.NewValidationError("price must be non-negative", nil)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return domain.Product{}, apperrors.NewValidationError("stock must be non-negative", nil)
	}
	return s.products.Update(ctx, id, patch)
}

// Delete removes a product; unknown ids are a no-op.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
