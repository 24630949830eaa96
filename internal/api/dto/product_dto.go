package dto

import "github.com/spec-kit/admin-dashboard/internal/domain"

// ProductCreateRequest payload for new catalog entries.
type ProductCreateRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

// ProductUpdateRequest carries a partial update; omitted fields stay as-is.
type ProductUpdateRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Description *string  `json:"description"`
}

// Patch converts the request to a domain patch.
func (r ProductUpdateRequest) Patch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		Description: r.Description,
	}
}
