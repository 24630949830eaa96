package domain

import "time"

// ProductStatus is derived from stock, never set directly.
type ProductStatus string

const (
	ProductInStock    ProductStatus = "In Stock"
	ProductLowStock   ProductStatus = "Low Stock"
	ProductOutOfStock ProductStatus = "Out of Stock"
)

// LowStockThreshold is the inclusive stock level at which a product is
// reported as low rather than in stock.
const LowStockThreshold = 10

// Product is a catalog entry.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// RecordID returns the unique identifier.
func (p Product) RecordID() string { return p.ID }

// StockStatus derives the display status for a stock level.
func StockStatus(stock int) ProductStatus {
	switch {
	case stock == 0:
		return ProductOutOfStock
	case stock <= LowStockThreshold:
		return ProductLowStock
	default:
		return ProductInStock
	}
}

// ProductPatch is a partial update; nil fields leave the record untouched.
// Status is absent: it is re-derived whenever Stock changes.
type ProductPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	Stock       *int
	Description *string
}

// Apply merges the patch onto the product field by field and keeps the
// derived status consistent with the resulting stock.
func (p ProductPatch) Apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	prod.Status = StockStatus(prod.Stock)
}
