package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
)

// Collection names double as blob store key suffixes.
const (
	CollectionUsers    = "users"
	CollectionTickets  = "tickets"
	CollectionProducts = "products"
	CollectionOrders   = "orders"
)

// Collections bundles the typed collections backing the dashboard.
type Collections struct {
	Users    *Collection[domain.User]
	Tickets  *Collection[domain.SupportTicket]
	Products *Collection[domain.Product]
	Orders   *Collection[domain.Order]
}

// NewCollections binds every record type to the shared blob store.
func NewCollections(cfg config.StoreConfig, blobs blobstore.Store, logger *zap.Logger) *Collections {
	return &Collections{
		Users:    NewCollection[domain.User](CollectionUsers, cfg, blobs, logger),
		Tickets:  NewCollection[domain.SupportTicket](CollectionTickets, cfg, blobs, logger),
		Products: NewCollection[domain.Product](CollectionProducts, cfg, blobs, logger),
		Orders:   NewCollection[domain.Order](CollectionOrders, cfg, blobs, logger),
	}
}

// SeedDefaults writes the fixed initial datasets into any collection whose
// key is entirely absent. Runs once at startup.
func (c *Collections) SeedDefaults(ctx context.Context) error {
	if err := c.Users.Seed(ctx, SeedUsers()); err != nil {
		return err
	}
	if err := c.Tickets.Seed(ctx, SeedTickets()); err != nil {
		return err
	}
	if err := c.Products.Seed(ctx, SeedProducts()); err != nil {
		return err
	}
	return c.Orders.Seed(ctx, SeedOrders())
}
