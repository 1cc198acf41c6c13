package repo

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
)

// ProductRepository defines the interface for product data operations.
// Products are never removed; soft deletion goes through Update.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetActive(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (models.Product, error)
	// GetByIDs returns the products found among ids, in no particular order.
	// Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
}
