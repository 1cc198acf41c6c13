package cache

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
)

// ProductCache is a best-effort read-through cache for products keyed by id.
// Implementations never fail the caller: a broken cache behaves like an empty one.
type ProductCache interface {
	// GetProducts returns the cached products among ids. Misses are absent from the map.
	GetProducts(ctx context.Context, ids []int64) map[int64]models.Product
	SetProducts(ctx context.Context, products []models.Product)
	DeleteProducts(ctx context.Context, ids ...int64)
}

// NopProductCache disables caching.
type NopProductCache struct{}

func (NopProductCache) GetProducts(context.Context, []int64) map[int64]models.Product {
	return map[int64]models.Product{}
}

func (NopProductCache) SetProducts(context.Context, []models.Product) {}

func (NopProductCache) DeleteProducts(context.Context, ...int64) {}
