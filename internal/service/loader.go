package service

import (
	"context"
	"fmt"

	"github.com/infocomm/inventory-backend/internal/cache"
	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/repo"
)

// productLoader resolves products by id, cache first, with one store round trip
// for all misses.
type productLoader struct {
	products repo.ProductRepository
	cache    cache.ProductCache
}

func (l productLoader) load(ctx context.Context, ids []int64) (map[int64]models.Product, error) {
	ids = uniqueIDs(ids)
	found := l.cache.GetProducts(ctx, ids)

	var misses []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			misses = append(misses, id)
		}
	}
	if len(misses) == 0 {
		return found, nil
	}

	fetched, err := l.products.GetByIDs(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("loading products %v: %w", misses, err)
	}
	for _, p := range fetched {
		found[p.ID] = p
	}
	// An update committed between GetByIDs and here can be overwritten by
	// this older copy. It stays stale until redis.product_ttl expires it.
	l.cache.SetProducts(ctx, fetched)

	return found, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
