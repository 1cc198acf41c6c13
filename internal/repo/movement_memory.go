package repo

import (
	"context"
	"sync"

	"github.com/infocomm/inventory-backend/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.StockMovement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.StockMovement{},
	}
}

func (r *InMemoryMovementRepository) Log(_ context.Context, m models.StockMovement) (models.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = int64(len(r.movements) + 1)
	r.movements = append(r.movements, m)
	return m, nil
}

// GetByProductID filters by date range then paginates, newest first.
func (r *InMemoryMovementRepository) GetByProductID(_ context.Context, productID int64, mf MovementFilter) ([]models.StockMovement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.StockMovement{}
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.ProductID != productID {
			continue
		}
		if (mf.Since != nil && m.CreatedAt.Before(*mf.Since)) ||
			(mf.Until != nil && m.CreatedAt.After(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}
	total := len(filtered)

	if mf.Limit != nil && *mf.Limit == 0 {
		return []models.StockMovement{}, total, nil
	}

	start := 0
	if mf.Offset != nil {
		start = clamp(*mf.Offset, 0, total)
	}

	limit := maxMovementsPage
	if mf.Limit != nil && *mf.Limit > 0 {
		limit = min(*mf.Limit, maxMovementsPage)
	}
	end := clamp(start+limit, start, total)

	return filtered[start:end], total, nil
}

func (r *InMemoryMovementRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = []models.StockMovement{}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
