package repo

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
)

type MovementRepository interface {
	Log(ctx context.Context, m models.StockMovement) (models.StockMovement, error)
	// GetByProductID returns one page of the product's movements, newest
	// first, together with the number of movements matching the filter.
	GetByProductID(ctx context.Context, productID int64, mf MovementFilter) ([]models.StockMovement, int, error)
}
