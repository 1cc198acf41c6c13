package repo

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
)

type ManufacturerRepository interface {
	Create(ctx context.Context, m models.Manufacturer) (models.Manufacturer, error)
	GetAll(ctx context.Context) ([]models.Manufacturer, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c models.Category) (models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
