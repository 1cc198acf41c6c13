package repo

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
)

// AlertRepository stores low-stock alerts and their subscribed users.
// Like products, alerts are soft-deleted through Update.
type AlertRepository interface {
	Create(ctx context.Context, a models.Alert) (models.Alert, error)
	GetByID(ctx context.Context, id int64) (models.Alert, error)
	Update(ctx context.Context, a models.Alert) (models.Alert, error)
	// GetActive returns every non-deleted alert, most recent first.
	GetActive(ctx context.Context) ([]models.Alert, error)
	GetActiveByUser(ctx context.Context, userID int64) ([]models.Alert, error)
	GetActiveByProduct(ctx context.Context, productID int64) ([]models.Alert, error)
	AddUser(ctx context.Context, au models.AlertUser) (models.AlertUser, error)
	GetUserEmails(ctx context.Context, alertID int64) ([]string, error)
}
