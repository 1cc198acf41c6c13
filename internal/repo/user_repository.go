package repo

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
}
