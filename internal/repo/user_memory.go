package repo

import (
	"context"
	"sync"

	"github.com/infocomm/inventory-backend/internal/models"
)

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: []models.User{},
	}
}

func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) CreateUser(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == u.Email {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}

	u.ID = int64(len(r.users) + 1)
	r.users = append(r.users, u)
	return u, nil
}
