package repo

import (
	"context"
	"strings"
	"sync"

	"github.com/infocomm/inventory-backend/internal/models"
)

type InMemoryManufacturerRepository struct {
	mu            sync.RWMutex
	manufacturers []models.Manufacturer
	nextID        int64
}

func NewInMemoryManufacturerRepository() *InMemoryManufacturerRepository {
	return &InMemoryManufacturerRepository{manufacturers: []models.Manufacturer{}, nextID: 1}
}

func (r *InMemoryManufacturerRepository) Create(_ context.Context, m models.Manufacturer) (models.Manufacturer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.manufacturers {
		if strings.EqualFold(existing.Name, m.Name) {
			return models.Manufacturer{}, ErrDuplicatedValueUnique
		}
	}
	m.ID = r.nextID
	r.nextID++
	r.manufacturers = append(r.manufacturers, m)
	return m, nil
}

func (r *InMemoryManufacturerRepository) GetAll(_ context.Context) ([]models.Manufacturer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Manufacturer, len(r.manufacturers))
	copy(out, r.manufacturers)
	return out, nil
}

func (r *InMemoryManufacturerRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.manufacturers {
		if m.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
	nextID     int64
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{categories: []models.Category{}, nextID: 1}
}

func (r *InMemoryCategoryRepository) Create(_ context.Context, c models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *InMemoryCategoryRepository) GetAll(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *InMemoryCategoryRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}
