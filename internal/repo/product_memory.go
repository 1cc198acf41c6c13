package repo

import (
	"context"
	"sync"

	"github.com/infocomm/inventory-backend/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int64
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetActive retrieves the products not flagged as deleted, in creation order.
func (r *InMemoryProductRepository) GetActive(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := []models.Product{}
	for _, p := range r.products {
		if !p.IsDeleted {
			active = append(active, p)
		}
	}
	return active, nil
}

// GetByID retrieves a product by its ID, deleted or not.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id int64) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByIDs(_ context.Context, ids []int64) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	found := []models.Product{}
	for _, p := range r.products {
		if _, ok := wanted[p.ID]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

// Update replaces the stored product that has the same ID.
func (r *InMemoryProductRepository) Update(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
	r.nextID = 1
}
