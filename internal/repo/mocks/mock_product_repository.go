package mocks

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockProductRepository) GetActive(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	if res := args.Get(0); res != nil {
		return res.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product models.Product) (models.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(models.Product), args.Error(1)
}
