package mocks

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockManufacturerRepository struct {
	mock.Mock
}

func (m *MockManufacturerRepository) Create(ctx context.Context, mf models.Manufacturer) (models.Manufacturer, error) {
	args := m.Called(ctx, mf)
	return args.Get(0).(models.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) GetAll(ctx context.Context) ([]models.Manufacturer, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Manufacturer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockManufacturerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
