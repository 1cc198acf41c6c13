package mocks

import (
	"context"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, a models.Alert) (models.Alert, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.Alert), args.Error(1)
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id int64) (models.Alert, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Alert), args.Error(1)
}

func (m *MockAlertRepository) Update(ctx context.Context, a models.Alert) (models.Alert, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.Alert), args.Error(1)
}

func (m *MockAlertRepository) GetActive(ctx context.Context) ([]models.Alert, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Alert), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAlertRepository) GetActiveByUser(ctx context.Context, userID int64) ([]models.Alert, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.([]models.Alert), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAlertRepository) GetActiveByProduct(ctx context.Context, productID int64) ([]models.Alert, error) {
	args := m.Called(ctx, productID)
	if res := args.Get(0); res != nil {
		return res.([]models.Alert), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAlertRepository) AddUser(ctx context.Context, au models.AlertUser) (models.AlertUser, error) {
	args := m.Called(ctx, au)
	return args.Get(0).(models.AlertUser), args.Error(1)
}

func (m *MockAlertRepository) GetUserEmails(ctx context.Context, alertID int64) ([]string, error) {
	args := m.Called(ctx, alertID)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
