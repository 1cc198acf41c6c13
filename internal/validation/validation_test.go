package validation

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/repo/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidator_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.ProductInput
		setup   func(m *mocks.MockManufacturerRepository, c *mocks.MockCategoryRepository)
		wantMsg string
	}{
		{
			name:  "valid without references",
			input: models.ProductInput{Model: "Phone9", Quantity: 3},
		},
		{
			name:  "valid with references",
			input: models.ProductInput{Model: "Phone9", ManufacturerID: ptr(int64(1)), CategoryID: ptr(int64(2))},
			setup: func(m *mocks.MockManufacturerRepository, c *mocks.MockCategoryRepository) {
				m.On("Exists", ctx, int64(1)).Return(true, nil).Once()
				c.On("Exists", ctx, int64(2)).Return(true, nil).Once()
			},
		},
		{
			name:    "blank model",
			input:   models.ProductInput{Model: "   "},
			wantMsg: "model is required",
		},
		{
			name:    "negative quantity and blank model",
			input:   models.ProductInput{Model: "", Quantity: -1},
			wantMsg: "model is required; quantity cannot be negative",
		},
		{
			name:    "line break in model",
			input:   models.ProductInput{Model: "Phone9\r\nBcc: intruder@elsewhere.test", Quantity: 1},
			wantMsg: "model cannot contain control characters",
		},
		{
			name:    "tab in model",
			input:   models.ProductInput{Model: "Phone\t9"},
			wantMsg: "model cannot contain control characters",
		},
		{
			name:    "quantity beyond int32",
			input:   models.ProductInput{Model: "Phone9", Quantity: math.MaxInt32 + 1},
			wantMsg: "quantity cannot exceed 2147483647",
		},
		{
			name:  "quantity at int32 limit",
			input: models.ProductInput{Model: "Phone9", Quantity: math.MaxInt32},
		},
		{
			name:  "unknown manufacturer",
			input: models.ProductInput{Model: "Phone9", ManufacturerID: ptr(int64(7))},
			setup: func(m *mocks.MockManufacturerRepository, c *mocks.MockCategoryRepository) {
				m.On("Exists", ctx, int64(7)).Return(false, nil).Once()
			},
			wantMsg: "manufacturer 7 does not exist",
		},
		{
			name:  "unknown category",
			input: models.ProductInput{Model: "Phone9", CategoryID: ptr(int64(9))},
			setup: func(m *mocks.MockManufacturerRepository, c *mocks.MockCategoryRepository) {
				c.On("Exists", ctx, int64(9)).Return(false, nil).Once()
			},
			wantMsg: "category 9 does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manufacturers := new(mocks.MockManufacturerRepository)
			categories := new(mocks.MockCategoryRepository)
			if tt.setup != nil {
				tt.setup(manufacturers, categories)
			}

			msg, err := NewValidator(manufacturers, categories).Validate(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, msg)
			manufacturers.AssertExpectations(t)
			categories.AssertExpectations(t)
		})
	}
}

func TestValidator_StoreFailure(t *testing.T) {
	ctx := context.Background()
	manufacturers := new(mocks.MockManufacturerRepository)
	categories := new(mocks.MockCategoryRepository)
	manufacturers.On("Exists", ctx, int64(1)).Return(false, errors.New("db down")).Once()

	_, err := NewValidator(manufacturers, categories).Validate(ctx, models.ProductInput{Model: "X", ManufacturerID: ptr(int64(1))})

	assert.ErrorContains(t, err, "db down")
}

func TestProductInformationInvalidError(t *testing.T) {
	var err error = &ProductInformationInvalidError{Message: "model is required"}

	var target *ProductInformationInvalidError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "model is required", target.Message)
}
