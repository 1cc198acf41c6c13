package service

import (
	"context"
	"errors"
	"testing"

	"github.com/infocomm/inventory-backend/internal/cache"
	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/repo"
	"github.com/infocomm/inventory-backend/internal/repo/mocks"
	"github.com/infocomm/inventory-backend/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type validatorFunc func(ctx context.Context, in models.ProductInput) (string, error)

func (f validatorFunc) Validate(ctx context.Context, in models.ProductInput) (string, error) {
	return f(ctx, in)
}

func acceptAll() validation.ProductValidator {
	return validatorFunc(func(context.Context, models.ProductInput) (string, error) { return "", nil })
}

func rejectAll(msg string) validation.ProductValidator {
	return validatorFunc(func(context.Context, models.ProductInput) (string, error) { return msg, nil })
}

type recordingWatcher struct {
	checked []models.Product
}

func (w *recordingWatcher) CheckStock(_ context.Context, p models.Product) {
	w.checked = append(w.checked, p)
}

func ptr[T any](v T) *T { return &v }

func newProductService(products repo.ProductRepository, v validation.ProductValidator) *ProductService {
	return NewProductService(products, v, cache.NopProductCache{}, logger.NewDiscardLogger())
}

func TestProductService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns active products", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		active := []models.Product{{ID: 1, Model: "Phone9"}, {ID: 3, Model: "Tab2"}}
		mockRepo.On("GetActive", ctx).Return(active, nil).Once()

		got, err := newProductService(mockRepo, acceptAll()).ListProducts(ctx)

		require.NoError(t, err)
		assert.Equal(t, active, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetActive", ctx).Return(nil, errors.New("db error")).Once()

		_, err := newProductService(mockRepo, acceptAll()).ListProducts(ctx)

		assert.ErrorContains(t, err, "db error")
	})
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("stores an active product and returns its id", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		in := models.ProductInput{Model: "Phone9", Quantity: 4}
		mockRepo.On("Create", ctx, mock.MatchedBy(func(p models.Product) bool {
			return p.Model == "Phone9" && p.Quantity == 4 && !p.IsDeleted
		})).Return(models.Product{ID: 12, Model: "Phone9", Quantity: 4}, nil).Once()

		id, err := newProductService(mockRepo, acceptAll()).CreateProduct(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
		mockRepo.AssertExpectations(t)
	})

	t.Run("validation failure does not persist", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)

		_, err := newProductService(mockRepo, rejectAll("model is required")).CreateProduct(ctx, models.ProductInput{})

		var invalid *validation.ProductInformationInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "model is required", invalid.Message)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductService_SoftDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("flags the product as deleted", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetByID", ctx, int64(5)).Return(models.Product{ID: 5, Model: "Phone9"}, nil).Once()
		mockRepo.On("Update", ctx, models.Product{ID: 5, Model: "Phone9", IsDeleted: true}).
			Return(models.Product{ID: 5, Model: "Phone9", IsDeleted: true}, nil).Once()

		got, err := newProductService(mockRepo, acceptAll()).SoftDeleteProduct(ctx, 5)

		require.NoError(t, err)
		assert.True(t, got.IsDeleted)
		assert.Equal(t, int64(5), got.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id mutates nothing", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetByID", ctx, int64(999)).Return(models.Product{}, repo.ErrProductNotFound).Once()

		_, err := newProductService(mockRepo, acceptAll()).SoftDeleteProduct(ctx, 999)

		assert.ErrorIs(t, err, repo.ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	stored := models.Product{ID: 7, Model: "Phone9", Quantity: 10}

	t.Run("empty patch is not saved", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetByID", ctx, int64(7)).Return(stored, nil).Once()
		watcher := &recordingWatcher{}
		svc := newProductService(mockRepo, rejectAll("must not be called"))
		svc.SetStockWatcher(watcher)

		got, err := svc.UpdateProduct(ctx, 7, models.ProductPatch{})

		require.NoError(t, err)
		assert.Equal(t, stored, got)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Empty(t, watcher.checked)
	})

	t.Run("model only", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		want := models.Product{ID: 7, Model: "Phone9 Pro", Quantity: 10}
		mockRepo.On("GetByID", ctx, int64(7)).Return(stored, nil).Once()
		mockRepo.On("Update", ctx, want).Return(want, nil).Once()
		watcher := &recordingWatcher{}
		svc := newProductService(mockRepo, acceptAll())
		svc.SetStockWatcher(watcher)

		got, err := svc.UpdateProduct(ctx, 7, models.ProductPatch{Model: ptr("Phone9 Pro")})

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Empty(t, watcher.checked, "stock is only checked on quantity changes")
		mockRepo.AssertExpectations(t)
	})

	t.Run("quantity change runs the stock check", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		want := models.Product{ID: 7, Model: "Phone9", Quantity: 1, CategoryID: ptr(int64(2))}
		mockRepo.On("GetByID", ctx, int64(7)).Return(stored, nil).Once()
		mockRepo.On("Update", ctx, want).Return(want, nil).Once()
		watcher := &recordingWatcher{}
		svc := newProductService(mockRepo, acceptAll())
		svc.SetStockWatcher(watcher)

		_, err := svc.UpdateProduct(ctx, 7, models.ProductPatch{Quantity: ptr(1), CategoryID: ptr(int64(2))})

		require.NoError(t, err)
		require.Len(t, watcher.checked, 1)
		assert.Equal(t, 1, watcher.checked[0].Quantity)
	})

	t.Run("invalid result is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetByID", ctx, int64(7)).Return(stored, nil).Once()

		_, err := newProductService(mockRepo, rejectAll("quantity cannot be negative")).
			UpdateProduct(ctx, 7, models.ProductPatch{Quantity: ptr(-3)})

		var invalid *validation.ProductInformationInvalidError
		require.ErrorAs(t, err, &invalid)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetByID", ctx, int64(999)).Return(models.Product{}, repo.ErrProductNotFound).Once()

		_, err := newProductService(mockRepo, acceptAll()).UpdateProduct(ctx, 999, models.ProductPatch{Model: ptr("X")})

		assert.ErrorIs(t, err, repo.ErrProductNotFound)
	})
}

func TestApplyPatch(t *testing.T) {
	p := models.Product{ID: 1, Model: "A", Quantity: 2}

	changed := applyPatch(&p, models.ProductPatch{ManufacturerID: ptr(int64(4)), Quantity: ptr(0)})

	assert.Equal(t, []string{"manufacturerId", "quantity"}, changed)
	assert.Equal(t, "A", p.Model)
	require.NotNil(t, p.ManufacturerID)
	assert.Equal(t, int64(4), *p.ManufacturerID)
	assert.Nil(t, p.CategoryID)
	assert.Equal(t, 0, p.Quantity)
	assert.Equal(t, int64(1), p.ID)
}

func TestProductService_ImportProducts(t *testing.T) {
	ctx := context.Background()
	products := repo.NewInMemoryProductRepository()
	v := validatorFunc(func(_ context.Context, in models.ProductInput) (string, error) {
		if in.Model == "" {
			return "model is required", nil
		}
		return "", nil
	})
	svc := newProductService(products, v)

	res, err := svc.ImportProducts(ctx, []ImportRow{
		{Line: 2, Input: models.ProductInput{Model: "Phone9", Quantity: 3}},
		{Line: 3, Input: models.ProductInput{Model: ""}},
		{Line: 4, Err: errors.New("invalid quantity \"x\"")},
		{Line: 5, Input: models.ProductInput{Model: "Tab2"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, []validation.Violation{
		{Field: "line 3", Description: "model is required"},
		{Field: "line 4", Description: "invalid quantity \"x\""},
	}, res.Errors)

	active, _ := products.GetActive(ctx)
	assert.Len(t, active, 2)
}
