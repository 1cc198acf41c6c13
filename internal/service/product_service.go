package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/infocomm/inventory-backend/internal/cache"
	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/repo"
	"github.com/infocomm/inventory-backend/internal/validation"
)

// StockWatcher is told about every persisted quantity change.
type StockWatcher interface {
	CheckStock(ctx context.Context, product models.Product)
}

type ProductService struct {
	products  repo.ProductRepository
	validator validation.ProductValidator
	cache     cache.ProductCache
	watcher   StockWatcher
	movements repo.MovementRepository
	logger    logger.Logger
	now       func() time.Time
}

func NewProductService(
	products repo.ProductRepository,
	validator validation.ProductValidator,
	productCache cache.ProductCache,
	log logger.Logger,
) *ProductService {
	if productCache == nil {
		productCache = cache.NopProductCache{}
	}
	return &ProductService{
		products:  products,
		validator: validator,
		cache:     productCache,
		logger:    log,
		now:       time.Now,
	}
}

// SetStockWatcher registers the low-stock check run after quantity changes.
func (s *ProductService) SetStockWatcher(w StockWatcher) {
	s.watcher = w
}

// ListProducts returns the products not flagged as deleted.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.logger.Infof("listing products")

	products, err := s.products.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// CreateProduct validates in and stores it as a new, active product.
func (s *ProductService) CreateProduct(ctx context.Context, in models.ProductInput) (int64, error) {
	if err := s.validate(ctx, in); err != nil {
		return 0, err
	}

	p := in.Product()
	p.IsDeleted = false

	created, err := s.products.Create(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("creating product: %w", err)
	}

	s.recordMovement(ctx, created, created.Quantity)
	s.logger.Infof("product %d created", created.ID)
	return created.ID, nil
}

// SoftDeleteProduct flags the product as deleted. Deleting twice is not an error.
func (s *ProductService) SoftDeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	p.IsDeleted = true
	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return models.Product{}, fmt.Errorf("deleting product %d: %w", id, err)
	}
	s.cache.DeleteProducts(ctx, id)

	s.logger.Infof("product %d deleted", id)
	return updated, nil
}

// UpdateProduct applies the present fields of patch. A patch with no fields is
// not persisted and the current product is returned as is.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, patch models.ProductPatch) (models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	before := p.Quantity
	changed := applyPatch(&p, patch)
	if len(changed) == 0 {
		s.logger.Warnf("product %d: no modification applied", id)
		return p, nil
	}

	if err := s.validate(ctx, p.Input()); err != nil {
		return models.Product{}, err
	}

	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return models.Product{}, fmt.Errorf("updating product %d: %w", id, err)
	}
	s.cache.DeleteProducts(ctx, id)
	s.logger.Infof("product %d updated: %s", id, strings.Join(changed, ", "))

	if slices.Contains(changed, "quantity") {
		s.recordMovement(ctx, updated, updated.Quantity-before)
		if s.watcher != nil {
			s.watcher.CheckStock(ctx, updated)
		}
	}
	return updated, nil
}

func (s *ProductService) validate(ctx context.Context, in models.ProductInput) error {
	msg, err := s.validator.Validate(ctx, in)
	if err != nil {
		return fmt.Errorf("validating product: %w", err)
	}
	if msg != "" {
		return &validation.ProductInformationInvalidError{Message: msg}
	}
	return nil
}
