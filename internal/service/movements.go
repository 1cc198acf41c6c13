package service

import (
	"context"
	"fmt"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/repo"
)

// SetMovementLog enables the stock movement history.
func (s *ProductService) SetMovementLog(m repo.MovementRepository) {
	s.movements = m
}

// recordMovement appends a movement for a quantity change. A failure is
// logged and never undoes the change itself.
func (s *ProductService) recordMovement(ctx context.Context, p models.Product, delta int) {
	if s.movements == nil || delta == 0 {
		return
	}

	_, err := s.movements.Log(ctx, models.StockMovement{
		ProductID: p.ID,
		Delta:     delta,
		Quantity:  p.Quantity,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Errorf(err, "recording movement of %d on product %d", delta, p.ID)
	}
}

// ListMovements returns a page of the stock history of a product, deleted
// products included, and the total number of matching movements.
func (s *ProductService) ListMovements(ctx context.Context, productID int64, mf repo.MovementFilter) ([]models.StockMovement, int, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, 0, err
	}
	if s.movements == nil {
		return []models.StockMovement{}, 0, nil
	}

	movements, total, err := s.movements.GetByProductID(ctx, productID, mf)
	if err != nil {
		return nil, 0, fmt.Errorf("listing movements of product %d: %w", productID, err)
	}
	return movements, total, nil
}
