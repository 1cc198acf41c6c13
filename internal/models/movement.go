package models

import "time"

// StockMovement records one change of a product quantity. Quantity is the
// stock level after the change.
type StockMovement struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Delta     int       `json:"delta"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}
