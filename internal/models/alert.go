package models

import "time"

// Alert is a low-stock rule: it fires when the product quantity drops below Threshold.
type Alert struct {
	ID        int64     `json:"id"`
	Threshold int       `json:"threshold"`
	Message   string    `json:"message"`
	Date      time.Time `json:"date"`
	ProductID int64     `json:"productId"`
	UserID    int64     `json:"userId"`
	IsDeleted bool      `json:"isDeleted"`
}

// Triggered reports whether the given stock level is below the alert threshold.
func (a Alert) Triggered(quantity int) bool {
	return quantity < a.Threshold
}

// AlertUser links an additional user, by email, to an alert.
type AlertUser struct {
	ID        int64  `json:"id"`
	AlertID   int64  `json:"alertId"`
	UserEmail string `json:"userEmail"`
}

// AlertProduct pairs an alert with its product and current stock for display.
type AlertProduct struct {
	Alert        Alert   `json:"alert"`
	Product      Product `json:"product"`
	CurrentStock int     `json:"currentStock"`
}
