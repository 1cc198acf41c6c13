package repo

import (
	"context"
	"time"
)

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RecentAlert struct {
	ID      int64     `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

type Metrics struct {
	TotalProducts    int             `json:"totalProducts"`
	LowStockProducts int             `json:"lowStockProducts"`
	Categories       []CategoryCount `json:"categories"`
	RecentAlerts     []RecentAlert   `json:"recentAlerts"`
}

// recentAlertsLimit caps Metrics.RecentAlerts.
const recentAlertsLimit = 5

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
