package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.GetDashboardMetrics(r.Context())
	if err != nil {
		appLogger.Errorf(err, "failed to fetch metrics")
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
