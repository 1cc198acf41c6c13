package handlers

import (
	"net/http"

	"github.com/infocomm/inventory-backend/internal/http/middleware"
	"github.com/infocomm/inventory-backend/internal/models"
)

// GetUserAlertsHandler godoc
// @Summary List a user's alerts
// @Description Active alerts of the user, each with its product and current stock
// @Tags alerts
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.AlertProduct
// @Failure 400 {string} string "Invalid ID"
// @Failure 500 {string} string "Internal error"
// @Router /alertes/{id} [get]
func GetUserAlertsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	alerts, err := alertService.ListUserAlerts(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

// CreateAlertHandler godoc
// @Summary Create a low-stock alert
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alert body AlertRequest true "Alert to create"
// @Success 201 {object} models.Alert
// @Failure 400 {object} MessageResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /alertes [post]
func CreateAlertHandler(w http.ResponseWriter, r *http.Request) {
	var req AlertRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	alert := models.Alert{
		Threshold: req.Threshold,
		Message:   req.Message,
		ProductID: req.ProductID,
	}
	if req.UserID != nil {
		alert.UserID = *req.UserID
	} else if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		alert.UserID = claims.UserID
	}

	created, err := alertService.CreateAlert(r.Context(), alert)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteAlertHandler godoc
// @Summary Soft-delete an alert
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 "Not found"
// @Router /alerte/delete/{id} [patch]
func DeleteAlertHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid alert ID", http.StatusBadRequest)
		return
	}

	alert, err := alertService.SoftDeleteAlert(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alert)
}

// LinkAlertUserHandler godoc
// @Summary Subscribe a user to an alert
// @Tags alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Param user body AlertUserRequest true "User email"
// @Success 201 {object} models.AlertUser
// @Failure 400 {string} string "Invalid input"
// @Failure 404 "Alert or user not found"
// @Failure 409 {string} string "Already linked"
// @Router /alertes/{id}/utilisateurs [post]
func LinkAlertUserHandler(w http.ResponseWriter, r *http.Request) {
	alertID, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid alert ID", http.StatusBadRequest)
		return
	}

	var req AlertUserRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !validEmail(req.Email) {
		http.Error(w, "invalid email", http.StatusBadRequest)
		return
	}

	au, err := alertService.LinkUser(r.Context(), alertID, req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, au)
}
