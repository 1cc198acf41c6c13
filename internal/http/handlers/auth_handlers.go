package handlers

import (
	"errors"
	"net/http"

	"github.com/infocomm/inventory-backend/internal/http/middleware"
	"github.com/infocomm/inventory-backend/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "email and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials LoginRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByEmail(r.Context(), credentials.Email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		writeError(w, r, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := tokens.GenerateToken(user)
	if err != nil {
		appLogger.Errorf(err, "could not generate token for %s", user.Email)
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	appLogger.Infof("user %d logged in", user.ID)
	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}

// LogoutHandler godoc
// @Summary Revoke the current access token
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {string} string "Unauthorized"
// @Router /logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := revoker.Revoke(r.Context(), claims.ID, claims.ExpiresAt); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
