package handlers

import "github.com/infocomm/inventory-backend/internal/models"

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AlertRequest creates an alert. UserID defaults to the authenticated user.
type AlertRequest struct {
	Threshold int    `json:"threshold"`
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
	UserID    *int64 `json:"userId,omitempty"`
}

type AlertUserRequest struct {
	Email string `json:"email"`
}

type Meta struct {
	TotalCount int `json:"totalCount"`
}

type MovementsSearchResult struct {
	Data []models.StockMovement `json:"data"`
	Meta Meta                   `json:"meta"`
}
