package handlers

import (
	"net/http"
	"strings"

	"github.com/infocomm/inventory-backend/internal/models"
)

// GetManufacturersHandler godoc
// @Summary List manufacturers
// @Tags reference
// @Produce json
// @Success 200 {array} models.Manufacturer
// @Router /fabricants [get]
func GetManufacturersHandler(w http.ResponseWriter, r *http.Request) {
	manufacturers, err := manufacturerRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, manufacturers)
}

// CreateManufacturerHandler godoc
// @Summary Create a manufacturer
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param manufacturer body NameRequest true "Manufacturer"
// @Success 201 {object} models.Manufacturer
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Duplicated"
// @Router /fabricants [post]
func CreateManufacturerHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := readName(w, r)
	if !ok {
		return
	}

	created, err := manufacturerRepo.Create(r.Context(), models.Manufacturer{Name: name})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetCategoriesHandler godoc
// @Summary List categories
// @Tags reference
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body NameRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Duplicated"
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := readName(w, r)
	if !ok {
		return
	}

	created, err := categoryRepo.Create(r.Context(), models.Category{Name: name})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetClientsHandler godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} models.Client
// @Router /clients [get]
func GetClientsHandler(w http.ResponseWriter, r *http.Request) {
	clients, err := clientRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// CreateClientHandler godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body ClientRequest true "Client"
// @Success 201 {object} models.Client
// @Failure 400 {object} MessageResponse
// @Failure 409 {string} string "Duplicated"
// @Router /clients [post]
func CreateClientHandler(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !validEmail(strings.TrimSpace(req.Email)) {
		problems = append(problems, "email is invalid")
	}
	if len(problems) > 0 {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: strings.Join(problems, "; ")})
		return
	}

	created, err := clientRepo.Create(r.Context(), models.Client{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func readName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req NameRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return "", false
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "name is required"})
		return "", false
	}
	return name, true
}
