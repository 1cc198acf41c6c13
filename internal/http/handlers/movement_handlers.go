package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/repo"
)

// parseTimeParam reads an optional RFC3339 query parameter.
func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	// Query decoding turns the '+' of a zone offset into a space.
	// Example: 2025-07-03T17:44:03+02:00 arrives as 2025-07-03T17:44:03 02:00
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date format", name)
	}
	return &ts, nil
}

func parseIntParam(r *http.Request, name string) (*int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format", name)
	}
	return &v, nil
}

func parseMovementRange(r *http.Request) (repo.MovementFilter, error) {
	var mf repo.MovementFilter
	var err error
	if mf.Since, err = parseTimeParam(r, "since"); err != nil {
		return mf, err
	}
	if mf.Until, err = parseTimeParam(r, "until"); err != nil {
		return mf, err
	}
	return mf, nil
}

// allMovements walks every page of the product history.
func allMovements(r *http.Request, id int64, mf repo.MovementFilter) ([]models.StockMovement, error) {
	all := []models.StockMovement{}
	for {
		offset := len(all)
		mf.Offset = &offset
		page, total, err := productService.ListMovements(r.Context(), id, mf)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || len(all) >= total {
			return all, nil
		}
	}
}

// GetMovementsHandler godoc
// @Summary Get the stock history of a product
// @Tags movements
// @Produce json
// @Param id path int true "Product ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /produits/{id}/mouvements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	mf, err := parseMovementRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if mf.Limit, err = parseIntParam(r, "limit"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if mf.Limit != nil && *mf.Limit < 0 {
		http.Error(w, "limit must be zero or positive", http.StatusBadRequest)
		return
	}

	if mf.Offset, err = parseIntParam(r, "offset"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if mf.Offset != nil && *mf.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	movements, total, err := productService.ListMovements(r.Context(), id, mf)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MovementsSearchResult{Data: movements, Meta: Meta{TotalCount: total}})
}

// ExportMovementsHandler godoc
// @Summary Export the stock history of a product
// @Description Exports every movement in the range, newest first, without pagination.
// @Tags movements
// @Produce text/csv,application/json
// @Param id path int true "Product ID"
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 404 "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /produits/{id}/mouvements/export [get]
func ExportMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	mf, err := parseMovementRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movements, err := allMovements(r, id, mf)
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch format {
	case "json":
		headers := http.Header{}
		headers.Set("Content-Disposition", `attachment; filename="movements.json"`)
		writeJSON(w, http.StatusOK, movements, headers)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "productId", "delta", "quantity", "createdAt"})
		for _, m := range movements {
			_ = csvWriter.Write([]string{
				strconv.FormatInt(m.ID, 10),
				strconv.FormatInt(m.ProductID, 10),
				strconv.Itoa(m.Delta),
				strconv.Itoa(m.Quantity),
				m.CreatedAt.Format(time.RFC3339),
			})
		}
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			appLogger.Errorf(err, "exporting movements of product %d", id)
		}
	}
}
