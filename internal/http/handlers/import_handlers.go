package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/service"
)

var requiredColumns = []string{"model", "quantity"}

// parseCSV turns an import file into rows. Malformed values are reported on
// their row instead of failing the whole file; only a broken header does that.
func parseCSV(src io.Reader) ([]service.ImportRow, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []service.ImportRow
	for line := 2; ; line++ { // header is line 1
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		in, err := recordToInput(record, index)
		rows = append(rows, service.ImportRow{Line: line, Input: in, Err: err})
	}
	return rows, nil
}

func recordToInput(record []string, index map[string]int) (models.ProductInput, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	in := models.ProductInput{Model: field("model")}

	qty, err := strconv.Atoi(field("quantity"))
	if err != nil {
		return in, fmt.Errorf("invalid quantity %q", field("quantity"))
	}
	in.Quantity = qty

	if in.ManufacturerID, err = optionalID(field("manufacturerid")); err != nil {
		return in, fmt.Errorf("invalid manufacturerId %q", field("manufacturerid"))
	}
	if in.CategoryID, err = optionalID(field("categoryid")); err != nil {
		return in, fmt.Errorf("invalid categoryId %q", field("categoryid"))
	}
	return in, nil
}

func optionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns: model, manufacturerId, categoryId, quantity. Each row is validated like a single creation.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} service.ImportResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /produits/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := productService.ImportProducts(r.Context(), rows)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
