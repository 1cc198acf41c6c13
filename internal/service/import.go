package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/validation"
)

type ImportResult struct {
	Imported int                    `json:"imported"`
	Errors   []validation.Violation `json:"errors"`
}

// ImportRow is one parsed line of an import file. Line is 1-based and counts
// the header. Err carries a parse failure for the line, if any.
type ImportRow struct {
	Line  int
	Input models.ProductInput
	Err   error
}

// ImportProducts runs every row through CreateProduct. Invalid rows are
// reported and skipped; a store failure aborts the import.
func (s *ProductService) ImportProducts(ctx context.Context, rows []ImportRow) (ImportResult, error) {
	result := ImportResult{Errors: []validation.Violation{}}

	for _, row := range rows {
		field := fmt.Sprintf("line %d", row.Line)
		if row.Err != nil {
			result.Errors = append(result.Errors, validation.Violation{Field: field, Description: row.Err.Error()})
			continue
		}

		_, err := s.CreateProduct(ctx, row.Input)
		var invalid *validation.ProductInformationInvalidError
		switch {
		case errors.As(err, &invalid):
			result.Errors = append(result.Errors, validation.Violation{Field: field, Description: invalid.Message})
		case err != nil:
			return result, err
		default:
			result.Imported++
		}
	}

	s.logger.Infof("import finished: %d imported, %d rejected", result.Imported, len(result.Errors))
	return result, nil
}
