package validation

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/repo"
)

// ProductInformationInvalidError reports product data rejected by a ProductValidator.
type ProductInformationInvalidError struct {
	Message string
}

func (e *ProductInformationInvalidError) Error() string {
	return e.Message
}

// AlertInformationInvalidError reports an alert that cannot be created as requested.
type AlertInformationInvalidError struct {
	Message string
}

func (e *AlertInformationInvalidError) Error() string {
	return e.Message
}

// ProductValidator checks product data before it is persisted. It returns an
// empty message when the input is acceptable. The error is reserved for
// failures of the checks themselves, such as an unreachable store.
type ProductValidator interface {
	Validate(ctx context.Context, in models.ProductInput) (string, error)
}

// Violation is a single failed rule.
type Violation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

const violationSeparator = "; "

// JoinViolations renders violations as a single message.
func JoinViolations(vs []Violation) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Description
	}
	return strings.Join(parts, violationSeparator)
}

type referenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Validator is the default ProductValidator, backed by the reference repositories.
type Validator struct {
	manufacturers referenceChecker
	categories    referenceChecker
}

func NewValidator(manufacturers repo.ManufacturerRepository, categories repo.CategoryRepository) *Validator {
	return &Validator{manufacturers: manufacturers, categories: categories}
}

func (v *Validator) Validate(ctx context.Context, in models.ProductInput) (string, error) {
	vs, err := v.Violations(ctx, in)
	if err != nil {
		return "", err
	}
	return JoinViolations(vs), nil
}

// Violations lists every rule the input breaks, in a stable order.
func (v *Validator) Violations(ctx context.Context, in models.ProductInput) ([]Violation, error) {
	var vs []Violation

	if strings.TrimSpace(in.Model) == "" {
		vs = append(vs, Violation{Field: "model", Description: "model is required"})
	} else if strings.ContainsFunc(in.Model, unicode.IsControl) {
		vs = append(vs, Violation{Field: "model", Description: "model cannot contain control characters"})
	}
	if in.Quantity < 0 {
		vs = append(vs, Violation{Field: "quantity", Description: "quantity cannot be negative"})
	}
	// quantity column is a Postgres integer
	if in.Quantity > math.MaxInt32 {
		vs = append(vs, Violation{Field: "quantity", Description: fmt.Sprintf("quantity cannot exceed %d", math.MaxInt32)})
	}

	if in.ManufacturerID != nil {
		ok, err := v.manufacturers.Exists(ctx, *in.ManufacturerID)
		if err != nil {
			return nil, fmt.Errorf("checking manufacturer %d: %w", *in.ManufacturerID, err)
		}
		if !ok {
			vs = append(vs, Violation{Field: "manufacturerId", Description: fmt.Sprintf("manufacturer %d does not exist", *in.ManufacturerID)})
		}
	}

	if in.CategoryID != nil {
		ok, err := v.categories.Exists(ctx, *in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("checking category %d: %w", *in.CategoryID, err)
		}
		if !ok {
			vs = append(vs, Violation{Field: "categoryId", Description: fmt.Sprintf("category %d does not exist", *in.CategoryID)})
		}
	}

	return vs, nil
}
