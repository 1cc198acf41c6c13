package service

import "github.com/infocomm/inventory-backend/internal/models"

// overwrite copies *src into *dst when src is present.
func overwrite[T any](dst *T, src *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}

// overwriteRef is overwrite for optional destination fields.
func overwriteRef[T any](dst **T, src *T) bool {
	if src == nil {
		return false
	}
	v := *src
	*dst = &v
	return true
}

type patchField struct {
	name  string
	apply func(p *models.Product, patch models.ProductPatch) bool
}

// patchFields lists every patchable product field. Adding a field to
// ProductPatch means adding one entry here.
var patchFields = []patchField{
	{name: "model", apply: func(p *models.Product, patch models.ProductPatch) bool {
		return overwrite(&p.Model, patch.Model)
	}},
	{name: "manufacturerId", apply: func(p *models.Product, patch models.ProductPatch) bool {
		return overwriteRef(&p.ManufacturerID, patch.ManufacturerID)
	}},
	{name: "categoryId", apply: func(p *models.Product, patch models.ProductPatch) bool {
		return overwriteRef(&p.CategoryID, patch.CategoryID)
	}},
	{name: "quantity", apply: func(p *models.Product, patch models.ProductPatch) bool {
		return overwrite(&p.Quantity, patch.Quantity)
	}},
}

// applyPatch mutates p with every present field of patch and returns the names
// of the fields it touched.
func applyPatch(p *models.Product, patch models.ProductPatch) []string {
	var changed []string
	for _, f := range patchFields {
		if f.apply(p, patch) {
			changed = append(changed, f.name)
		}
	}
	return changed
}
