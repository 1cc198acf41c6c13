package models

// Product represents an inventory item. Rows are never removed from storage:
// IsDeleted hides a product from the default listing.
type Product struct {
	ID             int64  `json:"id"`
	Model          string `json:"model"`
	ManufacturerID *int64 `json:"manufacturerId"`
	CategoryID     *int64 `json:"categoryId"`
	Quantity       int    `json:"quantity"`
	IsDeleted      bool   `json:"isDeleted"`
}

// ProductInput holds the fields accepted when a product is created.
type ProductInput struct {
	Model          string `json:"model"`
	ManufacturerID *int64 `json:"manufacturerId"`
	CategoryID     *int64 `json:"categoryId"`
	Quantity       int    `json:"quantity"`
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Model          *string `json:"model"`
	ManufacturerID *int64  `json:"manufacturerId"`
	CategoryID     *int64  `json:"categoryId"`
	Quantity       *int    `json:"quantity"`
}

// Product builds a new, not yet persisted, product from the input.
func (in ProductInput) Product() Product {
	return Product{
		Model:          in.Model,
		ManufacturerID: in.ManufacturerID,
		CategoryID:     in.CategoryID,
		Quantity:       in.Quantity,
	}
}

// Input returns the validatable fields of the product.
func (p Product) Input() ProductInput {
	return ProductInput{
		Model:          p.Model,
		ManufacturerID: p.ManufacturerID,
		CategoryID:     p.CategoryID,
		Quantity:       p.Quantity,
	}
}
