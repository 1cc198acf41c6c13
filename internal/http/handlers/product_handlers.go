package handlers

import (
	"net/http"

	"github.com/infocomm/inventory-backend/internal/models"
)

// GetProductsHandler godoc
// @Summary List products
// @Description Returns every product that has not been deleted
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {string} string "Internal error"
// @Router /produits [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productService.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Validates and stores a product, returning its identifier
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.ProductInput true "Product to add"
// @Success 200 {integer} int "Product ID"
// @Failure 400 {object} MessageResponse
// @Failure 500 {string} string "Internal error"
// @Router /produits/post [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if err := readJSON(w, r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	id, err := productService.CreateProduct(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

// DeleteProductHandler godoc
// @Summary Soft-delete a product
// @Description Flags the product as deleted; it no longer appears in listings
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /produit/delete/{id} [patch]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productService.SoftDeleteProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// PatchProductHandler godoc
// @Summary Partially update a product
// @Description Only the fields present in the body are changed
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param patch body models.ProductPatch true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {object} MessageResponse
// @Failure 404 "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /produit/patch/{id} [patch]
func PatchProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var patch models.ProductPatch
	if err := readJSON(w, r, &patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := productService.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
