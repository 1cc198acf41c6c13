package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThenListProduct(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	id := mustCreateProduct(r, models.ProductInput{
		Model:          "Phone9",
		ManufacturerID: &manufacturerID,
		CategoryID:     &phonesID,
		Quantity:       10,
	})

	products := listProducts(r)
	require.Len(t, products, 1)
	assert.Equal(t, id, products[0].ID)
	assert.Equal(t, "Phone9", products[0].Model)
	assert.Equal(t, 10, products[0].Quantity)
	assert.False(t, products[0].IsDeleted)
}

func TestCreateProduct_Invalid(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	w := createProduct(r, models.ProductInput{Model: "", Quantity: 1})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["message"], "model is required")
	assert.Empty(t, listProducts(r))
}

func TestCreateProduct_UnknownReferences(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	w := createProduct(r, models.ProductInput{
		Model:          "Ghost",
		ManufacturerID: ptr[int64](42),
		CategoryID:     ptr[int64](43),
		Quantity:       -1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["message"], "quantity cannot be negative")
	assert.Contains(t, resp["message"], "manufacturer 42 does not exist")
	assert.Contains(t, resp["message"], "category 43 does not exist")
}

func TestProduct_RejectsUnsafeValues(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	w := createProduct(r, models.ProductInput{Model: "Phone9\r\nBcc: intruder@elsewhere.test", Quantity: 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "model cannot contain control characters", resp["message"])

	w = doJSON(r, http.MethodPost, "/produits/post", map[string]any{"model": "Phone9", "quantity": 3000000000}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	id := mustCreateProduct(r, models.ProductInput{Model: "Phone9", Quantity: 10})
	w = doJSON(r, http.MethodPatch, "/produit/patch/"+itoa(id), map[string]any{"model": "Phone9\nBcc: intruder@elsewhere.test"}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodPatch, "/produit/patch/"+itoa(id), map[string]any{"quantity": 3000000000}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	products := listProducts(r)
	require.Len(t, products, 1)
	assert.Equal(t, "Phone9", products[0].Model)
	assert.Equal(t, 10, products[0].Quantity)
}

func TestCreateProduct_MalformedBody(t *testing.T) {
	r := newRouter()
	w := doJSON(r, http.MethodPost, "/produits/post", "not an object", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchProduct(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	id := mustCreateProduct(r, models.ProductInput{Model: "Phone9", CategoryID: &phonesID, Quantity: 10})

	w := doJSON(r, http.MethodPatch, "/produit/patch/"+itoa(id), map[string]any{"model": "Phone9 Pro"}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, "Phone9 Pro", updated.Model)
	assert.Equal(t, 10, updated.Quantity)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, phonesID, *updated.CategoryID)

	products := listProducts(r)
	require.Len(t, products, 1)
	assert.Equal(t, "Phone9 Pro", products[0].Model)
}

func TestPatchProduct_ChangesCategory(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	id := mustCreateProduct(r, models.ProductInput{Model: "Tab", CategoryID: &phonesID, Quantity: 3})

	w := doJSON(r, http.MethodPatch, "/produit/patch/"+itoa(id), map[string]any{"categoryId": tabletsID}, false)
	require.Equal(t, http.StatusOK, w.Code)

	products := listProducts(r)
	require.Len(t, products, 1)
	require.NotNil(t, products[0].CategoryID)
	assert.Equal(t, tabletsID, *products[0].CategoryID)
}

func TestPatchProduct_EmptyPatch(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	id := mustCreateProduct(r, models.ProductInput{Model: "Phone9", Quantity: 10})

	w := doJSON(r, http.MethodPatch, "/produit/patch/"+itoa(id), map[string]any{}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, "Phone9", p.Model)
	assert.Equal(t, 10, p.Quantity)
}

func TestPatchProduct_InvalidQuantity(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	id := mustCreateProduct(r, models.ProductInput{Model: "Phone9", Quantity: 10})

	w := doJSON(r, http.MethodPatch, "/produit/patch/"+itoa(id), map[string]any{"quantity": -5}, false)
	require.Equal(t, http.StatusBadRequest, w.Code)

	products := listProducts(r)
	require.Len(t, products, 1)
	assert.Equal(t, 10, products[0].Quantity)
}

func TestPatchProduct_NotFound(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	w := doJSON(r, http.MethodPatch, "/produit/patch/999", map[string]any{"model": "x"}, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteProduct(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	keep := mustCreateProduct(r, models.ProductInput{Model: "Keep", Quantity: 1})
	gone := mustCreateProduct(r, models.ProductInput{Model: "Gone", Quantity: 1})

	w := doJSON(r, http.MethodPatch, "/produit/delete/"+itoa(gone), nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted models.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&deleted))
	assert.True(t, deleted.IsDeleted)

	products := listProducts(r)
	require.Len(t, products, 1)
	assert.Equal(t, keep, products[0].ID)

	// A second delete is still a success.
	w = doJSON(r, http.MethodPatch, "/produit/delete/"+itoa(gone), nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	w := doJSON(r, http.MethodPatch, "/produit/delete/999", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteProduct_InvalidID(t *testing.T) {
	r := newRouter()
	w := doJSON(r, http.MethodPatch, "/produit/delete/abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProducts_Empty(t *testing.T) {
	clearAllProducts()
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/produits", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
