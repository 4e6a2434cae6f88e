// internal/services/catalog_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation runs before any database access, so a nil-DB service covers
// the rejection paths.
func TestUpdateProductRejectsInvalidRequest(t *testing.T) {
	svc := NewCatalogService(nil)

	tooLong := strings.Repeat("x", 300)
	_, err := svc.UpdateProduct(uuid.New(), &UpdateProductRequest{Name: &tooLong})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	negative := -1.0
	_, err = svc.UpdateProduct(uuid.New(), &UpdateProductRequest{Price: &negative})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestSetStockRejectsInvalidRequest(t *testing.T) {
	svc := NewCatalogService(nil)

	_, err := svc.SetStock(uuid.New(), &SetStockRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	negative := -5
	_, err = svc.SetStock(uuid.New(), &SetStockRequest{Quantity: &negative})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateProductRequiresPrice(t *testing.T) {
	svc := NewCatalogService(nil)

	_, err := svc.CreateProduct(&CreateProductRequest{
		Name:        "No Price",
		Description: "missing price field",
		Category:    "Whiskey",
		ImageURL:    "/images/none.jpg",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
