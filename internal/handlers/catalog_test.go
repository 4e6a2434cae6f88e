// internal/handlers/catalog_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The empty-query check happens before the service is touched, so a nil
// service is fine here.
func newSearchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(nil)
	r := gin.New()
	r.GET("/products/search", handler.SearchProducts)
	return r
}

func TestSearchProductsRequiresQuery(t *testing.T) {
	r := newSearchRouter()

	for _, target := range []string{"/products/search", "/products/search?q=", "/products/search?q=%20%20"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", target, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, target)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Search query is required", body["error"])
	}
}

func TestGetProductRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(nil)
	r := gin.New()
	r.GET("/products/:id", handler.GetProduct)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/products/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid product ID", body["error"])
}
