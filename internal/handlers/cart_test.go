// internal/handlers/cart_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrelhouse/liquorstore-backend/internal/cart"
	"github.com/barrelhouse/liquorstore-backend/internal/services"
)

// The catalog is only consulted when adding items, so GetCart paths can run
// against the in-memory store alone.
func newCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := cart.NewMemoryStore(time.Hour)
	handler := NewCartHandler(services.NewCartService(store, nil))
	r := gin.New()
	r.GET("/cart", handler.GetCart)
	r.DELETE("/cart", handler.ClearCart)
	return r
}

func TestGetCartGeneratesSession(t *testing.T) {
	r := newCartRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)

	sessionID := w.Header().Get(SessionHeader)
	require.NotEmpty(t, sessionID)
	_, err := uuid.Parse(sessionID)
	assert.NoError(t, err)

	var body struct {
		SessionID string      `json:"session_id"`
		Items     []cart.Item `json:"items"`
		Total     float64     `json:"total"`
		ItemCount int         `json:"item_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, sessionID, body.SessionID)
	assert.Empty(t, body.Items)
	assert.Zero(t, body.Total)
}

func TestGetCartEchoesProvidedSession(t *testing.T) {
	r := newCartRouter()
	sessionID := uuid.NewString()

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set(SessionHeader, sessionID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionID, w.Header().Get(SessionHeader))
}

func TestClearCartAcks(t *testing.T) {
	r := newCartRouter()

	req := httptest.NewRequest("DELETE", "/cart", nil)
	req.Header.Set(SessionHeader, uuid.NewString())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}
