// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AuthRequired(), AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	w := doRequest(newProtectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsBadToken(t *testing.T) {
	w := doRequest(newProtectedRouter(), "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredRejectsNonAdmin(t *testing.T) {
	token, err := utils.SignJWT("user-1", "Ada", "customer", time.Hour)
	require.NoError(t, err)

	w := doRequest(newProtectedRouter(), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	token, err := utils.SignJWT("admin-1", "Grace", "admin", time.Hour)
	require.NoError(t, err)

	w := doRequest(newProtectedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthSetsIdentityWhenPresent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders", OptionalAuth(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	token, err := utils.SignJWT("user-7", "Ada", "customer", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")

	// Anonymous requests still pass through.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/orders", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
