// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsForQuery(t, "")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Empty(t, params.Category)
}

func TestGetPaginationParamsClampsInvalidValues(t *testing.T) {
	params := paramsForQuery(t, "page=0&limit=500")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)

	params = paramsForQuery(t, "page=-3&limit=-1")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
}

func TestGetPaginationParamsPassThrough(t *testing.T) {
	params := paramsForQuery(t, "page=3&limit=25&category=Whiskey")
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
	assert.Equal(t, "Whiskey", params.Category)
}

func TestCreatePaginationResultCeilsTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		pages int
	}{
		{total: 0, limit: 10, pages: 0},
		{total: 1, limit: 10, pages: 1},
		{total: 10, limit: 10, pages: 1},
		{total: 11, limit: 10, pages: 2},
		{total: 95, limit: 10, pages: 10},
		{total: 100, limit: 25, pages: 4},
		{total: 101, limit: 25, pages: 5},
	}

	for _, tc := range cases {
		result := CreatePaginationResult(tc.total, PaginationParams{Page: 1, Limit: tc.limit})
		assert.Equal(t, tc.pages, result.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
		assert.Equal(t, tc.total, result.Total)
	}
}
