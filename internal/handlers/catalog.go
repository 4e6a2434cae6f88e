// internal/handlers/catalog.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barrelhouse/liquorstore-backend/internal/services"
	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	params := services.ProductListParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			params.Featured = &featured
		}
	}

	products, total, err := h.catalogService.ListProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(total, params.PaginationParams)
	utils.SetPaginationHeaders(c, result)
	utils.SuccessResponse(c, gin.H{
		"products":      products,
		"currentPage":   result.Page,
		"totalPages":    result.TotalPages,
		"totalProducts": result.Total,
	})
}

// GET /products/search
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		utils.BadRequestResponse(c, "Search query is required")
		return
	}

	products, err := h.catalogService.SearchProducts(query)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"products": products})
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// POST /products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"product_id": product.ID})
}
