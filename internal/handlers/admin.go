// internal/handlers/admin.go
package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barrelhouse/liquorstore-backend/internal/models"
	"github.com/barrelhouse/liquorstore-backend/internal/services"
	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

type AdminHandler struct {
	catalogService *services.CatalogService
	orderService   *services.OrderService
	reportService  *services.ReportService
}

func NewAdminHandler(catalogService *services.CatalogService, orderService *services.OrderService, reportService *services.ReportService) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		orderService:   orderService,
		reportService:  reportService,
	}
}

// GET /admin/inventory
func (h *AdminHandler) GetInventory(c *gin.Context) {
	params := services.ProductListParams{
		PaginationParams: utils.GetPaginationParams(c),
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

// POST /admin/inventory
func (h *AdminHandler) CreateProduct(c *gin.Context) {
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

	utils.CreatedResponse(c, gin.H{"success": true, "product_id": product.ID})
}

// PATCH /admin/inventory/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.UpdateProduct(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		if strings.Contains(err.Error(), "validation") {
			utils.BadRequestResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "product": product})
}

// PUT /admin/inventory/:id/stock
func (h *AdminHandler) SetStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	var req services.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.SetStock(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "product": product})
}

// DELETE /admin/inventory/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	if err := h.catalogService.DeleteProduct(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.AckResponse(c)
}

// GET /admin/orders
func (h *AdminHandler) GetOrders(c *gin.Context) {
	params := services.OrderListParams{
		PaginationParams: utils.GetPaginationParams(c),
		SearchTerm:       c.Query("searchTerm"),
	}

	if status := c.Query("status"); status != "" && status != "all" {
		orderStatus := models.OrderStatus(status)
		if !orderStatus.Valid() {
			utils.BadRequestResponse(c, "Invalid order status filter")
			return
		}
		params.Status = &orderStatus
	}

	if dateStr := c.Query("dateFilter"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid date filter, expected YYYY-MM-DD")
			return
		}
		params.Date = &date
	}

	orders, total, err := h.orderService.ListOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(total, params.PaginationParams)
	utils.SetPaginationHeaders(c, result)
	utils.SuccessResponse(c, gin.H{
		"orders":      orders,
		"currentPage": result.Page,
		"totalPages":  result.TotalPages,
		"totalOrders": result.Total,
	})
}

// PATCH /admin/orders/:id
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID")
		return
	}

	var req services.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	order, err := h.orderService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "Order")
		case strings.Contains(err.Error(), "illegal status transition"),
			strings.Contains(err.Error(), "invalid order status"):
			utils.BadRequestResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"success": true, "order": order})
}

// GET /admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.reportService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /admin/order-stats
func (h *AdminHandler) GetOrderStats(c *gin.Context) {
	stats, err := h.reportService.GetOrderStats()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}
