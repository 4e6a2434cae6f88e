// internal/handlers/order.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/barrelhouse/liquorstore-backend/internal/models"
	"github.com/barrelhouse/liquorstore-backend/internal/services"
	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

type OrderHandler struct {
	orderService   *services.OrderService
	cartService    *services.CartService
	paymentService *services.PaymentService
}

func NewOrderHandler(orderService *services.OrderService, cartService *services.CartService, paymentService *services.PaymentService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		cartService:    cartService,
		paymentService: paymentService,
	}
}

// GET /orders
// With ?orderId= it fetches a single order; otherwise it lists orders,
// scoped to the authenticated user when identity is present.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	if orderIDStr := c.Query("orderId"); orderIDStr != "" {
		orderID, err := uuid.Parse(orderIDStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid order ID")
			return
		}

		order, err := h.orderService.GetOrder(orderID)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				utils.NotFoundResponse(c, "Order")
				return
			}
			utils.InternalErrorResponse(c, err)
			return
		}

		utils.SuccessResponse(c, order)
		return
	}

	params := services.OrderListParams{
		PaginationParams: utils.GetPaginationParams(c),
	}
	if userID, ok := utils.GetUserIDFromContext(c); ok {
		params.UserID = userID
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

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		userID = models.LegacyUserID
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "Product")
		case strings.Contains(err.Error(), "insufficient stock"),
			strings.Contains(err.Error(), "total mismatch"),
			strings.Contains(err.Error(), "validation"):
			utils.BadRequestResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	// Clear the session cart; a failed order above leaves it intact for
	// retry.
	if sessionID := c.GetHeader(SessionHeader); sessionID != "" {
		if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
			logrus.WithError(err).WithField("session_id", sessionID).Warn("failed to clear cart after checkout")
		}
	}

	utils.CreatedResponse(c, gin.H{"order_id": order.ID})
}

// POST /checkout/payment-intent
func (h *OrderHandler) CreatePaymentIntent(c *gin.Context) {
	var req services.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	intent, err := h.paymentService.CreatePaymentIntent(&req)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "Order")
		case strings.Contains(err.Error(), "not payable"),
			strings.Contains(err.Error(), "not configured"):
			utils.BadRequestResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	utils.SuccessResponse(c, intent)
}
