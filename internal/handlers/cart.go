// internal/handlers/cart.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barrelhouse/liquorstore-backend/internal/cart"
	"github.com/barrelhouse/liquorstore-backend/internal/services"
	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

// SessionHeader carries the browsing-session id for the cart. A missing
// header starts a fresh session; the generated id is echoed back so the
// client can keep it.
const SessionHeader = "X-Session-ID"

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) sessionID(c *gin.Context) string {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(SessionHeader, sessionID)
	return sessionID
}

func cartResponse(c *cart.Cart) gin.H {
	return gin.H{
		"session_id": c.SessionID,
		"items":      c.Items,
		"total":      c.Total(),
		"item_count": c.ItemCount(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.sessionID(c)

	sessionCart, err := h.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, cartResponse(sessionCart))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req services.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sessionCart, err := h.cartService.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "Product")
		case errors.Is(err, cart.ErrOutOfStock), errors.Is(err, cart.ErrInvalidQuantity):
			utils.BadRequestResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, err)
		}
		return
	}

	utils.SuccessResponse(c, cartResponse(sessionCart))
}

// PATCH /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID := h.sessionID(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	var req services.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	sessionCart, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			utils.NotFoundResponse(c, "Cart item")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, cartResponse(sessionCart))
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := h.sessionID(c)

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	sessionCart, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			utils.NotFoundResponse(c, "Cart item")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, cartResponse(sessionCart))
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.sessionID(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.AckResponse(c)
}
