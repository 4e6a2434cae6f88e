// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/barrelhouse/liquorstore-backend/internal/events"
	"github.com/barrelhouse/liquorstore-backend/internal/models"
	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

// totalTolerance absorbs float rounding between client and server; any
// larger disagreement rejects the order.
const totalTolerance = 0.01

type OrderService struct {
	db       *gorm.DB
	producer *events.Producer
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Name      string    `json:"name"`
	Price     float64   `json:"price" validate:"gte=0"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	ImageURL  string    `json:"imageUrl"`
}

type ShippingAddressRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" validate:"required,min=1,dive"`
	Total           *float64               `json:"total,omitempty"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" validate:"required"`
}

type OrderListParams struct {
	utils.PaginationParams
	UserID     string
	Status     *models.OrderStatus
	Date       *time.Time
	SearchTerm string
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

func NewOrderService(db *gorm.DB, producer *events.Producer) *OrderService {
	return &OrderService{db: db, producer: producer}
}

// ComputeOrderTotal is the authoritative total: the sum of line totals
// over the snapshot prices.
func ComputeOrderTotal(items []OrderItemRequest) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CreateOrder places an order from cart item snapshots. The total is
// recomputed server-side and a disagreeing client total is rejected; the
// earlier system trusted the caller. Stock for every line is decremented
// in the same transaction with a conditional update, so two checkouts
// cannot both take the last bottle.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, req *CreateOrderRequest) (*models.Order, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	total := ComputeOrderTotal(req.Items)
	if req.Total != nil && math.Abs(*req.Total-total) > totalTolerance {
		return nil, fmt.Errorf("order total mismatch: got %.2f, expected %.2f", *req.Total, total)
	}

	order := &models.Order{
		UserID: userID,
		Total:  total,
		Status: models.OrderStatusPending,
		ShippingAddress: models.ShippingAddress{
			Name:       req.ShippingAddress.Name,
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			State:      req.ShippingAddress.State,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product not found: %s", item.ProductID)
				}
				return fmt.Errorf("database error: %w", err)
			}

			// Conditional decrement; zero rows means another checkout
			// got there first or stock was never sufficient.
			result := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				Updates(map[string]interface{}{
					"quantity": gorm.Expr("quantity - ?", item.Quantity),
					"in_stock": gorm.Expr("quantity - ? > 0", item.Quantity),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update inventory: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("insufficient stock for %s", product.Name)
			}

			name := item.Name
			if name == "" {
				name = product.Name
			}
			imageURL := item.ImageURL
			if imageURL == "" {
				imageURL = product.ImageURL
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Name:      name,
				Price:     item.Price,
				Quantity:  item.Quantity,
				ImageURL:  imageURL,
			})
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if err := s.producer.PublishOrderEvent(ctx, events.TypeOrderCreated, order); err != nil {
		// Event delivery is best effort; the order is already durable.
		logrus.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event")
	}

	return order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) ListOrders(params OrderListParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	if params.UserID != "" {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Date != nil {
		dayStart := params.Date.Truncate(24 * time.Hour)
		query = query.Where("created_at >= ? AND created_at < ?", dayStart, dayStart.Add(24*time.Hour))
	}
	if params.SearchTerm != "" {
		query = query.Where("CAST(id AS TEXT) ILIKE ?", "%"+params.SearchTerm+"%")
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = utils.ApplyPagination(query.Order("created_at DESC"), params.PaginationParams)

	var orders []models.Order
	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// SetStatus moves an order along the fulfillment workflow. Transitions
// outside the workflow are rejected; the earlier system wrote the field
// unchecked. Cancelling does not restock items, matching the earlier
// behavior.
func (s *OrderService) SetStatus(ctx context.Context, id uuid.UUID, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("invalid order status: %s", newStatus)
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("order not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		if order.Status == newStatus {
			return nil
		}

		if !order.Status.CanTransition(newStatus) {
			return fmt.Errorf("illegal status transition: %s -> %s", order.Status, newStatus)
		}

		if err := tx.Model(&order).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		order.Status = newStatus
		return nil
	})

	if err != nil {
		return nil, err
	}

	if err := s.producer.PublishOrderEvent(ctx, events.TypeOrderStatusChanged, &order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event")
	}

	return &order, nil
}
