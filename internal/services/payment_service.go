// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/barrelhouse/liquorstore-backend/internal/config"
	"github.com/barrelhouse/liquorstore-backend/internal/models"
)

type PaymentService struct {
	config *config.Config
	orders *OrderService
}

type CreatePaymentIntentRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
}

// amountInCents converts a dollar total to Stripe's integer cents.
// Rounding, not truncation: 19.99 must become 1999, not 1998.
func amountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

func NewPaymentService(cfg *config.Config, orders *OrderService) *PaymentService {
	// Initialize Stripe
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{
		config: cfg,
		orders: orders,
	}
}

// CreatePaymentIntent opens a Stripe payment for a pending order. The
// amount always comes from the stored order total, never from the client.
func (s *PaymentService) CreatePaymentIntent(req *CreatePaymentIntentRequest) (*PaymentIntentResponse, error) {
	if s.config.Payment.StripeSecretKey == "" {
		return nil, errors.New("payments are not configured")
	}

	order, err := s.orders.GetOrder(req.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("order is not payable in status %s", order.Status)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents(order.Total)),
		Currency: stripe.String(s.config.Payment.Currency),
	}
	params.AddMetadata("order_id", order.ID.String())
	if order.UserID != "" {
		params.AddMetadata("user_id", order.UserID)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Status:       string(pi.Status),
	}, nil
}
