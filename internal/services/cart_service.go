// internal/services/cart_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barrelhouse/liquorstore-backend/internal/cart"
)

// CartService ties the session cart ledger to the catalog so additions are
// bounded by the stock known at add time.
type CartService struct {
	store   cart.Store
	catalog *CatalogService
}

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartService(store cart.Store, catalog *CatalogService) *CartService {
	return &CartService{store: store, catalog: catalog}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*cart.Cart, error) {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := c.AddItem(product, quantity); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return c, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*cart.Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return c, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*cart.Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

// Clear empties the session cart; invoked after a successful checkout.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
