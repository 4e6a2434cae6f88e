// internal/cart/cart.go
package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/barrelhouse/liquorstore-backend/internal/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrItemNotFound    = errors.New("item not in cart")
)

// Item is a cart line with a price snapshot taken when the product was
// added. The snapshot is what ends up on the order, not the live price.
type Item struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	ImageURL  string    `json:"imageUrl"`
}

// Cart is the per-session ledger of candidate purchases. It is created on
// first use and cleared at checkout; it has no life of its own beyond the
// browsing session.
type Cart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(sessionID string) *Cart {
	return &Cart{SessionID: sessionID}
}

// AddItem appends a line for the product, merging into an existing line
// when the product is already present. The stored quantity never exceeds
// the product's stock as known right now; requests beyond it are clamped.
func (c *Cart) AddItem(product *models.Product, quantity int) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}

	available := product.Available()
	if available == 0 {
		return Item{}, ErrOutOfStock
	}

	for i := range c.Items {
		if c.Items[i].ProductID == product.ID {
			merged := c.Items[i].Quantity + quantity
			if merged > available {
				merged = available
			}
			c.Items[i].Quantity = merged
			c.touch()
			return c.Items[i], nil
		}
	}

	if quantity > available {
		quantity = available
	}

	item := Item{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		ImageURL:  product.ImageURL,
	}
	c.Items = append(c.Items, item)
	c.touch()
	return item, nil
}

// UpdateQuantity sets the stored quantity for a line. Zero or negative
// removes the line. Stock is not re-checked here; checkout is the gate.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			c.touch()
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) RemoveItem(productID uuid.UUID) error {
	return c.UpdateQuantity(productID, 0)
}

func (c *Cart) Clear() {
	c.Items = nil
	c.touch()
}

// Total is recomputed on every call; it is never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
