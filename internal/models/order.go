// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// LegacyUserID marks orders placed before user identity was recorded.
const LegacyUserID = "legacy_user"

type ShippingAddress struct {
	Name       string `json:"name" gorm:"column:shipping_name;size:255"`
	Address    string `json:"address" gorm:"column:shipping_address;size:512"`
	City       string `json:"city" gorm:"column:shipping_city;size:100"`
	State      string `json:"state,omitempty" gorm:"column:shipping_state;size:100"`
	PostalCode string `json:"postalCode" gorm:"column:shipping_postal_code;size:20"`
	Country    string `json:"country" gorm:"column:shipping_country;size:100"`
}

// OrderItem is an immutable snapshot of a cart line taken at checkout.
// Product rows may change or disappear afterwards; the snapshot does not.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	ImageURL  string    `json:"imageUrl" gorm:"size:512"`
}

func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

type Order struct {
	BaseModel
	UserID          string      `json:"userId" gorm:"size:255;index"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total           float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	ShippingAddress `json:"shippingAddress" gorm:"embedded"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
}
