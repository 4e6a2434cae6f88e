// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string         `json:"category" gorm:"size:100;index"`
	ImageURL    string         `json:"imageUrl" gorm:"size:512"`
	Quantity    int            `json:"quantity" gorm:"not null;default:0"`
	InStock     bool           `json:"inStock" gorm:"not null;default:false"`
	Featured    bool           `json:"featured" gorm:"not null;default:false;index"`
	Tags        pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"`
}

// Available is the stock level used to bound cart quantities.
func (p *Product) Available() int {
	if p.Quantity < 0 {
		return 0
	}
	return p.Quantity
}
