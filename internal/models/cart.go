// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// Cart is created lazily on first access. The owner is nullable so
// anonymous carts remain representable; orders keep a back-link to the
// cart row, which survives checkout (only its items are deleted).
type Cart struct {
	BaseModel
	UserID *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`

	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

type CartItem struct {
	BaseModel
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int       `json:"quantity" gorm:"not null"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// LineTotal is quantity times the discount-aware unit price.
func (ci *CartItem) LineTotal() float64 {
	return float64(ci.Quantity) * ci.Product.UnitPrice()
}
