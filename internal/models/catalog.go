// internal/models/catalog.go
package models

import (
	"github.com/google/uuid"
)

type Category struct {
	BaseModel
	Name string `json:"name" gorm:"size:50;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:60;not null"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

type Product struct {
	BaseModel
	CategoryID    uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Title         string    `json:"title" gorm:"size:100;not null"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;size:120;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Price         float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	DiscountPrice *float64  `json:"discount_price" gorm:"type:decimal(10,2)"`
	Image         string    `json:"image" gorm:"size:500"`
	Quantity      int       `json:"quantity" gorm:"default:0"`

	// Mean of review ratings, filled by catalog queries; nil when unreviewed.
	AvgRating *float64 `json:"avg_rating" gorm:"->;-:migration"`

	// Relationships
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews  []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

// UnitPrice is the price a buyer actually pays: the discount price when
// one is set, the list price otherwise.
func (p *Product) UnitPrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

type Review struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product;index"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`

	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

type Wishlist struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_product"`

	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
