// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable snapshot of a checkout. TotalAmount and OrderedAt
// are written once and never recomputed; only Status and RefundStatus may
// change afterwards, through the order workflow.
type Order struct {
	BaseModel
	UserID       uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	CartID       *uuid.UUID   `json:"cart_id" gorm:"type:uuid"`
	TotalAmount  float64      `json:"total_amount" gorm:"type:decimal(10,2);not null;<-:create"`
	Address      string       `json:"address" gorm:"type:text;not null;<-:create"`
	Payment      string       `json:"payment" gorm:"size:100;<-:create"`
	OrderedAt    time.Time    `json:"ordered_at" gorm:"not null;<-:create"`
	Status       OrderStatus  `json:"status" gorm:"type:varchar(20);default:'Pending';index"`
	RefundStatus RefundStatus `json:"refund_status" gorm:"type:varchar(20);default:'Pending'"`

	// Relationships
	User  User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots one cart line at checkout time, including the unit
// price that was charged. Never mutated afterwards.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index;<-:create"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;<-:create"`
	Quantity  int       `json:"quantity" gorm:"not null;<-:create"`
	UnitPrice float64   `json:"unit_price" gorm:"type:decimal(10,2);not null;<-:create"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
