// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopsphere/commerce-backend/internal/models"
)

type CartService struct {
	db *gorm.DB
}

type CartDetail struct {
	Cart  *models.Cart      `json:"cart"`
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// GetOrCreateCart returns the user's cart, creating it on first access.
func (s *CartService) GetOrCreateCart(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	cart = models.Cart{UserID: &userID}
	if err := s.db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return &cart, nil
}

// AddItem puts a product in the cart. Adding a product already present
// accumulates quantity onto the existing row rather than creating another.
func (s *CartService) AddItem(userID, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrInvalidState)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	cart, err := s.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	}
	// Upsert on the (cart, product) unique index so concurrent adds of the
	// same product still end up on one row.
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	var saved models.CartItem
	if err := s.db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", cart.ID, productID).
		First(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to reload cart item: %w", err)
	}

	return &saved, nil
}

// UpdateItem sets the absolute quantity of a cart line.
func (s *CartService) UpdateItem(userID, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrInvalidState)
	}

	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(item).Update("quantity", quantity).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	item.Quantity = quantity

	return item, nil
}

func (s *CartService) RemoveItem(userID, itemID uuid.UUID) error {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// GetCartDetail returns the cart with its items and the discount-aware
// total across all lines.
func (s *CartService) GetCartDetail(userID uuid.UUID) (*CartDetail, error) {
	cart, err := s.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := s.db.Preload("Product").Preload("Product.Category").
		Where("cart_id = ?", cart.ID).
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	var total float64
	for i := range items {
		total += items[i].LineTotal()
	}

	return &CartDetail{Cart: cart, Items: items, Total: total}, nil
}

// ownedItem fetches a cart item and checks it belongs to the user's cart.
// A foreign item is reported as not found, not forbidden, so ownership is
// not probeable.
func (s *CartService) ownedItem(userID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Preload("Product").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}
