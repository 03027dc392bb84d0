// internal/services/wishlist_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopsphere/commerce-backend/internal/models"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

func (s *WishlistService) List(userID uuid.UUID) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	if err := s.db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	return entries, nil
}

// Add saves a product to the wishlist. A duplicate returns ErrConflict.
func (s *WishlistService) Add(userID, productID uuid.UUID) (*models.Wishlist, error) {
	var product models.Product
	if err := s.db.Select("id").First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("product already wishlisted: %w", ErrConflict)
	}

	entry := &models.Wishlist{UserID: userID, ProductID: productID}
	if err := s.db.Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("product already wishlisted: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create wishlist entry: %w", err)
	}

	return entry, nil
}

func (s *WishlistService) Remove(userID, entryID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.Wishlist{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove wishlist entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("wishlist entry: %w", ErrNotFound)
	}
	return nil
}
