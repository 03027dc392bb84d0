// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopsphere/commerce-backend/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) ListByProduct(productID uuid.UUID) ([]models.Review, error) {
	if err := s.requireProduct(productID); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

// Create adds a review. One review per user per product; a second attempt
// returns ErrConflict.
func (s *ReviewService) Create(userID, productID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	if err := s.requireProduct(productID); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("product already reviewed: %w", ErrConflict)
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.db.Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("product already reviewed: %w", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) requireProduct(productID uuid.UUID) error {
	var product models.Product
	if err := s.db.Select("id").First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product: %w", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}
