// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopsphere/commerce-backend/internal/models"
)

type UserService struct {
	db *gorm.DB
}

type UpdateProfileRequest struct {
	Street  *string    `json:"street" validate:"omitempty,max=255"`
	City    *string    `json:"city" validate:"omitempty,max=100"`
	State   *string    `json:"state" validate:"omitempty,max=100"`
	Pincode *string    `json:"pincode" validate:"omitempty,len=6,numeric"`
	Phone   *string    `json:"phone" validate:"omitempty,len=10,numeric"`
	Image   *string    `json:"image" validate:"omitempty,max=500"`
	DOB     *time.Time `json:"dob"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile returns the user's profile, creating an empty one on first
// access.
func (s *UserService) GetProfile(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	profile = models.UserProfile{UserID: userID}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile applies a partial update; only the fields present in the
// request change.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Street != nil {
		updates["street"] = *req.Street
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Pincode != nil {
		updates["pincode"] = *req.Pincode
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.DOB != nil {
		updates["dob"] = *req.DOB
	}

	if len(updates) == 0 {
		return profile, nil
	}

	if err := s.db.Model(profile).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(userID)
}
