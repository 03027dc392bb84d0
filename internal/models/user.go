// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	IsAdmin      bool       `json:"is_admin" gorm:"default:false"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	// Relationships
	Profile   *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Orders    []Order      `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Reviews   []Review     `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	Wishlists []Wishlist   `json:"wishlists,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

type UserProfile struct {
	BaseModel
	UserID  uuid.UUID  `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Street  string     `json:"street" gorm:"type:text"`
	City    string     `json:"city" gorm:"type:text"`
	State   string     `json:"state" gorm:"type:text"`
	Pincode string     `json:"pincode" gorm:"size:10"`
	Phone   string     `json:"phone" gorm:"size:10"`
	Image   string     `json:"image" gorm:"size:500"`
	DOB     *time.Time `json:"dob"`
}
