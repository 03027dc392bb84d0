// internal/services/otp_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shopsphere/commerce-backend/internal/cache"
	"github.com/shopsphere/commerce-backend/internal/config"
	"github.com/shopsphere/commerce-backend/internal/utils"
)

// OTPService issues and checks one-time signup codes. Codes live only in
// the cache; a resend overwrites the previous code, so at most one code is
// valid per email at any moment.
type OTPService struct {
	cache         cache.TTLCache
	notifications *NotificationService
	ttl           time.Duration
}

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"otp" validate:"required,len=6"`
}

func NewOTPService(c cache.TTLCache, notifications *NotificationService, cfg config.OTPConfig) *OTPService {
	return &OTPService{
		cache:         c,
		notifications: notifications,
		ttl:           time.Duration(cfg.TTLSeconds) * time.Second,
	}
}

// Send generates a fresh six-digit code for the email, stores it with the
// configured TTL, and mails it.
func (s *OTPService) Send(email string) error {
	email = normalizeEmail(email)

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	s.cache.Set(otpKey(email), code, s.ttl)

	if err := s.notifications.SendOTP(email, code); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	logrus.WithField("email", email).Info("OTP issued")
	return nil
}

// Verify checks the submitted code against the live one. Expired, missing,
// and mismatched codes all fail the same way. A matched code is consumed.
func (s *OTPService) Verify(email, code string) error {
	email = normalizeEmail(email)

	stored, ok := s.cache.Get(otpKey(email))
	if !ok || stored != code {
		return fmt.Errorf("otp invalid or expired: %w", ErrInvalidState)
	}

	s.cache.Delete(otpKey(email))
	return nil
}

func otpKey(email string) string {
	return "otp:" + email
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
