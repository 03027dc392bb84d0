// internal/services/notification_service.go
package services

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/shopsphere/commerce-backend/internal/config"
	"github.com/shopsphere/commerce-backend/internal/models"
)

type NotificationService struct {
	config *config.Config
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{
		config: config,
	}
}

// Order notifications

func (s *NotificationService) SendOrderConfirmation(user *models.User, order *models.Order) error {
	subject := fmt.Sprintf("Order Confirmation - Order #%s", order.ID)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for shopping with us!\n\n"+
			"Here are your order details:\n"+
			"Order ID: %s\n"+
			"Order Date: %s\n"+
			"Total Amount: %.2f\n"+
			"Shipping Address: %s\n\n"+
			"We will notify you once your order is shipped.\n\n"+
			"If you have any questions, feel free to contact us at %s.\n\n"+
			"Best Regards,\n"+
			"The %s Team",
		user.Username,
		order.ID,
		order.OrderedAt.Format("2006-01-02 15:04:05"),
		order.TotalAmount,
		order.Address,
		s.config.Email.FromEmail,
		s.config.Email.SiteName,
	)

	return s.sendEmail(user.Email, subject, body)
}

func (s *NotificationService) SendMerchantAlert(user *models.User, order *models.Order) error {
	if s.config.Email.MerchantEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("New Order Received - Order #%s", order.ID)
	body := fmt.Sprintf(
		"A new order has been placed on your store.\n\n"+
			"Customer: %s (%s)\n"+
			"Order ID: %s\n"+
			"Total: %.2f\n"+
			"Address: %s\n\n"+
			"Please check your admin dashboard for details.",
		user.Username,
		user.Email,
		order.ID,
		order.TotalAmount,
		order.Address,
	)

	return s.sendEmail(s.config.Email.MerchantEmail, subject, body)
}

func (s *NotificationService) SendOrderCancelled(user *models.User, order *models.Order) error {
	subject := "Order Cancelled"
	body := fmt.Sprintf("Your order #%s has been cancelled.", order.ID)
	return s.sendEmail(user.Email, subject, body)
}

// OTP notifications

func (s *NotificationService) SendOTP(email, code string) error {
	subject := "Your OTP for Signup"
	body := fmt.Sprintf("Your OTP is %s", code)
	return s.sendEmail(email, subject, body)
}

// NotifyCheckout sends the customer confirmation and merchant alert for a
// committed order. It runs after the checkout transaction so a mail outage
// can never roll back an order; failures are logged, not surfaced.
func (s *NotificationService) NotifyCheckout(user *models.User, order *models.Order) {
	if err := s.SendOrderConfirmation(user, order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).
			Error("Failed to send order confirmation email")
	}
	if err := s.SendMerchantAlert(user, order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).
			Error("Failed to send merchant alert email")
	}
}

// Helper methods

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, skipping email")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}
