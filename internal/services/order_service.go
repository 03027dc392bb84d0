// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopsphere/commerce-backend/internal/models"
)

type OrderService struct {
	db            *gorm.DB
	notifications *NotificationService
}

type CheckoutRequest struct {
	Address string `json:"address" validate:"required"`
}

// forwardTransitions is the fulfilment path. Cancellation is handled
// separately because it is reachable from more than one state.
var forwardTransitions = map[models.OrderStatus]models.OrderStatus{
	models.OrderStatusPending:   models.OrderStatusConfirmed,
	models.OrderStatusConfirmed: models.OrderStatusShipped,
	models.OrderStatusShipped:   models.OrderStatusDelivered,
}

func NewOrderService(db *gorm.DB, notifications *NotificationService) *OrderService {
	return &OrderService{db: db, notifications: notifications}
}

// Checkout converts the user's cart into an order in a single transaction:
// snapshot every line with the unit price charged, compute the total from
// those snapshots, then clear exactly the snapshotted cart lines. An empty
// cart aborts with ErrInvalidState and no rows written. Confirmation
// emails go out after commit and cannot fail the checkout.
func (s *OrderService) Checkout(userID uuid.UUID, req *CheckoutRequest) (*models.Order, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart is empty: %w", ErrInvalidState)
			}
			return fmt.Errorf("database error: %w", err)
		}

		var items []models.CartItem
		if err := tx.Preload("Product").
			Where("cart_id = ?", cart.ID).
			Find(&items).Error; err != nil {
			return fmt.Errorf("failed to fetch cart items: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("cart is empty: %w", ErrInvalidState)
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))
		consumedIDs := make([]uuid.UUID, 0, len(items))
		for i := range items {
			unitPrice := items[i].Product.UnitPrice()
			total += float64(items[i].Quantity) * unitPrice
			orderItems = append(orderItems, models.OrderItem{
				ProductID: items[i].ProductID,
				Quantity:  items[i].Quantity,
				UnitPrice: unitPrice,
			})
			consumedIDs = append(consumedIDs, items[i].ID)
		}

		order = &models.Order{
			UserID:       userID,
			CartID:       &cart.ID,
			TotalAmount:  total,
			Address:      req.Address,
			Payment:      "Confirmed",
			OrderedAt:    time.Now(),
			Status:       models.OrderStatusConfirmed,
			RefundStatus: models.RefundStatusPending,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		order.Items = orderItems

		// Delete only the lines snapshotted above. Anything added to the
		// cart mid-checkout survives for the next order.
		if err := tx.Where("id IN ?", consumedIDs).
			Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.notifications.NotifyCheckout(&user, order)

	return order, nil
}

// Cancel moves an order to Cancelled. Only Pending and Confirmed orders
// can be cancelled; shipped, delivered, and already cancelled orders
// reject with ErrInvalidState.
func (s *OrderService) Cancel(userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.ownedOrder(userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusConfirmed {
		return nil, fmt.Errorf("order is %s: %w", order.Status, ErrInvalidState)
	}

	if err := s.db.Model(order).Update("status", models.OrderStatusCancelled).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}
	order.Status = models.OrderStatusCancelled

	go func() {
		var user models.User
		if err := s.db.First(&user, "id = ?", order.UserID).Error; err != nil {
			return
		}
		if err := s.notifications.SendOrderCancelled(&user, order); err != nil {
			// notification failures never surface to the caller
			return
		}
	}()

	return order, nil
}

// AdvanceStatus moves an order one step along Pending, Confirmed, Shipped,
// Delivered. No step skipping and no movement out of a terminal state.
func (s *OrderService) AdvanceStatus(orderID uuid.UUID, target models.OrderStatus) (*models.Order, error) {
	if !target.Valid() || target == models.OrderStatusCancelled {
		return nil, fmt.Errorf("invalid target status %q: %w", target, ErrInvalidState)
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	next, ok := forwardTransitions[order.Status]
	if !ok || next != target {
		return nil, fmt.Errorf("cannot move %s to %s: %w", order.Status, target, ErrInvalidState)
	}

	if err := s.db.Model(&order).Update("status", target).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = target

	return &order, nil
}

// MarkRefunded records that a cancelled order has been refunded.
func (s *OrderService) MarkRefunded(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.Status != models.OrderStatusCancelled {
		return nil, fmt.Errorf("order is %s, not Cancelled: %w", order.Status, ErrInvalidState)
	}

	if err := s.db.Model(&order).Update("refund_status", models.RefundStatusRefunded).Error; err != nil {
		return nil, fmt.Errorf("failed to mark order refunded: %w", err)
	}
	order.RefundStatus = models.RefundStatusRefunded

	return &order, nil
}

func (s *OrderService) GetOrder(userID, orderID uuid.UUID) (*models.Order, error) {
	return s.ownedOrder(userID, orderID)
}

// OrderHistory lists the user's orders, most recent first.
func (s *OrderService) OrderHistory(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("ordered_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) ownedOrder(userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}
