// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopsphere/commerce-backend/internal/models"
	"github.com/shopsphere/commerce-backend/internal/services"
	"github.com/shopsphere/commerce-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

type advanceStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/v1/orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	order, err := h.orderService.Checkout(userID, &req)
	if err != nil {
		handleServiceError(c, err, "Cart")
		return
	}

	utils.CreatedResponse(c, order)
}

// GET /api/v1/orders
func (h *OrderHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.OrderHistory(userID)
	if err != nil {
		handleServiceError(c, err, "Order")
		return
	}

	utils.SuccessResponse(c, orders)
}

// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(userID, orderID)
	if err != nil {
		handleServiceError(c, err, "Order")
		return
	}

	utils.SuccessResponse(c, order)
}

// POST /api/v1/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.Cancel(userID, orderID)
	if err != nil {
		handleServiceError(c, err, "Order")
		return
	}

	utils.SuccessResponse(c, order)
}

// POST /api/v1/admin/orders/:id/advance
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req advanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	order, err := h.orderService.AdvanceStatus(orderID, req.Status)
	if err != nil {
		handleServiceError(c, err, "Order")
		return
	}

	utils.SuccessResponse(c, order)
}

// POST /api/v1/admin/orders/:id/refund
func (h *OrderHandler) MarkRefunded(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.MarkRefunded(orderID)
	if err != nil {
		handleServiceError(c, err, "Order")
		return
	}

	utils.SuccessResponse(c, order)
}
