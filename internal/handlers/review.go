// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopsphere/commerce-backend/internal/services"
	"github.com/shopsphere/commerce-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GET /api/v1/products/:id/reviews
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByProduct(productID)
	if err != nil {
		handleServiceError(c, err, "Product")
		return
	}

	utils.SuccessResponse(c, reviews)
}

// POST /api/v1/products/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	productID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	review, err := h.reviewService.Create(userID, productID, &req)
	if err != nil {
		handleServiceError(c, err, "Product")
		return
	}

	utils.CreatedResponse(c, review)
}
