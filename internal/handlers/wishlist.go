// internal/handlers/wishlist.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopsphere/commerce-backend/internal/services"
	"github.com/shopsphere/commerce-backend/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

type addWishlistRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// GET /api/v1/wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.wishlistService.List(userID)
	if err != nil {
		handleServiceError(c, err, "Wishlist")
		return
	}

	utils.SuccessResponse(c, entries)
}

// POST /api/v1/wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req addWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	entry, err := h.wishlistService.Add(userID, req.ProductID)
	if err != nil {
		handleServiceError(c, err, "Product")
		return
	}

	utils.CreatedResponse(c, entry)
}

// DELETE /api/v1/wishlist/:id
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.wishlistService.Remove(userID, entryID); err != nil {
		handleServiceError(c, err, "Wishlist entry")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Removed from wishlist"})
}
