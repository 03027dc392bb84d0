// internal/handlers/otp.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shopsphere/commerce-backend/internal/services"
	"github.com/shopsphere/commerce-backend/internal/utils"
)

type OTPHandler struct {
	otpService *services.OTPService
}

func NewOTPHandler(otpService *services.OTPService) *OTPHandler {
	return &OTPHandler{otpService: otpService}
}

// POST /api/v1/otp/send
//
// Also serves resend: issuing again replaces the previous code.
func (h *OTPHandler) Send(c *gin.Context) {
	var req services.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if err := h.otpService.Send(req.Email); err != nil {
		handleServiceError(c, err, "OTP")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "OTP sent"})
}

// POST /api/v1/otp/verify
func (h *OTPHandler) Verify(c *gin.Context) {
	var req services.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	if err := h.otpService.Verify(req.Email, req.Code); err != nil {
		handleServiceError(c, err, "OTP")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "OTP verified"})
}
