package handler

import (
	"blaze-custody/internal/adapter/http/dto"
	"blaze-custody/internal/core/ports"
	"blaze-custody/pkg/apperror"
	"blaze-custody/pkg/response"

	"github.com/gin-gonic/gin"
)

// BiometricHandler manages biometric enrollment.
type BiometricHandler struct {
	walletSvc ports.WalletService
}

func NewBiometricHandler(walletSvc ports.WalletService) *BiometricHandler {
	return &BiometricHandler{walletSvc: walletSvc}
}

// Capabilities handles GET /api/v1/biometric/capabilities.
func (h *BiometricHandler) Capabilities(c *gin.Context) {
	caps, err := h.walletSvc.BiometricCapabilities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, caps)
}

// Enable handles POST /api/v1/biometric/enable.
func (h *BiometricHandler) Enable(c *gin.Context) {
	var req dto.EnableBiometricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	cred, err := h.walletSvc.EnableBiometric(c.Request.Context(), req.UserID, req.DisplayName, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.BiometricCredentialResponse{ID: cred.ID, CreatedAt: cred.CreatedAt})
}

// Disable handles DELETE /api/v1/biometric.
func (h *BiometricHandler) Disable(c *gin.Context) {
	if err := h.walletSvc.DisableBiometric(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
