package handler

import (
	"blaze-custody/internal/adapter/http/dto"
	"blaze-custody/internal/core/ports"
	"blaze-custody/pkg/apperror"
	"blaze-custody/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes the wallet session controller.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Generate handles POST /api/v1/wallet/generate.
// The phrase is returned once so the user can back it up. The body is
// optional and only carries the reset flag.
func (h *WalletHandler) Generate(c *gin.Context) {
	var req dto.GenerateWalletRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	gen, err := h.walletSvc.Generate(c.Request.Context(), req.Reset)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	response.Created(c, dto.GenerateWalletResponse{
		Mnemonic: gen.Mnemonic,
		Wallet:   dto.NewWalletResponse(gen.Wallet),
	})
}

// Import handles POST /api/v1/wallet/import.
func (h *WalletHandler) Import(c *gin.Context) {
	var req dto.ImportWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.walletSvc.Import(c.Request.Context(), req.Mnemonic, req.Reset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletResponse(w))
}

// SetPassword handles POST /api/v1/wallet/password.
func (h *WalletHandler) SetPassword(c *gin.Context) {
	var req dto.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.walletSvc.SetPassword(c.Request.Context(), req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ChangePassword handles PUT /api/v1/wallet/password.
func (h *WalletHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.walletSvc.ChangePassword(c.Request.Context(), req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Unlock handles POST /api/v1/wallet/unlock.
func (h *WalletHandler) Unlock(c *gin.Context) {
	var req dto.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.walletSvc.UnlockWithPassword(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletResponse(w))
}

// UnlockBiometric handles POST /api/v1/wallet/unlock/biometric.
func (h *WalletHandler) UnlockBiometric(c *gin.Context) {
	w, err := h.walletSvc.UnlockWithBiometric(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWalletResponse(w))
}

// Lock handles POST /api/v1/wallet/lock.
func (h *WalletHandler) Lock(c *gin.Context) {
	h.walletSvc.Lock(c.Request.Context())
	response.NoContent(c)
}

// State handles GET /api/v1/wallet/state.
func (h *WalletHandler) State(c *gin.Context) {
	state, err := h.walletSvc.State(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, state)
}

// Activity handles POST /api/v1/wallet/activity, the UI's heartbeat for
// user input that never reaches the API.
func (h *WalletHandler) Activity(c *gin.Context) {
	h.walletSvc.RecordActivity()
	response.NoContent(c)
}

// Sign handles POST /api/v1/wallet/sign.
func (h *WalletHandler) Sign(c *gin.Context) {
	var req dto.SignMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.walletSvc.CurrentWallet()
	if err != nil {
		response.Error(c, err)
		return
	}

	// A lock racing this request surfaces as WAL_003 from the wiped handle.
	sig, err := w.SignMessage([]byte(req.Message))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSignMessageResponse(w.Address(), sig))
}
