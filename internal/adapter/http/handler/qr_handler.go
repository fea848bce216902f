package handler

import (
	"net/http"
	"time"

	"blaze-custody/internal/adapter/http/dto"
	"blaze-custody/internal/adapter/http/middleware"
	"blaze-custody/internal/adapter/qr"
	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
	"blaze-custody/internal/service"
	"blaze-custody/pkg/apperror"
	"blaze-custody/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultQRImageSize = 256
	defaultMaxWait     = 30 * time.Second
)

// QRHandlerConfig tunes image size and long-poll limits.
type QRHandlerConfig struct {
	ImageSize int
	MaxWait   time.Duration
}

// QRHandler serves both sides of the cross-device login: the initiating
// device that renders the code and the unlocked wallet that approves it.
type QRHandler struct {
	broker    ports.LoginBroker
	walletSvc ports.WalletService
	renderer  ports.QRRenderer
	tokenSvc  ports.TokenService
	cfg       QRHandlerConfig
	now       func() time.Time
}

func NewQRHandler(broker ports.LoginBroker, walletSvc ports.WalletService, renderer ports.QRRenderer, tokenSvc ports.TokenService, cfg QRHandlerConfig) *QRHandler {
	if cfg.ImageSize <= 0 {
		cfg.ImageSize = defaultQRImageSize
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = defaultMaxWait
	}
	return &QRHandler{
		broker:    broker,
		walletSvc: walletSvc,
		renderer:  renderer,
		tokenSvc:  tokenSvc,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateSession handles POST /api/v1/qr/sessions. The body is optional.
func (h *QRHandler) CreateSession(c *gin.Context) {
	var req dto.CreateQRSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	dto.SanitizeStruct(&req)

	created, err := h.broker.CreateSession(c.Request.Context(), domain.DeviceInfo{
		Name:      req.DeviceName,
		UserAgent: c.Request.UserAgent(),
		Platform:  req.Platform,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.CreateQRSessionResponse{
		Session:   created.Session,
		QRPayload: created.QRPayload,
	}
	if h.renderer != nil {
		png, err := h.renderer.RenderPNG(created.QRPayload, h.cfg.ImageSize)
		if err != nil {
			h.broker.Release(created.Session.ID)
			response.Error(c, apperror.InternalError(err))
			return
		}
		resp.QRImage = qr.DataURL(png)
	}

	// The payload carries the challenge; keep it out of shared caches.
	c.Header("Cache-Control", "no-store")
	response.Created(c, resp)
}

// Status handles GET /api/v1/qr/sessions/:id.
func (h *QRHandler) Status(c *gin.Context) {
	s, ok := h.broker.CheckStatus(c.Param("id"))
	if !ok {
		response.Error(c, apperror.ErrSessionNotFound())
		return
	}
	response.OK(c, s)
}

// Image handles GET /api/v1/qr/sessions/:id/qr.png for pending sessions.
func (h *QRHandler) Image(c *gin.Context) {
	if h.renderer == nil {
		response.Error(c, apperror.InternalError(errRendererDisabled))
		return
	}

	payload, err := h.broker.QRPayload(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	png, err := h.renderer.RenderPNG(payload, h.cfg.ImageSize)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// Wait handles GET /api/v1/qr/sessions/:id/wait?timeout=20s. It long-polls
// until the session resolves, then returns the session. A session still
// pending when the timeout elapses is returned as-is so the caller can poll
// again.
func (h *QRHandler) Wait(c *gin.Context) {
	timeout := h.cfg.MaxWait
	if raw := c.Query("timeout"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			response.Error(c, apperror.Validation("timeout must be a positive duration"))
			return
		}
		timeout = min(d, h.cfg.MaxWait)
	}

	id := c.Param("id")
	s, err := h.broker.WaitForApproval(c.Request.Context(), id, timeout)
	if err != nil {
		// Client went away.
		c.Abort()
		return
	}
	if s == nil {
		current, ok := h.broker.CheckStatus(id)
		if !ok {
			response.Error(c, apperror.ErrSessionNotFound())
			return
		}
		s = current
	}
	response.OK(c, s)
}

// Approve handles POST /api/v1/qr/approve on the companion device. The
// approving identity is the unlocked wallet's address.
func (h *QRHandler) Approve(c *gin.Context) {
	var req dto.ApproveQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.walletSvc.CurrentWallet()
	if err != nil {
		response.Error(c, err)
		return
	}

	payload, err := service.ParseLoginPayload([]byte(req.Payload), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.broker.ApproveFromPayload(c.Request.Context(), payload, w.Address())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, s)
}

// Reject handles POST /api/v1/qr/sessions/:id/reject.
func (h *QRHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	if !h.broker.Reject(id) {
		response.Error(c, h.notPending(id))
		return
	}
	response.NoContent(c)
}

// Release handles DELETE /api/v1/qr/sessions/:id.
func (h *QRHandler) Release(c *gin.Context) {
	h.broker.Release(c.Param("id"))
	response.NoContent(c)
}

// Token handles POST /api/v1/qr/sessions/:id/token. The initiator proves it
// rendered the code by presenting the challenge and gets a login token.
func (h *QRHandler) Token(c *gin.Context) {
	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	id := c.Param("id")
	s, err := h.broker.Redeem(id, req.Challenge)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, expiresAt, err := h.tokenSvc.Generate(s.Identity, s.ID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	c.Header("Cache-Control", "no-store")
	response.OK(c, dto.TokenResponse{Token: token, ExpiresAt: expiresAt, Identity: s.Identity})
}

// WhoAmI handles GET /api/v1/session for holders of a login token.
func (h *QRHandler) WhoAmI(c *gin.Context) {
	response.OK(c, dto.WhoAmIResponse{
		Identity:  c.GetString(middleware.CtxIdentity),
		SessionID: c.GetString(middleware.CtxSessionID),
	})
}

func (h *QRHandler) notPending(id string) error {
	s, ok := h.broker.CheckStatus(id)
	if !ok {
		return apperror.ErrSessionNotFound()
	}
	switch s.Status {
	case domain.LoginStatusExpired:
		return apperror.ErrSessionExpired()
	case domain.LoginStatusRejected:
		return apperror.ErrSessionRejected()
	default:
		return apperror.ErrSessionNotPending()
	}
}
