package handler

import (
	"time"

	"blaze-custody/internal/adapter/http/middleware"
	"blaze-custody/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	Broker         ports.LoginBroker
	Renderer       ports.QRRenderer // nil = no QR images, payload only
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = route audit disabled
	Logger         zerolog.Logger
	Mode           string // gin mode; defaults to release
	QRImageSize    int
	MaxWait        time.Duration
	AllowedOrigins []string // browser origins allowed to change state
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}
	activity := middleware.TrackActivity(deps.WalletSvc)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.OriginGuard(deps.AllowedOrigins, deps.Logger), middleware.RequireJSON())

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := v1.Group("/wallet")
	{
		wallet.POST("/generate", rl("wallet_write"), walletHandler.Generate)
		wallet.POST("/import", rl("wallet_write"), walletHandler.Import)
		wallet.POST("/password", rl("wallet_write"), walletHandler.SetPassword)
		wallet.PUT("/password", rl("wallet_unlock"), activity, walletHandler.ChangePassword)
		wallet.POST("/unlock", rl("wallet_unlock"), walletHandler.Unlock)
		wallet.POST("/unlock/biometric", rl("wallet_unlock"), walletHandler.UnlockBiometric)
		wallet.POST("/lock", walletHandler.Lock)
		wallet.GET("/state", walletHandler.State)
		wallet.POST("/activity", walletHandler.Activity)
		wallet.POST("/sign", rl("wallet_write"), activity, walletHandler.Sign)
	}

	biometricHandler := NewBiometricHandler(deps.WalletSvc)
	biometric := v1.Group("/biometric")
	{
		biometric.GET("/capabilities", biometricHandler.Capabilities)
		biometric.POST("/enable", rl("biometric"), biometricHandler.Enable)
		biometric.DELETE("", rl("biometric"), biometricHandler.Disable)
	}

	qrHandler := NewQRHandler(deps.Broker, deps.WalletSvc, deps.Renderer, deps.TokenSvc, QRHandlerConfig{
		ImageSize: deps.QRImageSize,
		MaxWait:   deps.MaxWait,
	})
	qrGroup := v1.Group("/qr")
	{
		qrGroup.POST("/sessions", rl("qr_create"), qrHandler.CreateSession)
		qrGroup.GET("/sessions/:id", qrHandler.Status)
		qrGroup.GET("/sessions/:id/qr.png", qrHandler.Image)
		qrGroup.GET("/sessions/:id/wait", qrHandler.Wait)
		qrGroup.GET("/sessions/:id/ws", qrHandler.Watch)
		qrGroup.POST("/sessions/:id/reject", rl("qr_approve"), qrHandler.Reject)
		qrGroup.DELETE("/sessions/:id", qrHandler.Release)
		qrGroup.POST("/sessions/:id/token", rl("qr_token"), qrHandler.Token)
		qrGroup.POST("/approve", rl("qr_approve"), activity, qrHandler.Approve)
	}

	// --- Login-token authenticated ---
	v1.GET("/session", middleware.JWTAuth(deps.TokenSvc, deps.Logger), qrHandler.WhoAmI)

	return r
}
