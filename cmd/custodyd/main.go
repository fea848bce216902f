package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blaze-custody/config"
	httpHandler "blaze-custody/internal/adapter/http/handler"
	"blaze-custody/internal/adapter/platform"
	"blaze-custody/internal/adapter/qr"
	"blaze-custody/internal/core/ports"
	"blaze-custody/internal/service"
	"blaze-custody/pkg/logger"

	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Backend).
		Bool("redis", cfg.Storage.UseRedis).
		Int("port", cfg.Server.Port).
		Msg("Starting BLAZE custody daemon")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer stores.Close()

	auditSvc := service.NewAuditService(stores.audit, log)

	var authenticator ports.PlatformAuthenticator = platform.Unavailable{}
	if cfg.Biometric.Authenticator == "software" {
		log.Warn().Msg("Using the software authenticator; biometric unlock is not hardware-backed")
		authenticator = platform.NewSoftware(nil)
	}
	gate := service.NewBiometricGate(authenticator, service.BiometricGateConfig{
		RPID:    cfg.Biometric.RPID,
		RPName:  cfg.Biometric.RPName,
		Timeout: cfg.Biometric.Timeout,
	}, log)
	biometrics := service.NewBiometricSecretStore(gate, stores.credentials, stores.sealed, stores.keyring, log)

	monitor := service.NewActivityMonitor(cfg.Session.IdleTimeout, log)
	walletSvc := service.NewWalletSession(service.WalletSessionDeps{
		Vault:      service.NewMnemonicVault(nil),
		Crypto:     service.NewPasswordCrypto(cfg.KDF.Iterations, cfg.KDF.SaltSize),
		Secrets:    stores.secrets,
		Addresses:  stores.addresses,
		Limiter:    service.NewAttemptLimiter(stores.attempts, cfg.Unlock.MaxAttempts, cfg.Unlock.Window),
		Monitor:    monitor,
		Gate:       gate,
		Biometrics: biometrics,
		Audit:      auditSvc,
	}, log)

	broker := service.NewLoginBroker(service.LoginBrokerConfig{
		TTL:           cfg.QR.TTL,
		PollInterval:  cfg.QR.PollInterval,
		SweepInterval: cfg.QR.SweepInterval,
		Retention:     cfg.QR.Retention,
		OriginURL:     cfg.QR.OriginURL,
	}, stores.nonces, auditSvc, log)

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		// Tokens then only survive until restart.
		jwtSecret, err = randomSecret()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to generate JWT secret")
		}
		log.Warn().Msg("jwt.secret not set, using an ephemeral signing key")
	}
	tokenSvc := service.NewJWTTokenService(jwtSecret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		Broker:         broker,
		Renderer:       qr.NewRenderer(),
		TokenSvc:       tokenSvc,
		RateLimitStore: stores.rateLimit,
		HealthCheckers: stores.health,
		AuditSvc:       auditSvc,
		Logger:         log,
		Mode:           cfg.Server.Mode,
		QRImageSize:    cfg.QR.ImageSize,
		MaxWait:        cfg.QR.MaxWait,
		AllowedOrigins: append([]string{cfg.QR.OriginURL}, cfg.Server.AllowedOrigins...),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return broker.Run(gctx)
	})

	g.Go(func() error {
		return monitor.Run(gctx, cfg.Session.TickInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		// Keys leave memory before the process does.
		walletSvc.Lock(context.Background())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Daemon stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("Daemon exited")
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
