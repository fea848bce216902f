package main

import (
	"context"
	"fmt"
	"time"

	"blaze-custody/config"
	"blaze-custody/internal/adapter/storage/memory"
	pgStorage "blaze-custody/internal/adapter/storage/postgres"
	redisStorage "blaze-custody/internal/adapter/storage/redis"
	"blaze-custody/internal/core/ports"

	"github.com/rs/zerolog"
)

// stores is the set of repositories and stores selected by configuration.
type stores struct {
	secrets     ports.SecretRepository
	credentials ports.CredentialRepository
	sealed      ports.SealedSecretRepository
	keyring     ports.DeviceKeyring
	audit       ports.AuditRepository // nil = log only
	addresses   ports.AddressCache
	nonces      ports.NonceStore
	attempts    ports.AttemptStore
	rateLimit   ports.RateLimitStore
	health      []ports.HealthChecker

	closers []func()
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStores wires the persistent backend first and the redis-backed
// stores second. Anything not configured falls back to process memory.
func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	s := &stores{
		secrets:     memory.NewSecretRepo(),
		credentials: memory.NewCredentialRepo(),
		sealed:      memory.NewSealedSecretRepo(),
		keyring:     memory.NewKeyring(),
		addresses:   memory.NewAddressCache(),
		nonces:      memory.NewNonceStore(time.Now),
		attempts:    memory.NewAttemptStore(time.Now),
		rateLimit:   memory.NewRateLimitStore(time.Now),
	}

	if cfg.Storage.Backend == "memory" {
		log.Warn().Msg("Ephemeral storage: the wallet, its password record and biometric enrollment are lost on restart")
	}

	if cfg.Storage.Backend == "postgres" {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		s.closers = append(s.closers, pool.Close)

		if err := pgStorage.Migrate(ctx, pool); err != nil {
			s.Close()
			return nil, err
		}
		log.Info().Msg("PostgreSQL connected and migrated")

		s.secrets = pgStorage.NewSecretRepo(pool)
		s.credentials = pgStorage.NewCredentialRepo(pool)
		s.sealed = pgStorage.NewSealedSecretRepo(pool)
		s.keyring = pgStorage.NewKeyring(pool)
		log.Warn().Msg("Device key is stored next to the sealed secret; biometric sealing is not hardware-backed")
		s.audit = pgStorage.NewAuditRepository(pool)
		s.health = append(s.health, pgStorage.NewHealthCheck(pool))
	}

	if cfg.Storage.UseRedis {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		s.closers = append(s.closers, func() { _ = rdb.Close() })
		log.Info().Msg("Redis connected")

		s.addresses = redisStorage.NewAddressCache(rdb)
		s.nonces = redisStorage.NewNonceStore(rdb)
		s.attempts = redisStorage.NewAttemptStore(rdb)
		s.rateLimit = redisStorage.NewRateLimitStore(rdb)
		s.health = append(s.health, redisStorage.NewHealthCheck(rdb))
	}

	return s, nil
}
