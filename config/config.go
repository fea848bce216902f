package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	KDF       KDFConfig       `mapstructure:"kdf"`
	Session   SessionConfig   `mapstructure:"session"`
	QR        QRConfig        `mapstructure:"qr"`
	Unlock    UnlockConfig    `mapstructure:"unlock"`
	Biometric BiometricConfig `mapstructure:"biometric"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`            // debug, release, test
	AllowedOrigins []string `mapstructure:"allowed_origins"` // besides qr.origin_url
}

// StorageConfig selects where persisted records live. The memory backend
// loses the wallet on restart, so it must be acknowledged with Ephemeral.
type StorageConfig struct {
	Backend   string `mapstructure:"backend"` // postgres, memory
	Ephemeral bool   `mapstructure:"ephemeral"`
	UseRedis  bool   `mapstructure:"use_redis"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// KDFConfig tunes PBKDF2 and the random parameter sizes used for sealing.
type KDFConfig struct {
	Iterations int `mapstructure:"iterations"`
	SaltSize   int `mapstructure:"salt_size"` // bytes
}

type SessionConfig struct {
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

type QRConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	Retention     time.Duration `mapstructure:"retention"` // terminal sessions kept for late waiters
	OriginURL     string        `mapstructure:"origin_url"`
	ImageSize     int           `mapstructure:"image_size"`
	MaxWait       time.Duration `mapstructure:"max_wait"` // cap for long-poll waits
}

type UnlockConfig struct {
	MaxAttempts int64         `mapstructure:"max_attempts"`
	Window      time.Duration `mapstructure:"window"`
}

type BiometricConfig struct {
	Authenticator string        `mapstructure:"authenticator"` // none, software
	RPID          string        `mapstructure:"rp_id"`
	RPName        string        `mapstructure:"rp_name"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BLZ_.
// Nested keys use underscore: BLZ_KDF_ITERATIONS, BLZ_QR_TTL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8420)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("storage.backend", "postgres")
	v.SetDefault("storage.ephemeral", false)
	v.SetDefault("storage.use_redis", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "blaze_custody")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "blaze-custody")
	v.SetDefault("kdf.iterations", 10000)
	v.SetDefault("kdf.salt_size", 16)
	v.SetDefault("session.idle_timeout", "30m")
	v.SetDefault("session.tick_interval", "1m")
	v.SetDefault("qr.ttl", "5m")
	v.SetDefault("qr.poll_interval", "1s")
	v.SetDefault("qr.sweep_interval", "30s")
	v.SetDefault("qr.retention", "2m")
	v.SetDefault("qr.origin_url", "http://127.0.0.1:8420")
	v.SetDefault("qr.image_size", 256)
	v.SetDefault("qr.max_wait", "30s")
	v.SetDefault("unlock.max_attempts", 3)
	v.SetDefault("unlock.window", "15m")
	v.SetDefault("biometric.authenticator", "none")
	v.SetDefault("biometric.rp_id", "localhost")
	v.SetDefault("biometric.rp_name", "BLAZE Wallet")
	v.SetDefault("biometric.timeout", "60s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BLZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings that would weaken the custody core.
func (c *Config) Validate() error {
	if c.KDF.Iterations < 10000 {
		return fmt.Errorf("kdf.iterations must be at least 10000, got %d", c.KDF.Iterations)
	}
	if c.KDF.SaltSize < 16 {
		return fmt.Errorf("kdf.salt_size must be at least 16 bytes, got %d", c.KDF.SaltSize)
	}
	if c.QR.TTL <= 0 || c.QR.PollInterval <= 0 {
		return fmt.Errorf("qr.ttl and qr.poll_interval must be positive")
	}
	if c.Unlock.MaxAttempts < 1 {
		return fmt.Errorf("unlock.max_attempts must be positive")
	}
	switch c.Biometric.Authenticator {
	case "none", "software":
	default:
		return fmt.Errorf("unknown biometric authenticator %q", c.Biometric.Authenticator)
	}
	switch c.Storage.Backend {
	case "postgres":
	case "memory":
		if !c.Storage.Ephemeral {
			return fmt.Errorf("storage backend \"memory\" loses the wallet on restart, set storage.ephemeral=true to accept that")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
