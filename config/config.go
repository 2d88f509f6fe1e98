package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"custodial-voucher/internal/core/domain"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Vault     VaultConfig     `mapstructure:"vault"`
	Signer    SignerConfig    `mapstructure:"signer"`
	Voucher   VoucherConfig   `mapstructure:"voucher"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
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
	Migrate         bool          `mapstructure:"migrate"` // run embedded migrations at startup
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// Namespace prepended to every lock and rate-limit key.
	KeyPrefix string `mapstructure:"key_prefix"`
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

// VaultConfig holds the symmetric key protecting custodial private keys.
type VaultConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256-GCM
}

// SignerConfig holds the admin voucher signing key.
type SignerConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex seed or 25-word Algorand mnemonic
}

type VoucherConfig struct {
	ExpiryDays    int           `mapstructure:"expiry_days"`
	IssueAttempts int           `mapstructure:"issue_attempts"`
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
}

// RateLimitConfig holds per-group request limits. Enforced only with Redis.
type RateLimitConfig struct {
	Enabled   bool      `mapstructure:"enabled"`
	Issue     LimitRule `mapstructure:"issue"`
	Provision LimitRule `mapstructure:"provision"`
	Check     LimitRule `mapstructure:"check"`
}

type LimitRule struct {
	Limit  int64         `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate enforces the startup-fatal conditions. Every failure wraps
// domain.ErrConfiguration; key values are never echoed back.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Vault.Key) == "" {
		errs = append(errs, errors.New("vault.key is not set"))
	}
	if strings.TrimSpace(c.Signer.Key) == "" {
		errs = append(errs, errors.New("signer.key is not set"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is not set"))
	}
	if c.Voucher.ExpiryDays <= 0 {
		errs = append(errs, fmt.Errorf("voucher.expiry_days must be positive, got %d", c.Voucher.ExpiryDays))
	}
	if c.Voucher.IssueAttempts <= 0 {
		errs = append(errs, fmt.Errorf("voucher.issue_attempts must be positive, got %d", c.Voucher.IssueAttempts))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrConfiguration, errors.Join(errs...))
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CVS_ (Custodial Voucher Service).
// Nested keys use underscore: CVS_DATABASE_HOST, CVS_SIGNER_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "custodial_vouchers")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.migrate", true)
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "cvs:")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "custodial-voucher")
	v.SetDefault("vault.key", "")
	v.SetDefault("signer.key", "")
	v.SetDefault("voucher.expiry_days", 7)
	v.SetDefault("voucher.issue_attempts", 3)
	v.SetDefault("voucher.lock_ttl", "5s")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.issue.limit", 30)
	v.SetDefault("ratelimit.issue.window", "1m")
	v.SetDefault("ratelimit.provision.limit", 5)
	v.SetDefault("ratelimit.provision.window", "1h")
	v.SetDefault("ratelimit.check.limit", 120)
	v.SetDefault("ratelimit.check.window", "1m")
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

	v.SetEnvPrefix("CVS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing file is fine; env vars can carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
