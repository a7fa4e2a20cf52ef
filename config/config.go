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
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Mangopay  MangopayConfig  `mapstructure:"mangopay"`
	Blob      BlobConfig      `mapstructure:"blob"`
	Sync      SyncConfig      `mapstructure:"sync"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	AES       AESConfig       `mapstructure:"aes"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
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

// MangopayConfig holds the payment processor API credentials.
type MangopayConfig struct {
	ClientID   string        `mapstructure:"client_id"`
	Passphrase string        `mapstructure:"passphrase"`
	Sandbox    bool          `mapstructure:"sandbox"`
	BaseURL    string        `mapstructure:"base_url"` // overrides the sandbox/production default
	Timeout    time.Duration `mapstructure:"timeout"`
}

const (
	sandboxBaseURL    = "https://api.sandbox.mangopay.com"
	productionBaseURL = "https://api.mangopay.com"
)

// Endpoint returns the API root, honouring an explicit BaseURL first.
func (m MangopayConfig) Endpoint() string {
	if m.BaseURL != "" {
		return strings.TrimRight(m.BaseURL, "/")
	}
	if m.Sandbox {
		return sandboxBaseURL
	}
	return productionBaseURL
}

type BlobConfig struct {
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	MaxPageBytes int64         `mapstructure:"max_page_bytes"`
}

// SyncConfig controls per-record serialization of lifecycle operations.
type SyncConfig struct {
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
	Timezone string        `mapstructure:"timezone"` // execution dates are converted to this location
}

// Location resolves Timezone, falling back to UTC.
func (s SyncConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RateLimitConfig caps ops API calls per operator and minute. Calls that
// reach the processor are budgeted separately from local registrations.
type RateLimitConfig struct {
	Enabled     bool  `mapstructure:"enabled"`
	RemoteWrite int64 `mapstructure:"remote_write"`
	RemoteRead  int64 `mapstructure:"remote_read"`
	Local       int64 `mapstructure:"local"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for bank account fields
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MPS_ (MangoPay Sync).
// Nested keys use underscore: MPS_DATABASE_HOST, MPS_MANGOPAY_CLIENT_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "mangopay_sync")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("mangopay.client_id", "")
	v.SetDefault("mangopay.passphrase", "")
	v.SetDefault("mangopay.sandbox", true)
	v.SetDefault("mangopay.base_url", "")
	v.SetDefault("mangopay.timeout", "30s")
	v.SetDefault("blob.fetch_timeout", "20s")
	v.SetDefault("blob.max_page_bytes", 10<<20)
	v.SetDefault("sync.lock_ttl", "2m")
	v.SetDefault("sync.timezone", "UTC")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.remote_write", 30)
	v.SetDefault("ratelimit.remote_read", 120)
	v.SetDefault("ratelimit.local", 300)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "1h")
	v.SetDefault("jwt.issuer", "mangopay-sync")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MPS_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
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
