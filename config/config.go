package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Academic  AcademicConfig  `mapstructure:"academic"`
	Payment   PaymentConfig   `mapstructure:"payment"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Allocator AllocatorConfig `mapstructure:"allocator"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
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

// AcademicConfig points at the school management API.
type AcademicConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	BasicToken      string        `mapstructure:"basic_token"` // base64 user:pass for Basic auth
	UnitID          string        `mapstructure:"unit_id"`
	DefaultPassword string        `mapstructure:"default_password"` // initial portal password for new students
	Timeout         time.Duration `mapstructure:"timeout"`
}

// PaymentConfig points at the Mercado Pago API.
type PaymentConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	AccessToken   string        `mapstructure:"access_token"`
	WebhookSecret string        `mapstructure:"webhook_secret"`
	BackURL       string        `mapstructure:"back_url"` // where the checkout redirects the payer
	Timeout       time.Duration `mapstructure:"timeout"`
}

type NotifyConfig struct {
	WhatsAppURL       string        `mapstructure:"whatsapp_url"`
	WhatsAppToken     string        `mapstructure:"whatsapp_token"`
	DiscordWebhookURL string        `mapstructure:"discord_webhook_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// AuthConfig configures the operator API.
type AuthConfig struct {
	OperatorUsername string        `mapstructure:"operator_username"`
	OperatorPassword string        `mapstructure:"operator_password"` // argon2id encoded hash
	JWTSecret        string        `mapstructure:"jwt_secret"`
	JWTExpiry        time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer        string        `mapstructure:"jwt_issuer"`
}

type AllocatorConfig struct {
	Prefix      string `mapstructure:"prefix"`
	MaxAttempts int    `mapstructure:"max_attempts"`
	PadWidth    int    `mapstructure:"pad_width"`
}

type CatalogConfig struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	FilePath            string  `mapstructure:"file_path"` // optional YAML course table override
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ENR_.
// Nested keys use underscore: ENR_DATABASE_HOST, ENR_PAYMENT_ACCESS_TOKEN, etc.
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
	v.SetDefault("database.dbname", "enrolld")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("academic.base_url", "")
	v.SetDefault("academic.basic_token", "")
	v.SetDefault("academic.unit_id", "1")
	v.SetDefault("academic.default_password", "123456")
	v.SetDefault("academic.timeout", "10s")
	v.SetDefault("payment.base_url", "https://api.mercadopago.com")
	v.SetDefault("payment.access_token", "")
	v.SetDefault("payment.webhook_secret", "")
	v.SetDefault("payment.back_url", "")
	v.SetDefault("payment.timeout", "10s")
	v.SetDefault("notify.whatsapp_url", "")
	v.SetDefault("notify.whatsapp_token", "")
	v.SetDefault("notify.discord_webhook_url", "")
	v.SetDefault("notify.timeout", "5s")
	v.SetDefault("auth.operator_username", "")
	v.SetDefault("auth.operator_password", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_expiry", "24h")
	v.SetDefault("auth.jwt_issuer", "enrolld")
	v.SetDefault("allocator.prefix", "20254158")
	v.SetDefault("allocator.max_attempts", 100)
	v.SetDefault("allocator.pad_width", 3)
	v.SetDefault("catalog.similarity_threshold", 0.8)
	v.SetDefault("catalog.file_path", "")
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

	// Environment variables: ENR_DATABASE_HOST -> database.host
	v.SetEnvPrefix("ENR")
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

// Validate checks that every collaborator endpoint and credential the pipeline
// depends on is present. Called once at startup; a failure here is fatal.
func (c *Config) Validate() error {
	var missing []string

	if c.Academic.BaseURL == "" {
		missing = append(missing, "academic.base_url")
	}
	if c.Academic.BasicToken == "" {
		missing = append(missing, "academic.basic_token")
	}
	if c.Payment.AccessToken == "" {
		missing = append(missing, "payment.access_token")
	}
	if c.Payment.WebhookSecret == "" {
		missing = append(missing, "payment.webhook_secret")
	}
	if c.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwt_secret")
	}
	if c.Allocator.Prefix == "" {
		missing = append(missing, "allocator.prefix")
	}
	if c.Allocator.MaxAttempts <= 0 {
		missing = append(missing, "allocator.max_attempts")
	}
	if c.Catalog.SimilarityThreshold <= 0 || c.Catalog.SimilarityThreshold > 1 {
		missing = append(missing, "catalog.similarity_threshold")
	}

	if len(missing) > 0 {
		return apperror.ErrConfiguration(strings.Join(missing, ", "))
	}
	return nil
}
