// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverDynamoDB = "dynamodb"
)

var (
	ErrMissingAdminSecret   = errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set")
	ErrUnknownStorageDriver = errors.New("unknown STORAGE_DRIVER")
)

type Config struct {
	HTTP      HTTPConfig
	Storage   StorageConfig
	Admin     AdminConfig
	Captcha   CaptchaConfig
	Messaging MessagingConfig
	Log       LogConfig
}

type HTTPConfig struct {
	Port int
}

type StorageConfig struct {
	Driver   string
	Postgres PostgresConfig
	DynamoDB DynamoDBConfig
}

type PostgresConfig struct {
	URL            string
	MaxConnections int
	MaxIdle        int
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Table           string
	CounterTable    string
}

type AdminConfig struct {
	Password      string
	PasswordHash  string
	SessionSecret string
	SessionTTL    time.Duration
	LoginPath     string
	SecureCookie  bool
}

type CaptchaConfig struct {
	Secret    string
	VerifyURL string
	Timeout   time.Duration
}

type MessagingConfig struct {
	WhatsAppPhone string
	SNSTopicARN   string
	SNSRegion     string
}

type LogConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("storage_driver", StorageDriverPostgres)
	v.SetDefault("database_max_connections", 10)
	v.SetDefault("database_max_idle", 5)
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "local")
	v.SetDefault("aws_secret_access_key", "local")
	v.SetDefault("service_requests_table", "service_requests")
	v.SetDefault("counters_table", "counters")
	v.SetDefault("session_ttl", time.Hour)
	v.SetDefault("login_path", "/login")
	v.SetDefault("secure_cookie", false)
	v.SetDefault("recaptcha_verify_url", "https://www.google.com/recaptcha/api/siteverify")
	v.SetDefault("recaptcha_timeout", 5*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// Load reads the configuration from environment variables (upper-case keys,
// e.g. DATABASE_URL) and validates it.
func Load() (*Config, error) {
	cfg := read()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadStorage is Load for tools that only touch storage; admin settings are
// not required.
func LoadStorage() (*Config, error) {
	cfg := read()
	if err := cfg.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func read() *Config {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		HTTP: HTTPConfig{Port: v.GetInt("port")},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("storage_driver")),
			Postgres: PostgresConfig{
				URL:            v.GetString("database_url"),
				MaxConnections: v.GetInt("database_max_connections"),
				MaxIdle:        v.GetInt("database_max_idle"),
			},
			DynamoDB: DynamoDBConfig{
				Region:          v.GetString("aws_region"),
				Endpoint:        v.GetString("dynamodb_endpoint"),
				AccessKeyID:     v.GetString("aws_access_key_id"),
				SecretAccessKey: v.GetString("aws_secret_access_key"),
				Table:           v.GetString("service_requests_table"),
				CounterTable:    v.GetString("counters_table"),
			},
		},
		Admin: AdminConfig{
			Password:      v.GetString("admin_password"),
			PasswordHash:  v.GetString("admin_password_hash"),
			SessionSecret: v.GetString("session_secret"),
			SessionTTL:    v.GetDuration("session_ttl"),
			LoginPath:     v.GetString("login_path"),
			SecureCookie:  v.GetBool("secure_cookie"),
		},
		Captcha: CaptchaConfig{
			Secret:    v.GetString("recaptcha_secret"),
			VerifyURL: v.GetString("recaptcha_verify_url"),
			Timeout:   v.GetDuration("recaptcha_timeout"),
		},
		Messaging: MessagingConfig{
			WhatsAppPhone: v.GetString("whatsapp_phone"),
			SNSTopicARN:   v.GetString("sns_topic_arn"),
			SNSRegion:     v.GetString("sns_region"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
	}
	if cfg.Messaging.SNSRegion == "" {
		cfg.Messaging.SNSRegion = cfg.Storage.DynamoDB.Region
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return ErrMissingAdminSecret
	}
	if c.Admin.SessionSecret == "" {
		return ErrMissingSessionSecret
	}
	if c.Admin.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	return c.Storage.Validate()
}

func (s StorageConfig) Validate() error {
	switch s.Driver {
	case StorageDriverPostgres:
		if s.Postgres.URL == "" {
			return fmt.Errorf("DATABASE_URL must be set for the postgres driver")
		}
	case StorageDriverDynamoDB:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, s.Driver)
	}
	return nil
}
