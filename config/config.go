package config

import (
	"fieldserve/shared/constant"
	"fmt"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envFile = ".env"

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development" validate:"oneof=development staging production"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5" validate:"gte=0"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"5" validate:"gte=0"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"fieldserve"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"120" validate:"gte=0"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60" validate:"gte=0"`
		} `envconfig:"RATE_LIMITER"`
		// APIKey admits internal callers as the system actor. Empty disables it.
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		// TTL is in seconds.
		TTL int `envconfig:"TTL" default:"300" validate:"gte=0"`
	} `envconfig:"CACHE"`

	Lock struct {
		// Driver is either "redis" or "local". Local only serializes within one process.
		Driver string `envconfig:"DRIVER" default:"redis" validate:"oneof=redis local"`
	} `envconfig:"LOCK"`

	JWT struct {
		AccessSecret string `envconfig:"ACCESS_SECRET"`
		Issuer       string `envconfig:"ISSUER"`
		Audience     string `envconfig:"AUDIENCE"`
		// LeewaySeconds tolerates clock skew against the identity service.
		LeewaySeconds int `envconfig:"LEEWAY_SECONDS" default:"30" validate:"gte=0"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY" default:"5" validate:"gte=1"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			// Prefix is prepended to both database names, e.g. per test run.
			Prefix string `envconfig:"PREFIX"`
			Pool   struct {
				MaxOpen     int           `envconfig:"MAX_OPEN" default:"10"`
				MaxIdle     int           `envconfig:"MAX_IDLE" default:"10"`
				MaxLifetime time.Duration `envconfig:"MAX_LIFETIME" default:"30m"`
			} `envconfig:"POOL"`
			Retry struct {
				MaxAttempts     uint          `envconfig:"MAX_ATTEMPTS" default:"3"`
				InitialInterval time.Duration `envconfig:"INITIAL_INTERVAL" default:"100ms"`
				MaxInterval     time.Duration `envconfig:"MAX_INTERVAL" default:"2s"`
			} `envconfig:"RETRY"`
			Read  PostgresNode `envconfig:"READ"`
			Write PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Billing struct {
		CompanyStateID        string `envconfig:"COMPANY_STATE_ID"`
		StatutoryTaxRate      string `envconfig:"STATUTORY_TAX_RATE" default:"18" validate:"numeric"`
		ServiceCharge         string `envconfig:"SERVICE_CHARGE" default:"0" validate:"numeric"`
		PlatformCharge        string `envconfig:"PLATFORM_CHARGE" default:"0" validate:"numeric"`
		Currency              string `envconfig:"CURRENCY" default:"INR" validate:"len=3"`
		InvoiceNumberTemplate string `envconfig:"INVOICE_NUMBER_TEMPLATE" default:"INV-{YYYY}{MM}-{SEQ6}" validate:"contains={SEQ"`
		CreditNumberTemplate  string `envconfig:"CREDIT_NOTE_NUMBER_TEMPLATE" default:"CN-{YYYY}{MM}-{SEQ6}" validate:"contains={SEQ"`
	} `envconfig:"BILLING"`

	Booking struct {
		RescheduleResponseWindow time.Duration `envconfig:"RESCHEDULE_RESPONSE_WINDOW" default:"48h" validate:"gt=0"`
		AssignLockTTL            time.Duration `envconfig:"ASSIGN_LOCK_TTL" default:"10s" validate:"gt=0"`
		AssignLockWait           time.Duration `envconfig:"ASSIGN_LOCK_WAIT" default:"3s" validate:"gte=0"`
	} `envconfig:"BOOKING"`

	Kafka struct {
		// Brokers left empty turns notifications into a no-op.
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		NotificationTopic string `envconfig:"NOTIFICATION_TOPIC" default:"fieldserve.notifications"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			// BucketName left empty turns document archiving into a no-op.
			BucketName        string `envconfig:"BUCKET_NAME"`
			PublicDomain      string `envconfig:"PUBLIC_DOMAIN"`
			DocumentDirectory string `envconfig:"DOCUMENT_DIRECTORY" default:"billing"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// PostgresNode addresses one side of the read/write split.
type PostgresNode struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// DSN renders a postgres:// URL for the node. extra is merged into the query string.
func (n PostgresNode) DSN(prefix string, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", n.SSLMode)

	if n.Timezone != constant.Empty {
		query.Set("timezone", n.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(n.Username, n.Password),
		Host:     net.JoinHostPort(n.Host, n.Port),
		Path:     prefix + n.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// IsProduction reports whether the server runs with the production profile.
func (c *Config) IsProduction() bool {
	return c.Server.Env == constant.ServerEnvProduction
}

// Validate checks the loaded values against their validate tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// Load reads .env when present, then the environment, then validates.
func Load() (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using the process environment")
	}

	cfg := &Config{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var load = sync.OnceValues(Load)

// Get returns the process-wide configuration, loading it on first use. Startup aborts on error.
func Get() *Config {
	cfg, err := load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	return cfg
}
