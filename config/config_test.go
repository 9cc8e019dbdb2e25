package config_test

import (
	"fieldserve/config"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Lock.Driver)
	assert.Equal(t, 48*time.Hour, cfg.Booking.RescheduleResponseWindow)
	assert.Equal(t, "INV-{YYYY}{MM}-{SEQ6}", cfg.Billing.InvoiceNumberTemplate)
	assert.Equal(t, "5432", cfg.DB.Postgres.Write.Port)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("BOOKING_RESCHEDULE_RESPONSE_WINDOW", "24h")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "primary.db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 24*time.Hour, cfg.Booking.RescheduleResponseWindow)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "primary.db", cfg.DB.Postgres.Write.Host)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown env", "SERVER_ENV", "qa"},
		{"unknown lock driver", "LOCK_DRIVER", "etcd"},
		{"tax rate not numeric", "BILLING_STATUTORY_TAX_RATE", "eighteen"},
		{"template without sequence", "BILLING_INVOICE_NUMBER_TEMPLATE", "INV-{YYYY}"},
		{"zero reschedule window", "BOOKING_RESCHEDULE_RESPONSE_WINDOW", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestPostgresNode_DSN(t *testing.T) {
	node := config.PostgresNode{
		Host:     "db",
		Port:     "5432",
		Username: "svc",
		Password: "p@ss word",
		Name:     "fieldserve",
		Timezone: "Asia/Kolkata",
		SSLMode:  "disable",
	}

	dsn, err := url.Parse(node.DSN("ci_", url.Values{"x-migrations-table": {"schema_migrations"}}))
	require.NoError(t, err)

	password, _ := dsn.User.Password()
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "db:5432", dsn.Host)
	assert.Equal(t, "/ci_fieldserve", dsn.Path)
	assert.Equal(t, "disable", dsn.Query().Get("sslmode"))
	assert.Equal(t, "Asia/Kolkata", dsn.Query().Get("timezone"))
	assert.Equal(t, "schema_migrations", dsn.Query().Get("x-migrations-table"))
}
