package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/restaurant-erp/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	c, err := config.New[config.Dashboard](filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 8000, c.HTTP.Port)
	require.Equal(t, "info", c.Logger.Level)
	require.Equal(t, "http://billing_service:8000", c.BillingURL)
	require.Equal(t, "http://customer_service:8000", c.CustomerURL)
	require.Equal(t, "http://menu_service:8000", c.MenuURL)
	require.Equal(t, "http://staff_service:8000", c.StaffURL)
	require.Equal(t, 5*time.Second, c.DownstreamTimeout)
}

func TestNew_Billing(t *testing.T) {
	t.Setenv("STORE_DRIVER", config.StoreDriverPostgres)
	t.Setenv("DB_NAME", "bills_test")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	c, err := config.New[config.Billing](filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, config.StoreDriverPostgres, c.Store.Driver)
	require.Equal(t, "bills_test", c.Store.Name)
	require.Empty(t, c.Store.PostgresDBName)
	require.Equal(t, "mongodb://mongo:27017", c.Store.MongoURL)
	require.Equal(t, int32(10), c.Store.PostgresMaxConns)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
	require.Equal(t, "billing.bills", c.Kafka.BillEventsTopic)
}

func TestNew_PostgresDBName(t *testing.T) {
	t.Setenv("STORE_DRIVER", config.StoreDriverPostgres)
	t.Setenv("POSTGRES_DB_NAME", "erp_billing")

	c, err := config.New[config.Billing](filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, "erp_billing", c.Store.PostgresDBName)
	require.Equal(t, "billing_service", c.Store.Name)
}

func TestNew_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MENU_URL=http://localhost:9003\nDOWNSTREAM_TIMEOUT=750ms\n"), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("MENU_URL")
		os.Unsetenv("DOWNSTREAM_TIMEOUT")
	})

	c, err := config.New[config.Dashboard](path)
	require.NoError(t, err)

	require.Equal(t, "http://localhost:9003", c.MenuURL)
	require.Equal(t, 750*time.Millisecond, c.DownstreamTimeout)
}
