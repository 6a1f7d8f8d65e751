package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"service-food-delivery/internal/config"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	pflag.CommandLine.SetOutput(io.Discard)
	t.Cleanup(func() {
		pflag.CommandLine = old
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"KAFKA_BROKERS", "KAFKA_GROUP_ID", "KAFKA_ORDER_EVENTS_TOPIC", "KAFKA_STATUS_TOPIC",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "ZONE_CACHE_TTL",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_TTL", "RATE_LIMIT_MAX_BUCKETS",
		"JWT_SECRET", "JWT_TTL", "PRICING_TIMEZONE", "PROMO_SWEEP_INTERVAL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)

	require.Equal(t, "127.0.0.1", cfg.DB.Host)
	require.Equal(t, "5432", cfg.DB.Port)
	require.Equal(t, "myuser", cfg.DB.User)
	require.Equal(t, "mypassword", cfg.DB.Pass)
	require.Equal(t, "food_delivery", cfg.DB.Name)

	require.False(t, cfg.Kafka.Enabled())
	require.Equal(t, "orders.events", cfg.Kafka.OrderEventsTopic)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, 5*time.Minute, cfg.Redis.ZoneTTL)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, time.UTC, cfg.Pricing.Location)
	require.Equal(t, time.Minute, cfg.Promotions.SweepInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "service")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("PRICING_TIMEZONE", "Europe/Moscow")
	t.Setenv("PROMO_SWEEP_INTERVAL", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "postgres://u:p@db:15432/service?sslmode=disable", cfg.DB.DSN())
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "redis:6379", cfg.Redis.Addr)
	require.Equal(t, 2, cfg.Redis.DB)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	require.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "Europe/Moscow", cfg.Pricing.Location.String())
	require.Equal(t, 30*time.Second, cfg.Promotions.SweepInterval)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidPostgresPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("POSTGRES_PORT", "not-a-number")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidDurations(t *testing.T) {
	for _, key := range []string{"PROMO_SWEEP_INTERVAL", "ZONE_CACHE_TTL", "JWT_TTL", "RATE_LIMIT_TTL"} {
		t.Run(key, func(t *testing.T) {
			resetFlags(t)
			clearEnv(t)
			t.Setenv(key, "bad-interval")

			cfg, err := config.Load()
			require.Error(t, err)
			require.Nil(t, cfg)
			require.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PRICING_TIMEZONE", "Mars/Olympus")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("RATE_LIMIT_RPS", "-1")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_FlagsParseError(t *testing.T) {
	oldArgs := os.Args
	oldCommandLine := pflag.CommandLine

	defer func() {
		os.Args = oldArgs
		pflag.CommandLine = oldCommandLine
	}()

	clearEnv(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pflag.CommandLine = fs
	os.Args = []string{"cmd", "--port=not-a-number"}

	cfg, err := config.Load()

	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}

func TestDefaults(t *testing.T) {
	require.Equal(t, 8080, config.DefaultPort())
	require.Equal(t, "food_delivery", config.DefaultDB().Name)
	require.Empty(t, config.DefaultKafka().Brokers)
	require.Empty(t, config.DefaultRedis().Addr)
	require.Equal(t, 20, config.DefaultRateLimit().Burst)
	require.NotEmpty(t, config.DefaultAuth().JWTSecret)
	require.Equal(t, time.Minute, config.DefaultPromotions().SweepInterval)
}
