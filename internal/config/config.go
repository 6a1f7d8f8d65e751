package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port       int
	LogLevel   string
	DB         DB
	Kafka      Kafka
	Redis      Redis
	RateLimit  RateLimit
	Auth       Auth
	Pricing    Pricing
	Promotions Promotions
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores broker and topic settings. Empty Brokers disables Kafka.
type Kafka struct {
	Brokers          []string
	GroupID          string
	OrderEventsTopic string
	StatusTopic      string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// Redis stores zone cache settings. Empty Addr disables the cache.
type Redis struct {
	Addr     string
	Password string
	DB       int
	ZoneTTL  time.Duration
}

// RateLimit stores per-client token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Auth stores token signing settings.
type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Pricing stores the timezone used to decide peak hours and weekends.
type Pricing struct {
	Timezone string
	Location *time.Location
}

// Promotions stores the expiry sweeper settings.
type Promotions struct {
	SweepInterval time.Duration
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       defaultPort,
		LogLevel:   envOr("LOG_LEVEL", defaultLogLevel),
		DB:         loadDB(),
		Redis:      defaultRedis,
		RateLimit:  defaultRateLimit,
		Auth:       defaultAuth,
		Promotions: defaultPromotions,
		Pricing:    Pricing{Timezone: envOr("PRICING_TIMEZONE", defaultPricingTimezone)},
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}

	kafka, err := loadKafka()
	if err != nil {
		return nil, err
	}
	cfg.Kafka = kafka

	if err := loadRedis(&cfg.Redis); err != nil {
		return nil, err
	}
	if err := loadRateLimit(&cfg.RateLimit); err != nil {
		return nil, err
	}
	if err := loadAuth(&cfg.Auth); err != nil {
		return nil, err
	}
	if err := parseDurationEnv("PROMO_SWEEP_INTERVAL", &cfg.Promotions.SweepInterval); err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Pricing.Timezone, "pricing-timezone", cfg.Pricing.Timezone, "IANA timezone for peak hours")
	if err := fs.Parse(cliArgs()); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}
	loc, err := time.LoadLocation(cfg.Pricing.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICING_TIMEZONE %q: %w", cfg.Pricing.Timezone, err)
	}
	cfg.Pricing.Location = loc
	if cfg.Promotions.SweepInterval <= 0 {
		return nil, fmt.Errorf("invalid PROMO_SWEEP_INTERVAL: %s", cfg.Promotions.SweepInterval)
	}
	return cfg, nil
}

func loadDB() DB {
	return DB{
		Host: envOr("POSTGRES_HOST", defaultDB.Host),
		Port: envOr("POSTGRES_PORT", defaultDB.Port),
		User: envOr("POSTGRES_USER", defaultDB.User),
		Pass: envOr("POSTGRES_PASSWORD", defaultDB.Pass),
		Name: envOr("POSTGRES_DB", defaultDB.Name),
	}
}

func loadKafka() (Kafka, error) {
	k := Kafka{
		GroupID:          envOr("KAFKA_GROUP_ID", defaultKafka.GroupID),
		OrderEventsTopic: envOr("KAFKA_ORDER_EVENTS_TOPIC", defaultKafka.OrderEventsTopic),
		StatusTopic:      envOr("KAFKA_STATUS_TOPIC", defaultKafka.StatusTopic),
	}
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			k.Brokers = append(k.Brokers, b)
		}
	}
	if k.Enabled() && k.GroupID == "" {
		return Kafka{}, fmt.Errorf("KAFKA_GROUP_ID must not be empty")
	}
	return k, nil
}

func loadRedis(r *Redis) error {
	r.Addr = envOr("REDIS_ADDR", r.Addr)
	r.Password = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid REDIS_DB %q", v)
		}
		r.DB = n
	}
	return parseDurationEnv("ZONE_CACHE_TTL", &r.ZoneTTL)
}

func loadRateLimit(rl *RateLimit) error {
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		rl.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		rl.Rate = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %q", v)
		}
		rl.Burst = n
	}
	if v := os.Getenv("RATE_LIMIT_MAX_BUCKETS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_MAX_BUCKETS %q", v)
		}
		rl.MaxBuckets = n
	}
	return parseDurationEnv("RATE_LIMIT_TTL", &rl.TTL)
}

func loadAuth(a *Auth) error {
	a.JWTSecret = envOr("JWT_SECRET", a.JWTSecret)
	return parseDurationEnv("JWT_TTL", &a.TokenTTL)
}

func parseDurationEnv(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

// cliArgs drops the -test.* flags injected by the go test binary.
func cliArgs() []string {
	args := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if strings.HasPrefix(a, "-test.") {
			continue
		}
		args = append(args, a)
	}
	return args
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
