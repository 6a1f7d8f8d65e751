package config

import "time"

const defaultPort = 8080

const defaultLogLevel = "info"

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "food_delivery",
}

var defaultKafka = Kafka{
	GroupID:          "service-orders-worker",
	OrderEventsTopic: "orders.events",
	StatusTopic:      "orders.status",
}

var defaultRedis = Redis{
	Addr:    "",
	DB:      0,
	ZoneTTL: 5 * time.Minute,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultAuth = Auth{
	JWTSecret: "change-me",
	TokenTTL:  24 * time.Hour,
}

const defaultPricingTimezone = "UTC"

var defaultPromotions = Promotions{
	SweepInterval: time.Minute,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings; brokers are empty (Kafka disabled).
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRedis returns the default Redis settings; an empty address disables the zone cache.
func DefaultRedis() Redis {
	return defaultRedis
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultAuth returns the default auth settings.
func DefaultAuth() Auth {
	return defaultAuth
}

// DefaultPromotions returns the default promotion sweeper settings.
func DefaultPromotions() Promotions {
	return defaultPromotions
}
