package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"service-food-delivery/internal/cache"
	"service-food-delivery/internal/config"
	"service-food-delivery/internal/http/handlers"
	"service-food-delivery/internal/http/middleware/ratelimit"
	"service-food-delivery/internal/http/router"
	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/metrics"
	"service-food-delivery/internal/repository"
	"service-food-delivery/internal/service/auth"
	"service-food-delivery/internal/service/catalog"
	"service-food-delivery/internal/service/order"
	"service-food-delivery/internal/service/promotion"
	"service-food-delivery/internal/service/statusevents"
	"service-food-delivery/internal/service/zone"
	"service-food-delivery/internal/transport/kafka"
)

const serviceTimeout = 3 * time.Second

type (
	dbConnectFunc    func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)
	redisConnectFunc func(ctx context.Context, addr, password string, db int) (*redis.Client, error)
)

// promoSweepInterval is the period of the expired promotion sweeper.
type promoSweepInterval time.Duration

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect    dbConnectFunc
	redisConnect redisConnectFunc
	migrate      func(dsn string) error
	logFatalf    func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect:    connectDbWithRetry,
		redisConnect: cache.NewClient,
		migrate:      repository.Migrate,
		logFatalf:    log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithRedisConnect sets the Redis connection function
func (b *ContainerBuilder) WithRedisConnect(fn redisConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.redisConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(dsn string) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the Kafka worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	steps := []struct {
		name string
		fn   func(*dig.Container) error
	}{
		{"core", func(c *dig.Container) error { return registerCore(c, ctx) }},
		{"DB", func(c *dig.Container) error { return registerDb(c, b.dbConnect, b.migrate) }},
		{"cache", func(c *dig.Container) error { return registerCache(c, b.redisConnect) }},
		{"metrics", registerMetrics},
		{"kafka", registerProducer},
		{"service", registerDomainServices},
		{"http", registerHTTP},
	}
	for _, s := range steps {
		if err := s.fn(container); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	steps := []struct {
		name string
		fn   func(*dig.Container) error
	}{
		{"core", func(c *dig.Container) error { return registerCore(c, ctx) }},
		{"DB", func(c *dig.Container) error { return registerDb(c, b.dbConnect, b.migrate) }},
		{"cache", func(c *dig.Container) error { return registerCache(c, b.redisConnect) }},
		{"metrics", registerMetrics},
		{"kafka", registerProducer},
		{"service", registerDomainServices},
		{"worker", registerWorker},
	}
	for _, s := range steps {
		if err := s.fn(container); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return container, nil
}

// MustBuildContainer builds and returns the HTTP service container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
		func() prometheus.Registerer { return prometheus.DefaultRegisterer },
		func() time.Duration { return serviceTimeout },
		func(cfg *config.Config) promoSweepInterval {
			return promoSweepInterval(cfg.Promotions.SweepInterval)
		},
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate func(string) error) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(cfg.DB.DSN()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("db schema is up to date")
		return pool, nil
	}
	return provideAll(container,
		providerDB,
		repository.NewCustomerRepo,
		repository.NewRestaurantRepo,
		repository.NewItemRepo,
		repository.NewZoneRepo,
		repository.NewPromotionRepo,
		repository.NewOrderRepo,
	)
}

func registerCache(container *dig.Container, redisConnect redisConnectFunc) error {
	providerRedis := func(ctx context.Context, cfg *config.Config, logger logx.Logger) *redis.Client {
		rdb, err := redisConnect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// zone lookups fall back to Postgres
			logger.Warn("redis unavailable, zone cache disabled", logx.Err(err))
			return nil
		}
		return rdb
	}
	providerZoneCache := func(rdb *redis.Client, repo *repository.ZoneRepo, cfg *config.Config, logger logx.Logger) *cache.ZoneCache {
		return cache.NewZoneCache(rdb, repo, cfg.Redis.ZoneTTL, logger)
	}
	return provideAll(container, providerRedis, providerZoneCache)
}

type metricsOut struct {
	dig.Out

	RateLimitExceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	OrdersCreated     prometheus.Counter `name:"orders_created_total"`
	PromoRedemptions  prometheus.Counter `name:"promo_redemptions_total"`
	NumberRetries     prometheus.Counter `name:"order_number_retries_total"`
}

func newMetrics(reg prometheus.Registerer) (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceeded, err = registerCounter(reg, metrics.NewRateLimitExceededTotal()); err != nil {
		return out, err
	}
	if out.OrdersCreated, err = registerCounter(reg, metrics.NewOrdersCreatedTotal()); err != nil {
		return out, err
	}
	if out.PromoRedemptions, err = registerCounter(reg, metrics.NewPromoRedemptionsTotal()); err != nil {
		return out, err
	}
	if out.NumberRetries, err = registerCounter(reg, metrics.NewOrderNumberRetriesTotal()); err != nil {
		return out, err
	}
	return out, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, newMetrics)
}

func registerProducer(container *dig.Container) error {
	return provideAll(container, func(cfg *config.Config) (*kafka.Producer, error) {
		return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.OrderEventsTopic)
	})
}

type orderServiceIn struct {
	dig.In

	Config      *config.Config
	Logger      logx.Logger
	Timeout     time.Duration
	Customers   *repository.CustomerRepo
	Restaurants *repository.RestaurantRepo
	Items       *repository.ItemRepo
	Zones       *cache.ZoneCache
	Orders      *repository.OrderRepo
	Producer    *kafka.Producer
	Created     prometheus.Counter `name:"orders_created_total"`
	Redeemed    prometheus.Counter `name:"promo_redemptions_total"`
	Retries     prometheus.Counter `name:"order_number_retries_total"`
}

func newOrderService(in orderServiceIn) *order.Service {
	var events order.EventPublisher
	if in.Producer != nil {
		events = in.Producer
	}
	return order.NewService(order.Deps{
		Customers:   in.Customers,
		Restaurants: in.Restaurants,
		Items:       in.Items,
		Zones:       in.Zones,
		Orders:      in.Orders,
		Events:      events,
		Numbers:     order.NewNumberFactory(),
	}, in.Timeout, in.Logger,
		order.WithLocation(in.Config.Pricing.Location),
		order.WithCounters(order.Counters{
			Created:       in.Created,
			PromoRedeemed: in.Redeemed,
			NumberRetries: in.Retries,
		}),
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *auth.TokenManager {
			return auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		},
		func(repo *repository.CustomerRepo, tm *auth.TokenManager, timeout time.Duration, logger logx.Logger) *auth.Service {
			return auth.NewService(repo, tm, timeout, logger)
		},
		func(r *repository.RestaurantRepo, i *repository.ItemRepo, timeout time.Duration, logger logx.Logger) *catalog.Service {
			return catalog.NewService(r, i, timeout, logger)
		},
		func(repo *repository.ZoneRepo, zc *cache.ZoneCache, timeout time.Duration, logger logx.Logger) *zone.Service {
			return zone.NewService(repo, zc, timeout, logger)
		},
		func(repo *repository.PromotionRepo, timeout time.Duration, logger logx.Logger) *promotion.Service {
			return promotion.NewService(repo, timeout, logger)
		},
		newOrderService,
	)
}

type routerIn struct {
	dig.In

	Logger     logx.Logger
	Base       *handlers.Handlers
	Auth       *handlers.AuthHandler
	Catalog    *handlers.CatalogHandler
	Zones      *handlers.ZoneHandler
	Promotions *handlers.PromotionHandler
	Orders     *handlers.OrderHandler
	AuthSvc    *auth.Service
	RateLimit  *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:        in.Logger,
		Base:          in.Base,
		Auth:          in.Auth,
		Catalog:       in.Catalog,
		Zones:         in.Zones,
		Promotions:    in.Promotions,
		Orders:        in.Orders,
		Authenticator: in.AuthSvc,
		RateLimit:     in.RateLimit,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(l logx.Logger, s *auth.Service) *handlers.AuthHandler { return handlers.NewAuthHandler(l, s) },
		func(l logx.Logger, s *catalog.Service) *handlers.CatalogHandler {
			return handlers.NewCatalogHandler(l, s)
		},
		func(l logx.Logger, s *zone.Service) *handlers.ZoneHandler { return handlers.NewZoneHandler(l, s) },
		func(l logx.Logger, s *promotion.Service) *handlers.PromotionHandler {
			return handlers.NewPromotionHandler(l, s)
		},
		func(l logx.Logger, s *order.Service) *handlers.OrderHandler { return handlers.NewOrderHandler(l, s) },
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(s *order.Service, logger logx.Logger) *statusevents.Processor {
			return statusevents.NewProcessor(s, logger)
		},
		func(cfg *config.Config, logger logx.Logger, p *statusevents.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.StatusTopic, makeStatusEventsHandler(p))
		},
	)
}
