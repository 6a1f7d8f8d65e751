package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-food-delivery/internal/http/handlers"
	"service-food-delivery/internal/http/middleware"
	"service-food-delivery/internal/http/middleware/ratelimit"
	"service-food-delivery/internal/logx"
)

const defaultRequestTimeout = 5 * time.Second

// Deps holds everything the router mounts.
type Deps struct {
	Logger        logx.Logger
	Base          *handlers.Handlers
	Auth          *handlers.AuthHandler
	Catalog       *handlers.CatalogHandler
	Zones         *handlers.ZoneHandler
	Promotions    *handlers.PromotionHandler
	Orders        *handlers.OrderHandler
	Authenticator middleware.Authenticator
	RateLimit     *ratelimit.Middleware
	Timeout       time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	if d.Timeout <= 0 {
		d.Timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(d.Logger))
	r.Use(chimw.Recoverer)
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}
	r.Use(chimw.Timeout(d.Timeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/signup", d.Auth.Signup)
		r.Post("/auth/login", d.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Authenticator, d.Logger))

			r.Get("/auth/me", d.Auth.Me)

			r.Post("/restaurants", d.Catalog.CreateRestaurant)
			r.Get("/restaurants", d.Catalog.ListRestaurants)
			r.Get("/restaurants/{id}", d.Catalog.GetRestaurant)

			r.Post("/items", d.Catalog.CreateItem)
			r.Get("/items", d.Catalog.ListItems)
			r.Get("/items/{id}", d.Catalog.GetItem)
			r.Patch("/items/{id}", d.Catalog.UpdateItem)

			r.Post("/delivery-zones", d.Zones.Create)
			r.Get("/delivery-zones", d.Zones.List)
			r.Get("/delivery-zones/{zoneType}", d.Zones.Get)
			r.Patch("/delivery-zones/{zoneType}", d.Zones.Update)

			r.Post("/promotions", d.Promotions.Create)
			r.Get("/promotions", d.Promotions.List)
			r.Get("/promotions/{code}", d.Promotions.Get)

			r.Post("/orders", d.Orders.Create)
			r.Get("/orders", d.Orders.List)
			r.Get("/orders/{id}", d.Orders.Get)
			r.Patch("/orders/{id}/status", d.Orders.UpdateStatus)
		})
	})

	return r
}
