package order

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
	"service-food-delivery/internal/ports/ordertx"
	"service-food-delivery/internal/pricing"
)

const (
	maxNumberAttempts = 3
	defaultListLimit  = 20
	maxListLimit      = 100
)

// Deps groups the collaborators of the order service.
type Deps struct {
	Customers   CustomerReader
	Restaurants RestaurantReader
	Items       ItemReader
	Zones       ZoneReader
	Orders      Repository
	Events      EventPublisher
	Numbers     NumberFactory
}

// Counters are the order metrics. Nil counters are skipped.
type Counters struct {
	Created       prometheus.Counter
	PromoRedeemed prometheus.Counter
	NumberRetries prometheus.Counter
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the timezone peak hours and weekends are evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithCounters attaches metrics.
func WithCounters(c Counters) Option {
	return func(s *Service) { s.counters = c }
}

// WithRetryBackoff sets the base delay between order number attempts.
func WithRetryBackoff(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.backoff = d
		}
	}
}

// Service prices, persists and tracks orders.
type Service struct {
	deps             Deps
	operationTimeout time.Duration
	logger           logx.Logger
	counters         Counters
	location         *time.Location
	backoff          time.Duration
	now              func() time.Time
}

// NewService creates a new order Service.
func NewService(d Deps, timeout time.Duration, logger logx.Logger, opts ...Option) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if d.Numbers == nil {
		d.Numbers = NewNumberFactory()
	}
	s := &Service{
		deps:             d,
		operationTimeout: timeout,
		logger:           logger,
		location:         time.UTC,
		backoff:          10 * time.Millisecond,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(in domain.CreateOrderInput) error {
	if in.CustomerID <= 0 {
		return apperr.Invalidf("customerId is required")
	}
	if strings.TrimSpace(in.RestaurantRef) == "" {
		return apperr.Invalidf("restaurantId is required")
	}
	if len(in.Items) == 0 {
		return apperr.Invalidf("order must contain at least one item")
	}
	for _, li := range in.Items {
		if li.ItemID <= 0 {
			return apperr.Invalidf("itemId is required")
		}
		if li.Quantity < 1 {
			return apperr.Invalidf("quantity must be at least 1")
		}
	}
	return nil
}

// Create prices and persists a new order. Promotion redemption, order insert and
// the first-order flag update run in one transaction.
func (s *Service) Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	customer, err := s.deps.Customers.Get(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperr.NotFoundf("customer not found")
	}
	if !customer.IsActive {
		return nil, apperr.BusinessRulef("customer account is inactive")
	}

	restaurant, err := s.findRestaurant(ctx, in.RestaurantRef)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, apperr.BusinessRulef("restaurant is currently inactive")
	}

	lines, err := s.priceLines(ctx, restaurant.ID, in.Items)
	if err != nil {
		return nil, err
	}
	priced := make([]pricing.Line, 0, len(lines))
	for _, li := range lines {
		priced = append(priced, pricing.Line{Price: li.UnitPrice, Quantity: li.Quantity})
	}
	base, err := pricing.BasePrice(priced)
	if err != nil {
		return nil, err
	}

	zone, err := s.deps.Zones.GetByType(ctx, customer.Zone)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)
	quote, err := pricing.BuildQuote(pricing.QuoteInput{
		BasePrice: base,
		From:      restaurant.Location,
		To:        customer.Location,
		Zone:      zone,
		ZoneType:  customer.Zone,
		At:        now,
	})
	if err != nil {
		return nil, err
	}

	o := &domain.Order{
		CustomerID:     customer.ID,
		RestaurantID:   restaurant.ID,
		Items:          lines,
		DeliveryZone:   customer.Zone,
		DistanceKm:     quote.DistanceKm,
		BasePrice:      quote.BasePrice,
		DeliveryFee:    quote.DeliveryFee,
		ZoneBaseFee:    quote.ZoneBaseFee,
		DistanceCost:   quote.DistanceCost,
		PeakMultiplier: quote.PeakMultiplier,
		PeakSurcharge:  quote.PeakSurcharge,
		Status:         domain.OrderPending,
	}
	code := pricing.NormalizeCode(in.PromoCode)

	err = s.deps.Orders.WithTx(ctx, func(tx ordertx.Repository) error {
		var discount float64
		if code != "" {
			promo, err := tx.GetPromotionByCode(ctx, code)
			if err != nil {
				return err
			}
			discount, err = pricing.EvaluatePromotion(promo, pricing.PromoContext{
				OrderTotal:         quote.OrderTotal(),
				IsFirstOrder:       customer.IsFirstOrder,
				CustomerZone:       customer.Zone,
				RestaurantPublicID: restaurant.RestaurantID,
				Now:                now,
			})
			if err != nil {
				return err
			}
			ok, err := tx.IncrementPromotionUsage(ctx, code)
			if err != nil {
				return err
			}
			if !ok {
				return pricing.UsageLimitReached()
			}
			o.PromoCode = &code
		}
		o.PromoDiscount = discount
		o.TotalAmount = quote.Total(discount)

		if err := s.insertWithRetry(ctx, tx, o, now); err != nil {
			return err
		}
		if customer.IsFirstOrder {
			return tx.ClearFirstOrder(ctx, customer.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	inc(s.counters.Created)
	fields := []logx.Field{
		logx.String("event", "order_created"),
		logx.String("order_number", o.OrderNumber),
		logx.Int64("customer_id", o.CustomerID),
		logx.Int64("restaurant_id", o.RestaurantID),
		logx.Float64("delivery_fee", o.DeliveryFee),
		logx.Float64("total_amount", o.TotalAmount),
	}
	if o.PromoCode != nil {
		inc(s.counters.PromoRedeemed)
		fields = append(fields, logx.String("promo_code", *o.PromoCode), logx.Float64("promo_discount", o.PromoDiscount))
		s.logger.Info("promotion redeemed",
			logx.String("event", "promo_redeemed"),
			logx.String("promo_code", *o.PromoCode),
			logx.String("order_number", o.OrderNumber),
		)
	}
	s.logger.Info("order created", fields...)

	s.publish(ctx, "order_created", o.OrderNumber, func(ctx context.Context) error {
		return s.deps.Events.OrderCreated(ctx, o)
	})

	return o, nil
}

func (s *Service) findRestaurant(ctx context.Context, ref string) (*domain.Restaurant, error) {
	ref = strings.TrimSpace(ref)
	var (
		r   *domain.Restaurant
		err error
	)
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		r, err = s.deps.Restaurants.Get(ctx, id)
	} else {
		r, err = s.deps.Restaurants.GetByPublicID(ctx, strings.ToUpper(ref))
	}
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFoundf("restaurant '%s' not found", ref)
	}
	return r, nil
}

// priceLines resolves requested items against the catalog and snapshots their prices.
func (s *Service) priceLines(ctx context.Context, restaurantID int64, reqs []domain.OrderLineRequest) ([]domain.OrderLineItem, error) {
	ids := make([]int64, 0, len(reqs))
	seen := make(map[int64]struct{}, len(reqs))
	for _, r := range reqs {
		if _, ok := seen[r.ItemID]; ok {
			continue
		}
		seen[r.ItemID] = struct{}{}
		ids = append(ids, r.ItemID)
	}

	catalog, err := s.deps.Items.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLineItem, 0, len(reqs))
	for _, r := range reqs {
		it, ok := catalog[r.ItemID]
		if !ok || it.RestaurantID != restaurantID || !it.IsAvailable {
			return nil, apperr.NotFoundf("item '%d' not found or unavailable", r.ItemID)
		}
		lines = append(lines, domain.OrderLineItem{
			ItemID:    it.ID,
			Quantity:  r.Quantity,
			UnitPrice: it.Price,
		})
	}
	return lines, nil
}

// insertWithRetry inserts the order, regenerating the order number on collision.
func (s *Service) insertWithRetry(ctx context.Context, tx ordertx.Repository, o *domain.Order, now time.Time) error {
	var err error
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		o.OrderNumber = s.deps.Numbers.Next(now)
		err = tx.InsertOrder(ctx, o)
		if !errors.Is(err, ordertx.ErrOrderNumberTaken) {
			return err
		}
		if attempt == maxNumberAttempts {
			break
		}
		inc(s.counters.NumberRetries)
		s.logger.Warn("order number collision, retrying",
			logx.String("order_number", o.OrderNumber),
			logx.Int("attempt", attempt),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.backoff * time.Duration(attempt)):
		}
	}
	return apperr.Conflictf("could not allocate a unique order number")
}

// Get returns an order by numeric id or order number. A positive customerID
// restricts the lookup to that customer's orders.
func (s *Service) Get(ctx context.Context, ref string, customerID int64) (*domain.Order, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, apperr.Invalidf("order id is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}
	if o == nil || (customerID > 0 && o.CustomerID != customerID) {
		return nil, apperr.NotFoundf("order '%s' not found", ref)
	}
	return o, nil
}

func (s *Service) lookup(ctx context.Context, ref string) (*domain.Order, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return s.deps.Orders.Get(ctx, id)
	}
	return s.deps.Orders.GetByNumber(ctx, strings.ToUpper(ref))
}

// ListByCustomer returns the customer's orders newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID int64, limit, offset *int) ([]domain.Order, error) {
	if customerID <= 0 {
		return nil, apperr.Invalidf("customerId is required")
	}
	l, off := defaultListLimit, 0
	if limit != nil {
		if *limit <= 0 || *limit > maxListLimit {
			return nil, apperr.Invalidf("limit must be between 1 and %d", maxListLimit)
		}
		l = *limit
	}
	if offset != nil {
		if *offset < 0 {
			return nil, apperr.Invalidf("offset must not be negative")
		}
		off = *offset
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.deps.Orders.ListByCustomer(ctx, customerID, l, off)
}

// UpdateStatus moves the order to status if the state machine allows it.
// A positive customerID restricts the change to that customer's orders.
func (s *Service) UpdateStatus(ctx context.Context, ref string, status domain.OrderStatus, customerID int64) (*domain.Order, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, apperr.Invalidf("order id is required")
	}
	if !status.Valid() {
		return nil, apperr.Invalidf("unknown order status '%s'", status)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	current, err := s.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}
	if current == nil || (customerID > 0 && current.CustomerID != customerID) {
		return nil, apperr.NotFoundf("order '%s' not found", ref)
	}

	var (
		updated *domain.Order
		from    domain.OrderStatus
	)
	err = s.deps.Orders.WithTx(ctx, func(tx ordertx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, current.ID)
		if err != nil {
			return err
		}
		if o == nil {
			return apperr.NotFoundf("order '%s' not found", ref)
		}
		if !o.Status.CanTransitionTo(status) {
			return apperr.BusinessRulef("cannot change order status from '%s' to '%s'", o.Status, status)
		}
		if err := tx.UpdateOrderStatus(ctx, o.ID, status); err != nil {
			return err
		}
		from = o.Status
		o.Status = status
		o.UpdatedAt = s.now().UTC()
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status changed",
		logx.String("event", "order_status_changed"),
		logx.String("order_number", updated.OrderNumber),
		logx.String("from", string(from)),
		logx.String("to", string(updated.Status)),
	)
	s.publish(ctx, "order_status_changed", updated.OrderNumber, func(ctx context.Context) error {
		return s.deps.Events.OrderStatusChanged(ctx, updated, from)
	})

	return updated, nil
}

// publish sends an event after commit. The order is already persisted,
// so failures are only logged.
func (s *Service) publish(ctx context.Context, event, orderNumber string, send func(context.Context) error) {
	if s.deps.Events == nil {
		return
	}
	if err := send(ctx); err != nil {
		s.logger.Warn("publish order event failed",
			logx.String("event", event),
			logx.String("order_number", orderNumber),
			logx.Err(err),
		)
	}
}

func inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}
