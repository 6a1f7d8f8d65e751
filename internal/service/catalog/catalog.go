package catalog

import (
	"context"
	"strconv"
	"strings"
	"time"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
)

// Service manages restaurants and their items.
type Service struct {
	restaurants      restaurantRepository
	items            itemRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a catalog Service.
func NewService(r restaurantRepository, i itemRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{restaurants: r, items: i, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// ItemInput is a new catalog item. RestaurantRef is the numeric or public restaurant id.
type ItemInput struct {
	RestaurantRef string
	Name          string
	Price         float64
	IsAvailable   *bool
}

func validateRestaurant(r *domain.Restaurant) error {
	if r == nil {
		return apperr.Invalidf("please provide name, location, and zone")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apperr.Invalidf("please provide name, location, and zone")
	}
	if !r.Zone.Valid() {
		return apperr.Invalidf("invalid zone '%s', must be Urban, Suburban, or Remote", r.Zone)
	}
	if !r.Location.Valid() {
		return apperr.Invalidf("location must have lat in [-90,90] and lng in [-180,180]")
	}
	return nil
}

func validateItemUpdate(u domain.PartialItemUpdate) error {
	if u.ID <= 0 {
		return apperr.Invalidf("item id is required")
	}
	if u.Name == nil && u.Price == nil && u.IsAvailable == nil {
		return apperr.Invalidf("nothing to update")
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.Invalidf("name must not be empty")
	}
	if u.Price != nil && *u.Price < 0 {
		return apperr.Invalidf("price must not be negative")
	}
	return nil
}

// CreateRestaurant stores a new active restaurant. Names are unique.
func (s *Service) CreateRestaurant(ctx context.Context, r *domain.Restaurant) error {
	if err := validateRestaurant(r); err != nil {
		return err
	}
	r.IsActive = true

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.restaurants.Create(ctx, r); err != nil {
		return err
	}
	s.logger.Info("restaurant created",
		logx.String("event", "restaurant_created"),
		logx.String("restaurant_id", r.RestaurantID),
	)
	return nil
}

// ListRestaurants returns active restaurants.
func (s *Service) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.restaurants.ListActive(ctx)
}

// GetRestaurant finds a restaurant by numeric id or public id.
func (s *Service) GetRestaurant(ctx context.Context, ref string) (*domain.Restaurant, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, apperr.Invalidf("restaurant id is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.resolveRestaurant(ctx, ref)
}

func (s *Service) resolveRestaurant(ctx context.Context, ref string) (*domain.Restaurant, error) {
	var (
		r   *domain.Restaurant
		err error
	)
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		r, err = s.restaurants.Get(ctx, id)
	} else {
		r, err = s.restaurants.GetByPublicID(ctx, strings.ToUpper(ref))
	}
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFoundf("restaurant not found")
	}
	return r, nil
}

// CreateItem adds an item to an existing restaurant. Items are available unless stated otherwise.
func (s *Service) CreateItem(ctx context.Context, in ItemInput) (*domain.Item, error) {
	name := strings.TrimSpace(in.Name)
	ref := strings.TrimSpace(in.RestaurantRef)
	if name == "" || ref == "" {
		return nil, apperr.Invalidf("please provide name, price, and restaurantId")
	}
	if in.Price < 0 {
		return nil, apperr.Invalidf("price must not be negative")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.resolveRestaurant(ctx, ref)
	if err != nil {
		return nil, err
	}

	it := &domain.Item{
		RestaurantID: r.ID,
		Name:         name,
		Price:        in.Price,
		IsAvailable:  in.IsAvailable == nil || *in.IsAvailable,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// ListItems returns items, optionally only those of one restaurant.
func (s *Service) ListItems(ctx context.Context, restaurantRef string) ([]domain.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var f domain.ItemFilter
	if ref := strings.TrimSpace(restaurantRef); ref != "" {
		r, err := s.resolveRestaurant(ctx, ref)
		if err != nil {
			return nil, err
		}
		f.RestaurantID = r.ID
	}
	return s.items.List(ctx, f)
}

// GetItem returns an item by id.
func (s *Service) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	if id <= 0 {
		return nil, apperr.Invalidf("item id is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	it, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.NotFoundf("item not found")
	}
	return it, nil
}

// UpdateItem applies a partial update to an item.
func (s *Service) UpdateItem(ctx context.Context, u domain.PartialItemUpdate) (*domain.Item, error) {
	if err := validateItemUpdate(u); err != nil {
		return nil, err
	}
	if u.Name != nil {
		n := strings.TrimSpace(*u.Name)
		u.Name = &n
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	it, err := s.items.UpdatePartial(ctx, u)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, apperr.NotFoundf("item not found")
	}
	return it, nil
}
