package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/logx"
)

const zoneKeyPrefix = "delivery_zone:"

type zoneSource interface {
	GetByType(ctx context.Context, zoneType domain.ZoneType) (*domain.DeliveryZone, error)
}

type cachedZone struct {
	ID        int64     `json:"id"`
	ZoneType  string    `json:"zone_type"`
	BaseFee   float64   `json:"base_fee"`
	PerKmRate float64   `json:"per_km_rate"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ZoneCache is a read-through Redis cache in front of the zone repository.
// A nil client turns it into a passthrough. Redis failures fall back to the source.
type ZoneCache struct {
	rdb    *redis.Client
	src    zoneSource
	ttl    time.Duration
	logger logx.Logger
}

// NewZoneCache creates a new ZoneCache.
func NewZoneCache(rdb *redis.Client, src zoneSource, ttl time.Duration, logger logx.Logger) *ZoneCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &ZoneCache{rdb: rdb, src: src, ttl: ttl, logger: logger}
}

func zoneKey(zoneType domain.ZoneType) string {
	return zoneKeyPrefix + string(zoneType)
}

// GetByType returns the zone from Redis, loading and storing it on a miss.
func (c *ZoneCache) GetByType(ctx context.Context, zoneType domain.ZoneType) (*domain.DeliveryZone, error) {
	if c.rdb == nil {
		return c.src.GetByType(ctx, zoneType)
	}

	raw, err := c.rdb.Get(ctx, zoneKey(zoneType)).Bytes()
	switch {
	case err == nil:
		var cz cachedZone
		if jsonErr := json.Unmarshal(raw, &cz); jsonErr == nil {
			return cz.toDomain(), nil
		}
		c.logger.Warn("zone cache: bad entry", logx.String("zone", string(zoneType)))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("zone cache: get failed", logx.String("zone", string(zoneType)), logx.Err(err))
	}

	z, err := c.src.GetByType(ctx, zoneType)
	if err != nil || z == nil {
		return z, err
	}

	payload, err := json.Marshal(fromDomain(z))
	if err == nil {
		err = c.rdb.Set(ctx, zoneKey(zoneType), payload, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("zone cache: set failed", logx.String("zone", string(zoneType)), logx.Err(err))
	}
	return z, nil
}

// Invalidate drops the cached zone after a write.
func (c *ZoneCache) Invalidate(ctx context.Context, zoneType domain.ZoneType) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, zoneKey(zoneType)).Err()
}

func fromDomain(z *domain.DeliveryZone) cachedZone {
	return cachedZone{
		ID:        z.ID,
		ZoneType:  string(z.ZoneType),
		BaseFee:   z.BaseFee,
		PerKmRate: z.PerKmRate,
		IsActive:  z.IsActive,
		CreatedAt: z.CreatedAt,
		UpdatedAt: z.UpdatedAt,
	}
}

func (cz cachedZone) toDomain() *domain.DeliveryZone {
	return &domain.DeliveryZone{
		ID:        cz.ID,
		ZoneType:  domain.ZoneType(cz.ZoneType),
		BaseFee:   cz.BaseFee,
		PerKmRate: cz.PerKmRate,
		IsActive:  cz.IsActive,
		CreatedAt: cz.CreatedAt,
		UpdatedAt: cz.UpdatedAt,
	}
}
