package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

const zoneColumns = `id, zone_type, base_fee, per_km_rate, is_active, created_at, updated_at`

// ZoneRepo represents delivery zone repository.
type ZoneRepo struct{ db *pgxpool.Pool }

// NewZoneRepo creates a new ZoneRepo.
func NewZoneRepo(db *pgxpool.Pool) *ZoneRepo { return &ZoneRepo{db: db} }

func scanZone(row rowScanner) (*domain.DeliveryZone, error) {
	var z domain.DeliveryZone
	if err := row.Scan(&z.ID, &z.ZoneType, &z.BaseFee, &z.PerKmRate, &z.IsActive, &z.CreatedAt, &z.UpdatedAt); err != nil {
		return nil, err
	}
	return &z, nil
}

// Create inserts a zone. A second zone with the same type is a conflict.
func (r *ZoneRepo) Create(ctx context.Context, z *domain.DeliveryZone) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO delivery_zones (zone_type, base_fee, per_km_rate, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `, string(z.ZoneType), z.BaseFee, z.PerKmRate, z.IsActive).Scan(&z.ID, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflictf("delivery zone '%s' already exists", z.ZoneType)
		}
		return fmt.Errorf("create zone %s: %w", z.ZoneType, err)
	}
	return nil
}

// GetByType returns the zone with the given type, or nil when absent.
func (r *ZoneRepo) GetByType(ctx context.Context, zoneType domain.ZoneType) (*domain.DeliveryZone, error) {
	z, err := scanZone(r.db.QueryRow(ctx,
		`SELECT `+zoneColumns+` FROM delivery_zones WHERE zone_type = $1`, string(zoneType)))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone %s: %w", zoneType, err)
	}
	return z, nil
}

// List returns all zones ordered by id.
func (r *ZoneRepo) List(ctx context.Context) ([]domain.DeliveryZone, error) {
	rows, err := r.db.Query(ctx, `SELECT `+zoneColumns+` FROM delivery_zones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DeliveryZone, 0, 3)
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *z)
	}
	return out, rows.Err()
}

// UpdatePartial applies a partial update and returns the updated zone, or nil when absent.
func (r *ZoneRepo) UpdatePartial(ctx context.Context, u domain.PartialZoneUpdate) (*domain.DeliveryZone, error) {
	z, err := scanZone(r.db.QueryRow(ctx, `
        UPDATE delivery_zones
        SET
            base_fee    = COALESCE($2, base_fee),
            per_km_rate = COALESCE($3, per_km_rate),
            is_active   = COALESCE($4, is_active),
            updated_at  = now()
        WHERE zone_type = $1
        RETURNING `+zoneColumns,
		string(u.ZoneType), u.BaseFee, u.PerKmRate, u.IsActive))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update zone %s: %w", u.ZoneType, err)
	}
	return z, nil
}
