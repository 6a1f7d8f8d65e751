package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

const restaurantColumns = `id, restaurant_id, name, lat, lng, zone, is_active, created_at, updated_at`

// RestaurantRepo represents restaurant repository.
type RestaurantRepo struct{ db *pgxpool.Pool }

// NewRestaurantRepo creates a new RestaurantRepo.
func NewRestaurantRepo(db *pgxpool.Pool) *RestaurantRepo { return &RestaurantRepo{db: db} }

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var r domain.Restaurant
	err := row.Scan(&r.ID, &r.RestaurantID, &r.Name, &r.Location.Lat, &r.Location.Lng,
		&r.Zone, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a restaurant; the public id comes from restaurant_public_id_seq.
func (r *RestaurantRepo) Create(ctx context.Context, rest *domain.Restaurant) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO restaurants (name, lat, lng, zone, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, restaurant_id, created_at, updated_at
    `, rest.Name, rest.Location.Lat, rest.Location.Lng, string(rest.Zone), rest.IsActive,
	).Scan(&rest.ID, &rest.RestaurantID, &rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflictf("restaurant '%s' already exists", rest.Name)
		}
		return fmt.Errorf("create restaurant: %w", err)
	}
	return nil
}

// Get returns a restaurant by its ID, or nil when absent.
func (r *RestaurantRepo) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.db.QueryRow(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return rest, nil
}

// GetByPublicID returns a restaurant by its "REST-001" identifier, or nil when absent.
func (r *RestaurantRepo) GetByPublicID(ctx context.Context, publicID string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.db.QueryRow(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE restaurant_id = $1`, publicID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant %q: %w", publicID, err)
	}
	return rest, nil
}

// ListActive returns active restaurants ordered by id.
func (r *RestaurantRepo) ListActive(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.db.Query(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rest)
	}
	return out, rows.Err()
}
