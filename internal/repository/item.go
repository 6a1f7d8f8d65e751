package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

const itemColumns = `id, restaurant_id, name, price, is_available, created_at, updated_at`

// ItemRepo represents item repository.
type ItemRepo struct{ db *pgxpool.Pool }

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(db *pgxpool.Pool) *ItemRepo { return &ItemRepo{db: db} }

func scanItem(row rowScanner) (*domain.Item, error) {
	var it domain.Item
	if err := row.Scan(&it.ID, &it.RestaurantID, &it.Name, &it.Price, &it.IsAvailable, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

// Create inserts an item.
func (r *ItemRepo) Create(ctx context.Context, it *domain.Item) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO items (restaurant_id, name, price, is_available)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `, it.RestaurantID, it.Name, it.Price, it.IsAvailable).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if IsForeignKey(err) {
			return apperr.NotFoundf("restaurant with ID '%d' not found", it.RestaurantID)
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Get returns an item by its ID, or nil when absent.
func (r *ItemRepo) Get(ctx context.Context, id int64) (*domain.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return it, nil
}

// GetMany returns the items with the given ids keyed by id. Missing ids are absent from the map.
func (r *ItemRepo) GetMany(ctx context.Context, ids []int64) (map[int64]domain.Item, error) {
	out := make(map[int64]domain.Item, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out[it.ID] = *it
	}
	return out, rows.Err()
}

// List returns items ordered by id, optionally narrowed to one restaurant.
func (r *ItemRepo) List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items`
	args := make([]any, 0, 1)
	if f.RestaurantID > 0 {
		q += ` WHERE restaurant_id = $1`
		args = append(args, f.RestaurantID)
	}
	q += ` ORDER BY id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

// UpdatePartial applies a partial update and returns the updated item, or nil when absent.
func (r *ItemRepo) UpdatePartial(ctx context.Context, u domain.PartialItemUpdate) (*domain.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `
        UPDATE items
        SET
            name         = COALESCE($2, name),
            price        = COALESCE($3, price),
            is_available = COALESCE($4, is_available),
            updated_at   = now()
        WHERE id = $1
        RETURNING `+itemColumns,
		u.ID, u.Name, u.Price, u.IsAvailable))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update item %d: %w", u.ID, err)
	}
	return it, nil
}
