package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

const promotionColumns = `id, code, name, description, type, discount_type, discount_value,
       restaurant_id, zone_type, min_order_amount, max_discount_amount, start_date, end_date,
       usage_limit, used_count, is_active, created_at, updated_at`

// PromotionRepo represents promotion repository.
type PromotionRepo struct{ db *pgxpool.Pool }

// NewPromotionRepo creates a new PromotionRepo.
func NewPromotionRepo(db *pgxpool.Pool) *PromotionRepo { return &PromotionRepo{db: db} }

func scanPromotion(row rowScanner) (*domain.Promotion, error) {
	var (
		p    domain.Promotion
		zone *string
	)
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Type, &p.DiscountType, &p.DiscountValue,
		&p.RestaurantID, &zone, &p.MinOrderAmount, &p.MaxDiscountAmount, &p.StartDate, &p.EndDate,
		&p.UsageLimit, &p.UsedCount, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if zone != nil {
		zt := domain.ZoneType(*zone)
		p.ZoneType = &zt
	}
	return &p, nil
}

func zoneArg(z *domain.ZoneType) *string {
	if z == nil {
		return nil
	}
	s := string(*z)
	return &s
}

// Create inserts a promotion. A duplicate code is a conflict.
func (r *PromotionRepo) Create(ctx context.Context, p *domain.Promotion) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO promotions (code, name, description, type, discount_type, discount_value,
                                restaurant_id, zone_type, min_order_amount, max_discount_amount,
                                start_date, end_date, usage_limit, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, used_count, created_at, updated_at
    `, p.Code, p.Name, p.Description, string(p.Type), string(p.DiscountType), p.DiscountValue,
		p.RestaurantID, zoneArg(p.ZoneType), p.MinOrderAmount, p.MaxDiscountAmount,
		p.StartDate, p.EndDate, p.UsageLimit, p.IsActive,
	).Scan(&p.ID, &p.UsedCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflictf("promotion code '%s' already exists", p.Code)
		}
		return fmt.Errorf("create promotion %s: %w", p.Code, err)
	}
	return nil
}

// GetByCode returns a promotion by its uppercase code, or nil when absent.
func (r *PromotionRepo) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	return getPromotion(ctx, r.db, code)
}

// List returns promotions newest first, optionally filtered by the active flag.
func (r *PromotionRepo) List(ctx context.Context, f domain.PromotionFilter) ([]domain.Promotion, error) {
	q := `SELECT ` + promotionColumns + ` FROM promotions`
	args := make([]any, 0, 1)
	if f.IsActive != nil {
		q += ` WHERE is_active = $1`
		args = append(args, *f.IsActive)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()

	var out []domain.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// DeactivateExpired switches off active promotions whose end date is before now.
func (r *PromotionRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE promotions
        SET is_active = FALSE, updated_at = now()
        WHERE is_active AND end_date < $1
    `, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired promotions: %w", err)
	}
	return ct.RowsAffected(), nil
}

func getPromotion(ctx context.Context, q dbtx, code string) (*domain.Promotion, error) {
	p, err := scanPromotion(q.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE code = $1`, code))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion %s: %w", code, err)
	}
	return p, nil
}
