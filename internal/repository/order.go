package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/domain"
	"service-food-delivery/internal/ports/ordertx"
)

const orderColumns = `id, order_number, customer_id, restaurant_id, delivery_zone, distance_km,
       base_price, delivery_fee, zone_base_fee, distance_cost, peak_multiplier, peak_surcharge,
       promo_discount, promo_code, total_amount, status, created_at, updated_at`

// OrderRepo represents order repository.
type OrderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *OrderRepo) WithTx(ctx context.Context, fn func(tx ordertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				panic(rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Get returns an order with its line items, or nil when absent.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, r.db, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetByNumber returns an order by its order number, or nil when absent.
func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return getOrder(ctx, r.db, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, number)
}

// ListByCustomer returns the customer's orders newest first.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE customer_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders of customer %d: %w", customerID, err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0, limit)
	byID := make(map[int64]int, limit)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		byID[o.ID] = len(out)
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(out))
	for _, o := range out {
		ids = append(ids, o.ID)
	}
	items, err := loadOrderItems(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for orderID, li := range items {
		out[byID[orderID]].Items = li
	}
	return out, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.RestaurantID, &o.DeliveryZone, &o.DistanceKm,
		&o.BasePrice, &o.DeliveryFee, &o.ZoneBaseFee, &o.DistanceCost, &o.PeakMultiplier, &o.PeakSurcharge,
		&o.PromoDiscount, &o.PromoCode, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func getOrder(ctx context.Context, q dbtx, sql string, arg any) (*domain.Order, error) {
	o, err := scanOrder(q.QueryRow(ctx, sql, arg))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %v: %w", arg, err)
	}
	items, err := loadOrderItems(ctx, q, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

func loadOrderItems(ctx context.Context, q dbtx, orderIDs []int64) (map[int64][]domain.OrderLineItem, error) {
	rows, err := q.Query(ctx, `
        SELECT order_id, item_id, quantity, unit_price
        FROM order_items
        WHERE order_id = ANY($1)
        ORDER BY id
    `, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.OrderLineItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID int64
			li      domain.OrderLineItem
		)
		if err := rows.Scan(&orderID, &li.ItemID, &li.Quantity, &li.UnitPrice); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], li)
	}
	return out, rows.Err()
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetPromotionByCode reads a promotion inside the transaction, or nil when absent.
func (r *TxRepo) GetPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	return getPromotion(ctx, r.tx, code)
}

// IncrementPromotionUsage bumps used_count by one unless the usage limit is already reached.
// It reports false when no row was updated.
func (r *TxRepo) IncrementPromotionUsage(ctx context.Context, code string) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE promotions
        SET used_count = used_count + 1, updated_at = now()
        WHERE code = $1
          AND (usage_limit IS NULL OR used_count < usage_limit)
    `, code)
	if err != nil {
		return false, fmt.Errorf("increment promotion usage %s: %w", code, err)
	}
	return ct.RowsAffected() == 1, nil
}

// InsertOrder inserts the order and its line items under a savepoint,
// so a colliding order number leaves the outer transaction usable.
func (r *TxRepo) InsertOrder(ctx context.Context, o *domain.Order) (err error) {
	sp, err := r.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := sp.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	err = sp.QueryRow(ctx, `
        INSERT INTO orders (order_number, customer_id, restaurant_id, delivery_zone, distance_km,
                            base_price, delivery_fee, zone_base_fee, distance_cost, peak_multiplier,
                            peak_surcharge, promo_discount, promo_code, total_amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id, created_at, updated_at
    `, o.OrderNumber, o.CustomerID, o.RestaurantID, string(o.DeliveryZone), o.DistanceKm,
		o.BasePrice, o.DeliveryFee, o.ZoneBaseFee, o.DistanceCost, o.PeakMultiplier,
		o.PeakSurcharge, o.PromoDiscount, o.PromoCode, o.TotalAmount, string(o.Status),
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isDuplicateOn(err, orderNumberConstraint) {
			return ordertx.ErrOrderNumberTaken
		}
		return fmt.Errorf("insert order %s: %w", o.OrderNumber, err)
	}

	batch := &pgx.Batch{}
	for _, li := range o.Items {
		batch.Queue(`
            INSERT INTO order_items (order_id, item_id, quantity, unit_price)
            VALUES ($1, $2, $3, $4)
        `, o.ID, li.ItemID, li.Quantity, li.UnitPrice)
	}
	if err = sp.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert order items %s: %w", o.OrderNumber, err)
	}

	if err = sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

// ClearFirstOrder drops the first-order flag of the customer.
func (r *TxRepo) ClearFirstOrder(ctx context.Context, customerID int64) error {
	_, err := r.tx.Exec(ctx, `
        UPDATE customers
        SET is_first_order = FALSE, updated_at = now()
        WHERE id = $1 AND is_first_order
    `, customerID)
	if err != nil {
		return fmt.Errorf("clear first order flag %d: %w", customerID, err)
	}
	return nil
}

// GetOrderForUpdate locks the order row and returns the order, or nil when absent.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, r.tx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

// UpdateOrderStatus sets the status of the order.
func (r *TxRepo) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, string(status))
	if err != nil {
		return fmt.Errorf("update order status %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", id)
	}
	return nil
}
