package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-food-delivery/internal/apperr"
	"service-food-delivery/internal/domain"
)

const customerColumns = `id, customer_id, name, email, password_hash, lat, lng, zone,
       is_first_order, is_active, created_at, updated_at`

// CustomerRepo represents customer repository.
type CustomerRepo struct{ db *pgxpool.Pool }

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo { return &CustomerRepo{db: db} }

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.CustomerID, &c.Name, &c.Email, &c.PasswordHash,
		&c.Location.Lat, &c.Location.Lng, &c.Zone, &c.IsFirstOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a customer and fills ID, CustomerID and timestamps.
// The public id comes from customer_public_id_seq.
func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO customers (name, email, password_hash, lat, lng, zone, is_first_order, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, customer_id, created_at, updated_at
    `, c.Name, c.Email, c.PasswordHash, c.Location.Lat, c.Location.Lng, string(c.Zone), c.IsFirstOrder, c.IsActive,
	).Scan(&c.ID, &c.CustomerID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflictf("email '%s' is already registered", c.Email)
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// Get returns a customer by its ID, or nil when absent.
func (r *CustomerRepo) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}

// GetByEmail returns a customer by its lowercase email, or nil when absent.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}
