package domain

import "time"

// Customer is a registered customer. CustomerID is the public "CUST-001" identifier.
type Customer struct {
	ID           int64
	CustomerID   string
	Name         string
	Email        string
	PasswordHash string
	Location     Coordinate
	Zone         ZoneType
	IsFirstOrder bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
