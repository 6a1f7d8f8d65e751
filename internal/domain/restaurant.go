package domain

import "time"

// Restaurant is a restaurant. RestaurantID is the public "REST-001" identifier.
type Restaurant struct {
	ID           int64
	RestaurantID string
	Name         string
	Location     Coordinate
	Zone         ZoneType
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Item is a catalog entry of a restaurant.
type Item struct {
	ID           int64
	RestaurantID int64
	Name         string
	Price        float64
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PartialItemUpdate carries optional fields to update an item.
type PartialItemUpdate struct {
	ID          int64
	Name        *string
	Price       *float64
	IsAvailable *bool
}

// ItemFilter narrows item listing. Zero RestaurantID means all restaurants.
type ItemFilter struct {
	RestaurantID int64
}
