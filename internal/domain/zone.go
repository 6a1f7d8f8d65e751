package domain

import "time"

// ZoneType is the delivery zone label.
type ZoneType string

// List of delivery zone labels
const (
	ZoneUrban    ZoneType = "Urban"
	ZoneSuburban ZoneType = "Suburban"
	ZoneRemote   ZoneType = "Remote"
)

var allowedZones = [...]ZoneType{ZoneUrban, ZoneSuburban, ZoneRemote}

// Valid checks if the ZoneType is one of the known labels
func (z ZoneType) Valid() bool {
	for _, v := range allowedZones {
		if z == v {
			return true
		}
	}
	return false
}

// DeliveryZone is the tariff of a zone. ZoneType is unique.
type DeliveryZone struct {
	ID        int64
	ZoneType  ZoneType
	BaseFee   float64
	PerKmRate float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PartialZoneUpdate carries optional fields to update a zone.
// A nil field means “do not change” that attribute.
type PartialZoneUpdate struct {
	ZoneType  ZoneType
	BaseFee   *float64
	PerKmRate *float64
	IsActive  *bool
}
