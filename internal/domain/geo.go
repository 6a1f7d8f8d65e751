package domain

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid checks latitude ∈ [-90,90] and longitude ∈ [-180,180].
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
