package pricing

import (
	"math"

	"service-food-delivery/internal/domain"
)

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b in kilometers,
// rounded to 2 decimal places.
func DistanceKm(a, b domain.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return Round2(EarthRadiusKm * c)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
