package geo

import (
	"fmt"
	"math"
)

// earthRadiusMiles is the mean Earth radius used by the haversine formula.
const earthRadiusMiles = 3959

// CalculateDistance returns the great-circle distance in miles between two
// points given in decimal degrees.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// FormatDistance renders a distance in miles for card display. Distances
// under a tenth of a mile collapse to "< 0.1 mi".
func FormatDistance(miles float64) string {
	if miles < 0.1 {
		return "< 0.1 mi"
	}
	return fmt.Sprintf("%.1f mi", miles)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
