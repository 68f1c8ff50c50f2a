// Package geo содержит чистые геодезические вычисления: расстояние по
// формуле гаверсинусов и ограничивающий прямоугольник для предфильтрации.
package geo

import (
	"math"

	"github.com/donor-matching-service/internal/domain"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

// boxMarginDeg expands bounding boxes so rounding never drops a point sitting on the radius.
const boxMarginDeg = 1e-6

// DistanceKm вычисляет расстояние по дуге большого круга между двумя точками в километрах.
// Inputs must already be validated; the result is symmetric and zero for coincident points.
func DistanceKm(a, b domain.Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	lat1Rad := toRadians(a.Lat)
	lat2Rad := toRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// near antipodes rounding can push h slightly past 1
	if h > 1 {
		h = 1
	}

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// ValidateRadius проверяет, что радиус конечен и неотрицателен
func ValidateRadius(radiusKm float64) bool {
	return !math.IsNaN(radiusKm) && !math.IsInf(radiusKm, 0) && radiusKm >= 0
}

// BoundingBoxAround returns a box that contains every point within radiusKm of center.
// The box spans all longitudes when the circle reaches a pole or crosses the antimeridian.
func BoundingBoxAround(center domain.Coordinate, radiusKm float64) domain.BoundingBox {
	angular := radiusKm / EarthRadiusKm
	if angular >= math.Pi {
		return domain.BoundingBox{MinLat: -90, MinLon: -180, MaxLat: 90, MaxLon: 180}
	}

	latDelta := toDegrees(angular)
	box := domain.BoundingBox{
		MinLat: center.Lat - latDelta - boxMarginDeg,
		MaxLat: center.Lat + latDelta + boxMarginDeg,
		MinLon: -180,
		MaxLon: 180,
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 {
		box.MinLat = math.Max(box.MinLat, -90)
		box.MaxLat = math.Min(box.MaxLat, 90)
		return box
	}

	ratio := math.Sin(angular) / math.Cos(toRadians(center.Lat))
	if ratio >= 1 {
		return box
	}

	lonDelta := toDegrees(math.Asin(ratio)) + boxMarginDeg
	if center.Lon-lonDelta < -180 || center.Lon+lonDelta > 180 {
		return box
	}

	box.MinLon = center.Lon - lonDelta
	box.MaxLon = center.Lon + lonDelta
	return box
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func toDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
