package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donor-matching-service/internal/domain"
)

func TestQueryBuilder(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var b queryBuilder
		assert.Equal(t, "", b.where())
		assert.Empty(t, b.args)
	})

	t.Run("placeholders are numbered across conditions", func(t *testing.T) {
		var b queryBuilder
		b.add("blood_group = %s", "O+")
		b.addArea("lat", "lon", &domain.BoundingBox{MinLat: 1, MinLon: 2, MaxLat: 3, MaxLon: 4})
		b.add("availability_status = %s", "available")

		assert.Equal(t,
			" WHERE blood_group = $1 AND lat BETWEEN $2 AND $3 AND lon BETWEEN $4 AND $5 AND availability_status = $6",
			b.where(),
		)
		assert.Equal(t, []interface{}{"O+", 1.0, 3.0, 2.0, 4.0, "available"}, b.args)
	})

	t.Run("nil area adds nothing", func(t *testing.T) {
		var b queryBuilder
		b.addArea("lat", "lon", nil)
		assert.Equal(t, "", b.where())
	})
}

func TestCoordinateOf(t *testing.T) {
	lat, lon := 12.97, 77.59
	assert.Nil(t, coordinateOf(nil, &lon))
	assert.Nil(t, coordinateOf(&lat, nil))
	assert.Equal(t, &domain.Coordinate{Lat: lat, Lon: lon}, coordinateOf(&lat, &lon))
}
