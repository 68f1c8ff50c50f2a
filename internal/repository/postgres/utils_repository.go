package postgres

import (
	"fmt"
	"strings"

	"github.com/donor-matching-service/internal/domain"
)

// queryBuilder собирает WHERE-условия с позиционными параметрами $n
type queryBuilder struct {
	conditions []string
	args       []interface{}
}

func (b *queryBuilder) add(condition string, args ...interface{}) {
	placeholders := make([]interface{}, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", len(b.args)+i+1)
	}
	b.conditions = append(b.conditions, fmt.Sprintf(condition, placeholders...))
	b.args = append(b.args, args...)
}

// addArea ограничивает выборку bounding box'ом; строки без координат отсекаются
func (b *queryBuilder) addArea(latCol, lonCol string, area *domain.BoundingBox) {
	if area == nil {
		return
	}
	b.add(latCol+" BETWEEN %s AND %s", area.MinLat, area.MaxLat)
	b.add(lonCol+" BETWEEN %s AND %s", area.MinLon, area.MaxLon)
}

func (b *queryBuilder) where() string {
	if len(b.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conditions, " AND ")
}

// coordinateOf returns nil unless both columns are present.
func coordinateOf(lat, lon *float64) *domain.Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Coordinate{Lat: *lat, Lon: *lon}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
