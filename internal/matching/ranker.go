package matching

import (
	"fmt"
	"sort"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/pkg/geo"
)

// RankStats counts what happened to each candidate during ranking.
type RankStats struct {
	Input             int
	MissingCoordinate int
	InvalidCoordinate int
	OutsideRadius     int
	Ranked            int
}

// Rank attaches the distance from seeker to each candidate, drops candidates
// farther than radiusKm (domain.DefaultRadiusKm when nil) and sorts the rest
// nearest first. Candidates at equal distance keep their input order.
func Rank(candidates []domain.Candidate, seeker domain.Coordinate, radiusKm *float64) ([]domain.RankedResult, error) {
	ranked, _, err := RankWithStats(candidates, seeker, radiusKm)
	return ranked, err
}

// RankWithStats is Rank plus a breakdown of excluded candidates.
func RankWithStats(candidates []domain.Candidate, seeker domain.Coordinate, radiusKm *float64) ([]domain.RankedResult, RankStats, error) {
	stats := RankStats{Input: len(candidates)}

	if err := seeker.Validate(); err != nil {
		return nil, stats, err
	}

	radius := domain.DefaultRadiusKm
	if radiusKm != nil {
		radius = *radiusKm
	}
	if !geo.ValidateRadius(radius) {
		return nil, stats, fmt.Errorf("%w: %v", domain.ErrInvalidRadius, radius)
	}

	ranked := make([]domain.RankedResult, 0, len(candidates))
	for _, c := range candidates {
		if !c.HasCoordinate() {
			stats.MissingCoordinate++
			continue
		}
		if err := c.Coordinate.Validate(); err != nil {
			stats.InvalidCoordinate++
			continue
		}

		distance := geo.DistanceKm(seeker, *c.Coordinate)
		if distance > radius {
			stats.OutsideRadius++
			continue
		}

		ranked = append(ranked, domain.RankedResult{
			Candidate:  c,
			DistanceKm: distance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	stats.Ranked = len(ranked)
	return ranked, stats, nil
}
