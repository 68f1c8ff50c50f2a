package matching

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/pkg/geo"
)

// FetchFunc loads raw candidates from a data source. Any criteria it needs are
// captured by the closure.
type FetchFunc func(ctx context.Context) ([]domain.Candidate, error)

// Service runs the fetch → filter → rank pipeline.
type Service struct {
	logger          *zap.Logger
	defaultRadiusKm float64
}

// NewService creates a Service; a non-positive defaultRadiusKm falls back to domain.DefaultRadiusKm.
func NewService(logger *zap.Logger, defaultRadiusKm float64) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultRadiusKm <= 0 || !geo.ValidateRadius(defaultRadiusKm) {
		defaultRadiusKm = domain.DefaultRadiusKm
	}
	return &Service{
		logger:          logger,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// DefaultRadiusKm returns the radius applied when criteria leave it unset.
func (s *Service) DefaultRadiusKm() float64 {
	return s.defaultRadiusKm
}

// FindMatches fetches candidates, filters them by criteria and ranks them by
// distance from criteria.Seeker.
//
// A fetch failure is returned wrapped with domain.ErrDataSource and never
// turned into an empty result. If ctx is done once fetch returns, ctx.Err() is
// returned and nothing is filtered or ranked.
func (s *Service) FindMatches(ctx context.Context, criteria domain.SearchCriteria, fetch FetchFunc) ([]domain.RankedResult, error) {
	if err := criteria.Seeker.Validate(); err != nil {
		return nil, err
	}

	radius := s.defaultRadiusKm
	if criteria.RadiusKm != nil {
		radius = *criteria.RadiusKm
	}
	if !geo.ValidateRadius(radius) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRadius, radius)
	}

	if fetch == nil {
		return nil, fmt.Errorf("%w: no fetch collaborator", domain.ErrDataSource)
	}

	candidates, err := fetch(ctx)
	if err != nil {
		s.logger.Warn("Candidate fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filtered := Filter(candidates, criteria)

	ranked, stats, err := RankWithStats(filtered, criteria.Seeker, &radius)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Matches ranked",
		zap.Int("fetched", len(candidates)),
		zap.Int("filtered", len(filtered)),
		zap.Int("missing_coordinate", stats.MissingCoordinate),
		zap.Int("invalid_coordinate", stats.InvalidCoordinate),
		zap.Int("outside_radius", stats.OutsideRadius),
		zap.Int("ranked", stats.Ranked),
		zap.Float64("radius_km", radius),
	)

	return ranked, nil
}
