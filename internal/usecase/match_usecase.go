package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
	"github.com/donor-matching-service/internal/matching"
	apperrors "github.com/donor-matching-service/internal/pkg/errors"
	"github.com/donor-matching-service/internal/pkg/geo"
	"github.com/donor-matching-service/internal/pkg/metrics"
	"github.com/donor-matching-service/internal/usecase/dto"
)

// Категории поиска, они же префиксы ключей кеша и метки метрик
const (
	CategoryMatches = "matches"
	CategoryDonors  = "donors"
	CategoryOxygen  = "oxygen"
	CategoryRequest = "request"
)

// MatchUseCase - use case для поиска ближайших кандидатов
type MatchUseCase struct {
	matcher    *matching.Service
	donorRepo  repository.DonorRepository
	bankRepo   repository.BloodBankRepository
	oxygenRepo repository.OxygenSupplierRepository
	cacheRepo  repository.CacheRepository
	metrics    *metrics.Collector
	logger     *zap.Logger
	cacheTTL   time.Duration
	maxResults int
}

// NewMatchUseCase - создание нового MatchUseCase. cacheRepo и collector могут быть nil.
func NewMatchUseCase(
	matcher *matching.Service,
	donorRepo repository.DonorRepository,
	bankRepo repository.BloodBankRepository,
	oxygenRepo repository.OxygenSupplierRepository,
	cacheRepo repository.CacheRepository,
	collector *metrics.Collector,
	logger *zap.Logger,
	cacheTTL time.Duration,
	maxResults int,
) *MatchUseCase {
	if maxResults <= 0 {
		maxResults = 100
	}
	return &MatchUseCase{
		matcher:    matcher,
		donorRepo:  donorRepo,
		bankRepo:   bankRepo,
		oxygenRepo: oxygenRepo,
		cacheRepo:  cacheRepo,
		metrics:    collector,
		logger:     logger,
		cacheTTL:   cacheTTL,
		maxResults: maxResults,
	}
}

// SearchMatches - поиск кандидатов выбранных типов (по умолчанию всех)
func (uc *MatchUseCase) SearchMatches(ctx context.Context, req dto.MatchSearchRequest) (*dto.MatchSearchResponse, error) {
	return uc.search(ctx, CategoryMatches, req.Criteria(), req.CandidateKinds(), req.Limit)
}

// SearchDonors - доступные доноры и банки крови с нужной группой, одним списком
func (uc *MatchUseCase) SearchDonors(ctx context.Context, req dto.DonorSearchRequest) (*dto.MatchSearchResponse, error) {
	return uc.search(ctx, CategoryDonors, req.Criteria(), req.CandidateKinds(), req.Limit)
}

// SearchOxygen - поставщики кислорода по удалённости
func (uc *MatchUseCase) SearchOxygen(ctx context.Context, req dto.OxygenSearchRequest) (*dto.MatchSearchResponse, error) {
	return uc.search(ctx, CategoryOxygen, req.Criteria(), []domain.CandidateKind{domain.KindOxygenSupplier}, req.Limit)
}

// GetDonor - карточка донора по ID
func (uc *MatchUseCase) GetDonor(ctx context.Context, id string) (*dto.CandidateResponse, error) {
	return uc.getCandidate(ctx, id, uc.donorRepo.GetByID, apperrors.ErrDonorNotFound)
}

// GetOxygenSupplier - карточка поставщика кислорода по ID
func (uc *MatchUseCase) GetOxygenSupplier(ctx context.Context, id string) (*dto.CandidateResponse, error) {
	return uc.getCandidate(ctx, id, uc.oxygenRepo.GetByID, apperrors.ErrOxygenSupplierNotFound)
}

func (uc *MatchUseCase) getCandidate(
	ctx context.Context,
	id string,
	get func(ctx context.Context, id string) (*domain.Candidate, error),
	notFound *apperrors.AppError,
) (*dto.CandidateResponse, error) {
	c, err := get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		uc.logger.Error("Failed to get candidate", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := dto.ConvertCandidate(*c)
	return &resp, nil
}

// MatchRequest ranks donors and blood banks for a blood request raised outside HTTP. Results are not cached.
// The blood group is mandatory here; a missing one returns domain.ErrMissingBloodGroup.
func (uc *MatchUseCase) MatchRequest(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RankedResult, error) {
	if criteria.BloodGroup == nil || strings.TrimSpace(*criteria.BloodGroup) == "" {
		uc.metrics.ObserveSearch(CategoryRequest, metrics.OutcomeError, 0)
		return nil, domain.ErrMissingBloodGroup
	}
	kinds := []domain.CandidateKind{domain.KindDonor, domain.KindBloodBank}

	ranked, err := uc.matcher.FindMatches(ctx, criteria, uc.fetcher(criteria, kinds))
	if err != nil {
		uc.metrics.ObserveSearch(CategoryRequest, metrics.OutcomeError, 0)
		return nil, err
	}

	ranked = truncate(ranked, uc.maxResults)
	uc.metrics.ObserveSearch(CategoryRequest, metrics.OutcomeOK, len(ranked))
	return ranked, nil
}

func (uc *MatchUseCase) search(
	ctx context.Context,
	category string,
	criteria domain.SearchCriteria,
	kinds []domain.CandidateKind,
	limit int,
) (*dto.MatchSearchResponse, error) {
	if limit <= 0 || limit > uc.maxResults {
		limit = uc.maxResults
	}

	key := searchCacheKey(category, criteria, kinds, limit)
	if cached := uc.fromCache(ctx, key); cached != nil {
		uc.metrics.ObserveSearch(category, metrics.OutcomeCached, cached.Total)
		return cached, nil
	}

	ranked, err := uc.matcher.FindMatches(ctx, criteria, uc.fetcher(criteria, kinds))
	if err != nil {
		uc.logger.Error("Failed to find matches",
			zap.String("category", category),
			zap.Float64("lat", criteria.Seeker.Lat),
			zap.Float64("lon", criteria.Seeker.Lon),
			zap.Error(err),
		)
		uc.metrics.ObserveSearch(category, metrics.OutcomeError, 0)
		return nil, err
	}

	resp := dto.NewMatchSearchResponse(truncate(ranked, limit), uc.radius(criteria))
	uc.metrics.ObserveSearch(category, metrics.OutcomeOK, resp.Total)

	if uc.cacheRepo != nil && uc.cacheTTL > 0 {
		if err := uc.cacheRepo.SetJSON(ctx, key, resp, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache search result", zap.String("key", key), zap.Error(err))
		}
	}

	return resp, nil
}

func (uc *MatchUseCase) fromCache(ctx context.Context, key string) *dto.MatchSearchResponse {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return nil
	}

	var cached dto.MatchSearchResponse
	hit, err := uc.cacheRepo.GetJSON(ctx, key, &cached)
	if err != nil {
		// кеш недоступен - идём в хранилище
		uc.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !hit {
		return nil
	}

	cached.Cached = true
	return &cached
}

// fetcher строит FetchFunc по выбранным типам кандидатов с предфильтром в хранилище
func (uc *MatchUseCase) fetcher(criteria domain.SearchCriteria, kinds []domain.CandidateKind) matching.FetchFunc {
	var q repository.CandidateQuery
	if criteria.BloodGroup != nil {
		if g, ok := domain.ParseBloodGroup(*criteria.BloodGroup); ok {
			q.BloodGroup = g
		}
	}

	radius := uc.radius(criteria)
	if criteria.Seeker.Validate() == nil && geo.ValidateRadius(radius) {
		area := geo.BoundingBoxAround(criteria.Seeker, radius)
		q.Area = &area
	}

	fetchers := make([]matching.FetchFunc, 0, len(kinds))
	for _, kind := range kinds {
		switch kind {
		case domain.KindDonor:
			fetchers = append(fetchers, func(ctx context.Context) ([]domain.Candidate, error) {
				return uc.donorRepo.Find(ctx, q)
			})
		case domain.KindBloodBank:
			fetchers = append(fetchers, func(ctx context.Context) ([]domain.Candidate, error) {
				return uc.bankRepo.Find(ctx, q)
			})
		case domain.KindOxygenSupplier:
			fetchers = append(fetchers, func(ctx context.Context) ([]domain.Candidate, error) {
				return uc.oxygenRepo.Find(ctx, q)
			})
		}
	}

	return matching.CombineFetchers(fetchers...)
}

func (uc *MatchUseCase) radius(criteria domain.SearchCriteria) float64 {
	if criteria.RadiusKm != nil {
		return *criteria.RadiusKm
	}
	return uc.matcher.DefaultRadiusKm()
}

func truncate(ranked []domain.RankedResult, limit int) []domain.RankedResult {
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// searchCacheKey - детерминированный ключ кеша для набора критериев
func searchCacheKey(category string, criteria domain.SearchCriteria, kinds []domain.CandidateKind, limit int) string {
	payload, _ := json.Marshal(struct {
		Lat      float64                `json:"lat"`
		Lon      float64                `json:"lon"`
		Group    *string                `json:"g,omitempty"`
		Radius   *float64               `json:"r,omitempty"`
		Location string                 `json:"loc,omitempty"`
		Kinds    []domain.CandidateKind `json:"k"`
		Limit    int                    `json:"l"`
	}{
		Lat:      criteria.Seeker.Lat,
		Lon:      criteria.Seeker.Lon,
		Group:    criteria.BloodGroup,
		Radius:   criteria.RadiusKm,
		Location: criteria.LocationText,
		Kinds:    kinds,
		Limit:    limit,
	})

	sum := sha256.Sum256(payload)
	return "search:" + category + ":" + hex.EncodeToString(sum[:16])
}
