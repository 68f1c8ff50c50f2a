// Package app собирает зависимости, общие для cmd/api, cmd/worker и cmd/matchctl.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/config"
	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/domain/repository"
	"github.com/donor-matching-service/internal/matching"
	"github.com/donor-matching-service/internal/pkg/metrics"
	"github.com/donor-matching-service/internal/repository/memory"
	"github.com/donor-matching-service/internal/repository/postgres"
	"github.com/donor-matching-service/internal/usecase"
)

// Repositories - источники кандидатов, выбранные STORE_DRIVER
type Repositories struct {
	Donors     repository.DonorRepository
	BloodBanks repository.BloodBankRepository
	Oxygen     repository.OxygenSupplierRepository

	db *postgres.DB
}

// OpenRepositories connects to PostgreSQL or builds the seeded in-memory store.
func OpenRepositories(cfg *config.Config, logger *zap.Logger) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.NewSeededStore()
		logger.Info("Using in-memory candidate store",
			zap.Int("blood_banks", store.Len(domain.KindBloodBank)),
			zap.Int("oxygen_suppliers", store.Len(domain.KindOxygenSupplier)))

		return &Repositories{
			Donors:     memory.NewDonorRepository(store),
			BloodBanks: memory.NewBloodBankRepository(store),
			Oxygen:     memory.NewOxygenSupplierRepository(store),
		}, nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}

		return &Repositories{
			Donors:     postgres.NewDonorRepository(db),
			BloodBanks: postgres.NewBloodBankRepository(db),
			Oxygen:     postgres.NewOxygenSupplierRepository(db),
			db:         db,
		}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

// Health pings the database; the in-memory store is always healthy.
func (r *Repositories) Health(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.Health(ctx)
}

func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// NewMatchUseCase builds the matching use case with the configured radius, limits and cache TTL.
// cacheRepo and collector may be nil.
func NewMatchUseCase(
	cfg *config.Config,
	repos *Repositories,
	cacheRepo repository.CacheRepository,
	collector *metrics.Collector,
	logger *zap.Logger,
) *usecase.MatchUseCase {
	return usecase.NewMatchUseCase(
		matching.NewService(logger, cfg.Matching.DefaultRadiusKm),
		repos.Donors,
		repos.BloodBanks,
		repos.Oxygen,
		cacheRepo,
		collector,
		logger,
		cfg.Cache.SearchCacheTTL,
		cfg.Matching.MaxResults,
	)
}
