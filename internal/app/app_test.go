package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/config"
	"github.com/donor-matching-service/internal/domain"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Store:    config.StoreConfig{Driver: config.StoreDriverMemory},
		Matching: config.MatchingConfig{DefaultRadiusKm: 4.5, MaxResults: 10},
	}
}

func TestOpenRepositories_Memory(t *testing.T) {
	repos, err := OpenRepositories(memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()
	require.NoError(t, repos.Health(ctx))

	bank, err := repos.BloodBanks.GetByID(ctx, "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")
	require.NoError(t, err)
	assert.Equal(t, "City Blood Bank", bank.Name)
}

func TestOpenRepositories_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = "sqlite"

	_, err := OpenRepositories(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestNewMatchUseCase_UsesConfiguredRadius(t *testing.T) {
	cfg := memoryConfig()
	repos, err := OpenRepositories(cfg, zap.NewNop())
	require.NoError(t, err)

	uc := NewMatchUseCase(cfg, repos, nil, nil, zap.NewNop())

	group := "O+"
	ranked, err := uc.MatchRequest(context.Background(), domain.SearchCriteria{
		Seeker:     domain.Coordinate{Lat: 12.9716, Lon: 77.5946},
		BloodGroup: &group,
	})
	require.NoError(t, err)

	// Central Blood Center (5.06 km) is outside the configured 4.5 km default
	require.Len(t, ranked, 2)
	assert.Equal(t, "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11", ranked[0].Candidate.ID)
	assert.Equal(t, "c0eebc99-9c0b-4ef8-bb6d-6bb9bd380a13", ranked[1].Candidate.ID)
}
