package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/donor-matching-service/internal/domain"
)

func TestService_FindMatches(t *testing.T) {
	svc := NewService(zap.NewNop(), 0)
	ctx := context.Background()

	t.Run("bangalore blood banks ranked from city blood bank", func(t *testing.T) {
		criteria := domain.SearchCriteria{
			Seeker:     cityBloodBankCoord,
			BloodGroup: strPtr("O+"),
			RadiusKm:   floatPtr(10),
		}

		got, err := svc.FindMatches(ctx, criteria, StaticFetcher(bangaloreBanks()))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11",
			"c0eebc99-9c0b-4ef8-bb6d-6bb9bd380a13",
			"b0eebc99-9c0b-4ef8-bb6d-6bb9bd380a12",
		}, ids(got))
	})

	t.Run("donors and banks merged and sorted", func(t *testing.T) {
		candidates := append([]domain.Candidate{
			donor("d-near", domain.BloodGroupBNeg, domain.AvailabilityAvailable, coord(12.9720, 77.5950)),
			donor("d-busy", domain.BloodGroupBNeg, domain.AvailabilityUnavailable, coord(12.9716, 77.5946)),
			donor("d-other", domain.BloodGroupAPos, domain.AvailabilityAvailable, coord(12.9716, 77.5946)),
		}, bangaloreBanks()...)

		got, err := svc.FindMatches(ctx, domain.SearchCriteria{
			Seeker:     domain.Coordinate{Lat: 12.9716, Lon: 77.5946},
			BloodGroup: strPtr("B-"),
		}, StaticFetcher(candidates))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11",
			"d-near",
			"c0eebc99-9c0b-4ef8-bb6d-6bb9bd380a13",
			"b0eebc99-9c0b-4ef8-bb6d-6bb9bd380a12",
		}, ids(got))
	})

	t.Run("configured default radius applies when unset", func(t *testing.T) {
		narrow := NewService(zap.NewNop(), 4.5)
		assert.Equal(t, 4.5, narrow.DefaultRadiusKm())

		got, err := narrow.FindMatches(ctx, domain.SearchCriteria{Seeker: cityBloodBankCoord}, StaticFetcher(bangaloreBanks()))
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("fetch error is propagated", func(t *testing.T) {
		fetchErr := errors.New("connection refused")
		fetch := func(context.Context) ([]domain.Candidate, error) { return nil, fetchErr }

		got, err := svc.FindMatches(ctx, domain.SearchCriteria{Seeker: cityBloodBankCoord}, fetch)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, fetchErr)
		assert.ErrorIs(t, err, domain.ErrDataSource)
	})

	t.Run("fetch receives the caller context", func(t *testing.T) {
		type key struct{}
		callerCtx := context.WithValue(ctx, key{}, "v")

		var seen any
		fetch := func(c context.Context) ([]domain.Candidate, error) {
			seen = c.Value(key{})
			return nil, nil
		}

		got, err := svc.FindMatches(callerCtx, domain.SearchCriteria{Seeker: cityBloodBankCoord}, fetch)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, "v", seen)
	})

	t.Run("cancelled while fetching", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		fetch := func(context.Context) ([]domain.Candidate, error) {
			cancel()
			return bangaloreBanks(), nil
		}

		got, err := svc.FindMatches(cctx, domain.SearchCriteria{Seeker: cityBloodBankCoord}, fetch)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid seeker is rejected before fetching", func(t *testing.T) {
		called := false
		fetch := func(context.Context) ([]domain.Candidate, error) {
			called = true
			return nil, nil
		}

		_, err := svc.FindMatches(ctx, domain.SearchCriteria{Seeker: domain.Coordinate{Lat: 0, Lon: 181}}, fetch)
		assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
		assert.False(t, called)
	})

	t.Run("invalid radius", func(t *testing.T) {
		_, err := svc.FindMatches(ctx, domain.SearchCriteria{Seeker: cityBloodBankCoord, RadiusKm: floatPtr(-3)}, StaticFetcher(nil))
		assert.ErrorIs(t, err, domain.ErrInvalidRadius)
	})

	t.Run("nil fetch", func(t *testing.T) {
		_, err := svc.FindMatches(ctx, domain.SearchCriteria{Seeker: cityBloodBankCoord}, nil)
		assert.ErrorIs(t, err, domain.ErrDataSource)
	})

	t.Run("unknown blood group returns empty result", func(t *testing.T) {
		got, err := svc.FindMatches(ctx, domain.SearchCriteria{Seeker: cityBloodBankCoord, BloodGroup: strPtr("X")}, StaticFetcher(bangaloreBanks()))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCombineFetchers(t *testing.T) {
	ctx := context.Background()

	t.Run("concatenates in argument order", func(t *testing.T) {
		banks := bangaloreBanks()
		fetch := CombineFetchers(
			StaticFetcher(banks[2:]),
			StaticFetcher(nil),
			StaticFetcher(banks[:2]),
		)

		got, err := fetch(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"c0eebc99-9c0b-4ef8-bb6d-6bb9bd380a13",
			"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11",
			"b0eebc99-9c0b-4ef8-bb6d-6bb9bd380a12",
		}, candidateIDs(got))
	})

	t.Run("first error wins and cancels others", func(t *testing.T) {
		boom := errors.New("boom")
		slow := func(c context.Context) ([]domain.Candidate, error) {
			<-c.Done()
			return nil, c.Err()
		}
		failing := func(context.Context) ([]domain.Candidate, error) { return nil, boom }

		_, err := CombineFetchers(slow, failing)(ctx)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no fetchers", func(t *testing.T) {
		got, err := CombineFetchers()(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
