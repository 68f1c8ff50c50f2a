package matching

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/donor-matching-service/internal/domain"
)

// CombineFetchers runs fetchers concurrently and concatenates their results in
// argument order. The first failure cancels the others and is returned.
func CombineFetchers(fetchers ...FetchFunc) FetchFunc {
	return func(ctx context.Context) ([]domain.Candidate, error) {
		results := make([][]domain.Candidate, len(fetchers))

		g, gctx := errgroup.WithContext(ctx)
		for i, fetch := range fetchers {
			i, fetch := i, fetch
			g.Go(func() error {
				candidates, err := fetch(gctx)
				if err != nil {
					return err
				}
				results[i] = candidates
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		total := 0
		for _, r := range results {
			total += len(r)
		}

		combined := make([]domain.Candidate, 0, total)
		for _, r := range results {
			combined = append(combined, r...)
		}
		return combined, nil
	}
}

// StaticFetcher returns a FetchFunc serving a fixed candidate set.
func StaticFetcher(candidates []domain.Candidate) FetchFunc {
	return func(context.Context) ([]domain.Candidate, error) {
		return candidates, nil
	}
}
