package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/haulplan/core/schedule"
)

// MultiStart runs strategy from the empty schedule on starts forks of g at
// the same time. Fork i is seeded with seed+i and so is its Env. The forks
// share g's transition cache. It returns the best result and all of them
// in start order; the first error cancels the other runs.
func MultiStart(ctx context.Context, g *schedule.Generator, strategy Strategy, env Env, starts int, seed uint64) (*Result, []*Result, error) {
	if starts < 1 {
		return nil, nil, fmt.Errorf("multi-start needs at least one start, got %d", starts)
	}
	results := make([]*Result, starts)
	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < starts; i++ {
		fork := g.Fork(seed + uint64(i))
		runEnv := env
		runEnv.Seed = seed + uint64(i)
		eg.Go(func() error {
			res, err := strategy.Run(ctx, runEnv, fork, fork.EmptySchedule())
			if err != nil {
				return fmt.Errorf("start %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.BestScore > best.BestScore {
			best = r
		}
	}
	return best, results, nil
}
