// Package batch scores many towns against one preference profile.
// Each scoring call is independent, so the work is a parallel map
// with a bounded worker count; only the hobby lookups do I/O.
package batch

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/townmatch/townmatch/internal/database"
	"github.com/townmatch/townmatch/internal/match"
)

// HobbyResolver returns the available hobby names for a town.
// database.DB satisfies it.
type HobbyResolver interface {
	TownHobbies(ctx context.Context, townID string) ([]string, error)
}

// Result pairs a town with its match outcome.
type Result struct {
	Town  database.Town      `json:"town"`
	Match *match.MatchResult `json:"match"`
}

// Runner fans scoring work out across a bounded worker pool.
type Runner struct {
	engine  *match.Engine
	hobbies HobbyResolver
	workers int
}

// NewRunner returns a Runner. workers below 1 is treated as 1.
func NewRunner(engine *match.Engine, hobbies HobbyResolver, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{engine: engine, hobbies: hobbies, workers: workers}
}

// Run scores every town against the profile and returns results
// sorted by overall score, best first (ties by town name). A failed
// hobby lookup or a cancelled context aborts the whole batch.
func (r *Runner) Run(ctx context.Context, profile *match.PreferenceProfile, towns []database.Town) ([]Result, error) {
	results := make([]Result, len(towns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range towns {
		i := i
		g.Go(func() error {
			town := towns[i]

			hobbies, err := r.hobbies.TownHobbies(ctx, town.ID)
			if err != nil {
				return err
			}

			m, err := r.engine.Score(profile, town.Candidate(hobbies))
			if err != nil {
				return err
			}

			results[i] = Result{Town: town, Match: m}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Match.Overall != results[j].Match.Overall {
			return results[i].Match.Overall > results[j].Match.Overall
		}
		return results[i].Town.Name < results[j].Town.Name
	})

	return results, nil
}
