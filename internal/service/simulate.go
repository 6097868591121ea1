package service

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TeriYeaki/Pokemon-Battle/internal/engine"
	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
)

// MaxSimulationRuns bounds a single aggregate-simulation request.
const MaxSimulationRuns = 100000

// SimulationRequest asks for an aggregate over many runs of the same
// match configuration under varying seeds.
type SimulationRequest struct {
	BattleRequest
	Runs int `json:"runs"`
	// Parallelism caps concurrent runs; zero uses GOMAXPROCS.
	Parallelism int `json:"parallelism,omitempty"`
}

// SimulationResult aggregates terminal outcomes across runs. The round
// percentiles describe match length: 68% (resp. 95%) of runs finished in
// at most that many rounds.
type SimulationResult struct {
	Runs       int    `json:"runs"`
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Team1Wins  int    `json:"team1_wins"`
	Team2Wins  int    `json:"team2_wins"`
	Draws      int    `json:"draws"`
	Rounds68th int    `json:"rounds_68th"`
	Rounds95th int    `json:"rounds_95th"`
}

// Simulate plays req.Runs independent seeded matches in parallel and
// aggregates the outcomes. Seeds derive from the request seed so a fixed
// seed reproduces the whole aggregate.
func Simulate(ctx context.Context, req SimulationRequest) (*SimulationResult, error) {
	if req.Runs < 1 || req.Runs > MaxSimulationRuns {
		return nil, fmt.Errorf("%w: runs must be between 1 and %d, got %d", game.ErrConfiguration, MaxSimulationRuns, req.Runs)
	}
	// Validate once up front so a bad request fails before any run starts.
	if _, _, err := buildTeams(req.BattleRequest); err != nil {
		return nil, err
	}

	baseSeed := req.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	parallelism := req.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	states := make([]engine.State, req.Runs)
	rounds := make([]int, req.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := 0; i < req.Runs; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcome, err := runOnce(req.BattleRequest, baseSeed+int64(i))
			if err != nil {
				return err
			}
			rounds[i] = outcome.Rounds
			states[i] = outcome.State
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &SimulationResult{
		Runs:  req.Runs,
		Team1: teamName(req.Team1.Trainer, 1),
		Team2: teamName(req.Team2.Trainer, 2),
	}
	for _, s := range states {
		switch s {
		case engine.Draw:
			res.Draws++
		case engine.Side1Wins:
			res.Team1Wins++
		case engine.Side2Wins:
			res.Team2Wins++
		}
	}

	sort.Ints(rounds)
	res.Rounds68th = percentile(rounds, 0.68)
	res.Rounds95th = percentile(rounds, 0.95)
	return res, nil
}

// percentile reads the q-quantile out of an ascending-sorted slice.
func percentile(sorted []int, q float64) int {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
