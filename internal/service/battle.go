// Package service validates battle requests, assembles teams and drives
// the engine. It is the boundary between the outer surfaces (HTTP, CLI)
// and the core match machinery.
package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/TeriYeaki/Pokemon-Battle/internal/engine"
	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
	"github.com/TeriYeaki/Pokemon-Battle/internal/roster"
)

// TeamSpec describes one side of a battle request.
type TeamSpec struct {
	Trainer     string             `json:"trainer"`
	Composition roster.Composition `json:"composition"`
	// Wildcard arms the team with a reserve Glitchmon.
	Wildcard bool `json:"wildcard"`
	// SurgeChance overrides the wildcard's surge probability; zero keeps
	// the default.
	SurgeChance float64 `json:"surge_chance,omitempty"`
}

// BattleRequest is a fully-specified match: mode, per-side criteria for
// the optimised mode, team specs and an optional RNG seed.
type BattleRequest struct {
	Mode       int      `json:"mode"`
	Criterion1 string   `json:"criterion1,omitempty"`
	Criterion2 string   `json:"criterion2,omitempty"`
	Team1      TeamSpec `json:"team1"`
	Team2      TeamSpec `json:"team2"`
	// Seed fixes the match's random source; zero draws a fresh seed.
	Seed int64 `json:"seed,omitempty"`
}

// BattleResult is the terminal outcome of a single match.
type BattleResult struct {
	Result    string   `json:"result"`
	Rounds    int      `json:"rounds"`
	Narration []string `json:"narration"`
}

// buildTeams validates the request and constructs both sides.
func buildTeams(req BattleRequest) (*roster.Team, *roster.Team, error) {
	mode, err := roster.ParseMode(req.Mode)
	if err != nil {
		return nil, nil, err
	}

	var crit1, crit2 game.Criterion
	if mode == roster.ModeOptimised {
		if crit1, err = game.ParseCriterion(req.Criterion1); err != nil {
			return nil, nil, fmt.Errorf("side1: %w", err)
		}
		if crit2, err = game.ParseCriterion(req.Criterion2); err != nil {
			return nil, nil, fmt.Errorf("side2: %w", err)
		}
	}

	team1, err := newTeam(teamName(req.Team1.Trainer, 1), mode, crit1, req.Team1)
	if err != nil {
		return nil, nil, fmt.Errorf("side1: %w", err)
	}
	team2, err := newTeam(teamName(req.Team2.Trainer, 2), mode, crit2, req.Team2)
	if err != nil {
		return nil, nil, fmt.Errorf("side2: %w", err)
	}
	return team1, team2, nil
}

func newTeam(trainer string, mode roster.Mode, crit game.Criterion, spec TeamSpec) (*roster.Team, error) {
	var opts []roster.TeamOption
	if spec.Wildcard {
		chance := spec.SurgeChance
		if chance == 0 {
			chance = game.DefaultSurgeChance
		}
		opts = append(opts, roster.WithWildcard(chance))
	}
	return roster.NewTeam(trainer, mode, crit, spec.Composition, opts...)
}

func teamName(trainer string, side int) string {
	if trainer != "" {
		return trainer
	}
	return fmt.Sprintf("Trainer %d", side)
}

// runOnce assembles fresh teams and plays a single match under the given
// seed.
func runOnce(req BattleRequest, seed int64, opts ...engine.Option) (engine.Outcome, error) {
	team1, team2, err := buildTeams(req)
	if err != nil {
		return engine.Outcome{}, err
	}
	b, err := engine.New(team1, team2, rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		return engine.Outcome{}, err
	}
	return b.Run()
}

// RunBattle validates the request, runs the match to its terminal state
// and returns the outcome. Engine options (such as a narration observer)
// are passed through.
func RunBattle(req BattleRequest, opts ...engine.Option) (*BattleResult, error) {
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	outcome, err := runOnce(req, seed, opts...)
	if err != nil {
		return nil, err
	}
	return &BattleResult{
		Result:    outcome.Result(),
		Rounds:    outcome.Rounds,
		Narration: outcome.Narration,
	}, nil
}
