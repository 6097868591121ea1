// Package engine drives the round-resolution state machine for a battle
// between two teams. The engine owns the match's random source and both
// rosters; creatures move between a roster and the engine by exclusive
// ownership transfer, never by shared aliasing.
package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
	"github.com/TeriYeaki/Pokemon-Battle/internal/roster"
)

// ErrInvariantViolation marks an internal-consistency fault: a withdraw or
// reinsert failed even though the round guards say it cannot. It aborts the
// match and is never swallowed.
var ErrInvariantViolation = errors.New("battle invariant violated")

// State is the match outcome state. Once a terminal state is reached it
// never changes.
type State int

const (
	Ongoing State = iota
	Draw
	Side1Wins
	Side2Wins
)

func (s State) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Draw:
		return "draw"
	case Side1Wins:
		return "side1 wins"
	case Side2Wins:
		return "side2 wins"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Outcome is the terminal result of a battle run.
type Outcome struct {
	State     State    `json:"state"`
	Winner    string   `json:"winner"`
	Rounds    int      `json:"rounds"`
	Narration []string `json:"narration"`
}

// Result is the winning trainer's name, or "Draw".
func (o Outcome) Result() string {
	if o.State == Draw {
		return "Draw"
	}
	return o.Winner
}

// RoundObserver receives each narration line as the round resolves.
type RoundObserver func(line string)

// Option configures optional battle behavior.
type Option func(*Battle)

// WithObserver streams narration lines to fn as they are produced.
func WithObserver(fn RoundObserver) Option {
	return func(b *Battle) { b.observer = fn }
}

// Battle owns two teams and a round counter and resolves rounds until a
// terminal state holds.
type Battle struct {
	team1, team2 *roster.Team
	rng          *rand.Rand
	observer     RoundObserver
	round        int
	narration    []string
}

// New builds a battle over two populated teams. The random source drives
// wildcard surges and must be seeded by the caller for reproducible runs.
func New(team1, team2 *roster.Team, rng *rand.Rand, opts ...Option) (*Battle, error) {
	if team1 == nil || team2 == nil {
		return nil, fmt.Errorf("%w: both teams are required", game.ErrConfiguration)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: a random source is required", game.ErrConfiguration)
	}
	b := &Battle{team1: team1, team2: team2, rng: rng}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Run resolves rounds until the match terminates and returns the outcome.
func (b *Battle) Run() (Outcome, error) {
	for {
		state, err := b.playRound()
		if err != nil {
			return Outcome{}, err
		}
		if state != Ongoing {
			return Outcome{
				State:     state,
				Winner:    b.winnerName(state),
				Rounds:    b.round,
				Narration: b.narration,
			}, nil
		}
	}
}

func (b *Battle) winnerName(state State) string {
	switch state {
	case Side1Wins:
		return b.team1.Trainer()
	case Side2Wins:
		return b.team2.Trainer()
	}
	return ""
}

func (b *Battle) add(line string) {
	b.narration = append(b.narration, line)
	if b.observer != nil {
		b.observer(line)
	}
}

// playRound advances the state machine by one round: wildcard activation,
// terminal check, withdraw, speed-ordered exchange, attrition, resolution.
func (b *Battle) playRound() (State, error) {
	// A side is never eliminated while its wildcard remains unused.
	if b.team1.IsEmpty() && b.team1.HasUnusedWildcard() {
		if err := b.team1.ActivateWildcard(b.rng); err != nil {
			return Ongoing, fmt.Errorf("%w: activating side1 wildcard: %v", ErrInvariantViolation, err)
		}
	}
	if b.team2.IsEmpty() && b.team2.HasUnusedWildcard() {
		if err := b.team2.ActivateWildcard(b.rng); err != nil {
			return Ongoing, fmt.Errorf("%w: activating side2 wildcard: %v", ErrInvariantViolation, err)
		}
	}

	switch {
	case b.team1.IsEmpty() && b.team2.IsEmpty():
		return Draw, nil
	case b.team1.IsEmpty():
		return Side2Wins, nil
	case b.team2.IsEmpty():
		return Side1Wins, nil
	}

	b.round++

	f1, err := b.team1.Withdraw()
	if err != nil {
		return Ongoing, fmt.Errorf("%w: side1 withdraw failed on a non-empty roster: %v", ErrInvariantViolation, err)
	}
	f2, err := b.team2.Withdraw()
	if err != nil {
		return Ongoing, fmt.Errorf("%w: side2 withdraw failed on a non-empty roster: %v", ErrInvariantViolation, err)
	}

	// Higher speed strikes first; a defender who faints never counters.
	// Equal speed means both strikes land regardless of the other's fate.
	var f1Loss, f2Loss int
	switch {
	case f1.Speed() == f2.Speed():
		f2Loss, err = performAttack(f1, f2)
		if err != nil {
			return Ongoing, err
		}
		f1Loss, err = performAttack(f2, f1)
		if err != nil {
			return Ongoing, err
		}
	case f1.Speed() > f2.Speed():
		f2Loss, err = performAttack(f1, f2)
		if err != nil {
			return Ongoing, err
		}
		if !f2.IsFainted() {
			f1Loss, err = performAttack(f2, f1)
			if err != nil {
				return Ongoing, err
			}
		}
	default:
		f1Loss, err = performAttack(f2, f1)
		if err != nil {
			return Ongoing, err
		}
		if !f1.IsFainted() {
			f2Loss, err = performAttack(f1, f2)
			if err != nil {
				return Ongoing, err
			}
		}
	}

	// Attrition: both survivors bleed 1 hp, unmitigated.
	if !f1.IsFainted() && !f2.IsFainted() {
		f1.LoseHP(1)
		f2.LoseHP(1)
	}

	return Ongoing, b.resolveRound(f1, f2, f1Loss, f2Loss)
}

// performAttack applies one strike and returns the hp the defender lost.
func performAttack(attacker, defender game.Pokemon) (int, error) {
	raw, err := attacker.AttackDamage(defender.PokeType())
	if err != nil {
		return 0, err
	}
	return defender.TakeDamage(raw), nil
}

// resolveRound removes fainted fighters permanently, levels up a survivor
// whose opponent fainted, reinserts survivors, and narrates the round.
// When both fighters survive neither levels up.
func (b *Battle) resolveRound(f1, f2 game.Pokemon, f1Loss, f2Loss int) error {
	t1, t2 := b.team1.Trainer(), b.team2.Trainer()
	switch {
	case !f1.IsFainted() && !f2.IsFainted():
		if err := b.team1.Insert(f1); err != nil {
			return fmt.Errorf("%w: returning side1 fighter: %v", ErrInvariantViolation, err)
		}
		if err := b.team2.Insert(f2); err != nil {
			return fmt.Errorf("%w: returning side2 fighter: %v", ErrInvariantViolation, err)
		}
		b.add(fmt.Sprintf("Round %d: %s's %s attack %s's %s and loses %d HP while %s's %s loses %d HP",
			b.round, t1, f1.Name(), t2, f2.Name(), f1Loss, t2, f2.Name(), f2Loss))
	case f1.IsFainted():
		if !f2.IsFainted() {
			if err := levelUpAndReturn(f2, b.team2); err != nil {
				return err
			}
		}
		b.add(fmt.Sprintf("Round %d: %s's %s is fainted by %s's %s",
			b.round, t1, f1.Name(), t2, f2.Name()))
	default:
		if err := levelUpAndReturn(f1, b.team1); err != nil {
			return err
		}
		b.add(fmt.Sprintf("Round %d: %s's %s faints %s's %s",
			b.round, t1, f1.Name(), t2, f2.Name()))
	}
	return nil
}

func levelUpAndReturn(p game.Pokemon, team *roster.Team) error {
	if err := p.LevelUp(1); err != nil {
		return err
	}
	if err := team.Insert(p); err != nil {
		return fmt.Errorf("%w: returning round survivor: %v", ErrInvariantViolation, err)
	}
	return nil
}
