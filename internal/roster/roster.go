// Package roster implements the fixed-capacity ordered collections a team
// fights from. A roster's discipline (LIFO, FIFO or priority-ordered) is
// fixed at construction and decides which creature is withdrawn each round.
package roster

import (
	"errors"
	"fmt"

	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
)

var (
	// ErrEmptyRoster is returned by Withdraw on an empty roster. The
	// battle engine guards against it; if it still surfaces there it is
	// promoted to an invariant violation.
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrRosterFull is returned by Insert once the roster holds its full
	// build-time capacity.
	ErrRosterFull = errors.New("roster is full")
)

// Roster is a fixed-capacity ordered collection of live creatures.
// Withdraw transfers exclusive ownership of the returned creature to the
// caller; Insert transfers it back.
type Roster interface {
	Insert(p game.Pokemon) error
	Withdraw() (game.Pokemon, error)
	IsEmpty() bool
	Size() int
	// SnapshotOrder returns a read-only view of the members in display
	// order without permanently disturbing the discipline order.
	SnapshotOrder() []game.Pokemon
}

// Mode selects the roster discipline for a match.
type Mode int

const (
	// ModeSet fights in reverse population order (LIFO).
	ModeSet Mode = iota
	// ModeRotating cycles fighters in population order (FIFO).
	ModeRotating
	// ModeOptimised fights best-first by a chosen attribute.
	ModeOptimised
)

// ParseMode validates a numeric battle mode.
func ParseMode(n int) (Mode, error) {
	switch n {
	case 0:
		return ModeSet, nil
	case 1:
		return ModeRotating, nil
	case 2:
		return ModeOptimised, nil
	}
	return 0, fmt.Errorf("%w: invalid battle mode %d (want 0, 1 or 2)", game.ErrConfiguration, n)
}

func (m Mode) String() string {
	switch m {
	case ModeSet:
		return "set"
	case ModeRotating:
		return "rotating"
	case ModeOptimised:
		return "optimised"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}
