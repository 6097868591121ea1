package roster

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
)

// MaxTeamSize caps the number of creatures a trainer may field.
const MaxTeamSize = 6

// Composition is the validated creature-count triple a team is populated
// from.
type Composition struct {
	Charmanders int `json:"charmanders" yaml:"charmanders"`
	Bulbasaurs  int `json:"bulbasaurs" yaml:"bulbasaurs"`
	Squirtles   int `json:"squirtles" yaml:"squirtles"`
}

// Total is the team size this composition produces.
func (c Composition) Total() int { return c.Charmanders + c.Bulbasaurs + c.Squirtles }

// Validate enforces the composition contract: no negative counts and a
// total between 1 and MaxTeamSize.
func (c Composition) Validate() error {
	if c.Charmanders < 0 || c.Bulbasaurs < 0 || c.Squirtles < 0 {
		return fmt.Errorf("%w: creature counts must be non-negative", game.ErrConfiguration)
	}
	if total := c.Total(); total < 1 || total > MaxTeamSize {
		return fmt.Errorf("%w: total creatures must be between 1 and %d, got %d", game.ErrConfiguration, MaxTeamSize, total)
	}
	return nil
}

// Team is one trainer's side of a battle: a populated roster plus an
// optional un-activated reserve wildcard.
type Team struct {
	trainer      string
	mode         Mode
	criterion    game.Criterion
	roster       Roster
	hasWildcard  bool
	wildcardUsed bool
	surgeChance  float64
}

// TeamOption configures optional team behavior.
type TeamOption func(*Team)

// WithWildcard arms the team with a reserve Glitchmon that activates once
// the roster is otherwise empty.
func WithWildcard(surgeChance float64) TeamOption {
	return func(t *Team) {
		t.hasWildcard = true
		t.surgeChance = surgeChance
	}
}

// NewTeam validates the inputs and populates a roster under the given
// discipline. Population order is fixed per discipline: the set (LIFO)
// roster pushes Squirtles, Bulbasaurs then Charmanders so Charmanders
// fight first; the rotating (FIFO) roster enqueues Charmanders, Bulbasaurs
// then Squirtles; the optimised roster keys each creature on the criterion
// before inserting.
func NewTeam(trainer string, mode Mode, criterion game.Criterion, comp Composition, opts ...TeamOption) (*Team, error) {
	if err := comp.Validate(); err != nil {
		return nil, err
	}
	t := &Team{trainer: trainer, mode: mode, criterion: criterion, surgeChance: game.DefaultSurgeChance}
	for _, opt := range opts {
		opt(t)
	}

	// The wildcard never needs extra capacity: it only activates once the
	// roster is empty, and the validated total is at least 1.
	capacity := comp.Total()

	var population []game.Species
	switch mode {
	case ModeSet:
		t.roster = NewStack(capacity)
		population = buildPopulation(comp, ModeSet)
	case ModeRotating:
		t.roster = NewCircularQueue(capacity)
		population = buildPopulation(comp, ModeRotating)
	case ModeOptimised:
		if _, err := game.ParseCriterion(string(criterion)); err != nil {
			return nil, err
		}
		t.roster = NewSortedList(capacity, criterion)
		population = buildPopulation(comp, ModeOptimised)
	default:
		return nil, fmt.Errorf("%w: invalid battle mode %d", game.ErrConfiguration, int(mode))
	}

	for _, sp := range population {
		p, err := game.NewPokemon(sp, 1)
		if err != nil {
			return nil, err
		}
		if err := t.roster.Insert(p); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewCustomTeam wraps an already-populated roster, for matchups that do
// not come from a standard composition.
func NewCustomTeam(trainer string, r Roster, opts ...TeamOption) *Team {
	t := &Team{trainer: trainer, roster: r, surgeChance: game.DefaultSurgeChance}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// buildPopulation expands a composition into the species sequence the
// roster is populated in.
func buildPopulation(comp Composition, mode Mode) []game.Species {
	out := make([]game.Species, 0, comp.Total())
	appendN := func(sp game.Species, n int) {
		for i := 0; i < n; i++ {
			out = append(out, sp)
		}
	}
	if mode == ModeSet {
		appendN(SpeciesOrderSet[0], comp.Squirtles)
		appendN(SpeciesOrderSet[1], comp.Bulbasaurs)
		appendN(SpeciesOrderSet[2], comp.Charmanders)
		return out
	}
	appendN(game.SpeciesCharmander, comp.Charmanders)
	appendN(game.SpeciesBulbasaur, comp.Bulbasaurs)
	appendN(game.SpeciesSquirtle, comp.Squirtles)
	return out
}

// SpeciesOrderSet is the push order for the set (LIFO) discipline.
var SpeciesOrderSet = [3]game.Species{game.SpeciesSquirtle, game.SpeciesBulbasaur, game.SpeciesCharmander}

func (t *Team) Trainer() string { return t.trainer }
func (t *Team) Mode() Mode      { return t.mode }
func (t *Team) IsEmpty() bool   { return t.roster.IsEmpty() }
func (t *Team) Size() int       { return t.roster.Size() }

// Withdraw hands the next fighter to the caller, transferring ownership.
func (t *Team) Withdraw() (game.Pokemon, error) { return t.roster.Withdraw() }

// Insert returns a surviving fighter to the roster. Under the optimised
// discipline the sort key is recomputed against the active criterion, so
// level-ups earned this round affect next round's turn order.
func (t *Team) Insert(p game.Pokemon) error { return t.roster.Insert(p) }

// HasUnusedWildcard reports whether a reserve wildcard is still waiting.
func (t *Team) HasUnusedWildcard() bool { return t.hasWildcard && !t.wildcardUsed }

// ActivateWildcard instantiates the reserve Glitchmon with the match's
// random source and inserts it. It is a no-op error to call without an
// unused reserve.
func (t *Team) ActivateWildcard(rng *rand.Rand) error {
	if !t.HasUnusedWildcard() {
		return fmt.Errorf("%w: team %s has no unused wildcard", game.ErrConfiguration, t.trainer)
	}
	g, err := game.NewGlitchmon(rng, t.surgeChance)
	if err != nil {
		return err
	}
	if err := t.roster.Insert(g); err != nil {
		return err
	}
	t.wildcardUsed = true
	return nil
}

// SnapshotOrder exposes the roster's display view.
func (t *Team) SnapshotOrder() []game.Pokemon { return t.roster.SnapshotOrder() }

// String renders the roster members in display order.
func (t *Team) String() string {
	members := t.roster.SnapshotOrder()
	if len(members) == 0 {
		return "No Pokemon in team."
	}
	details := make([]string, 0, len(members))
	for _, p := range members {
		details = append(details, p.String())
	}
	return strings.Join(details, ", ")
}
