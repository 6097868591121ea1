package roster

import (
	"errors"
	"testing"

	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
)

func newPokemon(t *testing.T, sp game.Species) game.Pokemon {
	t.Helper()
	p, err := game.NewPokemon(sp, 1)
	if err != nil {
		t.Fatalf("NewPokemon(%s): %v", sp, err)
	}
	return p
}

func speciesOf(members []game.Pokemon) []game.Species {
	out := make([]game.Species, len(members))
	for i, p := range members {
		out[i] = p.Species()
	}
	return out
}

func equalSpecies(a, b []game.Species) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStack_LIFO(t *testing.T) {
	s := NewStack(3)
	for _, sp := range []game.Species{game.SpeciesSquirtle, game.SpeciesBulbasaur, game.SpeciesCharmander} {
		if err := s.Insert(newPokemon(t, sp)); err != nil {
			t.Fatalf("Insert(%s): %v", sp, err)
		}
	}
	if err := s.Insert(newPokemon(t, game.SpeciesCharmander)); !errors.Is(err, ErrRosterFull) {
		t.Errorf("insert into full stack: err = %v, want ErrRosterFull", err)
	}
	// Withdraw order reverses push order.
	for _, want := range []game.Species{game.SpeciesCharmander, game.SpeciesBulbasaur, game.SpeciesSquirtle} {
		p, err := s.Withdraw()
		if err != nil {
			t.Fatal(err)
		}
		if p.Species() != want {
			t.Errorf("withdrew %s, want %s", p.Species(), want)
		}
	}
	if _, err := s.Withdraw(); !errors.Is(err, ErrEmptyRoster) {
		t.Errorf("withdraw from empty stack: err = %v, want ErrEmptyRoster", err)
	}
}

func TestQueue_FIFOWithWraparound(t *testing.T) {
	q := NewCircularQueue(2)
	q.Insert(newPokemon(t, game.SpeciesCharmander))
	q.Insert(newPokemon(t, game.SpeciesBulbasaur))
	if err := q.Insert(newPokemon(t, game.SpeciesSquirtle)); !errors.Is(err, ErrRosterFull) {
		t.Errorf("insert into full queue: err = %v, want ErrRosterFull", err)
	}

	// Rotate several times past the ring boundary.
	want := []game.Species{
		game.SpeciesCharmander, game.SpeciesBulbasaur,
		game.SpeciesCharmander, game.SpeciesBulbasaur,
		game.SpeciesCharmander,
	}
	for i, sp := range want {
		p, err := q.Withdraw()
		if err != nil {
			t.Fatal(err)
		}
		if p.Species() != sp {
			t.Fatalf("rotation %d: withdrew %s, want %s", i, p.Species(), sp)
		}
		if err := q.Insert(p); err != nil {
			t.Fatal(err)
		}
	}
	if q.Size() != 2 {
		t.Errorf("size = %d, want 2", q.Size())
	}
}

func TestSortedList_BestFirstWithPriorityTieBreak(t *testing.T) {
	// Level 1 across the board ties the primary value, so species priority
	// decides: Charmander (3) before Bulbasaur (2) before Squirtle (1).
	l := NewSortedList(3, game.CriterionLevel)
	for _, sp := range []game.Species{game.SpeciesSquirtle, game.SpeciesCharmander, game.SpeciesBulbasaur} {
		if err := l.Insert(newPokemon(t, sp)); err != nil {
			t.Fatal(err)
		}
	}
	want := []game.Species{game.SpeciesCharmander, game.SpeciesBulbasaur, game.SpeciesSquirtle}
	if got := speciesOf(l.SnapshotOrder()); !equalSpecies(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortedList_HigherAttributeFirst(t *testing.T) {
	// Two same-species members at different hp: the healthier one is
	// withdrawn first under the hp criterion.
	weak := newPokemon(t, game.SpeciesBulbasaur)
	weak.LoseHP(4) // hp 9 -> 5
	strong := newPokemon(t, game.SpeciesBulbasaur)

	l := NewSortedList(2, game.CriterionHP)
	if err := l.Insert(weak); err != nil {
		t.Fatal(err)
	}
	if err := l.Insert(strong); err != nil {
		t.Fatal(err)
	}
	first, err := l.Withdraw()
	if err != nil {
		t.Fatal(err)
	}
	if first.HP() != 9 {
		t.Errorf("first withdrawal hp = %d, want 9", first.HP())
	}
}

func TestSortedList_KeyRecomputedOnReinsert(t *testing.T) {
	a := newPokemon(t, game.SpeciesBulbasaur)
	b := newPokemon(t, game.SpeciesBulbasaur)
	l := NewSortedList(2, game.CriterionHP)
	l.Insert(a)
	l.Insert(b)

	front, err := l.Withdraw()
	if err != nil {
		t.Fatal(err)
	}
	front.LoseHP(4) // now the weaker of the two
	if err := l.Insert(front); err != nil {
		t.Fatal(err)
	}
	next, err := l.Withdraw()
	if err != nil {
		t.Fatal(err)
	}
	if next == front {
		t.Error("damaged member kept the front slot; key was not recomputed on reinsert")
	}
	if next.HP() != 9 {
		t.Errorf("front hp = %d, want 9", next.HP())
	}
}

func TestSnapshotOrder_PreservesDiscipline(t *testing.T) {
	rosters := map[string]Roster{
		"stack": NewStack(3),
		"queue": NewCircularQueue(3),
	}
	inserted := []game.Species{game.SpeciesSquirtle, game.SpeciesBulbasaur, game.SpeciesCharmander}
	for name, r := range rosters {
		for _, sp := range inserted {
			if err := r.Insert(newPokemon(t, sp)); err != nil {
				t.Fatalf("%s: Insert(%s): %v", name, sp, err)
			}
		}
		first := speciesOf(r.SnapshotOrder())
		second := speciesOf(r.SnapshotOrder())
		if !equalSpecies(first, inserted) {
			t.Errorf("%s: snapshot = %v, want insertion order %v", name, first, inserted)
		}
		if !equalSpecies(first, second) {
			t.Errorf("%s: repeated snapshots differ: %v then %v", name, first, second)
		}
		if r.Size() != len(inserted) {
			t.Errorf("%s: size = %d after snapshot, want %d", name, r.Size(), len(inserted))
		}
	}
}
