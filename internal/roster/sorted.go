package roster

import (
	"sort"

	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
)

// SortedList is the priority discipline: members are kept in ascending
// sort-key order and Withdraw removes the front (smallest key, i.e. the
// best fighter under the active criterion). The key is recomputed from the
// criterion at every insert, so a creature that leveled up between rounds
// re-enters at its new rank.
type SortedList struct {
	items     []game.Pokemon
	capacity  int
	criterion game.Criterion
}

// NewSortedList builds an empty priority roster ordered by the given
// criterion.
func NewSortedList(capacity int, criterion game.Criterion) *SortedList {
	return &SortedList{items: make([]game.Pokemon, 0, capacity), capacity: capacity, criterion: criterion}
}

func (l *SortedList) Insert(p game.Pokemon) error {
	if len(l.items) >= l.capacity {
		return ErrRosterFull
	}
	if err := p.ComputeSortKey(l.criterion); err != nil {
		return err
	}
	key, err := p.SortKey()
	if err != nil {
		return err
	}
	// Insert after any equal keys so earlier arrivals keep their spot.
	idx := sort.Search(len(l.items), func(i int) bool {
		k, _ := l.items[i].SortKey()
		return k > key
	})
	l.items = append(l.items, nil)
	copy(l.items[idx+1:], l.items[idx:])
	l.items[idx] = p
	return nil
}

func (l *SortedList) Withdraw() (game.Pokemon, error) {
	if l.IsEmpty() {
		return nil, ErrEmptyRoster
	}
	front := l.items[0]
	copy(l.items, l.items[1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return front, nil
}

func (l *SortedList) IsEmpty() bool { return len(l.items) == 0 }
func (l *SortedList) Size() int     { return len(l.items) }

// SnapshotOrder iterates directly; the backing slice is already in display
// order.
func (l *SortedList) SnapshotOrder() []game.Pokemon {
	out := make([]game.Pokemon, len(l.items))
	copy(out, l.items)
	return out
}
