package roster

import "github.com/TeriYeaki/Pokemon-Battle/internal/game"

// Stack is the LIFO discipline: Insert pushes to the top, Withdraw pops
// the most recently inserted creature.
type Stack struct {
	items    []game.Pokemon
	capacity int
}

// NewStack builds an empty LIFO roster with the given fixed capacity.
func NewStack(capacity int) *Stack {
	return &Stack{items: make([]game.Pokemon, 0, capacity), capacity: capacity}
}

func (s *Stack) Insert(p game.Pokemon) error {
	if len(s.items) >= s.capacity {
		return ErrRosterFull
	}
	s.items = append(s.items, p)
	return nil
}

func (s *Stack) Withdraw() (game.Pokemon, error) {
	if s.IsEmpty() {
		return nil, ErrEmptyRoster
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }
func (s *Stack) Size() int     { return len(s.items) }

// SnapshotOrder pops every member into a temporary stack, pushes them all
// back, and reverses the captured sequence so the view reads in original
// insertion order while the stack ends up exactly as it started.
func (s *Stack) SnapshotOrder() []game.Pokemon {
	captured := make([]game.Pokemon, 0, len(s.items))
	temp := NewStack(s.capacity)
	for !s.IsEmpty() {
		p, _ := s.Withdraw()
		captured = append(captured, p)
		temp.Insert(p)
	}
	for !temp.IsEmpty() {
		p, _ := temp.Withdraw()
		s.Insert(p)
	}
	for i, j := 0, len(captured)-1; i < j; i, j = i+1, j-1 {
		captured[i], captured[j] = captured[j], captured[i]
	}
	return captured
}
