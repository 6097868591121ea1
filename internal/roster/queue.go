package roster

import "github.com/TeriYeaki/Pokemon-Battle/internal/game"

// CircularQueue is the FIFO discipline, backed by a fixed ring buffer:
// Insert enqueues at the tail, Withdraw dequeues from the head.
type CircularQueue struct {
	items []game.Pokemon
	head  int
	count int
}

// NewCircularQueue builds an empty FIFO roster with the given fixed
// capacity.
func NewCircularQueue(capacity int) *CircularQueue {
	return &CircularQueue{items: make([]game.Pokemon, capacity)}
}

func (q *CircularQueue) Insert(p game.Pokemon) error {
	if q.count >= len(q.items) {
		return ErrRosterFull
	}
	q.items[(q.head+q.count)%len(q.items)] = p
	q.count++
	return nil
}

func (q *CircularQueue) Withdraw() (game.Pokemon, error) {
	if q.IsEmpty() {
		return nil, ErrEmptyRoster
	}
	front := q.items[q.head]
	q.items[q.head] = nil
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return front, nil
}

func (q *CircularQueue) IsEmpty() bool { return q.count == 0 }
func (q *CircularQueue) Size() int     { return q.count }

// SnapshotOrder drains the queue into a temporary queue and re-enqueues
// everything, leaving the rotation untouched.
func (q *CircularQueue) SnapshotOrder() []game.Pokemon {
	captured := make([]game.Pokemon, 0, q.count)
	temp := NewCircularQueue(len(q.items))
	for !q.IsEmpty() {
		p, _ := q.Withdraw()
		captured = append(captured, p)
		temp.Insert(p)
	}
	for !temp.IsEmpty() {
		p, _ := temp.Withdraw()
		q.Insert(p)
	}
	return captured
}
