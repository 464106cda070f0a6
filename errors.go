package bulkqueue

import "errors"

var (
	// ErrFull is returned by Strict.Enqueue when the queue is full.
	ErrFull = errors.New("bulkqueue: queue is full")

	// ErrEmpty is returned by Strict.Dequeue when the queue is empty.
	ErrEmpty = errors.New("bulkqueue: queue is empty")
)

// Strict adapts a Queue to an error-returning surface for call sites that
// prefer explicit error values over ok-booleans.
//
// ErrFull and ErrEmpty are ordinary, non-sticky outcomes: a rejected
// operation leaves the queue unchanged, and the same operation may succeed
// later once room or items are available.
type Strict[T any] struct {
	q Queue[T]
}

// NewStrict wraps q in a Strict surface. The wrapped queue may still be
// used directly; Strict holds no state of its own.
func NewStrict[T any](q Queue[T]) *Strict[T] {
	return &Strict[T]{q: q}
}

// Len returns the number of items currently in the queue.
func (s *Strict[T]) Len() int {
	return s.q.Len()
}

// Cap returns the fixed capacity of the queue.
func (s *Strict[T]) Cap() int {
	return s.q.Cap()
}

// Enqueue adds an item to the queue, or returns ErrFull.
func (s *Strict[T]) Enqueue(v T) error {
	if !s.q.Enqueue(v) {
		return ErrFull
	}
	return nil
}

// Dequeue removes and returns the oldest item, or returns ErrEmpty.
func (s *Strict[T]) Dequeue() (T, error) {
	v, ok := s.q.Dequeue()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}
