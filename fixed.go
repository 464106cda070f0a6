package bulkqueue

// Fixed is a FIFO queue over a single heap allocation of unchanging
// capacity, made once at construction and never resized.
type Fixed[T any] struct {
	ring
	data []T
}

// NewFixed creates a Fixed queue with the given capacity.
// Panics if capacity is not positive.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity <= 0 {
		panic("bulkqueue: capacity must be positive")
	}
	return &Fixed[T]{data: make([]T, capacity)}
}

// Len returns the number of items currently in the queue.
func (q *Fixed[T]) Len() int {
	return q.amount
}

// IsEmpty reports whether the queue holds no items.
func (q *Fixed[T]) IsEmpty() bool {
	return q.amount == 0
}

// Cap returns the capacity the queue was created with.
func (q *Fixed[T]) Cap() int {
	return len(q.data)
}

// Enqueue adds an item to the queue.
// Returns false if the queue is full.
func (q *Fixed[T]) Enqueue(v T) bool {
	return ringEnqueue(&q.ring, q.data, v)
}

// Dequeue removes and returns the oldest item in the queue.
// Returns false if the queue is empty.
func (q *Fixed[T]) Dequeue() (T, bool) {
	return ringDequeue(&q.ring, q.data)
}

// EnqueueSlots exposes the next contiguous run of free slots, or nil if
// the queue is full. Pair with CommitEnqueue.
func (q *Fixed[T]) EnqueueSlots() []T {
	return ringEnqueueSlots(&q.ring, q.data)
}

// CommitEnqueue marks the first n slots of the most recently exposed run
// as enqueued. Panics on protocol misuse; see Queue.
func (q *Fixed[T]) CommitEnqueue(n int) {
	q.commitEnqueue(n)
}

// DequeueItems exposes the next contiguous run of live items, or nil if
// the queue is empty. Pair with CommitDequeue.
func (q *Fixed[T]) DequeueItems() []T {
	return ringDequeueItems(&q.ring, q.data)
}

// CommitDequeue marks the first n items of the most recently exposed run
// as dequeued. Panics on protocol misuse; see Queue.
func (q *Fixed[T]) CommitDequeue(n int) {
	q.commitDequeue(n, len(q.data))
}

// BulkEnqueue copies items from src into the queue and returns how many
// were enqueued. Returns 0 if the queue is full.
func (q *Fixed[T]) BulkEnqueue(src []T) int {
	return bulkEnqueue[T](q, src)
}

// BulkDequeue copies items from the queue into dst and returns how many
// were dequeued. Returns 0 if the queue is empty.
func (q *Fixed[T]) BulkDequeue(dst []T) int {
	return bulkDequeue[T](q, dst)
}

// Ensure compile-time compliance.
var _ Queue[int] = (*Fixed[int])(nil)
