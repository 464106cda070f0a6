package bulkqueue

// StaticCap is the capacity of a Static queue.
//
// Go has no value-generic type parameters, so the compile-time capacity is
// a package constant rather than part of the Static type. Power of two to
// keep the modulo cheap.
const StaticCap = 64

// Static is a FIFO queue whose buffer is embedded in the queue value
// itself, with capacity fixed at compile time. It performs no allocation
// and has no failure mode at construction: the zero value is an empty,
// ready-to-use queue.
//
//	var q bulkqueue.Static[byte]
//	q.Enqueue(0x2a)
//
// Useful where dynamic allocation is unavailable or undesirable. Behavior
// is otherwise identical to a Fixed queue of capacity StaticCap.
type Static[T any] struct {
	ring
	data [StaticCap]T
}

// Len returns the number of items currently in the queue.
func (q *Static[T]) Len() int {
	return q.amount
}

// IsEmpty reports whether the queue holds no items.
func (q *Static[T]) IsEmpty() bool {
	return q.amount == 0
}

// Cap returns StaticCap.
func (q *Static[T]) Cap() int {
	return StaticCap
}

// Enqueue adds an item to the queue.
// Returns false if the queue is full.
func (q *Static[T]) Enqueue(v T) bool {
	return ringEnqueue(&q.ring, q.data[:], v)
}

// Dequeue removes and returns the oldest item in the queue.
// Returns false if the queue is empty.
func (q *Static[T]) Dequeue() (T, bool) {
	return ringDequeue(&q.ring, q.data[:])
}

// EnqueueSlots exposes the next contiguous run of free slots, or nil if
// the queue is full. Pair with CommitEnqueue.
func (q *Static[T]) EnqueueSlots() []T {
	return ringEnqueueSlots(&q.ring, q.data[:])
}

// CommitEnqueue marks the first n slots of the most recently exposed run
// as enqueued. Panics on protocol misuse; see Queue.
func (q *Static[T]) CommitEnqueue(n int) {
	q.commitEnqueue(n)
}

// DequeueItems exposes the next contiguous run of live items, or nil if
// the queue is empty. Pair with CommitDequeue.
func (q *Static[T]) DequeueItems() []T {
	return ringDequeueItems(&q.ring, q.data[:])
}

// CommitDequeue marks the first n items of the most recently exposed run
// as dequeued. Panics on protocol misuse; see Queue.
func (q *Static[T]) CommitDequeue(n int) {
	q.commitDequeue(n, StaticCap)
}

// BulkEnqueue copies items from src into the queue and returns how many
// were enqueued. Returns 0 if the queue is full.
func (q *Static[T]) BulkEnqueue(src []T) int {
	return bulkEnqueue[T](q, src)
}

// BulkDequeue copies items from the queue into dst and returns how many
// were dequeued. Returns 0 if the queue is empty.
func (q *Static[T]) BulkDequeue(dst []T) int {
	return bulkDequeue[T](q, dst)
}

// Ensure compile-time compliance.
var _ Queue[int] = (*Static[int])(nil)
