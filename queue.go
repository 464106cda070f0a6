// Package bulkqueue provides non-blocking FIFO queues over fixed-capacity
// ring buffers, with support for zero-copy bulk transfer.
//
// This package offers two implementations of the Queue interface:
//   - Fixed: Heap-allocated buffer, capacity chosen at construction
//   - Static: Buffer embedded in the queue value, capacity fixed at compile time
//
// Both share one ring-buffer algorithm and behave identically at equal
// capacity.
//
// # Expose/Commit Protocol (IMPORTANT)
//
// Bulk transfer works in two steps: expose a contiguous run of the backing
// storage (EnqueueSlots or DequeueItems), copy directly between that run and
// your own buffer, then commit how much of it you actually used
// (CommitEnqueue or CommitDequeue). No other queue method may be called
// between an expose and its commit.
//
// The implementation includes runtime guards that panic on protocol misuse:
// committing without an outstanding exposure, or committing more than the
// exposed run holds. This catches bugs early instead of corrupting the
// queue's live window.
//
// An exposed run is always a single contiguous slice. When the free or live
// range wraps past the physical end of storage only the first run is exposed;
// a caller needing the full wrapped range issues a second expose after
// committing the first.
//
// # Ownership
//
// Queues are NOT safe for concurrent use. The design assumes a single
// logical owner performing enqueues and dequeues sequentially; wrap access
// in external locking if you need to share one.
//
// Item types should be plain values (scalars, small structs without internal
// resource ownership). Dequeued slots are not zeroed; a stale copy of an
// item remains in storage until overwritten by a later enqueue.
package bulkqueue

// Queue is a non-blocking FIFO queue with zero-copy bulk transfer.
//
// Single-item operations never block: Enqueue returns false if full,
// Dequeue returns false if empty. Bulk operations transfer as much as
// currently fits and report the count; zero is an ordinary full/empty
// outcome, not an error. Fullness and emptiness are never sticky — a
// rejected operation leaves the queue unchanged and usable.
type Queue[T any] interface {
	// Len returns the number of items currently in the queue.
	Len() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// Cap returns the fixed capacity of the queue.
	Cap() int

	// Enqueue adds an item to the queue.
	// Returns false if the queue is full.
	Enqueue(v T) bool

	// Dequeue removes and returns the oldest item in the queue.
	// Returns false if the queue is empty.
	Dequeue() (T, bool)

	// EnqueueSlots exposes the next contiguous run of free slots for the
	// caller to fill, or nil if the queue is full. The run is a view into
	// the queue's backing storage; it is invalidated by any other call on
	// the queue. Pair with CommitEnqueue.
	EnqueueSlots() []T

	// CommitEnqueue marks the first n slots of the run most recently
	// exposed by EnqueueSlots as enqueued, equivalent to n calls to
	// Enqueue with exactly those items.
	//
	// PROTOCOL CONTRACT: there must be an outstanding EnqueueSlots
	// exposure and n must satisfy 0 <= n <= len(run). Violations panic.
	CommitEnqueue(n int)

	// DequeueItems exposes the next contiguous run of live items for the
	// caller to consume, or nil if the queue is empty. The run is a view
	// into the queue's backing storage; it is invalidated by any other
	// call on the queue. Pair with CommitDequeue.
	DequeueItems() []T

	// CommitDequeue marks the first n items of the run most recently
	// exposed by DequeueItems as dequeued, equivalent to n calls to
	// Dequeue.
	//
	// PROTOCOL CONTRACT: there must be an outstanding DequeueItems
	// exposure and n must satisfy 0 <= n <= len(run). Violations panic.
	CommitDequeue(n int)

	// BulkEnqueue copies items from src into the queue and returns how
	// many were enqueued. Returns 0 if the queue is full.
	BulkEnqueue(src []T) int

	// BulkDequeue copies items from the queue into dst and returns how
	// many were dequeued. Returns 0 if the queue is empty.
	BulkDequeue(dst []T) int
}

// bulkEnqueue is the default bulk-enqueue algorithm, orchestrating
// EnqueueSlots and CommitEnqueue. Both implementations delegate to it.
func bulkEnqueue[T any](q Queue[T], src []T) int {
	run := q.EnqueueSlots()
	if run == nil {
		return 0
	}
	n := copy(run, src)
	q.CommitEnqueue(n)
	return n
}

// bulkDequeue is the default bulk-dequeue algorithm, orchestrating
// DequeueItems and CommitDequeue.
func bulkDequeue[T any](q Queue[T], dst []T) int {
	run := q.DequeueItems()
	if run == nil {
		return 0
	}
	n := copy(dst, run)
	q.CommitDequeue(n)
	return n
}
