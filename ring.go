package bulkqueue

// ring holds the index arithmetic shared by Fixed and Static: a logical
// window of live items over a fully allocated backing array, tracked by a
// read cursor and a count. Slots outside the window hold zero values or
// stale items and are never read as live data.
//
// The zero value is an empty ring, which lets Static start from its zero
// value without a constructor.
type ring struct {
	read   int
	amount int

	// Length of the run handed out by the most recent EnqueueSlots or
	// DequeueItems call. Zero means no exposure is outstanding (exposed
	// runs are never empty). Any mutation clears both.
	slotsRun int
	itemsRun int
}

// contiguous reports whether the live window lies within [read, capacity)
// without wrapping past the physical end of storage.
func (r *ring) contiguous(capacity int) bool {
	return r.read+r.amount < capacity
}

// writeTo returns the slot index the next enqueued item lands in.
// Meaningless when the ring is full.
func (r *ring) writeTo(capacity int) int {
	return (r.read + r.amount) % capacity
}

// writableRun returns the bounds [lo, hi) of the next contiguous run of
// free slots. Must not be called on a full ring.
func (r *ring) writableRun(capacity int) (lo, hi int) {
	w := r.writeTo(capacity)
	if r.contiguous(capacity) {
		return w, capacity
	}
	return w, r.read
}

// readableRun returns the bounds [lo, hi) of the next contiguous run of
// live items. Must not be called on an empty ring.
func (r *ring) readableRun(capacity int) (lo, hi int) {
	if r.contiguous(capacity) {
		return r.read, r.writeTo(capacity)
	}
	return r.read, capacity
}

// invalidate drops any outstanding exposure. Every mutating operation
// other than a commit goes through here, so a commit after an intervening
// mutation trips the protocol guard instead of corrupting the window.
func (r *ring) invalidate() {
	r.slotsRun = 0
	r.itemsRun = 0
}

func (r *ring) commitEnqueue(n int) {
	if r.slotsRun == 0 {
		panic("bulkqueue: CommitEnqueue without a matching EnqueueSlots")
	}
	if n < 0 || n > r.slotsRun {
		panic("bulkqueue: CommitEnqueue count exceeds the exposed run")
	}
	r.invalidate()
	r.amount += n
}

func (r *ring) commitDequeue(n, capacity int) {
	if r.itemsRun == 0 {
		panic("bulkqueue: CommitDequeue without a matching DequeueItems")
	}
	if n < 0 || n > r.itemsRun {
		panic("bulkqueue: CommitDequeue count exceeds the exposed run")
	}
	r.invalidate()
	r.read = (r.read + n) % capacity
	r.amount -= n
}

// The operations below implement the queue contract once, parameterized
// over the backing slice. Fixed passes its heap slice, Static a slice of
// its embedded array.

func ringEnqueue[T any](r *ring, data []T, v T) bool {
	r.invalidate()
	if r.amount == len(data) {
		return false
	}
	data[r.writeTo(len(data))] = v
	r.amount++
	return true
}

func ringDequeue[T any](r *ring, data []T) (T, bool) {
	r.invalidate()
	if r.amount == 0 {
		var zero T
		return zero, false
	}
	v := data[r.read]
	r.read = (r.read + 1) % len(data)
	r.amount--
	return v, true
}

func ringEnqueueSlots[T any](r *ring, data []T) []T {
	r.invalidate()
	if r.amount == len(data) {
		return nil
	}
	lo, hi := r.writableRun(len(data))
	r.slotsRun = hi - lo
	return data[lo:hi:hi]
}

func ringDequeueItems[T any](r *ring, data []T) []T {
	r.invalidate()
	if r.amount == 0 {
		return nil
	}
	lo, hi := r.readableRun(len(data))
	r.itemsRun = hi - lo
	return data[lo:hi:hi]
}
