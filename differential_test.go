package bulkqueue_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"

	bulkqueue "github.com/randomizedcoder/go-bulk-queue"
)

// differentialOps drives q with a scripted random sequence of operations
// and cross-checks every observable result against a reference FIFO
// (eapache/queue), asserting equal behavior at every step.
func differentialOps(t *testing.T, q bulkqueue.Queue[int], rng *rand.Rand, ops int, name string) {
	t.Helper()

	ref := queue.New()
	capacity := q.Cap()

	for i := 0; i < ops; i++ {
		switch rng.Intn(4) {
		case 0: // enqueue
			v := rng.Intn(100000)
			accepted := q.Enqueue(v)
			if accepted != (ref.Length() < capacity) {
				t.Fatalf("%s op %d: Enqueue accepted=%v with reference length %d/%d",
					name, i, accepted, ref.Length(), capacity)
			}
			if accepted {
				ref.Add(v)
			}
		case 1: // dequeue
			got, ok := q.Dequeue()
			if ok != (ref.Length() > 0) {
				t.Fatalf("%s op %d: Dequeue ok=%v with reference length %d",
					name, i, ok, ref.Length())
			}
			if ok {
				want := ref.Remove().(int)
				if got != want {
					t.Fatalf("%s op %d: Dequeue = %d, reference has %d", name, i, got, want)
				}
			}
		case 2: // bulk enqueue
			src := make([]int, rng.Intn(8))
			for j := range src {
				src[j] = rng.Intn(100000)
			}
			n := q.BulkEnqueue(src)
			free := capacity - ref.Length()
			if n > free || n > len(src) {
				t.Fatalf("%s op %d: BulkEnqueue = %d with %d free and %d offered",
					name, i, n, free, len(src))
			}
			if n == 0 && len(src) > 0 && free > 0 {
				t.Fatalf("%s op %d: BulkEnqueue = 0 with %d free slots", name, i, free)
			}
			for j := 0; j < n; j++ {
				ref.Add(src[j])
			}
		case 3: // bulk dequeue
			dst := make([]int, rng.Intn(8))
			n := q.BulkDequeue(dst)
			if n > ref.Length() || n > len(dst) {
				t.Fatalf("%s op %d: BulkDequeue = %d with %d available and room for %d",
					name, i, n, ref.Length(), len(dst))
			}
			if n == 0 && len(dst) > 0 && ref.Length() > 0 {
				t.Fatalf("%s op %d: BulkDequeue = 0 with %d items available", name, i, ref.Length())
			}
			for j := 0; j < n; j++ {
				want := ref.Remove().(int)
				if dst[j] != want {
					t.Fatalf("%s op %d: BulkDequeue item %d = %d, reference has %d",
						name, i, j, dst[j], want)
				}
			}
		}

		if q.Len() != ref.Length() {
			t.Fatalf("%s op %d: Len() = %d, reference length %d", name, i, q.Len(), ref.Length())
		}
		if q.Len() < 0 || q.Len() > capacity {
			t.Fatalf("%s op %d: Len() = %d out of bounds [0, %d]", name, i, q.Len(), capacity)
		}
		if q.IsEmpty() != (ref.Length() == 0) {
			t.Fatalf("%s op %d: IsEmpty() = %v with reference length %d",
				name, i, q.IsEmpty(), ref.Length())
		}
	}
}

func TestFixed_DifferentialRandom(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		// Small capacities wrap constantly, which is where the region
		// arithmetic earns its keep.
		for _, capacity := range []int{1, 2, 4, 7, 64} {
			q := bulkqueue.NewFixed[int](capacity)
			differentialOps(t, q, rng, 2000, "Fixed")
		}
	}
}

func TestStatic_DifferentialRandom(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		var q bulkqueue.Static[int]
		differentialOps(t, &q, rng, 5000, "Static")
	}
}
