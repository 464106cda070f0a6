// Command soak runs a randomized differential soak of the bulk queues
// against a reference FIFO and prints a JSON report per variant.
//
// Every operation is mirrored onto github.com/eapache/queue and every
// observable result is cross-checked. Exits non-zero on divergence.
//
// Usage:
//
//	go run ./cmd/soak -n 1000000 -cap 64 -seed 1
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/eapache/queue"
	"github.com/sugawarayuuta/sonnet"

	bulkqueue "github.com/randomizedcoder/go-bulk-queue"
)

type report struct {
	Variant      string  `json:"variant"`
	Capacity     int     `json:"capacity"`
	Seed         int64   `json:"seed"`
	Ops          int     `json:"ops"`
	Enqueued     int     `json:"enqueued"`
	Dequeued     int     `json:"dequeued"`
	RejectedFull int     `json:"rejected_full"`
	EmptyPolls   int     `json:"empty_polls"`
	Remaining    int     `json:"remaining"`
	DurationMs   float64 `json:"duration_ms"`
	NsPerOp      float64 `json:"ns_per_op"`
	Diverged     bool    `json:"diverged"`
	Divergence   string  `json:"divergence,omitempty"`
}

func main() {
	ops := flag.Int("n", 1_000_000, "number of operations per variant")
	capacity := flag.Int("cap", 64, "Fixed queue capacity")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	fmt.Printf("Soaking bulk queues (%d ops, cap=%d, seed=%d)\n", *ops, *capacity, *seed)
	fmt.Println("─────────────────────────────────────────────────")

	var static bulkqueue.Static[int]
	runs := []struct {
		name string
		cap  int
		q    bulkqueue.Queue[int]
	}{
		{"Fixed", *capacity, bulkqueue.NewFixed[int](*capacity)},
		{"Static", bulkqueue.StaticCap, &static},
	}

	enc := sonnet.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	failed := false
	for _, run := range runs {
		rep := soak(run.name, run.cap, run.q, *ops, *seed)
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(os.Stderr, "soak: encoding report: %v\n", err)
			os.Exit(1)
		}
		if rep.Diverged {
			failed = true
		}
	}
	if failed {
		fmt.Fprintln(os.Stderr, "soak: FAILED, queue diverged from reference")
		os.Exit(1)
	}
	fmt.Println("All variants matched the reference.")
}

// soak drives q with a seeded random operation mix, mirroring everything
// onto the reference FIFO. The first divergence stops the run.
func soak(name string, capacity int, q bulkqueue.Queue[int], ops int, seed int64) report {
	rng := rand.New(rand.NewSource(seed))
	ref := queue.New()
	rep := report{Variant: name, Capacity: capacity, Seed: seed, Ops: ops}

	diverge := func(format string, args ...any) {
		rep.Diverged = true
		rep.Divergence = fmt.Sprintf(format, args...)
	}

	src := make([]int, 8)
	dst := make([]int, 8)

	start := time.Now()
	for i := 0; i < ops && !rep.Diverged; i++ {
		switch rng.Intn(4) {
		case 0:
			v := rng.Int()
			if q.Enqueue(v) {
				ref.Add(v)
				rep.Enqueued++
			} else {
				rep.RejectedFull++
				if ref.Length() != capacity {
					diverge("op %d: Enqueue rejected at length %d", i, ref.Length())
				}
			}
		case 1:
			got, ok := q.Dequeue()
			if !ok {
				rep.EmptyPolls++
				if ref.Length() != 0 {
					diverge("op %d: Dequeue empty at length %d", i, ref.Length())
				}
				break
			}
			rep.Dequeued++
			if want := ref.Remove().(int); got != want {
				diverge("op %d: Dequeue = %d, want %d", i, got, want)
			}
		case 2:
			batch := src[:rng.Intn(len(src)+1)]
			for j := range batch {
				batch[j] = rng.Int()
			}
			n := q.BulkEnqueue(batch)
			rep.Enqueued += n
			if n > capacity-ref.Length() {
				diverge("op %d: BulkEnqueue = %d with %d free", i, n, capacity-ref.Length())
				break
			}
			for j := 0; j < n; j++ {
				ref.Add(batch[j])
			}
		case 3:
			batch := dst[:rng.Intn(len(dst)+1)]
			n := q.BulkDequeue(batch)
			rep.Dequeued += n
			if n > ref.Length() {
				diverge("op %d: BulkDequeue = %d with %d live", i, n, ref.Length())
				break
			}
			for j := 0; j < n; j++ {
				if want := ref.Remove().(int); batch[j] != want {
					diverge("op %d: BulkDequeue item %d = %d, want %d", i, j, batch[j], want)
					break
				}
			}
		}

		if q.Len() != ref.Length() {
			diverge("op %d: Len() = %d, reference %d", i, q.Len(), ref.Length())
		}
	}
	elapsed := time.Since(start)

	rep.Remaining = q.Len()
	rep.DurationMs = float64(elapsed.Nanoseconds()) / 1e6
	rep.NsPerOp = float64(elapsed.Nanoseconds()) / float64(ops)
	return rep
}
