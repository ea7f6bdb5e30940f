// Command bench runs a synthetic insert/remove/update workload against one
// list variant and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/slist/internal/listtest"
	"github.com/IvanBrykalov/slist/list"
	pmet "github.com/IvanBrykalov/slist/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		variant = flag.String("variant", "cursor", "list variant: owned | cursor | shared")
		workers = flag.Int("workers", runtime.GOMAXPROCS(0), "number of worker goroutines (one list each)")
		ops     = flag.Int("ops", 100_000, "operations per worker")
		maxLen  = flag.Int("len", 256, "index range for generated operations")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		verify  = flag.Bool("verify", false, "check every worker's list against the slice model")
		show    = flag.Bool("show", false, "print every worker's final list to stdout after the run")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
	)
	flag.Parse()

	if _, ok := variants[*variant]; !ok {
		log.Fatalf("unknown variant: %q (use owned, cursor or shared)", *variant)
	}

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Metrics ----
	stats := &list.Stats{}
	var metrics list.Metrics = stats
	if *metricsAddr != "" {
		metrics = tee{stats, pmet.New(nil, "slist", "bench", nil)}
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}
	// ---- Load generation: every worker owns its own list ----
	var total, rejected atomic.Uint64
	finals := make([]string, workersN)
	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workersN; w++ {
		g.Go(func() error {
			r := rand.New(rand.NewSource(*seed + int64(w)*9973))
			t := variants[*variant](list.Options{Metrics: metrics, Output: io.Discard})
			var m *listtest.Model
			if *verify {
				m = &listtest.Model{}
			}
			for i, op := range listtest.Generate(r, *ops, *maxLen) {
				if i%4096 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				total.Add(1)
				ok := t.apply(op)
				if !ok {
					rejected.Add(1)
				}
				if m != nil && ok != applyModel(m, op) {
					return fmt.Errorf("worker %d: op %d %v(%d) disagrees with model", w, i, op.Kind, op.Index)
				}
			}
			if m != nil && t.String() != m.String() {
				return fmt.Errorf("worker %d: final list differs from model", w)
			}
			if *show {
				finals[w] = t.String()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("bench: %v", err)
	}
	elapsed := time.Since(start)

	// ---- Report ----
	snap := stats.Snapshot()
	n := total.Load()
	fmt.Printf("variant=%s workers=%d ops/worker=%d len=%d dur=%v seed=%d\n",
		*variant, workersN, *ops, *maxLen, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  rejected=%d\n", n, float64(n)/elapsed.Seconds(), rejected.Load())
	fmt.Printf("inserts=%d removes=%d updates=%d walked=%d\n",
		snap.Inserts, snap.Removes, snap.Updates, snap.Walked)
	for r, c := range snap.Rejected {
		fmt.Printf("rejected[%s]=%d\n", r, c)
	}
	if *show {
		for w, s := range finals {
			fmt.Printf("worker %d:%s\n", w, s)
		}
	}
}

func applyModel(m *listtest.Model, op listtest.Op) bool {
	switch op.Kind {
	case listtest.Insert:
		return m.Insert(op.Index, op.Value)
	case listtest.Remove:
		return m.Remove(op.Index)
	case listtest.Update:
		return m.Update(op.Index, op.Value)
	default:
		return m.Len() > 0
	}
}

// tee forwards every signal to two sinks.
type tee [2]list.Metrics

func (t tee) Insert()              { t[0].Insert(); t[1].Insert() }
func (t tee) Remove()              { t[0].Remove(); t[1].Remove() }
func (t tee) Update()              { t[0].Update(); t[1].Update() }
func (t tee) Reject(r list.Reason) { t[0].Reject(r); t[1].Reject(r) }
func (t tee) Walk(steps int)       { t[0].Walk(steps); t[1].Walk(steps) }
func (t tee) Size(n int)           { t[0].Size(n); t[1].Size(n) }
