package list

import "sync/atomic"

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Insert()       {}
func (NoopMetrics) Remove()       {}
func (NoopMetrics) Update()       {}
func (NoopMetrics) Reject(Reason) {}
func (NoopMetrics) Walk(int)      {}
func (NoopMetrics) Size(int)      {}

// Stats is an in-memory Metrics implementation backed by atomic counters.
// One Stats value may be shared by many lists, including lists owned by
// different goroutines.
type Stats struct {
	inserts  atomic.Int64
	removes  atomic.Int64
	updates  atomic.Int64
	walked   atomic.Int64
	size     atomic.Int64
	rejected [RejectOther + 1]atomic.Int64
}

func (s *Stats) Insert()         { s.inserts.Add(1) }
func (s *Stats) Remove()         { s.removes.Add(1) }
func (s *Stats) Update()         { s.updates.Add(1) }
func (s *Stats) Walk(steps int)  { s.walked.Add(int64(steps)) }
func (s *Stats) Size(n int)      { s.size.Store(int64(n)) }
func (s *Stats) Reject(r Reason) { s.rejected[clampReason(r)].Add(1) }

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Inserts, Removes, Updates int64
	Walked                    int64
	// LastSize is the most recent value passed to Size.
	LastSize int64
	Rejected map[Reason]int64
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Inserts:  s.inserts.Load(),
		Removes:  s.removes.Load(),
		Updates:  s.updates.Load(),
		Walked:   s.walked.Load(),
		LastSize: s.size.Load(),
		Rejected: make(map[Reason]int64),
	}
	for r := range s.rejected {
		if n := s.rejected[r].Load(); n > 0 {
			snap.Rejected[Reason(r)] = n
		}
	}
	return snap
}

func clampReason(r Reason) Reason {
	if r < RejectBounds || r > RejectOther {
		return RejectOther
	}
	return r
}

// Ensure implementations satisfy Metrics at compile time.
var (
	_ Metrics = NoopMetrics{}
	_ Metrics = (*Stats)(nil)
)
