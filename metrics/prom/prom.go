// Package prom exports list metrics to Prometheus.
package prom

import (
	"github.com/IvanBrykalov/slist/list"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements list.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe,
// so one Adapter may serve many lists.
type Adapter struct {
	inserts prometheus.Counter
	removes prometheus.Counter
	updates prometheus.Counter
	rejects *prometheus.CounterVec
	walked  prometheus.Counter
	size    prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		})
	}
	a := &Adapter{
		inserts: counter("inserts_total", "Nodes inserted"),
		removes: counter("removes_total", "Nodes removed"),
		updates: counter("updates_total", "Node values overwritten"),
		walked:  counter("walked_nodes_total", "Links followed while locating nodes"),
		rejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "rejects_total",
				Help:        "Rejected operations by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_nodes",
			Help:        "Length of the most recently mutated list",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.inserts, a.removes, a.updates, a.walked, a.rejects, a.size)
	return a
}

// Insert increments the insert counter.
func (a *Adapter) Insert() { a.inserts.Inc() }

// Remove increments the remove counter.
func (a *Adapter) Remove() { a.removes.Inc() }

// Update increments the update counter.
func (a *Adapter) Update() { a.updates.Inc() }

// Reject increments the rejection counter with a reason label.
func (a *Adapter) Reject(r list.Reason) { a.rejects.WithLabelValues(r.String()).Inc() }

// Walk adds the number of links followed.
func (a *Adapter) Walk(steps int) { a.walked.Add(float64(steps)) }

// Size sets the length gauge.
func (a *Adapter) Size(n int) { a.size.Set(float64(n)) }

// Compile-time check: ensure Adapter implements list.Metrics.
var _ list.Metrics = (*Adapter)(nil)
