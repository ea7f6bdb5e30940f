package list

import (
	"io"
	"os"
)

// Metrics exposes list-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Insert()
	Remove()
	Update()
	// Reject is called once for every operation that returned an error
	// (or false, for the boolean cursor operations).
	Reject(reason Reason)
	// Walk reports how many links an operation followed.
	Walk(steps int)
	// Size reports the list length after a successful mutation.
	Size(n int)
}

// Options configures a list. Zero values are safe; defaults are applied by
// WithDefaults (every variant's constructor calls it):
//   - nil Metrics => NoopMetrics
//   - nil Output  => os.Stdout
type Options struct {
	// Metrics receives operation signals.
	Metrics Metrics

	// Output is where Show writes the rendered chain.
	Output io.Writer
}

// WithDefaults returns a copy of o with defaults filled in.
func (o Options) WithDefaults() Options {
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	return o
}

// Observe forwards the outcome of a failed operation to m.
// It is a no-op for a nil error.
func Observe(m Metrics, err error) {
	if err != nil {
		m.Reject(ReasonOf(err))
	}
}
