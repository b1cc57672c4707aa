// Package metrics provides in-process Prometheus collectors.
// The recorder exposes its registry so an embedding host can scrape or
// push it; the tool itself never opens a network port.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Command outcome labels.
const (
	ResultOK             = "ok"
	ResultInvalid        = "invalid"
	ResultTooLong        = "too_long"
	ResultNotModified    = "not_modified"
	ResultNotImplemented = "not_implemented"
	ResultError          = "error"
)

// Recorder counts command outcomes on a private registry.
// A nil *Recorder is valid and records nothing, so callers never need
// to guard their instrumentation.
type Recorder struct {
	registry   *prometheus.Registry
	commands   *prometheus.CounterVec
	duplicates prometheus.Counter
	stored     prometheus.Gauge
}

// NewRecorder creates a recorder with a fresh private registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quotebook_commands_total",
			Help: "Commands processed, labelled by outcome.",
		}, []string{"result"}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotebook_duplicates_total",
			Help: "Add attempts rejected because the rendered text was already stored.",
		}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "quotebook_quotes_stored",
			Help: "Quotes currently held in the store.",
		}),
	}

	r.registry.MustRegister(r.commands, r.duplicates, r.stored)

	return r
}

// Command records one processed command with its outcome label.
func (r *Recorder) Command(result string) {
	if r == nil {
		return
	}
	r.commands.WithLabelValues(result).Inc()
}

// Duplicate records an add attempt rejected as a duplicate.
func (r *Recorder) Duplicate() {
	if r == nil {
		return
	}
	r.duplicates.Inc()
}

// QuoteStored records a successful add.
func (r *Recorder) QuoteStored() {
	if r == nil {
		return
	}
	r.stored.Inc()
}

// Registry returns the private registry for exposition by the host.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
