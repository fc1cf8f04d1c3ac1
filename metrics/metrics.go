// Package metrics counts what a run extracted, repaired, merged and found.
//
// Each Recorder owns its registry so that a command line run can dump its
// counters to a node exporter textfile when it finishes.
package metrics

import (
	"fmt"
	"time"

	"github.com/c360studio/lexmerge/graph"
	"github.com/c360studio/lexmerge/merge"
	"github.com/c360studio/lexmerge/validate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lexmerge"

// Recorder holds the counters of one run. A nil Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	extracted  *prometheus.CounterVec
	dropped    prometheus.Counter
	mirrored   prometheus.Counter
	selfLoops  prometheus.Counter
	added      *prometheus.CounterVec
	entries    *prometheus.CounterVec
	checked    prometheus.Counter
	invalid    prometheus.Counter
	parseFails prometheus.Counter
	duration   *prometheus.HistogramVec
}

// New creates a Recorder with a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		extracted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_extracted_total",
			Help:      "Total number of dump records turned into registry entries.",
		}, []string{"vocab"}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_dropped_total",
			Help:      "Total number of relation edges whose target was unknown.",
		}),
		mirrored: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_mirrored_total",
			Help:      "Total number of inverse edges added to relation targets.",
		}),
		selfLoops: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "self_loops_total",
			Help:      "Total number of relation edges pointing at their own subject.",
		}),
		added: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "elements_added_total",
			Help:      "Total number of elements inserted into the target document.",
		}, []string{"property"}),
		entries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_touched_total",
			Help:      "Total number of entries that received at least one element.",
		}, []string{"property"}),
		checked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "categories_checked_total",
			Help:      "Total number of dated categories evaluated.",
		}),
		invalid: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "categories_invalid_total",
			Help:      "Total number of categories whose range misses a descendant.",
		}),
		parseFails: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "date_parse_errors_total",
			Help:      "Total number of categories with an unreadable date attribute.",
		}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall clock duration of a command.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		}, []string{"command"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Extracted counts registry entries built from vocab.
func (r *Recorder) Extracted(vocab string, n int) {
	if r == nil {
		return
	}
	r.extracted.WithLabelValues(vocab).Add(float64(n))
}

// Repaired counts the changes of a relation graph repair.
func (r *Recorder) Repaired(s graph.Stats) {
	if r == nil {
		return
	}
	r.dropped.Add(float64(s.Dropped))
	r.mirrored.Add(float64(s.Mirrored))
	r.selfLoops.Add(float64(s.SelfLoops))
}

// Merged counts the insertions of a merge.
func (r *Recorder) Merged(s merge.Stats) {
	if r == nil {
		return
	}
	r.added.WithLabelValues(s.Property).Add(float64(s.Elements))
	r.entries.WithLabelValues(s.Property).Add(float64(len(s.Entries)))
}

// Validated counts the outcome of a hierarchy validation.
func (r *Recorder) Validated(rep validate.Report) {
	if r == nil {
		return
	}
	r.checked.Add(float64(rep.Checked))
	r.invalid.Add(float64(rep.Invalid))
	r.parseFails.Add(float64(rep.Errors))
}

// Since observes the time elapsed since start for command.
func (r *Recorder) Since(command string, start time.Time) {
	if r == nil {
		return
	}
	r.duration.WithLabelValues(command).Observe(time.Since(start).Seconds())
}

// WriteFile writes every metric to path in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
