package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/puzzlekit/search"
)

// Prometheus records metrics on a private registry so that several runs in
// one process never collide, and exports them in the node_exporter textfile
// format.
type Prometheus struct {
	registry     *prometheus.Registry
	stepLatency  *prometheus.HistogramVec
	searchStates *prometheus.CounterVec
	puzzles      *prometheus.CounterVec
	puzzleTotal  *prometheus.GaugeVec
}

// NewPrometheus creates a collector whose series all carry run_id as a
// constant label.
func NewPrometheus(runID string) *Prometheus {
	labels := prometheus.Labels{"run_id": runID}
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		stepLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "puzzlekit_step_duration_seconds",
			Help:        "Per-run duration of prep and part steps",
			Buckets:     prometheus.ExponentialBuckets(1e-6, 4, 12),
			ConstLabels: labels,
		}, []string{"day", "step"}),
		searchStates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "puzzlekit_search_states_total",
			Help:        "States pushed, admitted and popped by search engines",
			ConstLabels: labels,
		}, []string{"day", "event"}),
		puzzles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "puzzlekit_puzzles_total",
			Help:        "Puzzles run",
			ConstLabels: labels,
		}, []string{"status"}),
		puzzleTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "puzzlekit_puzzle_critical_path_seconds",
			Help:        "Shortest chain of steps producing every answer",
			ConstLabels: labels,
		}, []string{"day"}),
	}

	p.registry.MustRegister(p.stepLatency, p.searchStates, p.puzzles, p.puzzleTotal)
	return p
}

// Registry returns the private registry backing the collector.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// RecordStep implements Collector.
func (p *Prometheus) RecordStep(day int, step string, duration time.Duration) {
	p.stepLatency.WithLabelValues(strconv.Itoa(day), step).Observe(duration.Seconds())
}

// RecordSearch implements Collector.
func (p *Prometheus) RecordSearch(day int, stats search.Stats) {
	d := strconv.Itoa(day)
	p.searchStates.WithLabelValues(d, "pushed").Add(float64(stats.Pushed))
	p.searchStates.WithLabelValues(d, "admitted").Add(float64(stats.Admitted))
	p.searchStates.WithLabelValues(d, "popped").Add(float64(stats.Popped))
}

// RecordPuzzle implements Collector.
func (p *Prometheus) RecordPuzzle(day int, total time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.puzzles.WithLabelValues(status).Inc()
	if err == nil {
		p.puzzleTotal.WithLabelValues(strconv.Itoa(day)).Set(total.Seconds())
	}
}

// WriteToTextfile writes every gathered series to path atomically.
func (p *Prometheus) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
