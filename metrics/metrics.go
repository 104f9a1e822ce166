// Package metrics exposes Prometheus collectors for the pressure search.
//
// Collectors are registered on an explicit Registerer instead of the global
// default, so tests and multiple runs in one process do not collide. A nil
// *Collector is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Variant label values.
const (
	VariantSingle = "single"
	VariantDual   = "dual"
)

// Collector groups the search metrics.
type Collector struct {
	// StatesExpanded counts search states popped from the walk stack.
	StatesExpanded *prometheus.CounterVec

	// PartitionsScored counts bipartitions evaluated by the dual search.
	PartitionsScored prometheus.Counter

	// SearchDuration measures wall time per search variant.
	SearchDuration *prometheus.HistogramVec

	// BestPressure holds the last optimum found per variant.
	BestPressure *prometheus.GaugeVec

	// MatrixVisits counts valves visited while building distance matrices.
	MatrixVisits prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		StatesExpanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "valvenet_states_expanded_total",
				Help: "Total number of search states expanded",
			},
			[]string{"variant"},
		),
		PartitionsScored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "valvenet_partitions_scored_total",
				Help: "Total number of valve bipartitions scored by the dual search",
			},
		),
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "valvenet_search_duration_seconds",
				Help: "Duration of a search in seconds",
				// From trivial networks (sub-millisecond) to full puzzle inputs.
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"variant"},
		),
		BestPressure: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "valvenet_best_pressure",
				Help: "Best total pressure found by the last search",
			},
			[]string{"variant"},
		),
		MatrixVisits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "valvenet_matrix_visits_total",
				Help: "Total number of valves visited by distance matrix walks",
			},
		),
	}

	for _, col := range []prometheus.Collector{
		c.StatesExpanded, c.PartitionsScored, c.SearchDuration, c.BestPressure, c.MatrixVisits,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// AddStates adds n expanded states for variant.
func (c *Collector) AddStates(variant string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.StatesExpanded.WithLabelValues(variant).Add(float64(n))
}

// AddPartitions adds n scored bipartitions.
func (c *Collector) AddPartitions(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.PartitionsScored.Add(float64(n))
}

// AddMatrixVisits adds n valves visited by matrix walks.
func (c *Collector) AddMatrixVisits(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.MatrixVisits.Add(float64(n))
}

// ObserveSearch records the duration and result of one search.
func (c *Collector) ObserveSearch(variant string, elapsed time.Duration, best int) {
	if c == nil {
		return
	}
	c.SearchDuration.WithLabelValues(variant).Observe(elapsed.Seconds())
	c.BestPressure.WithLabelValues(variant).Set(float64(best))
}
