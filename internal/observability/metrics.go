// Package observability exposes Prometheus metrics for packing runs.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/piwi3910/TetraLog/internal/model"
)

// PackCollector bundles the metrics recorded after each packing run.
type PackCollector struct {
	gatherer prometheus.Gatherer

	Runs         *prometheus.CounterVec
	UnitsPlaced  *prometheus.CounterVec
	UnitsSkipped *prometheus.CounterVec
	Rejections   *prometheus.CounterVec
	Duration     *prometheus.HistogramVec

	LastFillRate    prometheus.Gauge
	LastVolumeUsage prometheus.Gauge
	LastTotalWeight prometheus.Gauge
	LastFrontAxle   prometheus.Gauge
	LastRearAxle    prometheus.Gauge
}

// Run is what the planner reports about one packing run.
type Run struct {
	Vehicle    string
	Strategy   model.Strategy
	Duration   time.Duration
	Summary    model.LoadSummary
	Rejections map[string]int // Failed placement trials by reason
}

// NewPackCollector registers packing metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewPackCollector(reg prometheus.Registerer) (*PackCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &PackCollector{gatherer: gatherer}
	var err error

	if c.Runs, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tetralog_pack_runs_total",
		Help: "Total number of packing runs, labeled by vehicle and strategy.",
	}, []string{"vehicle", "strategy"}), "tetralog_pack_runs_total"); err != nil {
		return nil, err
	}
	if c.UnitsPlaced, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tetralog_units_placed_total",
		Help: "Units placed in the bay, labeled by strategy.",
	}, []string{"strategy"}), "tetralog_units_placed_total"); err != nil {
		return nil, err
	}
	if c.UnitsSkipped, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tetralog_units_skipped_total",
		Help: "Units left out because no admissible position existed, labeled by strategy.",
	}, []string{"strategy"}), "tetralog_units_skipped_total"); err != nil {
		return nil, err
	}
	if c.Rejections, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tetralog_placement_rejections_total",
		Help: "Candidate placements rejected during packing, labeled by reason.",
	}, []string{"reason"}), "tetralog_placement_rejections_total"); err != nil {
		return nil, err
	}
	if c.Duration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tetralog_pack_duration_seconds",
		Help:    "Wall time of a packing run in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"strategy"}), "tetralog_pack_duration_seconds"); err != nil {
		return nil, err
	}

	gauges := []struct {
		dst  *prometheus.Gauge
		name string
		help string
	}{
		{&c.LastFillRate, "tetralog_last_fill_ratio", "Fitted / requested units of the last run."},
		{&c.LastVolumeUsage, "tetralog_last_volume_usage_percent", "Loaded share of the bay volume of the last run."},
		{&c.LastTotalWeight, "tetralog_last_total_weight_kg", "Loaded weight of the last run."},
		{&c.LastFrontAxle, "tetralog_last_front_axle_kg", "Front axle load of the last run."},
		{&c.LastRearAxle, "tetralog_last_rear_axle_kg", "Rear axle load of the last run."},
	}
	for _, g := range gauges {
		gauge, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{Name: g.name, Help: g.help}), g.name)
		if err != nil {
			return nil, err
		}
		*g.dst = gauge
	}

	return c, nil
}

// RecordRun updates all metrics from one finished run. A nil collector is a no-op.
func (c *PackCollector) RecordRun(r Run) {
	if c == nil {
		return
	}
	strategy := string(r.Strategy)

	c.Runs.WithLabelValues(r.Vehicle, strategy).Inc()
	c.UnitsPlaced.WithLabelValues(strategy).Add(float64(r.Summary.Fitted))
	c.UnitsSkipped.WithLabelValues(strategy).Add(float64(r.Summary.Unplaced()))
	c.Duration.WithLabelValues(strategy).Observe(r.Duration.Seconds())
	for reason, n := range r.Rejections {
		c.Rejections.WithLabelValues(reason).Add(float64(n))
	}

	c.LastFillRate.Set(r.Summary.FillRate())
	c.LastVolumeUsage.Set(r.Summary.VolumeUsage())
	c.LastTotalWeight.Set(r.Summary.TotalWeight)
	c.LastFrontAxle.Set(r.Summary.FrontAxle)
	c.LastRearAxle.Set(r.Summary.RearAxle)
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *PackCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// Handler exposes a ready-to-use /metrics handler.
func (c *PackCollector) Handler() http.Handler {
	gatherer := c.Gatherer()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// WriteTextfile writes the current metrics in the text exposition format,
// for pickup by the node_exporter textfile collector.
func (c *PackCollector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.Gatherer()); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}

// register adds col to reg, returning the existing collector when an
// identical one is already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, col T, name string) (T, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return col, nil
}
