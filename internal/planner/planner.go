// Package planner turns a manifest into a load plan: it resolves stops,
// expands lines into units, packs them into the vehicle's bay and reports
// the outcome through logs and metrics.
package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/piwi3910/TetraLog/internal/engine"
	"github.com/piwi3910/TetraLog/internal/logging"
	"github.com/piwi3910/TetraLog/internal/model"
	"github.com/piwi3910/TetraLog/internal/observability"
)

// ErrEmptyManifest is returned when a request has no units to load.
var ErrEmptyManifest = errors.New("manifest has no units")

// Request describes one packing job.
type Request struct {
	Vehicle  model.VehicleType
	Strategy model.Strategy
	Lines    []model.ManifestLine
}

// Planner runs packing jobs. It is safe for concurrent use; every call
// packs into its own bay.
type Planner struct {
	config   model.AppConfig
	vehicles model.Catalog
	log      logging.Logger
	metrics  *observability.PackCollector
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger. The default drops all logs.
func WithLogger(l logging.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetrics records every run on c.
func WithMetrics(c *observability.PackCollector) Option {
	return func(p *Planner) { p.metrics = c }
}

// WithCatalog sets the vehicles manifests can name. The default holds only
// the built-in types.
func WithCatalog(c model.Catalog) Option {
	return func(p *Planner) { p.vehicles = c }
}

func New(config model.AppConfig, opts ...Option) *Planner {
	p := &Planner{config: config, log: logging.Noop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RequestFromManifest builds a request for m. Unknown vehicles fall back to
// the standard trailer.
func (p *Planner) RequestFromManifest(ctx context.Context, m model.Manifest) Request {
	vehicle, ok := p.vehicles.Lookup(m.Vehicle)
	if !ok {
		vehicle = p.vehicles.Get(m.Vehicle)
		p.log.Warn(ctx, "unknown vehicle, using default",
			logging.String("requested", m.Vehicle),
			logging.String("vehicle", vehicle.ID))
	}
	return Request{Vehicle: vehicle, Strategy: m.Strategy, Lines: m.Lines}
}

// Plan packs the request and returns the resulting plan. Units that do not
// fit are reported in the plan, not as an error.
func (p *Planner) Plan(ctx context.Context, req Request) (model.LoadPlan, error) {
	ctx, log := logging.WithRunLogger(ctx, p.log)
	if err := ctx.Err(); err != nil {
		return model.LoadPlan{}, err
	}

	req, err := p.prepare(ctx, log, req)
	if err != nil {
		return model.LoadPlan{}, err
	}
	bay := req.Vehicle.NewContainer()
	if err := bay.Validate(); err != nil {
		return model.LoadPlan{}, fmt.Errorf("vehicle %q: %w", req.Vehicle.Name, err)
	}

	items := model.ExpandManifest(req.Lines)
	packer := engine.New(bay)
	start := time.Now()
	packer.Pack(items, req.Strategy)
	elapsed := time.Since(start)

	plan := model.LoadPlan{
		Vehicle:  req.Vehicle,
		Strategy: req.Strategy,
		Items:    items,
		Bay:      bay,
		Summary:  engine.Summarize(bay, len(items)),
	}

	p.report(ctx, log, plan, packer.Stats, elapsed)
	return plan, nil
}

// Compare packs the request once per supported strategy, the requested
// strategy first, and returns the results in that order.
func (p *Planner) Compare(ctx context.Context, req Request) ([]engine.ComparisonResult, error) {
	ctx, log := logging.WithRunLogger(ctx, p.log)

	req, err := p.prepare(ctx, log, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := engine.CompareStrategies(ctx, req.Vehicle.NewContainer, req.Lines, engine.BuildDefaultScenarios(req.Strategy))
	if err != nil {
		return nil, fmt.Errorf("compare strategies: %w", err)
	}

	for _, r := range results {
		log.Info(ctx, "scenario packed",
			logging.String("scenario", r.Scenario.Name),
			logging.Int("fitted", r.Summary.Fitted),
			logging.Int("requested", r.Summary.Requested),
			logging.Float("volume_usage_pct", r.Summary.VolumeUsage()),
			logging.Float("front_axle_kg", r.Summary.FrontAxle),
			logging.Float("rear_axle_kg", r.Summary.RearAxle))
	}
	if best, ok := engine.BestResult(results); ok {
		log.Info(ctx, "comparison finished",
			logging.String("best", best.Scenario.Name),
			logging.Duration("elapsed", time.Since(start)))
	}
	return results, nil
}

// prepare validates the request and returns a copy with a canonical
// strategy and lines whose stop order and color are resolved from the
// route. Lines that already carry a color keep their stop order.
func (p *Planner) prepare(ctx context.Context, log logging.Logger, req Request) (Request, error) {
	strategy, err := model.ParseStrategy(string(req.Strategy))
	if err != nil {
		return Request{}, err
	}

	lines := make([]model.ManifestLine, len(req.Lines))
	units := 0
	for i, l := range req.Lines {
		if !finite(l.Width, l.Depth, l.Height, l.Weight) {
			return Request{}, fmt.Errorf("line %d (%s): dimensions and weight must be finite", i+1, l.Label)
		}
		if l.Width <= 0 || l.Depth <= 0 || l.Height <= 0 {
			return Request{}, fmt.Errorf("line %d (%s): dimensions must be positive", i+1, l.Label)
		}
		if l.Weight < 0 {
			return Request{}, fmt.Errorf("line %d (%s): weight cannot be negative", i+1, l.Label)
		}
		if l.Quantity < 0 {
			return Request{}, fmt.Errorf("line %d (%s): quantity cannot be negative", i+1, l.Label)
		}
		if l.Color == "" && !p.config.ApplyToLine(&l) {
			log.Warn(ctx, "unknown destination",
				logging.String("line", l.Label),
				logging.String("destination", l.Destination),
				logging.Int("stop", l.StopOrder))
		}
		lines[i] = l
		units += l.Quantity
	}
	if units == 0 {
		return Request{}, ErrEmptyManifest
	}
	return Request{Vehicle: req.Vehicle, Strategy: strategy, Lines: lines}, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p *Planner) report(ctx context.Context, log logging.Logger, plan model.LoadPlan, stats engine.PackStats, elapsed time.Duration) {
	s := plan.Summary
	log.Info(ctx, "load plan ready",
		logging.String("vehicle", plan.Vehicle.ID),
		logging.String("strategy", string(plan.Strategy)),
		logging.Int("fitted", s.Fitted),
		logging.Int("requested", s.Requested),
		logging.Float("volume_usage_pct", s.VolumeUsage()),
		logging.Float("total_weight_kg", s.TotalWeight),
		logging.Float("front_axle_kg", s.FrontAxle),
		logging.Float("rear_axle_kg", s.RearAxle),
		logging.Int("trials", stats.Trials),
		logging.Duration("elapsed", elapsed))

	for _, it := range plan.UnplacedItems() {
		log.Debug(ctx, "unit not loaded",
			logging.Int("unit", it.Index+1),
			logging.String("label", it.Label),
			logging.String("destination", it.Destination))
	}
	if s.Overweight() {
		log.Warn(ctx, "payload limit exceeded",
			logging.Float("total_weight_kg", s.TotalWeight),
			logging.Float("max_weight_kg", s.MaxWeight))
	}

	rejections := make(map[string]int, len(stats.Rejections))
	for r, n := range stats.Rejections {
		rejections[r.String()] = n
	}
	p.metrics.RecordRun(observability.Run{
		Vehicle:    plan.Vehicle.ID,
		Strategy:   plan.Strategy,
		Duration:   elapsed,
		Summary:    s,
		Rejections: rejections,
	})
}
