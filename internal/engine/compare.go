package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/TetraLog/internal/model"
)

// ComparisonScenario defines a named strategy to compare.
type ComparisonScenario struct {
	Name     string
	Strategy model.Strategy
}

// ComparisonResult holds the packed bay and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Bay      *model.Container
	Items    []*model.Item
	Summary  model.LoadSummary
}

// CompareStrategies packs the same manifest once per scenario and returns the
// results in scenario order. Scenarios run concurrently; each gets its own
// bay from newBay and its own expanded units, so nothing is shared between runs.
func CompareStrategies(ctx context.Context, newBay func() *model.Container, lines []model.ManifestLine, scenarios []ComparisonScenario) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bay := newBay()
			if err := bay.Validate(); err != nil {
				return fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}
			items := model.ExpandManifest(lines)
			New(bay).Pack(items, scenario.Strategy)

			results[i] = ComparisonResult{
				Scenario: scenario,
				Bay:      bay,
				Items:    items,
				Summary:  Summarize(bay, len(items)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BuildDefaultScenarios returns the current strategy followed by every
// other supported strategy, for what-if comparison.
func BuildDefaultScenarios(current model.Strategy) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current: " + current.String(), Strategy: current},
	}
	for _, s := range model.Strategies {
		if s == current {
			continue
		}
		scenarios = append(scenarios, ComparisonScenario{Name: s.String(), Strategy: s})
	}
	return scenarios
}

// BestResult picks the scenario that loaded the most units, breaking ties
// by the smaller deviation of the front axle share from an even split.
func BestResult(results []ComparisonResult) (ComparisonResult, bool) {
	if len(results) == 0 {
		return ComparisonResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Summary.Fitted > best.Summary.Fitted {
			best = r
			continue
		}
		if r.Summary.Fitted == best.Summary.Fitted &&
			abs(r.Summary.FrontShare()-0.5) < abs(best.Summary.FrontShare()-0.5) {
			best = r
		}
	}
	return best, true
}
