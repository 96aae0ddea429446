package engine

import (
	"sort"

	"github.com/piwi3910/TetraLog/internal/model"
)

// orderItems returns a copy of items sorted for loading under the given strategy.
//
// Both strategies sort descending so that later stops are loaded first and end
// up deepest in the bay. The sort is stable: units with equal keys keep their
// request order.
func orderItems(items []*model.Item, strategy model.Strategy) []*model.Item {
	sorted := make([]*model.Item, len(items))
	copy(sorted, items)

	var less func(a, b *model.Item) bool
	switch strategy {
	case model.StrategyDensity:
		// (stop order, density, volume) descending
		less = func(a, b *model.Item) bool {
			if a.StopOrder != b.StopOrder {
				return a.StopOrder > b.StopOrder
			}
			if da, db := a.Density(), b.Density(); da != db {
				return da > db
			}
			return a.Volume() > b.Volume()
		}
	default:
		// (stop order, volume) descending
		less = func(a, b *model.Item) bool {
			if a.StopOrder != b.StopOrder {
				return a.StopOrder > b.StopOrder
			}
			return a.Volume() > b.Volume()
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
