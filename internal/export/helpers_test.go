package export

import (
	"testing"

	"github.com/piwi3910/TetraLog/internal/engine"
	"github.com/piwi3910/TetraLog/internal/model"
)

// buildTestPlan packs a small manifest into a van. The oversize line never
// fits, so the plan always has loaded and unplaced units.
func buildTestPlan(t *testing.T) model.LoadPlan {
	t.Helper()
	cfg := model.DefaultAppConfig()

	pallet := model.NewManifestLine("Pallet", 80, 120, 100, 20, 4)
	pallet.Destination = "Ankara"
	crate := model.NewManifestLine("Crate", 100, 100, 150, 15, 2)
	crate.Destination = "Kocaeli"
	glass := model.NewManifestLine("Glass Eskişehir", 60, 40, 40, 25, 2)
	glass.Destination = "Erzurum"
	glass.Fragile = true
	oversize := model.NewManifestLine("Oversize", 200, 100, 100, 40, 1)
	oversize.Destination = "Kocaeli"
	oversize.CanRotate = false

	lines := []model.ManifestLine{pallet, crate, glass, oversize}
	for i := range lines {
		cfg.ApplyToLine(&lines[i])
	}

	vehicle := model.GetVehicle("van")
	bay := vehicle.NewContainer()
	items := model.ExpandManifest(lines)
	engine.New(bay).Pack(items, model.StrategyBalanced)

	plan := model.LoadPlan{
		Vehicle:  vehicle,
		Strategy: model.StrategyBalanced,
		Items:    items,
		Bay:      bay,
		Summary:  engine.Summarize(bay, len(items)),
	}
	if len(bay.Placed) == 0 || len(plan.UnplacedItems()) == 0 {
		t.Fatalf("test plan should have loaded and unplaced units, got %d/%d", len(bay.Placed), len(items))
	}
	return plan
}

// buildLargePlan packs enough small cartons to span several pages.
func buildLargePlan(t *testing.T) model.LoadPlan {
	t.Helper()
	line := model.NewManifestLine("Carton", 40, 30, 30, 2, 120)
	line.Destination = "Ankara"
	line.StopOrder = 2
	line.Color = "#f1c40f"

	vehicle := model.GetVehicle("truck")
	bay := vehicle.NewContainer()
	items := model.ExpandManifest([]model.ManifestLine{line})
	engine.New(bay).Pack(items, model.StrategyDensity)

	return model.LoadPlan{
		Vehicle:  vehicle,
		Strategy: model.StrategyDensity,
		Items:    items,
		Bay:      bay,
		Summary:  engine.Summarize(bay, len(items)),
	}
}
