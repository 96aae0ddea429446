package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/TetraLog/internal/engine"
	"github.com/piwi3910/TetraLog/internal/model"
)

func printSummary(w io.Writer, plan model.LoadPlan) {
	s := plan.Summary
	v := plan.Vehicle

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Vehicle:\t%s (%.0f x %.0f x %.0f cm)\n", v.Name, v.Width, v.Depth, v.Height)
	fmt.Fprintf(tw, "Strategy:\t%s\n", plan.Strategy)
	fmt.Fprintf(tw, "Loaded:\t%d / %d units (%.1f%%)\n", s.Fitted, s.Requested, s.FillRate()*100)
	fmt.Fprintf(tw, "Volume:\t%.2f m³ (%.1f%%)\n", s.UsedVolumeM3(), s.VolumeUsage())
	weight := fmt.Sprintf("%.0f / %.0f kg", s.TotalWeight, s.MaxWeight)
	if s.Overweight() {
		weight += " (OVERWEIGHT!)"
	}
	fmt.Fprintf(tw, "Weight:\t%s\n", weight)
	fmt.Fprintf(tw, "Axles:\tfront %.0f kg (%.0f%%), rear %.0f kg\n", s.FrontAxle, s.FrontShare()*100, s.RearAxle)
	tw.Flush()

	if unplaced := plan.UnplacedItems(); len(unplaced) > 0 {
		fmt.Fprintln(w, "Not loaded:")
		for _, it := range unplaced {
			fmt.Fprintf(w, "  #%d %s (%s)\n", it.Index+1, it.Label, it.Destination)
		}
	}
}

func printSequence(w io.Writer, plan model.LoadPlan) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tUNIT\tLABEL\tDESTINATION\tX\tY\tZ\tW x D x H\tFLAGS")
	for i, it := range plan.Bay.Placed {
		d := it.EffectiveDims()
		flags := ""
		if it.Fragile {
			flags += "F"
		}
		if it.Rotated {
			flags += "R"
		}
		if flags == "" {
			flags = "-"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%.0f\t%.0f\t%.0f\t%.0f x %.0f x %.0f\t%s\n",
			i+1, it.Index+1, it.Label, it.Destination, it.Position.X, it.Position.Y, it.Position.Z, d.W, d.D, d.H, flags)
	}
	tw.Flush()
}

func printComparison(w io.Writer, results []engine.ComparisonResult) {
	best, _ := engine.BestResult(results)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tSCENARIO\tLOADED\tVOLUME\tWEIGHT\tFRONT AXLE\tREAR AXLE")
	for _, r := range results {
		mark := ""
		if r.Scenario == best.Scenario {
			mark = "*"
		}
		s := r.Summary
		fmt.Fprintf(tw, "%s\t%s\t%d / %d\t%.1f%%\t%.0f kg\t%.0f kg (%.0f%%)\t%.0f kg\n",
			mark, r.Scenario.Name, s.Fitted, s.Requested, s.VolumeUsage(), s.TotalWeight, s.FrontAxle, s.FrontShare()*100, s.RearAxle)
	}
	tw.Flush()
}
