package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TetraLog/internal/model"
)

// Sheet names of the load-plan workbook.
const (
	SummarySheet   = "Summary"
	LoadPlanSheet  = "Load Plan"
	NotLoadedSheet = "Not Loaded"
)

// LoadPlanHeader lists the columns of the load-plan sheet.
var LoadPlanHeader = []interface{}{
	"Step", "Unit", "Label", "Destination", "Stop", "Width (cm)", "Depth (cm)", "Height (cm)",
	"X (cm)", "Y (cm)", "Z (cm)", "Rotated", "Fragile", "Volume (m3)", "Weight (kg)",
}

// ExportExcel writes the load plan as a workbook with a summary sheet, the
// loading sequence and the units that did not fit.
func ExportExcel(path string, plan model.LoadPlan) error {
	if plan.Bay == nil {
		return fmt.Errorf("no load plan to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSummarySheet(f, plan); err != nil {
		return err
	}

	if _, err := f.NewSheet(LoadPlanSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	rows := [][]interface{}{LoadPlanHeader}
	for i, it := range plan.Bay.Placed {
		d := it.EffectiveDims()
		rows = append(rows, []interface{}{
			i + 1, it.Index + 1, it.Label, it.Destination, it.StopOrder, d.W, d.D, d.H,
			it.Position.X, it.Position.Y, it.Position.Z, yesNo(it.Rotated), yesNo(it.Fragile),
			it.Volume() / 1e6, it.Weight,
		})
	}
	if err := writeRows(f, LoadPlanSheet, rows); err != nil {
		return err
	}

	if unplaced := plan.UnplacedItems(); len(unplaced) > 0 {
		if _, err := f.NewSheet(NotLoadedSheet); err != nil {
			return fmt.Errorf("add sheet: %w", err)
		}
		rows := [][]interface{}{{"Unit", "Label", "Destination", "Stop", "Width (cm)", "Depth (cm)", "Height (cm)", "Weight (kg)"}}
		for _, it := range unplaced {
			rows = append(rows, []interface{}{
				it.Index + 1, it.Label, it.Destination, it.StopOrder, it.Dims.W, it.Dims.D, it.Dims.H, it.Weight,
			})
		}
		if err := writeRows(f, NotLoadedSheet, rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, plan model.LoadPlan) error {
	s := plan.Summary
	rows := [][]interface{}{
		{"Vehicle", plan.Vehicle.Name},
		{"Strategy", plan.Strategy.String()},
		{"Requested Units", s.Requested},
		{"Loaded Units", s.Fitted},
		{"Fill Rate (%)", s.FillRate() * 100},
		{"Used Volume (m3)", s.UsedVolumeM3()},
		{"Volume Usage (%)", s.VolumeUsage()},
		{"Total Weight (kg)", s.TotalWeight},
		{"Max Payload (kg)", s.MaxWeight},
		{"Overweight", yesNo(s.Overweight())},
		{"Front Axle (kg)", s.FrontAxle},
		{"Rear Axle (kg)", s.RearAxle},
	}
	if err := writeRows(f, SummarySheet, rows); err != nil {
		return err
	}
	_ = f.SetColWidth(SummarySheet, "A", "A", 20)
	_ = f.SetColWidth(SummarySheet, "B", "B", 24)
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
