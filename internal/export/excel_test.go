package export

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TetraLog/internal/model"
)

func TestExportExcel(t *testing.T) {
	plan := buildTestPlan(t)
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	if err := ExportExcel(path, plan); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{SummarySheet, LoadPlanSheet, NotLoadedSheet}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d: expected %q, got %q", i, want[i], sheets[i])
		}
	}

	loaded, _ := f.GetCellValue(SummarySheet, "B4")
	if loaded != strconv.Itoa(plan.Summary.Fitted) {
		t.Errorf("expected %d loaded units in summary, got %q", plan.Summary.Fitted, loaded)
	}
	vehicle, _ := f.GetCellValue(SummarySheet, "B1")
	if vehicle != plan.Vehicle.Name {
		t.Errorf("expected vehicle %q, got %q", plan.Vehicle.Name, vehicle)
	}

	rows, err := f.GetRows(LoadPlanSheet)
	if err != nil {
		t.Fatalf("read load plan: %v", err)
	}
	if len(rows) != len(plan.Bay.Placed)+1 {
		t.Errorf("expected %d rows, got %d", len(plan.Bay.Placed)+1, len(rows))
	}
	if rows[1][0] != "1" || rows[1][3] != plan.Bay.Placed[0].Destination {
		t.Errorf("unexpected first row %v", rows[1])
	}

	notLoaded, err := f.GetRows(NotLoadedSheet)
	if err != nil {
		t.Fatalf("read not-loaded sheet: %v", err)
	}
	if len(notLoaded) != len(plan.UnplacedItems())+1 {
		t.Errorf("expected %d not-loaded rows, got %d", len(plan.UnplacedItems())+1, len(notLoaded))
	}
}

func TestExportExcel_AllLoaded(t *testing.T) {
	plan := buildLargePlan(t)
	if len(plan.UnplacedItems()) != 0 {
		t.Fatalf("expected every carton to fit, %d left", len(plan.UnplacedItems()))
	}
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	if err := ExportExcel(path, plan); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if idx, _ := f.GetSheetIndex(NotLoadedSheet); idx != -1 {
		t.Error("expected no not-loaded sheet when everything fits")
	}
}

func TestExportExcel_NoPlan(t *testing.T) {
	if err := ExportExcel(filepath.Join(t.TempDir(), "plan.xlsx"), model.LoadPlan{}); err == nil {
		t.Error("expected error for empty plan")
	}
}
