package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateSheet is the sheet name used by the manifest template.
const TemplateSheet = "Manifest"

// TemplateHeader lists the template columns in positional-import order,
// preceded by the optional label column.
var TemplateHeader = []string{"Label", "Width", "Length", "Height", "Weight", "Qty", "Destination", "Fragile", "Rotate"}

// templateSamples are example rows shipped with the template.
var templateSamples = [][]interface{}{
	{"Pallet", 80, 120, 100, 20, 10, "Ankara", "No", "Yes"},
	{"Crate", 100, 100, 150, 15, 5, "Kocaeli", "No", "Yes"},
}

// WriteTemplate writes a manifest spreadsheet with a header row and two
// sample lines to path.
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TemplateSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(TemplateHeader))
	for i, h := range TemplateHeader {
		header[i] = h
	}
	rows := append([][]interface{}{header}, templateSamples...)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TemplateSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(TemplateHeader), 1)
		_ = f.SetCellStyle(TemplateSheet, "A1", last, style)
	}
	_ = f.SetColWidth(TemplateSheet, "A", "A", 16)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}
