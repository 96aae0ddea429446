package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/TetraLog/internal/model"
)

// LabelInfo holds the data encoded into each unit label's QR code.
type LabelInfo struct {
	Step        int     `json:"step"` // 1-based loading step
	Unit        int     `json:"unit"` // 1-based unit number in the manifest
	Label       string  `json:"label"`
	Destination string  `json:"destination"`
	Stop        int     `json:"stop"`
	Width       float64 `json:"width_cm"`
	Depth       float64 `json:"depth_cm"`
	Height      float64 `json:"height_cm"`
	Weight      float64 `json:"weight_kg"`
	Fragile     bool    `json:"fragile"`
	Rotated     bool    `json:"rotated"`
	X           float64 `json:"x_cm"`
	Y           float64 `json:"y_cm"`
	Z           float64 `json:"z_cm"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// CollectLabelInfos returns one label per loaded unit, in loading order.
func CollectLabelInfos(plan model.LoadPlan) []LabelInfo {
	if plan.Bay == nil {
		return nil
	}
	var labels []LabelInfo
	for i, it := range plan.Bay.Placed {
		d := it.EffectiveDims()
		labels = append(labels, LabelInfo{
			Step:        i + 1,
			Unit:        it.Index + 1,
			Label:       it.Label,
			Destination: it.Destination,
			Stop:        it.StopOrder,
			Width:       d.W,
			Depth:       d.D,
			Height:      d.H,
			Weight:      it.Weight,
			Fragile:     it.Fragile,
			Rotated:     it.Rotated,
			X:           it.Position.X,
			Y:           it.Position.Y,
			Z:           it.Position.Z,
		})
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels for all loaded units.
// Each label shows the unit, its destination and bay position, and a QR
// code encoding the same data as JSON for scanning at the dock.
func ExportLabels(path string, plan model.LoadPlan) error {
	labels := CollectLabelInfos(plan)
	if len(labels) == 0 {
		return fmt.Errorf("no loaded units to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label, tr); err != nil {
			return fmt.Errorf("render label for unit %d: %w", label.Unit, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, tr func(string) string) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_step_%d", info.Step)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Stop and destination.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, tr(fmt.Sprintf("%d. %s", info.Stop, info.Destination)), textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, truncate(pdf, tr(info.Label), textW), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+8.5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%.0fx%.0fx%.0f cm  %.1f kg", info.Width, info.Depth, info.Height, info.Weight), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+12)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Step %d @ (%.0f, %.0f, %.0f)", info.Step, info.X, info.Y, info.Z), "", 1, "L", false, 0, "")

	var flags []string
	if info.Fragile {
		flags = append(flags, "FRAGILE")
	}
	if info.Rotated {
		flags = append(flags, "Rotated 90\xb0")
	}
	if len(flags) > 0 {
		pdf.SetXY(textX, y+labelPadding+15.5)
		pdf.SetFont("Helvetica", "B", 6)
		pdf.SetTextColor(alertColor.R, alertColor.G, alertColor.B)
		text := flags[0]
		if len(flags) > 1 {
			text += "  " + flags[1]
		}
		pdf.CellFormat(textW, 3, text, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// truncate shortens s with an ellipsis until it fits in width w.
func truncate(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}
