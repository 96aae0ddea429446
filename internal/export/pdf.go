// Package export writes load plans to PDF reports, label sheets,
// spreadsheets, CAD drawings and JSON.
package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/TetraLog/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	contentTop   = marginTop + headerHeight + 3.0
	summaryWidth = 105.0
	viewLeft     = marginLeft + summaryWidth + 10.0
	viewWidth    = pageWidth - marginRight - viewLeft
	viewHeight   = 62.0
	rowHeight    = 6.0
)

// PDFOptions controls the report rendering.
type PDFOptions struct {
	ColorMode ColorMode
	Generated time.Time // Report date; zero means now
}

// ExportPDF writes a load-plan report for plan to path.
func ExportPDF(path string, plan model.LoadPlan, opts PDFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := WritePDF(f, plan, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePDF renders the load-plan report: an executive summary with top and
// side views of the bay, followed by the loaded-unit table and the list of
// units that did not fit.
func WritePDF(w io.Writer, plan model.LoadPlan, opts PDFOptions) error {
	if plan.Bay == nil {
		return fmt.Errorf("no load plan to export")
	}
	if opts.Generated.IsZero() {
		opts.Generated = time.Now()
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(headerColor.R, headerColor.G, headerColor.B)
		pdf.SetXY(marginLeft, marginTop)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "TETRALOG | Load Plan", "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(100, 116, 139)
		pdf.SetXY(marginLeft, pageHeight-marginBottom+3)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	renderSummary(pdf, plan, opts.Generated, tr)
	renderTopView(pdf, plan.Bay, opts.ColorMode, contentTop)
	renderSideView(pdf, plan.Bay, opts.ColorMode, contentTop+viewHeight+18)

	pdf.AddPage()
	y := renderUnitTable(pdf, plan.Bay.Placed, tr)
	renderUnplaced(pdf, plan.UnplacedItems(), y+6, tr)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// renderSummary draws the executive summary block in the left column.
func renderSummary(pdf *fpdf.Fpdf, plan model.LoadPlan, generated time.Time, tr func(string) string) {
	s := plan.Summary

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(241, 245, 249)
	pdf.SetXY(marginLeft, contentTop)
	pdf.CellFormat(summaryWidth, 9, "  EXECUTIVE SUMMARY - "+generated.Format("02-01-2006"), "", 0, "L", true, 0, "")

	rows := []struct {
		label string
		value string
		alert bool
	}{
		{"Vehicle", tr(plan.Vehicle.Name), false},
		{"Strategy", plan.Strategy.String(), false},
		{"Loaded Units", fmt.Sprintf("%d / %d (%.0f%%)", s.Fitted, s.Requested, s.FillRate()*100), false},
		{"Volume Usage", fmt.Sprintf("%.1f%% (%.2f m3)", s.VolumeUsage(), s.UsedVolumeM3()), false},
		{"Total Weight", weightText(s), s.Overweight()},
		{"Front Axle", fmt.Sprintf("%.0f kg", s.FrontAxle), false},
		{"Rear Axle", fmt.Sprintf("%.0f kg", s.RearAxle), false},
	}

	y := contentTop + 13
	for _, r := range rows {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft+3, y)
		pdf.CellFormat(38, 7, r.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		if r.alert {
			pdf.SetTextColor(alertColor.R, alertColor.G, alertColor.B)
		}
		pdf.CellFormat(summaryWidth-41, 7, r.value, "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 8
	}

	renderLegend(pdf, plan.Bay.Placed, y+4, tr)
}

func weightText(s model.LoadSummary) string {
	text := fmt.Sprintf("%.0f / %.0f kg", s.TotalWeight, s.MaxWeight)
	if s.Overweight() {
		text += " (OVERWEIGHT!)"
	}
	return text
}

// renderLegend lists the destinations on board with their colors.
func renderLegend(pdf *fpdf.Fpdf, placed []*model.Item, y float64, tr func(string) string) {
	type dest struct {
		name  string
		stop  int
		color string
		count int
	}
	byName := map[string]*dest{}
	var dests []*dest
	for _, it := range placed {
		d, ok := byName[it.Destination]
		if !ok {
			d = &dest{name: it.Destination, stop: it.StopOrder, color: it.Color}
			byName[it.Destination] = d
			dests = append(dests, d)
		}
		d.count++
	}
	if len(dests) == 0 {
		return
	}
	sort.SliceStable(dests, func(i, j int) bool { return dests[i].stop < dests[j].stop })

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft+3, y)
	pdf.CellFormat(60, 5, "Destinations on board:", "", 0, "L", false, 0, "")
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for _, d := range dests {
		c := parseHexColor(d.color)
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.Rect(marginLeft+3, y+1, 3, 3, "F")
		pdf.SetXY(marginLeft+8, y)
		pdf.CellFormat(90, 5, tr(fmt.Sprintf("Stop %d - %s (%d units)", d.stop, d.name, d.count)), "", 0, "L", false, 0, "")
		y += 5
	}
}

// viewScale fits a span of u by v centimetres into the view area.
func viewScale(u, v float64) float64 {
	return math.Min(viewWidth/u, viewHeight/v)
}

// renderTopView draws the bay seen from above: depth runs left (cab) to
// right (doors), width runs down the page. Higher units are drawn last.
func renderTopView(pdf *fpdf.Fpdf, bay *model.Container, mode ColorMode, top float64) {
	drawViewTitle(pdf, "Top View", top)
	top += 6

	scale := viewScale(bay.Dims.D, bay.Dims.W)
	drawBay(pdf, viewLeft, top, bay.Dims.D*scale, bay.Dims.W*scale)

	units := append([]*model.Item(nil), bay.Placed...)
	sort.SliceStable(units, func(i, j int) bool { return units[i].Position.Z < units[j].Position.Z })
	for _, it := range units {
		b := it.Box()
		drawUnit(pdf, it, mode,
			viewLeft+b.Origin.Y*scale, top+b.Origin.X*scale,
			b.Size.D*scale, b.Size.W*scale)
	}
	drawAxles(pdf, bay, scale, top, bay.Dims.W*scale)
}

// renderSideView draws the bay seen from the driver's side: depth runs left
// to right, height runs up. Units nearer the viewer are drawn last.
func renderSideView(pdf *fpdf.Fpdf, bay *model.Container, mode ColorMode, top float64) {
	drawViewTitle(pdf, "Side View", top)
	top += 6

	scale := viewScale(bay.Dims.D, bay.Dims.H)
	h := bay.Dims.H * scale
	drawBay(pdf, viewLeft, top, bay.Dims.D*scale, h)

	units := append([]*model.Item(nil), bay.Placed...)
	sort.SliceStable(units, func(i, j int) bool { return units[i].Position.X > units[j].Position.X })
	for _, it := range units {
		b := it.Box()
		drawUnit(pdf, it, mode,
			viewLeft+b.Origin.Y*scale, top+h-b.Top()*scale,
			b.Size.D*scale, b.Size.H*scale)
	}
	drawAxles(pdf, bay, scale, top, h)
}

func drawViewTitle(pdf *fpdf.Fpdf, title string, y float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(viewLeft, y)
	pdf.CellFormat(viewWidth, 5, title, "", 0, "L", false, 0, "")
}

func drawBay(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetFillColor(248, 250, 252)
	pdf.SetDrawColor(bayOutline.R, bayOutline.G, bayOutline.B)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, y, w, h, "FD")
}

func drawUnit(pdf *fpdf.Fpdf, it *model.Item, mode ColorMode, x, y, w, h float64) {
	c, alpha := unitStyle(it, mode)
	pdf.SetAlpha(alpha, "Normal")
	pdf.SetFillColor(c.R, c.G, c.B)
	pdf.SetDrawColor(30, 41, 59)
	pdf.SetLineWidth(0.15)
	pdf.Rect(x, y, w, h, "FD")
	pdf.SetAlpha(1, "Normal")
}

// drawAxles marks the axle positions under a view.
func drawAxles(pdf *fpdf.Fpdf, bay *model.Container, scale, top, h float64) {
	pdf.SetDrawColor(alertColor.R, alertColor.G, alertColor.B)
	pdf.SetLineWidth(0.3)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(alertColor.R, alertColor.G, alertColor.B)
	for _, a := range []struct {
		name string
		y    float64
	}{{"Front axle", bay.AxleFront}, {"Rear axle", bay.AxleRear}} {
		x := viewLeft + a.y*scale
		pdf.Line(x, top+h, x, top+h+3)
		pdf.SetXY(x-10, top+h+3)
		pdf.CellFormat(20, 3, a.name, "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

var unitTableCols = []struct {
	header string
	width  float64
}{
	{"#", 10}, {"Label", 45}, {"Destination", 35}, {"Stop", 12}, {"Dims (cm)", 36},
	{"Position (cm)", 42}, {"Vol (m3)", 22}, {"Wgt (kg)", 22}, {"Flags", 18}, {"Status", 23},
}

func drawTableHeader(pdf *fpdf.Fpdf, y float64) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(headerColor.R, headerColor.G, headerColor.B)
	pdf.SetTextColor(255, 255, 255)
	x := marginLeft
	for _, c := range unitTableCols {
		pdf.SetXY(x, y)
		pdf.CellFormat(c.width, rowHeight+1, c.header, "1", 0, "C", true, 0, "")
		x += c.width
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderUnitTable lists the loaded units in loading order and returns the
// y position below the table.
func renderUnitTable(pdf *fpdf.Fpdf, placed []*model.Item, tr func(string) string) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, contentTop)
	pdf.CellFormat(100, 7, "Loading Sequence", "", 0, "L", false, 0, "")

	y := contentTop + 9
	drawTableHeader(pdf, y)
	y += rowHeight + 1

	for i, it := range placed {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = contentTop
			drawTableHeader(pdf, y)
			y += rowHeight + 1
		}
		d := it.EffectiveDims()
		row := []string{
			fmt.Sprintf("%d", i+1),
			tr(it.Label),
			tr(it.Destination),
			fmt.Sprintf("%d", it.StopOrder),
			fmt.Sprintf("%.0fx%.0fx%.0f", d.W, d.D, d.H),
			fmt.Sprintf("%.0f, %.0f, %.0f", it.Position.X, it.Position.Y, it.Position.Z),
			fmt.Sprintf("%.3f", it.Volume()/1e6),
			fmt.Sprintf("%.1f", it.Weight),
			unitFlags(it),
			"LOADED",
		}

		pdf.SetFont("Helvetica", "", 8)
		if i%2 == 1 {
			pdf.SetFillColor(248, 250, 252)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		x := marginLeft
		for j, cell := range row {
			pdf.SetXY(x, y)
			pdf.CellFormat(unitTableCols[j].width, rowHeight, cell, "1", 0, "C", true, 0, "")
			x += unitTableCols[j].width
		}
		y += rowHeight
	}
	return y
}

// unitFlags abbreviates the handling flags: F fragile, R rotated.
func unitFlags(it *model.Item) string {
	s := ""
	if it.Fragile {
		s += "F"
	}
	if it.Rotated {
		s += "R"
	}
	if s == "" {
		return "-"
	}
	return s
}

// renderUnplaced lists the units that did not fit.
func renderUnplaced(pdf *fpdf.Fpdf, unplaced []*model.Item, y float64, tr func(string) string) {
	if len(unplaced) == 0 {
		return
	}
	if y+20 > pageHeight-marginBottom {
		pdf.AddPage()
		y = contentTop
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(alertColor.R, alertColor.G, alertColor.B)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(200, 7, fmt.Sprintf("WARNING: %d units not loaded", len(unplaced)), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	y += 8

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range unplaced {
		if y+5 > pageHeight-marginBottom {
			pdf.AddPage()
			y = contentTop
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.SetXY(marginLeft+5, y)
		text := fmt.Sprintf("- #%d %s: %.0fx%.0fx%.0f cm, %.1f kg, %s", it.Index+1, it.Label, it.Dims.W, it.Dims.D, it.Dims.H, it.Weight, it.Destination)
		pdf.CellFormat(250, 5, tr(text), "", 0, "L", false, 0, "")
		y += 5
	}
}
