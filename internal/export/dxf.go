package export

import (
	"fmt"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/TetraLog/internal/model"
)

// Fixed layers of the CAD export. Units go on one layer per stop.
const (
	BayLayer  = "BAY"
	AxleLayer = "AXLES"
)

// stopColors mirrors model.DefaultPalette with the nearest AutoCAD colors.
var stopColors = []color.ColorNumber{color.Red, color.Blue, color.Yellow, color.Magenta, color.Green}

// StopLayer returns the layer name for the units of a stop.
func StopLayer(stop int, destination string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, destination)
	return strings.ToUpper(fmt.Sprintf("STOP_%d_%s", stop, name))
}

// ExportDXF writes a 3-D wireframe of the loaded bay: the bay outline, the
// axle positions and every loaded unit as a box with its step number.
// Coordinates are in cm with X across, Y along the bay and Z up.
func ExportDXF(path string, plan model.LoadPlan) error {
	if plan.Bay == nil {
		return fmt.Errorf("no load plan to export")
	}
	bay := plan.Bay

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(BayLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add layer %s: %w", BayLayer, err)
	}
	if err := wireBox(d, model.Box{Size: bay.Dims}); err != nil {
		return err
	}

	if _, err := d.AddLayer(AxleLayer, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add layer %s: %w", AxleLayer, err)
	}
	for _, y := range []float64{bay.AxleFront, bay.AxleRear} {
		if _, err := d.Line(0, y, 0, bay.Dims.W, y, 0); err != nil {
			return fmt.Errorf("draw axle: %w", err)
		}
	}

	layers := map[string]bool{}
	for i, it := range bay.Placed {
		layer := StopLayer(it.StopOrder, it.Destination)
		if !layers[layer] {
			c := stopColors[abs(it.StopOrder)%len(stopColors)]
			if _, err := d.AddLayer(layer, c, dxf.DefaultLineType, false); err != nil {
				return fmt.Errorf("add layer %s: %w", layer, err)
			}
			layers[layer] = true
		}
		if err := d.ChangeLayer(layer); err != nil {
			return fmt.Errorf("change layer: %w", err)
		}

		b := it.Box()
		if err := wireBox(d, b); err != nil {
			return err
		}
		m := b.Max()
		textHeight := min(b.Size.W, b.Size.D) / 4
		if _, err := d.Text(fmt.Sprintf("%d", i+1), b.Origin.X+b.Size.W/4, b.Origin.Y+b.Size.D/4, m.Z, textHeight); err != nil {
			return fmt.Errorf("label unit: %w", err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save drawing: %w", err)
	}
	return nil
}

// wireBox draws the 12 edges of b on the current layer.
func wireBox(d *drawing.Drawing, b model.Box) error {
	o, m := b.Origin, b.Max()
	corners := [8][3]float64{
		{o.X, o.Y, o.Z}, {m.X, o.Y, o.Z}, {m.X, m.Y, o.Z}, {o.X, m.Y, o.Z},
		{o.X, o.Y, m.Z}, {m.X, o.Y, m.Z}, {m.X, m.Y, m.Z}, {o.X, m.Y, m.Z},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		a, z := corners[e[0]], corners[e[1]]
		if _, err := d.Line(a[0], a[1], a[2], z[0], z[1], z[2]); err != nil {
			return fmt.Errorf("draw edge: %w", err)
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
