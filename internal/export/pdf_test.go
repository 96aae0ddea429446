package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piwi3910/TetraLog/internal/model"
)

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := ExportPDF(path, buildTestPlan(t), PDFOptions{}); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not look like a PDF")
	}
}

func TestWritePDF_Variants(t *testing.T) {
	overweight := buildTestPlan(t)
	overweight.Summary.MaxWeight = 1
	overweight.Bay.MaxWeight = 1

	tests := []struct {
		name string
		plan model.LoadPlan
		opts PDFOptions
	}{
		{"destination colors", buildTestPlan(t), PDFOptions{Generated: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}},
		{"weight colors", buildTestPlan(t), PDFOptions{ColorMode: ColorByWeight}},
		{"overweight", overweight, PDFOptions{}},
		{"multi-page table", buildLargePlan(t), PDFOptions{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePDF(&buf, tt.plan, tt.opts); err != nil {
				t.Fatalf("WritePDF returned error: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("expected PDF output")
			}
		})
	}
}

func TestWritePDF_NoPlan(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, model.LoadPlan{}, PDFOptions{}); err == nil {
		t.Error("expected error for empty plan")
	}
}

func TestExportPDF_BadPath(t *testing.T) {
	if err := ExportPDF(filepath.Join(t.TempDir(), "missing", "plan.pdf"), buildTestPlan(t), PDFOptions{}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWeightText(t *testing.T) {
	ok := model.LoadSummary{TotalWeight: 900, MaxWeight: 1000}
	if got := weightText(ok); got != "900 / 1000 kg" {
		t.Errorf("unexpected weight text %q", got)
	}
	heavy := model.LoadSummary{TotalWeight: 1200, MaxWeight: 1000}
	if got := weightText(heavy); got != "1200 / 1000 kg (OVERWEIGHT!)" {
		t.Errorf("unexpected weight text %q", got)
	}
}

func TestUnitFlags(t *testing.T) {
	it := model.NewItem(0, "Box", 1, 1, 1, 1)
	if got := unitFlags(it); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
	it.Fragile, it.Rotated = true, true
	if got := unitFlags(it); got != "FR" {
		t.Errorf("expected 'FR', got %q", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want rgb
	}{
		{"#e74c3c", rgb{R: 231, G: 76, B: 60}},
		{"3498db", rgb{R: 52, G: 152, B: 219}},
		{"#fff", fallbackColor},
		{"#zzzzzz", fallbackColor},
		{"", fallbackColor},
	}
	for _, tt := range tests {
		if got := parseHexColor(tt.in); got != tt.want {
			t.Errorf("parseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestUnitStyle(t *testing.T) {
	it := model.NewItem(0, "Box", 1, 1, 1, 100)
	it.Color = "#27ae60"

	c, alpha := unitStyle(it, ColorByDestination)
	if c != (rgb{R: 39, G: 174, B: 96}) || alpha != 1 {
		t.Errorf("unexpected destination style %+v %.2f", c, alpha)
	}

	c, alpha = unitStyle(it, ColorByWeight)
	if c != weightColor || alpha != 0.4 {
		t.Errorf("expected light unit at minimum opacity, got %+v %.2f", c, alpha)
	}
	it.Weight = 250
	if _, alpha = unitStyle(it, ColorByWeight); alpha != 0.5 {
		t.Errorf("expected 0.5 opacity, got %.2f", alpha)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorByDestination, false},
		{"Destination", ColorByDestination, false},
		{"stop", ColorByDestination, false},
		{" weight ", ColorByWeight, false},
		{"rainbow", ColorByDestination, true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
