package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/piwi3910/TetraLog/internal/export"
	"github.com/piwi3910/TetraLog/internal/logging"
	"github.com/piwi3910/TetraLog/internal/model"
	"github.com/piwi3910/TetraLog/internal/observability"
	"github.com/piwi3910/TetraLog/internal/planner"
	"github.com/piwi3910/TetraLog/internal/project"
)

// Output formats written by pack, in write order.
var outputFormats = []string{"pdf", "xlsx", "dxf", "json", "labels"}

type packOptions struct {
	vehicle     string
	strategy    string
	outDir      string
	formats     []string
	colorMode   string
	metricsFile string
	save        bool
	sequence    bool
}

func newPackCmd(a *app) *cobra.Command {
	var opts packOptions
	cmd := &cobra.Command{
		Use:   "pack MANIFEST",
		Short: "Pack a manifest and write the load plan",
		Long: `Pack a manifest into the selected vehicle and write the load plan.

MANIFEST is a .csv or .xlsx sheet (see "tetralog template") or a saved
.tetralog.json manifest. Units that do not fit are listed, not treated as
an error.

Formats:
  pdf     report with summary, top and side views, loading sequence
  xlsx    spreadsheet with summary, load plan and not-loaded sheets
  dxf     3D wireframe, one layer per stop
  json    machine-readable plan
  labels  QR-coded unit labels (Avery 5160)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPack(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.vehicle, "vehicle", "v", "", "vehicle ID or name (default from config)")
	f.StringVarP(&opts.strategy, "strategy", "s", "", "balanced or density (default from config)")
	f.StringVarP(&opts.outDir, "out", "o", "", "output directory (default from config)")
	f.StringSliceVarP(&opts.formats, "format", "f", []string{"pdf", "json"}, "outputs to write: "+strings.Join(outputFormats, ", "))
	f.StringVar(&opts.colorMode, "color", "destination", "unit coloring in drawings: destination or weight")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this textfile")
	f.BoolVar(&opts.save, "save", false, "save the manifest with its plan as "+project.ManifestExt)
	f.BoolVar(&opts.sequence, "sequence", false, "print the loading sequence")
	return cmd
}

func (a *app) runPack(cmd *cobra.Command, input string, opts packOptions) error {
	formats, err := parseFormats(opts.formats)
	if err != nil {
		return err
	}
	colorMode, err := export.ParseColorMode(opts.colorMode)
	if err != nil {
		return err
	}

	m, err := a.loadManifest(input)
	if err != nil {
		return err
	}
	if err := a.overrides(&m, opts.vehicle, opts.strategy); err != nil {
		return err
	}

	var metrics *observability.PackCollector
	if opts.metricsFile != "" {
		if metrics, err = observability.NewPackCollector(prometheus.NewRegistry()); err != nil {
			return err
		}
	}

	p := planner.New(a.config, planner.WithCatalog(a.vehicles), planner.WithLogger(a.log), planner.WithMetrics(metrics))
	plan, err := p.Plan(cmd.Context(), p.RequestFromManifest(cmd.Context(), m))
	if err != nil {
		return err
	}

	printSummary(a.out, plan)
	if opts.sequence {
		printSequence(a.out, plan)
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = a.config.OutputDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	base := filepath.Join(outDir, baseName(input))

	for _, format := range formats {
		path, err := writePlan(base, format, plan, colorMode)
		if err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		fmt.Fprintf(a.out, "wrote %s\n", path)
	}

	if opts.save {
		m.Plan = &plan
		path := base + project.ManifestExt
		if err := project.SaveManifest(path, m); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "saved %s\n", path)
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
	}

	if abs, err := filepath.Abs(input); err == nil {
		a.config.AddRecentManifest(abs)
		if err := a.saveConfig(); err != nil {
			a.log.Warn(cmd.Context(), "could not update recent manifests", logging.Err(err))
		}
	}
	return nil
}

// parseFormats validates and de-duplicates the requested output formats.
func parseFormats(requested []string) ([]string, error) {
	want := make(map[string]bool, len(requested))
	for _, f := range requested {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "excel" {
			f = "xlsx"
		}
		if f == "" {
			continue
		}
		known := false
		for _, o := range outputFormats {
			known = known || o == f
		}
		if !known {
			return nil, fmt.Errorf("unknown format %q (want %s)", f, strings.Join(outputFormats, ", "))
		}
		want[f] = true
	}
	var formats []string
	for _, o := range outputFormats {
		if want[o] {
			formats = append(formats, o)
		}
	}
	return formats, nil
}

// writePlan writes one output format next to base and returns its path.
func writePlan(base, format string, plan model.LoadPlan, colorMode export.ColorMode) (string, error) {
	switch format {
	case "pdf":
		path := base + ".pdf"
		return path, export.ExportPDF(path, plan, export.PDFOptions{ColorMode: colorMode, Generated: time.Now()})
	case "xlsx":
		path := base + "_plan.xlsx"
		return path, export.ExportExcel(path, plan)
	case "dxf":
		path := base + ".dxf"
		return path, export.ExportDXF(path, plan)
	case "json":
		path := base + ".plan.json"
		return path, export.ExportJSON(path, plan)
	case "labels":
		path := base + "_labels.pdf"
		return path, export.ExportLabels(path, plan)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
