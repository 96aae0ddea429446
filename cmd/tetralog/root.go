package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TetraLog/internal/importer"
	"github.com/piwi3910/TetraLog/internal/logging"
	"github.com/piwi3910/TetraLog/internal/model"
	"github.com/piwi3910/TetraLog/internal/project"
)

// app carries the state shared by all commands.
type app struct {
	out    io.Writer
	errOut io.Writer

	paths     project.Paths
	envFile   string
	logLevel  string
	logFormat string

	config   model.AppConfig
	vehicles model.Catalog
	log      logging.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, paths: project.DefaultPaths(), log: logging.Noop()}

	root := &cobra.Command{
		Use:   "tetralog",
		Short: "3D truck loading planner",
		Long: `TetraLog packs a cargo manifest into a truck, trailer or van.

Units for later stops are loaded first so that every stop can be unloaded
from the doors without moving other cargo. Boxes never float, never rest
on fragile cargo and need at least 60% of their base supported.

Configuration lives in ~/.tetralog and can be overridden with
TETRALOG_VEHICLE, TETRALOG_STRATEGY, TETRALOG_OUTPUT_DIR and
TETRALOG_STOPS, either exported or in a .env file.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.paths.Dir, "config-dir", a.paths.Dir, "directory holding config, vehicles, presets and templates")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file with TETRALOG_* overrides")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL or info)")
	flags.StringVar(&a.logFormat, "log-format", "", "text or json (default $LOG_FORMAT or text)")

	root.AddCommand(
		newPackCmd(a),
		newCompareCmd(a),
		newTemplateCmd(a),
		newVehiclesCmd(a),
		newPresetsCmd(a),
		newTemplatesCmd(a),
		newBackupCmd(a),
	)
	return root
}

// setup loads configuration, the vehicle catalog and environment
// overrides, then builds the logger.
func (a *app) setup() error {
	config, err := project.LoadAppConfig(a.paths.Config())
	if err != nil {
		return err
	}
	vehicles, err := project.LoadCatalog(a.paths.Vehicles())
	if err != nil {
		return fmt.Errorf("custom vehicles: %w", err)
	}
	if err := project.ApplyEnv(&config, vehicles, a.envFile); err != nil {
		return err
	}
	a.config = config
	a.vehicles = vehicles

	level := a.logLevel
	if level == "" {
		level = os.Getenv(logging.EnvLevel)
	}
	format := a.logFormat
	if format == "" {
		format = os.Getenv(logging.EnvFormat)
	}
	a.log = logging.New(logging.Config{Level: level, Format: format, Output: a.errOut})
	return nil
}

func (a *app) saveConfig() error {
	return project.SaveAppConfig(a.paths.Config(), a.config)
}

// loadManifest reads a saved manifest (.json) or imports a spreadsheet
// (.csv, .xlsx). Import problems are printed; the call fails only when no
// line could be read.
func (a *app) loadManifest(path string) (model.Manifest, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		m, err := project.LoadManifest(path)
		if err != nil {
			return model.Manifest{}, err
		}
		return m.Copy(), nil
	}

	result := importer.ImportFile(path, a.config)
	for _, w := range result.Warnings {
		fmt.Fprintf(a.errOut, "warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(a.errOut, "error: %s\n", e)
	}
	if len(result.Lines) == 0 {
		return model.Manifest{}, fmt.Errorf("%s: no valid manifest lines", path)
	}

	m := model.NewManifest()
	m.Name = baseName(path)
	m.Vehicle = a.config.DefaultVehicle
	m.Strategy = a.config.DefaultStrategy
	m.Lines = result.Lines
	return m, nil
}

// overrides applies --vehicle and --strategy flags to m.
func (a *app) overrides(m *model.Manifest, vehicle, strategy string) error {
	if vehicle != "" {
		v, ok := a.vehicles.Lookup(vehicle)
		if !ok {
			return fmt.Errorf("unknown vehicle %q (see tetralog vehicles list)", vehicle)
		}
		m.Vehicle = v.ID
	}
	if strategy != "" {
		s, err := model.ParseStrategy(strategy)
		if err != nil {
			return err
		}
		m.Strategy = s
	}
	return nil
}

// baseName strips the directory and manifest extensions from path.
func baseName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, project.ManifestExt)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
