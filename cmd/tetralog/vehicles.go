package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TetraLog/internal/model"
	"github.com/piwi3910/TetraLog/internal/project"
)

func newVehiclesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List and manage vehicle types",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List built-in and custom vehicles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tW x D x H (cm)\tMAX (kg)\tAXLES (cm)\tTYPE")
				for _, v := range a.vehicles.All() {
					bay := v.NewContainer()
					kind := "custom"
					if v.IsBuiltIn {
						kind = "built-in"
					}
					fmt.Fprintf(tw, "%s\t%s\t%.0f x %.0f x %.0f\t%.0f\t%.0f / %.0f\t%s\n",
						v.ID, v.Name, v.Width, v.Depth, v.Height, v.MaxWeight, bay.AxleFront, bay.AxleRear, kind)
				}
				return tw.Flush()
			},
		},
		newVehicleAddCmd(a),
		&cobra.Command{
			Use:   "remove ID",
			Short: "Remove a custom vehicle",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				kept := make([]model.VehicleType, 0, len(a.vehicles.Custom))
				for _, v := range a.vehicles.Custom {
					if v.ID != args[0] && v.Name != args[0] {
						kept = append(kept, v)
					}
				}
				if len(kept) == len(a.vehicles.Custom) {
					return fmt.Errorf("no custom vehicle %q", args[0])
				}
				if err := project.SaveCustomVehicles(a.paths.Vehicles(), kept); err != nil {
					return err
				}
				a.vehicles = model.Catalog{Custom: kept}
				return nil
			},
		},
		&cobra.Command{
			Use:   "export ID PATH",
			Short: "Export a vehicle to a JSON file for sharing",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, ok := a.vehicles.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown vehicle %q", args[0])
				}
				return project.ExportVehicle(args[1], v)
			},
		},
		&cobra.Command{
			Use:   "import PATH",
			Short: "Import a vehicle exported with \"vehicles export\"",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := project.ImportVehicle(args[0])
				if err != nil {
					return err
				}
				return a.addCustomVehicle(v)
			},
		},
	)
	return cmd
}

func newVehicleAddCmd(a *app) *cobra.Command {
	var v model.VehicleType
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a custom vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nv := model.NewVehicleType(args[0], v.Width, v.Depth, v.Height, v.MaxWeight)
			nv.AxleFront, nv.AxleRear = v.AxleFront, v.AxleRear
			return a.addCustomVehicle(nv)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&v.Width, "width", 0, "bay width in cm")
	f.Float64Var(&v.Depth, "depth", 0, "bay length in cm, cab to doors")
	f.Float64Var(&v.Height, "height", 0, "bay height in cm")
	f.Float64Var(&v.MaxWeight, "max-weight", 0, "payload limit in kg")
	f.Float64Var(&v.AxleFront, "axle-front", 0, "front axle position in cm from the cab wall (default 100)")
	f.Float64Var(&v.AxleRear, "axle-rear", 0, "rear axle position in cm from the cab wall (default depth - 150)")
	for _, name := range []string{"width", "depth", "height", "max-weight"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// addCustomVehicle validates v and appends it to the custom vehicle file.
func (a *app) addCustomVehicle(v model.VehicleType) error {
	if err := project.ValidateVehicle(v); err != nil {
		return err
	}
	if _, exists := a.vehicles.Lookup(v.Name); exists {
		return fmt.Errorf("vehicle %q already exists", v.Name)
	}
	vehicles := a.vehicles.WithCustom(v)
	if err := project.SaveCustomVehicles(a.paths.Vehicles(), vehicles.Custom); err != nil {
		return err
	}
	a.vehicles = vehicles
	fmt.Fprintf(a.out, "added %s (%s)\n", v.Name, v.ID)
	return nil
}
