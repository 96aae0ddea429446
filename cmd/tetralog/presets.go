package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TetraLog/internal/model"
	"github.com/piwi3910/TetraLog/internal/project"
)

func newPresetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and manage box presets",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved box presets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, err := project.LoadInventory(a.paths.Inventory())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tW x D x H (cm)\tWEIGHT (kg)\tFRAGILE\tROTATE")
				for _, b := range inv.Boxes {
					fmt.Fprintf(tw, "%s\t%s\t%.0f x %.0f x %.0f\t%.1f\t%s\t%s\n",
						b.ID, b.Name, b.Width, b.Depth, b.Height, b.Weight, yesNo(b.Fragile), yesNo(b.CanRotate))
				}
				return tw.Flush()
			},
		},
		newPresetAddCmd(a),
		&cobra.Command{
			Use:   "import PATH",
			Short: "Merge presets and vehicles from an inventory file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, err := project.LoadInventory(a.paths.Inventory())
				if err != nil {
					return err
				}
				before := len(inv.Boxes)
				if inv, err = project.ImportInventory(args[0], inv); err != nil {
					return err
				}
				if err := project.SaveInventory(a.paths.Inventory(), inv); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "imported %d presets\n", len(inv.Boxes)-before)
				return nil
			},
		},
	)
	return cmd
}

func newPresetAddCmd(a *app) *cobra.Command {
	var b model.BoxPreset
	var noRotate bool
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a box preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if b.Width <= 0 || b.Depth <= 0 || b.Height <= 0 {
				return fmt.Errorf("dimensions must be positive")
			}
			if b.Weight < 0 {
				return fmt.Errorf("weight cannot be negative")
			}
			inv, err := project.LoadInventory(a.paths.Inventory())
			if err != nil {
				return err
			}
			if inv.FindBoxByName(args[0]) != nil {
				return fmt.Errorf("preset %q already exists", args[0])
			}
			preset := model.NewBoxPreset(args[0], b.Width, b.Depth, b.Height, b.Weight)
			preset.Fragile = b.Fragile
			preset.CanRotate = !noRotate
			inv.Boxes = append(inv.Boxes, preset)
			if err := project.SaveInventory(a.paths.Inventory(), inv); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "added %s (%s)\n", preset.Name, preset.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&b.Width, "width", 0, "width in cm")
	f.Float64Var(&b.Depth, "depth", 0, "length in cm")
	f.Float64Var(&b.Height, "height", 0, "height in cm")
	f.Float64Var(&b.Weight, "weight", 0, "typical gross weight in kg")
	f.BoolVar(&b.Fragile, "fragile", false, "nothing may be stacked on this box")
	f.BoolVar(&noRotate, "no-rotate", false, "forbid turning the box on the floor")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
