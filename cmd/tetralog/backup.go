package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TetraLog/internal/project"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore configuration, presets and templates",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "export PATH",
			Short: "Write all application data to one file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				inv, err := project.LoadInventory(a.paths.Inventory())
				if err != nil {
					return err
				}
				store, err := project.LoadTemplates(a.paths.Templates())
				if err != nil {
					return err
				}
				// Back up the saved config, not the environment overrides.
				config, err := project.LoadAppConfig(a.paths.Config())
				if err != nil {
					return err
				}
				if err := project.ExportAllData(args[0], config, inv, store); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "wrote %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "import PATH",
			Short: "Restore application data from a backup, replacing the current data",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				backup, err := project.ImportAllData(args[0])
				if err != nil {
					return err
				}
				if err := project.SaveAppConfig(a.paths.Config(), backup.Config); err != nil {
					return err
				}
				if err := project.SaveInventory(a.paths.Inventory(), backup.Inventory); err != nil {
					return err
				}
				if err := project.SaveTemplates(a.paths.Templates(), backup.Templates); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "restored %s (version %s, created %s)\n", args[0], backup.Version, backup.CreatedAt)
				return nil
			},
		},
	)
	return cmd
}
