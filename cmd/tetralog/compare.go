package main

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/TetraLog/internal/planner"
)

func newCompareCmd(a *app) *cobra.Command {
	var vehicle, strategy string
	cmd := &cobra.Command{
		Use:   "compare MANIFEST",
		Short: "Pack a manifest with every strategy and compare the results",
		Long: `Pack the manifest once per strategy, the selected one first, and print
loaded units, volume usage and axle loads side by side. The best scenario
(most units loaded, then the most even axle split) is marked with *.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManifest(args[0])
			if err != nil {
				return err
			}
			if err := a.overrides(&m, vehicle, strategy); err != nil {
				return err
			}

			p := planner.New(a.config, planner.WithCatalog(a.vehicles), planner.WithLogger(a.log))
			results, err := p.Compare(cmd.Context(), p.RequestFromManifest(cmd.Context(), m))
			if err != nil {
				return err
			}
			printComparison(a.out, results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&vehicle, "vehicle", "v", "", "vehicle ID or name (default from config)")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "strategy listed first (default from config)")
	return cmd
}
