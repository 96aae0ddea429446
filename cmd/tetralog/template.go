package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TetraLog/internal/importer"
)

func newTemplateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "template [PATH]",
		Short: "Write a manifest spreadsheet template",
		Long: `Write an .xlsx manifest template with the expected columns and two
sample rows. Fill it in and pass it to "tetralog pack".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "manifest_template.xlsx"
			if len(args) == 1 {
				path = args[0]
			}
			if err := importer.WriteTemplate(path); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s\n", path)
			return nil
		},
	}
}
