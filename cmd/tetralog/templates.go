package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TetraLog/internal/model"
	"github.com/piwi3910/TetraLog/internal/project"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Save and reuse standing manifests",
	}

	var description string
	save := &cobra.Command{
		Use:   "save NAME MANIFEST",
		Short: "Save a manifest as a reusable template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManifest(args[1])
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(a.paths.Templates())
			if err != nil {
				return err
			}
			if store.FindByName(args[0]) != nil {
				return fmt.Errorf("template %q already exists", args[0])
			}
			store.Add(model.NewManifestTemplate(args[0], description, m))
			return project.SaveTemplates(a.paths.Templates(), store)
		},
	}
	save.Flags().StringVarP(&description, "description", "d", "", "template description")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved templates",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := project.LoadTemplates(a.paths.Templates())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tVEHICLE\tSTRATEGY\tLINES\tDESCRIPTION")
				for _, t := range store.Templates {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", t.ID, t.Name, t.Vehicle, t.Strategy, len(t.Lines), t.Description)
				}
				return tw.Flush()
			},
		},
		save,
		&cobra.Command{
			Use:   "new NAME PATH",
			Short: "Start a new manifest from a template",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := project.LoadTemplates(a.paths.Templates())
				if err != nil {
					return err
				}
				t := store.FindByName(args[0])
				if t == nil {
					return fmt.Errorf("no template %q", args[0])
				}
				m := t.ToManifest(baseName(args[1]))
				if err := project.SaveManifest(args[1], m); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "wrote %s (%d units)\n", args[1], m.TotalUnits())
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Delete a template",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := project.LoadTemplates(a.paths.Templates())
				if err != nil {
					return err
				}
				t := store.FindByName(args[0])
				if t == nil || !store.Remove(t.ID) {
					return fmt.Errorf("no template %q", args[0])
				}
				return project.SaveTemplates(a.paths.Templates(), store)
			},
		},
	)
	return cmd
}
