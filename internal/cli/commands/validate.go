package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-nncomponent/pkg/component"
)

func newValidateCommand(a *app) *cobra.Command {
	var flags sourceFlags
	cmd := &cobra.Command{
		Use:   "validate <source>",
		Short: "Check that every field maps to a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.assemble(cmd, args[0], &flags)
			if err != nil {
				return err
			}

			ok := color.New(color.FgGreen)
			warn := color.New(color.FgYellow)
			if !a.cfg.Report.Color {
				ok.DisableColor()
				warn.DisableColor()
			}

			out := cmd.OutOrStdout()
			for _, skipped := range graph.Skipped {
				warn.Fprintf(out, "skipped %s: %v\n", skipped.Path, skipped.Err)
			}
			ok.Fprintf(out, "%d components", len(graph.Nodes))
			counts := graph.CountByKind()
			fmt.Fprintf(out, " (object=%d number=%d classification=%d sequence=%d)\n",
				counts[component.KindObject], counts[component.KindNumber],
				counts[component.KindClassification], counts[component.KindSequence])
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
