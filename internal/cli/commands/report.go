package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-nncomponent/pkg/report"
)

func newReportCommand(a *app) *cobra.Command {
	var (
		flags  sourceFlags
		format string
		output string
		title  string
	)
	cmd := &cobra.Command{
		Use:   "report <source>",
		Short: "Render the component graph as text or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := a.cfg.Report.Format
			if cmd.Flags().Changed("format") {
				raw = format
			}
			selected, err := report.ParseFormat(raw)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") {
				title = a.cfg.Report.Title
			}

			graph, err := a.assemble(cmd, args[0], &flags)
			if err != nil {
				return err
			}

			opts := report.Options{Color: a.cfg.Report.Color && output == "", Title: title}
			if output == "" {
				return report.Render(cmd.OutOrStdout(), graph, selected, opts)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := report.Render(file, graph, selected, opts); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			a.logger.Info("report written", zap.String("output", output), zap.String("format", string(selected)))
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, html)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&title, "title", "", "Report title (HTML)")
	return cmd
}
