// Package commands wires the nncomponent CLI.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-nncomponent/internal/cli/config"
)

// app carries state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "nncomponent",
		Short: "Build neural network components from field schemas",
		Long: `nncomponent reads a JSON/YAML field schema (or an OpenAPI component schema),
selects a component for every field and reports the resulting component graph.

Examples:
  nncomponent inspect schemas/order.json
  nncomponent inspect api.yaml --openapi-schema Order --interactive
  nncomponent validate schemas/order.yaml --skip-unrecognized
  nncomponent report schemas/order.json --format html --output order.html`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default ./nncomponent.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	root.AddCommand(newInspectCommand(a))
	root.AddCommand(newValidateCommand(a))
	root.AddCommand(newReportCommand(a))
	return root
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}
