// Package root holds the textsummarizer command tree.
package root

import (
	"log/slog"

	"github.com/0xalexb/textsummarizer/logging"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// NewRootCmd builds the textsummarizer command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "textsummarizer",
		Short: "textsummarizer - pipeline workspace helpers",
		Long:  "textsummarizer inspects pipeline configuration files and prepares the directories a run needs",
		Example: `  textsummarizer config show config/config.yaml
  textsummarizer dirs artifacts/logs artifacts/data_ingestion
  textsummarizer size artifacts/data_ingestion/data.zip`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flags.logger = logging.NewLogger(logging.LoggerConfig{
				Level:  flags.logLevel,
				Format: flags.logFormat,
			}, cmd.ErrOrStderr())

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logging.FormatText, "Log format: text or json")

	cmd.AddCommand(newConfigCmd(&flags))
	cmd.AddCommand(newDirsCmd(&flags))
	cmd.AddCommand(newSizeCmd())
	cmd.AddCommand(newWorkspaceCmd(&flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
