package root

import (
	"fmt"

	textsummarizer "github.com/0xalexb/textsummarizer"
	"github.com/0xalexb/textsummarizer/config"
	"github.com/0xalexb/textsummarizer/workspace"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newWorkspaceCmd(flags *rootFlags) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "workspace <config-file>",
		Short: "Create every directory named by a pipeline config file",
		Long: `Read the artifacts root, the directories list and each stage's root_dir
from the config file, create them, and print the prepared paths.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				layout *workspace.Layout
				box    *config.Box
			)

			app := textsummarizer.NewApp(
				textsummarizer.WithLogLevel(flags.logLevel),
				textsummarizer.WithLogFormat(flags.logFormat),
				textsummarizer.WithLogOutput(cmd.ErrOrStderr()),
				textsummarizer.WithWorkspace(args[0], workspace.WithVerbose(!quiet)),
				textsummarizer.WithModules(fx.Populate(&layout, &box)),
			)

			err := app.Start()
			if err != nil {
				return err
			}

			err = app.Stop()
			if err != nil {
				return err
			}

			for _, path := range layout.Paths(box) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not log each directory")

	return cmd
}
