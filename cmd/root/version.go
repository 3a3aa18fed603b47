package root

import (
	"fmt"

	textsummarizer "github.com/0xalexb/textsummarizer"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "textsummarizer version %s\nCompiled at: %s\n",
				textsummarizer.Version, textsummarizer.CompiledAt)

			return err
		},
	}
}
