package root

import (
	"github.com/0xalexb/textsummarizer/fsutil"

	"github.com/spf13/cobra"
)

func newDirsCmd(flags *rootFlags) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "dirs [path...]",
		Short: "Create directories, including missing parents",
		Long:  "Create each directory in order. Directories that already exist are left untouched.",
		RunE: func(_ *cobra.Command, args []string) error {
			return fsutil.CreateDirectories(flags.logger, args, fsutil.WithVerbose(!quiet))
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not log each directory")

	return cmd
}
