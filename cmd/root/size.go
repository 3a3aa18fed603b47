package root

import (
	"fmt"

	"github.com/0xalexb/textsummarizer/fsutil"

	"github.com/spf13/cobra"
)

func newSizeCmd() *cobra.Command {
	var human bool

	cmd := &cobra.Command{
		Use:   "size <file>",
		Short: "Print the size of a file in KB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizeOf := fsutil.GetSize
			if human {
				sizeOf = fsutil.HumanSize
			}

			size, err := sizeOf(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), size)

			return err
		},
	}

	cmd.Flags().BoolVarP(&human, "human", "H", false, "Use binary units (KiB, MiB, ...)")

	return cmd
}
