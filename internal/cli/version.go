package cli

import (
	"fmt"

	"github.com/arthur-debert/filestate/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "filestate version %s\n", version.Version); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "  commit: %s\n", version.Commit); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "  built:  %s\n", version.Date)
			return err
		},
	}
}
