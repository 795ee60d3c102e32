package cli

import (
	"github.com/arthur-debert/filestate/pkg/ui"
	"github.com/spf13/cobra"
)

func newDocCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doc",
		Short: MsgDocShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.NewRenderer(state.format, cmd.OutOrStdout()).RenderMarkdown(moduleDoc)
		},
	}
}
