package cli

import (
	"github.com/arthur-debert/filestate/pkg/ui"
	"github.com/spf13/cobra"
)

func newCheckCmd(state *app) *cobra.Command {
	var flags contentFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			fileState, err := newReconciler(state.cfg).Inspect(flags.path, content)
			if err != nil {
				_ = ui.NewRenderer(state.format, cmd.ErrOrStderr()).RenderError(err)
				return &exitError{code: ExitFailure, err: err, reported: true}
			}

			if err := ui.NewRenderer(state.format, cmd.OutOrStdout()).RenderState(flags.path, fileState); err != nil {
				return err
			}
			if fileState.NeedsWrite() {
				return &exitError{code: ExitWouldChange}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
