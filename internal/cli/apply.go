package cli

import (
	"github.com/arthur-debert/filestate/pkg/logging"
	"github.com/arthur-debert/filestate/pkg/types"
	"github.com/arthur-debert/filestate/pkg/ui"
	"github.com/spf13/cobra"
)

func newApplyCmd(state *app) *cobra.Command {
	var (
		flags  contentFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: MsgApplyShort,
		Args:  cobra.NoArgs,
		Example: `  filestate apply --path /tmp/myfile.txt --content 'Hello, World!'
  generate-motd | filestate apply --path /etc/motd --content-file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.apply")

			content, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			desired := types.DesiredState{Path: flags.path, Content: content, DryRun: dryRun}
			outcome, err := newReconciler(state.cfg).Reconcile(desired)
			if err != nil {
				_ = ui.NewRenderer(state.format, cmd.ErrOrStderr()).RenderError(err)
				return &exitError{code: ExitFailure, err: err, reported: true}
			}

			logger.Info().
				Str("path", outcome.Path).
				Bool("changed", outcome.Changed).
				Msg("Apply finished")
			return ui.NewRenderer(state.format, cmd.OutOrStdout()).RenderOutcome(outcome, dryRun)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}
