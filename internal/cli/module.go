package cli

import (
	"github.com/arthur-debert/filestate/pkg/hostargs"
	"github.com/arthur-debert/filestate/pkg/logging"
	"github.com/spf13/cobra"
)

func newModuleCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "module ARGS_FILE",
		Short: MsgModuleShort,
		Long: MsgModuleShort + `.

The result is always a single JSON document on stdout, also on failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.module")
			out := cmd.OutOrStdout()

			params, err := hostargs.ParseFile(args[0])
			if err != nil {
				logger.Warn().Err(err).Str("argsFile", args[0]).Msg("Rejected module arguments")
				return reportFailure(hostargs.Fail(out, err, params.Path, params.Content), err)
			}

			outcome, err := newReconciler(state.cfg).Reconcile(params.Desired())
			if err != nil {
				logger.Warn().Err(err).Str("path", params.Path).Msg("Module task failed")
				return reportFailure(hostargs.Fail(out, err, params.Path, params.Content), err)
			}

			logger.Info().
				Str("path", outcome.Path).
				Bool("changed", outcome.Changed).
				Bool("checkMode", params.CheckMode).
				Msg("Module task finished")
			return hostargs.Exit(out, outcome)
		},
	}
}

// reportFailure turns a failure that was already written as a host result
// into exit status 1.
func reportFailure(writeErr, err error) error {
	if writeErr != nil {
		return writeErr
	}
	return &exitError{code: ExitFailure, err: err, reported: true}
}
