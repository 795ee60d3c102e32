package cli

import (
	"github.com/arthur-debert/filestate/internal/version"
	"github.com/arthur-debert/filestate/pkg/config"
	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/arthur-debert/filestate/pkg/hostargs"
	"github.com/arthur-debert/filestate/pkg/logging"
	"github.com/arthur-debert/filestate/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries what PersistentPreRunE resolved for the running command
type app struct {
	cfg    *config.Config
	format ui.Format
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configFile string
		format     string
	)
	state := &app{}

	rootCmd := &cobra.Command{
		Use:     "filestate",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = format
			}
			if verbosity > 0 {
				overrides["logging.verbosity"] = verbosity
			}

			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: configFile,
				Overrides:  overrides,
			})
			if err != nil {
				if cmd.Name() == "module" {
					// The host expects its JSON result even for a broken config.
					return reportFailure(hostargs.Fail(cmd.OutOrStdout(), err, "", ""), err)
				}
				return err
			}
			state.cfg = cfg

			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: cfg.Logging.Verbosity,
				Console:   cmd.ErrOrStderr(),
				LogFile:   cfg.Logging.File,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			state.format, err = ui.ParseFormat(cfg.Output.Format)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.AddCommand(newApplyCmd(state))
	rootCmd.AddCommand(newCheckCmd(state))
	rootCmd.AddCommand(newModuleCmd(state))
	rootCmd.AddCommand(newConfigCmd(state))
	rootCmd.AddCommand(newDocCmd(state))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
