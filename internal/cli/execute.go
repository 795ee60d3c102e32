package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/filestate/pkg/logging"
	"github.com/arthur-debert/filestate/pkg/ui"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitWouldChange is returned by check when apply would write.
	ExitWouldChange = 2
)

// exitError ends the command with a specific exit code. When reported is
// set the command already printed what went wrong.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	defer func() { _ = logging.Close() }()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(hostInvocation(rootCmd, args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *exitError
	if stderrors.As(err, &exitErr) {
		if !exitErr.reported && exitErr.err != nil {
			_ = ui.NewRenderer(ui.FormatAuto, stderr).RenderError(exitErr.err)
		}
		return exitErr.code
	}

	_ = ui.NewRenderer(ui.FormatAuto, stderr).RenderError(err)
	return ExitFailure
}

// hostInvocation rewrites "filestate ARGS_FILE", the way a host runs a binary
// module, into "filestate module ARGS_FILE".
func hostInvocation(rootCmd *cobra.Command, args []string) []string {
	if len(args) != 1 || strings.HasPrefix(args[0], "-") {
		return args
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == args[0] || c.HasAlias(args[0]) {
			return args
		}
	}
	info, err := os.Stat(args[0])
	if err != nil || !info.Mode().IsRegular() {
		return args
	}
	return []string{"module", args[0]}
}
