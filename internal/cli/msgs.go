package cli

import (
	_ "embed"
)

// Command descriptions
const (
	MsgRootShort = "Keep a file's content in a declared state"
	MsgRootLong  = `filestate makes sure a file exists with exactly the content you declare,
and tells you whether it had to change anything. Running it twice with the
same input never writes twice.

It runs from a shell or as a binary module for Ansible-style hosts: invoked
with a single argument that names a JSON arguments file, it behaves like
"filestate module FILE".`

	MsgApplyShort      = "Write the declared content if the file differs"
	MsgCheckShort      = "Report whether apply would change the file"
	MsgCheckLong       = "Check reads the file and exits 0 when it already holds the content, 2 when apply would write it."
	MsgModuleShort     = "Run as a host binary module with an arguments file"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgDocShort        = "Show module documentation"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/filestate/config.toml)"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagPath        = "Path of the file to manage"
	MsgFlagContent     = "Desired file content"
	MsgFlagContentFile = "Read the desired content from this file ('-' for stdin)"
	MsgFlagDryRun      = "Report without reading or writing the target"
)

// Errors
const (
	MsgErrNoCommand       = "no command specified"
	MsgErrContentRequired = "one of --content or --content-file is required"
	MsgErrContentBoth     = "--content and --content-file are mutually exclusive"
)

//go:embed docs/module.md
var moduleDoc string
