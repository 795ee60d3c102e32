// Package config handles configuration management for filestate.
// It layers embedded defaults, a TOML user file, FILESTATE_* environment
// variables and command-line overrides, in that order.
package config
