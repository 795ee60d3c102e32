package config

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/arthur-debert/filestate/pkg/errors"
)

// Write backends
const (
	BackendDirect  = "direct"
	BackendSynthfs = "synthfs"
)

// Output formats accepted in output.format
var validFormats = []string{"auto", "term", "text", "json"}

var validBackends = []string{BackendDirect, BackendSynthfs}

// Config is the effective filestate configuration
type Config struct {
	Write   Write   `koanf:"write"`
	Output  Output  `koanf:"output"`
	Logging Logging `koanf:"logging"`
}

// Write controls how content reaches the disk
type Write struct {
	Mode    fs.FileMode `koanf:"mode"`
	Atomic  bool        `koanf:"atomic"`
	Backend string      `koanf:"backend"`
}

// Output controls result rendering
type Output struct {
	Format string `koanf:"format"`
}

// Logging controls the zerolog setup
type Logging struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}

// Default returns the configuration described by the embedded defaults,
// without reading any user file or environment variable.
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserFile: true, SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary; failing here is a build defect.
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	if c.Write.Mode == 0 || c.Write.Mode&^fs.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigValid,
			"write.mode must be a permission between 0001 and 0777, got %#o", uint32(c.Write.Mode)).
			WithDetail("key", "write.mode")
	}
	if !slices.Contains(validBackends, c.Write.Backend) {
		return errors.Newf(errors.ErrConfigValid,
			"write.backend must be one of %v, got %q", validBackends, c.Write.Backend).
			WithDetail("key", "write.backend")
	}
	if c.Write.Atomic && c.Write.Backend != BackendDirect {
		return errors.Newf(errors.ErrConfigValid,
			"write.atomic is only supported by the %q backend", BackendDirect).
			WithDetail("key", "write.atomic")
	}
	if !slices.Contains(validFormats, c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid,
			"output.format must be one of %v, got %q", validFormats, c.Output.Format).
			WithDetail("key", "output.format")
	}
	return nil
}
