package config

import (
	"fmt"

	"github.com/arthur-debert/filestate/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

type dumpFile struct {
	Write struct {
		Mode    string `toml:"mode"`
		Atomic  bool   `toml:"atomic"`
		Backend string `toml:"backend"`
	} `toml:"write"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
	Logging struct {
		Verbosity int    `toml:"verbosity"`
		File      string `toml:"file"`
	} `toml:"logging"`
}

// Dump renders the configuration as TOML that Load accepts back.
func (c *Config) Dump() (string, error) {
	var d dumpFile
	d.Write.Mode = fmt.Sprintf("%04o", uint32(c.Write.Mode))
	d.Write.Atomic = c.Write.Atomic
	d.Write.Backend = c.Write.Backend
	d.Output.Format = c.Output.Format
	d.Logging.Verbosity = c.Logging.Verbosity
	d.Logging.File = c.Logging.File

	data, err := toml.Marshal(d)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
