package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. FILESTATE_WRITE_ATOMIC.
const EnvPrefix = "FILESTATE_"

// LoadOptions selects the configuration sources
type LoadOptions struct {
	// ConfigFile is an explicit user config path; it must exist.
	// When empty, DefaultConfigPath is used if present.
	ConfigFile string
	// Overrides are dotted keys applied last, typically from flags.
	Overrides map[string]interface{}

	SkipUserFile bool
	SkipEnv      bool
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/filestate/config.toml
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "filestate", "config.toml")
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if !opts.SkipUserFile {
		if err := loadUserFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				octalFileModeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadUserFile(k *koanf.Koanf, explicit string) error {
	path := explicit
	if path == "" {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && explicit == "" {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps FILESTATE_WRITE_ATOMIC to write.atomic. Only the first
// underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// octalFileModeHookFunc decodes "0644" style strings into fs.FileMode.
// Integers pass through unchanged.
func octalFileModeHookFunc() mapstructure.DecodeHookFunc {
	modeType := reflect.TypeOf(os.FileMode(0))
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != modeType || f.Kind() != reflect.String {
			return data, nil
		}
		s := strings.TrimPrefix(strings.TrimSpace(data.(string)), "0o")
		mode, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid file mode %q", data)
		}
		return os.FileMode(mode), nil
	}
}
