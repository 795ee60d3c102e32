package hostargs

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/arthur-debert/filestate/pkg/types"
	"gopkg.in/yaml.v3"
)

// ModuleName is how the module names itself in host-facing messages.
const ModuleName = "filestate"

// Parameter names
const (
	ParamPath      = "path"
	ParamContent   = "content"
	ParamCheckMode = "_ansible_check_mode"
)

// hostPrefix marks host-internal keys such as _ansible_verbosity.
const hostPrefix = "_ansible_"

var supported = []string{ParamContent, ParamPath}

// Args are the validated task arguments
type Args struct {
	Path      string
	Content   string
	CheckMode bool
}

// Desired converts the arguments into reconciler input.
func (a Args) Desired() types.DesiredState {
	return types.DesiredState{Path: a.Path, Content: a.Content, DryRun: a.CheckMode}
}

// ParseFile reads and parses the argument file at path.
func ParseFile(path string) (Args, error) {
	f, err := os.Open(path)
	if err != nil {
		return Args{}, errors.Wrapf(err, errors.ErrArgsParse, "failed to open arguments file %s", path).
			WithDetail("file", path)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse reads a JSON or YAML mapping of task arguments from r. On a
// validation failure the returned Args still carry whichever string values
// were present, so the failure can echo them back.
func Parse(r io.Reader) (Args, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Args{}, errors.Wrap(err, errors.ErrArgsParse, "failed to read arguments")
	}

	params, err := decode(raw)
	if err != nil {
		return Args{}, err
	}

	var args Args
	var unsupported, missing []string

	for key := range params {
		if key == ParamPath || key == ParamContent || strings.HasPrefix(key, hostPrefix) {
			continue
		}
		unsupported = append(unsupported, key)
	}

	path, hasPath, pathErr := stringParam(params, ParamPath)
	content, hasContent, contentErr := stringParam(params, ParamContent)
	args.Path, args.Content = path, content

	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return args, errors.Newf(errors.ErrInvalidInput,
			"Unsupported parameters for (%s) module: %s. Supported parameters include: %s.",
			ModuleName, strings.Join(unsupported, ", "), strings.Join(supported, ", ")).
			WithDetail("unsupported", unsupported)
	}

	if !hasContent {
		missing = append(missing, ParamContent)
	}
	if !hasPath {
		missing = append(missing, ParamPath)
	}
	if len(missing) > 0 {
		return args, errors.Newf(errors.ErrInvalidInput,
			"missing required arguments: %s", strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}

	if pathErr != nil {
		return args, pathErr
	}
	if contentErr != nil {
		return args, contentErr
	}
	if path == "" {
		return args, errors.New(errors.ErrInvalidInput, "path must not be empty").
			WithDetail("argument", ParamPath)
	}

	if v, ok := params[ParamCheckMode]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return args, errors.Newf(errors.ErrInvalidInput,
				"%s must be a boolean, got %T", ParamCheckMode, v).
				WithDetail("argument", ParamCheckMode)
		}
		args.CheckMode = b
	}

	return args, nil
}

// decode accepts the JSON the host writes, and YAML for hand-written files.
func decode(raw []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New(errors.ErrArgsParse, "arguments file is empty")
	}

	var doc interface{}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrArgsParse, "failed to parse JSON arguments")
		}
	} else if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrArgsParse, "failed to parse YAML arguments")
	}

	params, ok := doc.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrArgsParse, "arguments must be a mapping, got %T", doc)
	}
	return params, nil
}

// stringParam returns the value of key and whether it was present. A
// present null counts as missing.
func stringParam(params map[string]interface{}, key string) (string, bool, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, errors.Newf(errors.ErrInvalidInput,
			"argument '%s' is of type %T and we were unable to convert to str", key, v).
			WithDetail("argument", key)
	}
	return s, true, nil
}
