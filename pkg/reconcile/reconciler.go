package reconcile

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/arthur-debert/filestate/pkg/filesystem"
	"github.com/arthur-debert/filestate/pkg/logging"
	"github.com/arthur-debert/filestate/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Reconciler. Zero values select the OS filesystem and
// a DirectWriter on it.
type Options struct {
	FS     types.FS
	Writer Writer
}

// Reconciler converges files toward desired content.
type Reconciler struct {
	fs     types.FS
	writer Writer
	logger zerolog.Logger
}

// New creates a Reconciler.
func New(opts Options) *Reconciler {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	writer := opts.Writer
	if writer == nil {
		writer = NewDirectWriter(fsys, DefaultFileMode)
	}
	return &Reconciler{
		fs:     fsys,
		writer: writer,
		logger: logging.GetLogger("reconcile"),
	}
}

// Reconcile makes the file at desired.Path hold exactly desired.Content.
//
// Validation errors are returned before any filesystem access. In dry-run
// mode nothing is read or written and Changed is always false. Otherwise at
// most one write happens, and only when the content differs or the file is
// absent.
func (r *Reconciler) Reconcile(desired types.DesiredState) (types.Outcome, error) {
	unchanged := types.Outcome{Path: desired.Path, Content: desired.Content}

	if err := validatePath(desired.Path); err != nil {
		return unchanged, err.WithDetail("content", desired.Content)
	}

	logger := r.logger.With().
		Str("path", desired.Path).
		Int("contentLen", len(desired.Content)).
		Bool("dryRun", desired.DryRun).
		Logger()
	done := logging.LogOperationStart(logger, "reconcile")
	defer done()

	if desired.DryRun {
		logger.Info().Str("decision", "dry-run").Msg("Dry run, filesystem not inspected")
		return unchanged, nil
	}

	if !utf8.ValidString(desired.Content) {
		return unchanged, errors.Newf(errors.ErrFileEncoding,
			"content for %s is not valid UTF-8 text", desired.Path).
			WithDetails(failureDetails(desired.Path, desired.Content))
	}

	state, err := r.inspect(desired.Path, desired.Content)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read current content")
		return unchanged, err
	}

	if !state.NeedsWrite() {
		logger.Info().Str("decision", state.String()).Msg("Content already matches")
		return unchanged, nil
	}

	if err := r.writer.Write(desired.Path, []byte(desired.Content)); err != nil {
		logger.Error().Err(err).Str("decision", state.String()).Msg("Failed to write content")
		return unchanged, writeError(err, desired)
	}

	logger.Info().Str("decision", state.String()).Msg("Content written")
	return types.Outcome{Path: desired.Path, Content: desired.Content, Changed: true}, nil
}

// Inspect reports how the file at path relates to content without writing.
// Unlike a dry-run reconcile, it reads the file.
func (r *Reconciler) Inspect(path, content string) (types.FileState, error) {
	if err := validatePath(path); err != nil {
		return "", err.WithDetail("content", content)
	}
	state, err := r.inspect(path, content)
	if err != nil {
		return "", err
	}
	r.logger.Debug().Str("path", path).Str("state", state.String()).Msg("Inspected file")
	return state, nil
}

func (r *Reconciler) inspect(path, content string) (types.FileState, error) {
	existing, err := r.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return types.StateAbsent, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileRead,
			"failed to read %s", path).
			WithDetails(failureDetails(path, content))
	}
	if string(existing) == content {
		return types.StateInSync, nil
	}
	return types.StateDrifted, nil
}

func validatePath(path string) *errors.FilestateError {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path must not be empty").
			WithDetail("path", path)
	}
	if strings.ContainsRune(path, 0) {
		return errors.New(errors.ErrInvalidInput, "path must not contain NUL bytes").
			WithDetail("path", path)
	}
	return nil
}

func failureDetails(path, content string) map[string]interface{} {
	return map[string]interface{}{
		"path":    path,
		"content": content,
	}
}

// writeError attaches the failure details to err. Writers that already report
// a FILE_WRITE error keep their message instead of gaining a second prefix.
func writeError(err error, desired types.DesiredState) error {
	details := failureDetails(desired.Path, desired.Content)
	if fsErr, ok := err.(*errors.FilestateError); ok && fsErr.Code == errors.ErrFileWrite {
		return fsErr.WithDetails(details)
	}
	return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", desired.Path).
		WithDetails(details)
}
