package synthfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/arthur-debert/filestate/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// DefaultFileMode is the mode for files the executor creates.
const DefaultFileMode fs.FileMode = 0644

// Executor writes whole files as synthfs custom operations
type Executor struct {
	logger     zerolog.Logger
	filesystem filesystem.FullFileSystem
	mode       fs.FileMode
	rollback   bool
}

// NewExecutor creates an executor over the root OS filesystem. A zero mode
// means DefaultFileMode.
func NewExecutor(mode fs.FileMode) *Executor {
	osfs := filesystem.NewOSFileSystem("/")
	return NewExecutorWithFileSystem(synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths(), mode)
}

// NewExecutorWithFileSystem creates an executor over fsys, which must accept
// the absolute paths callers pass to Write.
func NewExecutorWithFileSystem(fsys filesystem.FullFileSystem, mode fs.FileMode) *Executor {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &Executor{
		logger:     logging.GetLogger("synthfs.executor"),
		filesystem: fsys,
		mode:       mode,
		rollback:   true,
	}
}

// Write replaces the content at path. The parent directory must exist.
func (e *Executor) Write(path string, data []byte) error {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to resolve %s", path).
				WithDetail("path", path)
		}
		path = abs
	}

	sfs := synthfs.New()
	id := fmt.Sprintf("write_%s_%d", filepath.Base(path), time.Now().UnixNano())
	op := sfs.CustomOperationWithID(id, e.writeFileOperation(path, data))

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = e.rollback

	e.logger.Debug().
		Str("path", path).
		Str("operationID", id).
		Int("bytes", len(data)).
		Msg("Executing synthfs write")

	result, err := synthfs.RunWithOptions(context.Background(), e.filesystem, options, op)
	opErr := e.logResults(result)
	if err == nil {
		err = opErr
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "synthfs write to %s failed", path).
			WithDetail("path", path).
			WithDetail("operationID", id)
	}
	return nil
}

func (e *Executor) writeFileOperation(target string, data []byte) func(context.Context, filesystem.FileSystem) error {
	return func(ctx context.Context, fsys filesystem.FileSystem) error {
		if full, ok := fsys.(filesystem.FullFileSystem); ok {
			parent := filepath.Dir(target)
			info, err := full.Stat(parent)
			if err != nil {
				return fmt.Errorf("parent directory %s: %w", parent, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("parent %s is not a directory", parent)
			}
			if info, err := full.Stat(target); err == nil && info.IsDir() {
				return &os.PathError{Op: "write", Path: target, Err: fmt.Errorf("is a directory")}
			}
		}

		if err := fsys.WriteFile(target, data, e.mode); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}
		return nil
	}
}

// logResults logs each operation result and returns the first operation
// error, if any.
func (e *Executor) logResults(result *synthfs.Result) error {
	if result == nil {
		return nil
	}

	var first error
	for _, r := range result.GetOperations() {
		opResult, ok := r.(synthfs.OperationResult)
		if !ok {
			continue
		}

		event := e.logger.Debug()
		if opResult.Status != synthfs.StatusSuccess {
			event = e.logger.Warn().Err(opResult.Error)
			if first == nil && opResult.Error != nil {
				first = opResult.Error
			}
		}
		event.
			Str("operationID", string(opResult.OperationID)).
			Str("status", fmt.Sprint(opResult.Status)).
			Dur("duration", opResult.Duration).
			Msg("synthfs operation finished")
	}
	return first
}
