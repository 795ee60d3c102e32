package synthfs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/filestate/pkg/errors"
	"github.com/arthur-debert/filestate/pkg/filesystem"
	"github.com/arthur-debert/filestate/pkg/hostargs"
	"github.com/arthur-debert/filestate/pkg/reconcile"
	"github.com/arthur-debert/filestate/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ reconcile.Writer = (*Executor)(nil)

func TestExecutor_Write(t *testing.T) {
	t.Run("creates_file_with_mode", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "created.txt")

		require.NoError(t, NewExecutor(0600).Write(target, []byte("Hello, World!")))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "Hello, World!", string(data))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("replaces_existing_content", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "existing.txt")
		require.NoError(t, os.WriteFile(target, []byte("a much longer original body"), 0640))

		require.NoError(t, NewExecutor(0).Write(target, []byte("short")))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "short", string(data))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0640), info.Mode().Perm(), "existing mode is kept")
	})

	t.Run("empty_content", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "empty.txt")

		require.NoError(t, NewExecutor(0).Write(target, []byte{}))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("missing_parent_is_io_error", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "missing", "file.txt")

		err := NewExecutor(0).Write(target, []byte("x"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
		assert.True(t, errors.IsIO(err))
		assert.Equal(t, target, errors.GetErrorDetails(err)["path"])

		_, statErr := os.Stat(filepath.Dir(target))
		assert.True(t, os.IsNotExist(statErr), "no directory is created")
	})

	t.Run("directory_target_is_io_error", func(t *testing.T) {
		target := t.TempDir()

		err := NewExecutor(0).Write(target, []byte("x"))
		require.Error(t, err)
		assert.True(t, errors.IsIO(err))
	})

	t.Run("relative_path_is_resolved", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		require.NoError(t, NewExecutor(0).Write("relative.txt", []byte("rel")))

		data, err := os.ReadFile(filepath.Join(dir, "relative.txt"))
		require.NoError(t, err)
		assert.Equal(t, "rel", string(data))
	})
}

func TestExecutor_WithReconciler(t *testing.T) {
	target := filepath.Join(t.TempDir(), "myfile.txt")
	r := reconcile.New(reconcile.Options{
		FS:     filesystem.NewOS(),
		Writer: NewExecutor(0),
	})

	out, err := r.Reconcile(types.DesiredState{Path: target, Content: "Hello, World!"})
	require.NoError(t, err)
	assert.True(t, out.Changed)

	out, err = r.Reconcile(types.DesiredState{Path: target, Content: "Hello, World!"})
	require.NoError(t, err)
	assert.False(t, out.Changed)

	out, err = r.Reconcile(types.DesiredState{Path: target, Content: "Goodbye"})
	require.NoError(t, err)
	assert.True(t, out.Changed)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Goodbye", string(data))
}

func TestExecutor_FailureThroughReconcilerHasOneCode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "myfile.txt")
	r := reconcile.New(reconcile.Options{
		FS:     filesystem.NewOS(),
		Writer: NewExecutor(0),
	})

	_, err := r.Reconcile(types.DesiredState{Path: target, Content: "x"})
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, 1, strings.Count(err.Error(), "[FILE_WRITE]"), err.Error())
	assert.Equal(t, target, errors.GetErrorDetails(err)["path"])
	assert.Equal(t, "x", errors.GetErrorDetails(err)["content"])

	msg := hostargs.FailureMessage(err)
	assert.NotContains(t, msg, "[FILE_WRITE]")
	assert.Equal(t, 1, strings.Count(msg, "Failed to write to file: "))
}
