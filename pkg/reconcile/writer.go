package reconcile

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/filestate/pkg/filesystem"
	"github.com/arthur-debert/filestate/pkg/types"
	"github.com/google/uuid"
)

// DefaultFileMode is used when a write creates a new file.
const DefaultFileMode fs.FileMode = 0644

// Writer replaces the whole content of the file at path.
type Writer interface {
	Write(path string, data []byte) error
}

// DirectWriter truncates and rewrites the target in place. Existing files
// keep their mode; new files get Mode.
type DirectWriter struct {
	FS   types.FS
	Mode fs.FileMode
}

// NewDirectWriter creates a DirectWriter. A zero mode means DefaultFileMode.
func NewDirectWriter(fsys types.FS, mode fs.FileMode) *DirectWriter {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &DirectWriter{FS: fsys, Mode: mode}
}

func (w *DirectWriter) Write(path string, data []byte) error {
	return w.FS.WriteFile(path, data, w.Mode)
}

// AtomicWriter writes to a sibling temp file and renames it over the target,
// so readers see either the old or the new content. The temp file lives in the
// target's directory because rename does not cross filesystems.
//
// A symlinked target is resolved first so the rename replaces the file the
// link points at and the link itself stays. An existing file's mode is copied
// to the temp file, and so is its owner where the filesystem supports it. If
// the owner cannot be copied the writer falls back to an in-place write.
type AtomicWriter struct {
	FS   types.FS
	Mode fs.FileMode
	// TempName builds the temp file name for a target; defaults to a hidden
	// uuid-suffixed sibling.
	TempName func(path string) string
}

// NewAtomicWriter creates an AtomicWriter. A zero mode means DefaultFileMode.
func NewAtomicWriter(fsys types.FS, mode fs.FileMode) *AtomicWriter {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &AtomicWriter{FS: fsys, Mode: mode, TempName: tempName}
}

func (w *AtomicWriter) Write(path string, data []byte) error {
	target := path
	if r, ok := w.FS.(types.LinkResolver); ok {
		resolved, err := r.Resolve(path)
		if err != nil {
			return err
		}
		target = resolved
	}

	mode := w.Mode
	info, statErr := w.FS.Stat(target)
	exists := statErr == nil
	if exists {
		mode = info.Mode().Perm()
	}

	name := w.TempName
	if name == nil {
		name = tempName
	}
	tmp := name(target)

	if err := w.FS.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	if exists {
		if err := w.FS.Chmod(tmp, mode); err != nil {
			_ = w.FS.Remove(tmp)
			return err
		}
		if err := w.keepOwner(tmp, info); err != nil {
			_ = w.FS.Remove(tmp)
			return w.FS.WriteFile(target, data, mode)
		}
	}
	if err := w.FS.Rename(tmp, target); err != nil {
		_ = w.FS.Remove(tmp)
		return err
	}
	return nil
}

// keepOwner gives tmp the owner recorded in info. Filesystems without
// ownership are left alone.
func (w *AtomicWriter) keepOwner(tmp string, info fs.FileInfo) error {
	c, ok := w.FS.(types.Chowner)
	if !ok {
		return nil
	}
	uid, gid, ok := filesystem.Owner(info)
	if !ok {
		return nil
	}
	return c.Chown(tmp, uid, gid)
}

func tempName(path string) string {
	return filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.filestate-%s", filepath.Base(path), uuid.NewString()))
}
