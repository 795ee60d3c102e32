package types

import (
	"io/fs"
)

// FS is the filesystem interface required for reconciling a target file
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	// Replacement support for atomic writes
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// LinkResolver is implemented by filesystems with symbolic links. Resolve
// follows links on the final path element and returns the path they lead to,
// which need not exist yet.
type LinkResolver interface {
	Resolve(name string) (string, error)
}

// Chowner is implemented by filesystems that can change file ownership.
type Chowner interface {
	Chown(name string, uid, gid int) error
}
