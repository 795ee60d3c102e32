package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/filestate/pkg/types"
)

// CountingFS records how often each operation reached the wrapped filesystem.
type CountingFS struct {
	types.FS

	mu      sync.Mutex
	reads   int
	writes  int
	stats   int
	renames int
	written []string
}

// NewCountingFS wraps inner.
func NewCountingFS(inner types.FS) *CountingFS {
	return &CountingFS{FS: inner}
}

func (c *CountingFS) Stat(name string) (fs.FileInfo, error) {
	c.mu.Lock()
	c.stats++
	c.mu.Unlock()
	return c.FS.Stat(name)
}

func (c *CountingFS) ReadFile(name string) ([]byte, error) {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	return c.FS.ReadFile(name)
}

func (c *CountingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	c.mu.Lock()
	c.writes++
	c.written = append(c.written, name)
	c.mu.Unlock()
	return c.FS.WriteFile(name, data, perm)
}

func (c *CountingFS) Rename(oldpath, newpath string) error {
	c.mu.Lock()
	c.renames++
	c.mu.Unlock()
	return c.FS.Rename(oldpath, newpath)
}

// Reads returns the number of ReadFile calls.
func (c *CountingFS) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// Writes returns the number of WriteFile calls.
func (c *CountingFS) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

// Renames returns the number of Rename calls.
func (c *CountingFS) Renames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renames
}

// Touched returns the total number of calls of any kind that hit the
// filesystem (stat, read, write, rename).
func (c *CountingFS) Touched() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads + c.writes + c.stats + c.renames
}

// WrittenPaths returns the paths passed to WriteFile in call order.
func (c *CountingFS) WrittenPaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.written...)
}
