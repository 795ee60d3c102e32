// Package filesystem provides filesystem implementations for filestate.
//
// This package contains implementations of the types.FS interface:
// the real OS filesystem and an afero-backed one used for in-memory runs
// and tests.
package filesystem
