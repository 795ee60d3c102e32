// Package testutil provides utilities for testing filestate components.
//
// Key components:
//   - CountingFS: wraps a types.FS and counts reads and writes, so tests can
//     prove a reconcile did (or did not) touch the disk
//   - MockFS: testify mock of types.FS for injecting failures such as a full disk
//   - MemoryFS / file helpers: quick in-memory fixtures
package testutil
