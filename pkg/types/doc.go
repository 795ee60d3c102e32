// Package types defines the core types and interfaces used throughout filestate:
// the desired state handed in by a caller, the outcome handed back, and the
// filesystem interface the reconciler works against.
package types
