// Package reconcile converges a single file toward desired content.
//
// A reconcile reads the current content, compares it byte for byte with the
// desired content and writes the full content only when they differ or the
// file is absent. Dry-run requests return before touching the filesystem.
//
// Two invocations against the same path are not serialized here; the last
// write wins and a reported Changed value can be stale against a concurrent
// writer. Callers that schedule overlapping runs must serialize them.
package reconcile
