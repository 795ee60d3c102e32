// Package synthfs applies file writes through the synthfs operation
// pipeline. It is the "synthfs" value of the write.backend setting and
// implements reconcile.Writer.
//
// Each Write runs a one-operation pipeline against an absolute-path-aware
// filesystem. Operation results are logged with their synthfs IDs so a
// failed write can be matched to its pipeline run in the log file.
package synthfs
