// Package hostargs speaks the binary-module protocol of Ansible-style
// orchestration hosts.
//
// The host writes the task arguments to a file and passes its path as the
// only command-line argument. The module answers with exactly one JSON
// document on stdout: the outcome on success, or the same fields plus
// failed and msg on failure.
package hostargs
