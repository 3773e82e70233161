// Package tools provides the host process primitives used by the runner.
//
// Ownership boundary:
// - shell command execution with inherited standard streams
//
// - process termination status
package tools
