// Package runner executes per-component manifest commands.
//
// Ownership boundary:
// - working directory resolution relative to the application root
//
// - sequential, fail-fast execution of clean and build commands
//
// - classification of spawn and exit failures
package runner
