// Package app wires the application together: it builds the logger, loads
// the workspace, scans manager declarations, populates the hook catalog
// from the compiled-in hook packages, and exposes the run/list operations
// the CLI consumes.
package app
