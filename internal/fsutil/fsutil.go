// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
)

// LookupFile probes for a named file directly under a root directory. It
// returns the full path and true when the file exists and is a regular file.
// Absence is an ordinary result, never an error: callers treat a missing
// file as "this root contributes nothing".
func LookupFile(rootPath string, name string) (string, bool) {
	if name == "" {
		panic("name must not be empty")
	}

	path := filepath.Join(rootPath, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
