package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "spacecraft.hcl"), []byte(""), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(root, "telemetry.hcl"), 0700))

	// --- Act / Assert ---
	path, found := LookupFile(root, "spacecraft.hcl")
	require.True(t, found)
	require.Equal(t, filepath.Join(root, "spacecraft.hcl"), path)

	_, found = LookupFile(root, "missing.hcl")
	require.False(t, found, "absence is a result, not an error")

	_, found = LookupFile(root, "telemetry.hcl")
	require.False(t, found, "a directory is not a lookup file")
}

func TestLookupFile_EmptyNamePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { LookupFile(t.TempDir(), "") })
}
