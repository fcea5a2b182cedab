package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hookwire/internal/app"
)

func TestParse_CommandAndArgs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	args := []string{"-w", "workspace.hcl", "-project", "apollo", "build", "--fast"}

	// --- Act ---
	config, shouldExit, err := Parse(args, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "workspace.hcl", config.WorkspacePath)
	require.Equal(t, "apollo", config.ProjectLabel)
	require.Equal(t, app.CommandsManager, config.ManagerName)
	require.Equal(t, "build", config.Command)
	require.Equal(t, []string{"--fast"}, config.Args)
}

func TestParse_NoCommandPrintsUsage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse(nil, out)

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, config)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_ListWithoutCommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse([]string{"-list"}, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.True(t, config.ListOnly)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	_, _, err := Parse([]string{"-log-level", "verbose", "-list"}, out)

	// --- Assert ---
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid log-level")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	_, _, err := Parse([]string{"-log-format", "xml", "-list"}, out)

	// --- Assert ---
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid log-format")
}
