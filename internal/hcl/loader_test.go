package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_LoadWorkspace(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "workspace.hcl", `
common_root = "./common"

plugin "groundstation" {
  root = "./plugins/groundstation"
}

project "apollo" {
  root = "./projects/apollo"
}

project "artemis" {
  root = "./projects/artemis"
}
`)

	// --- Act ---
	ws, err := NewLoader().LoadWorkspace(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "./common", ws.CommonRoot)
	require.Len(t, ws.Plugins, 1)
	require.Equal(t, "groundstation", ws.Plugins[0].Label)
	require.Len(t, ws.Projects, 2)
	require.Equal(t, "apollo", ws.Projects[0].Label)
	require.Equal(t, "./projects/artemis", ws.Projects[1].RootPath)
}

func TestLoader_LoadManagers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "managers.hcl", `
manager "spacecraft" {
  lookup_module = "spacecraft"
  description   = "Everything that flies."
}

manager "vehicle_template" {
  lookup_module = "vehicles"
  abstract      = true
}
`)

	// --- Act ---
	decls, err := NewLoader().LoadManagers(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, decls, 2)
	require.Equal(t, "spacecraft", decls[0].Name)
	require.Equal(t, "spacecraft", decls[0].LookupModule)
	require.False(t, decls[0].Abstract)
	require.True(t, decls[1].Abstract)
	require.Equal(t, path, decls[0].File)
}

func TestLoader_LoadHooks(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "commands.hcl", `
hook "MakeBuild" {
  name        = "build"
  description = "Build the project."
  params = {
    target = "all"
    jobs   = 4
  }
}

hook "Clean" {}
`)

	// --- Act ---
	decls, err := NewLoader().LoadHooks(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, decls, 2)

	build := decls[0]
	require.Equal(t, "MakeBuild", build.Impl)
	require.Equal(t, "build", build.Name)
	require.Equal(t, "Build the project.", build.Description)
	require.Equal(t, cty.StringVal("all"), build.Params["target"])
	require.True(t, cty.NumberIntVal(4).RawEquals(build.Params["jobs"]))

	clean := decls[1]
	require.Equal(t, "Clean", clean.Impl)
	require.Empty(t, clean.Name)
	require.Nil(t, clean.Params)
}

func TestLoader_LoadHooksRejectsNonObjectParams(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "commands.hcl", `
hook "MakeBuild" {
  params = "not-an-object"
}
`)

	// --- Act ---
	_, err := NewLoader().LoadHooks(context.Background(), path)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be an object")
}

func TestLoader_MalformedFileErrorNamesPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, t.TempDir(), "commands.hcl", `hook "Broken" {`)

	// --- Act ---
	_, err := NewLoader().LoadHooks(context.Background(), path)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
}
