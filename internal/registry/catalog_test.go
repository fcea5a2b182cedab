package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hookwire/internal/hcl"
)

func newTestRegistry(t *testing.T, managerNames ...string) *Registry {
	t.Helper()
	reg := New(hcl.NewLoader())
	for _, name := range managerNames {
		require.NoError(t, reg.RegisterManager(NewManager(name, name)))
	}
	return reg
}

func TestCatalog_DeclareConcreteHook(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t, "spacecraft")

	// --- Act ---
	err := reg.Catalog.Declare(HookSpec{
		Impl:    "SaturnIb",
		Manager: "spacecraft",
		New:     func() any { return struct{}{} },
	})

	// --- Assert ---
	require.NoError(t, err)
	spec, ok := reg.Catalog.Get("SaturnIb")
	require.True(t, ok)
	require.Equal(t, "saturnib", spec.Name, "name should default to the lowercased Impl")
}

func TestCatalog_UnknownManagerFailsAtDeclarationTime(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t, "spacecraft")

	// --- Act ---
	err := reg.Catalog.Declare(HookSpec{
		Impl:    "Rover",
		Manager: "ground-vehicles",
		New:     func() any { return struct{}{} },
	})

	// --- Assert ---
	var lookupErr *ManagerLookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "Rover", lookupErr.Hook)
	require.Equal(t, "ground-vehicles", lookupErr.Manager)
	require.Contains(t, lookupErr.Choices, "spacecraft")
}

func TestCatalog_AbstractHookSkipsManagerCheck(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t)

	// --- Act ---
	// No manager is registered at all; an abstract spec must still declare.
	err := reg.Catalog.Declare(HookSpec{Impl: "VehicleBase", Manager: "vehicles", Abstract: true})

	// --- Assert ---
	require.NoError(t, err)
	_, ok := reg.Catalog.Get("VehicleBase")
	require.True(t, ok)
}

func TestCatalog_ManagerInheritedFromBase(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t, "spacecraft")
	require.NoError(t, reg.Catalog.Declare(HookSpec{Impl: "SpacecraftBase", Manager: "spacecraft", Abstract: true}))

	// --- Act ---
	err := reg.Catalog.Declare(HookSpec{
		Impl: "Orion",
		Base: "SpacecraftBase",
		New:  func() any { return struct{}{} },
	})

	// --- Assert ---
	require.NoError(t, err)
	spec, _ := reg.Catalog.Get("Orion")
	require.Equal(t, "spacecraft", spec.Manager)
}

func TestCatalog_ConcreteBaseSpecialization(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t, "spacecraft")
	require.NoError(t, reg.Catalog.Declare(HookSpec{
		Impl:    "Saturn",
		Manager: "spacecraft",
		New:     func() any { return struct{}{} },
	}))

	// --- Act ---
	// Specializing a concrete hook is permitted; manager linkage is inherited.
	err := reg.Catalog.Declare(HookSpec{
		Impl: "SaturnV",
		Base: "Saturn",
		New:  func() any { return struct{}{} },
	})

	// --- Assert ---
	require.NoError(t, err)
	spec, _ := reg.Catalog.Get("SaturnV")
	require.Equal(t, "spacecraft", spec.Manager)
}

func TestCatalog_UnlinkedConcreteHookFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t, "spacecraft")

	// --- Act ---
	err := reg.Catalog.Declare(HookSpec{Impl: "Orphan", New: func() any { return struct{}{} }})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be linked to a manager")
}

func TestCatalog_DuplicateImplFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t, "spacecraft")
	spec := HookSpec{Impl: "Orion", Manager: "spacecraft", New: func() any { return struct{}{} }}
	require.NoError(t, reg.Catalog.Declare(spec))

	// --- Act ---
	err := reg.Catalog.Declare(spec)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "already declared")
}

func TestCatalog_UnknownBaseFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t, "spacecraft")

	// --- Act ---
	err := reg.Catalog.Declare(HookSpec{
		Impl: "Orion",
		Base: "MissingBase",
		New:  func() any { return struct{}{} },
	})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown base")
}

func TestCatalog_ConcreteHookRequiresFactory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := newTestRegistry(t, "spacecraft")

	// --- Act ---
	err := reg.Catalog.Declare(HookSpec{Impl: "Orion", Manager: "spacecraft"})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "New factory")
}
