package config

import (
	"context"
)

// Loader is the interface for a format-specific declaration-file loader.
// All methods translate raw files into the format-agnostic model. Malformed
// content is an error; the caller decides what a missing file means before
// calling the loader.
type Loader interface {
	// LoadWorkspace reads a workspace file naming the common, project and
	// plugin roots.
	LoadWorkspace(ctx context.Context, path string) (*Workspace, error)

	// LoadManagers reads a managers declaration file from a common or
	// plugin root.
	LoadManagers(ctx context.Context, path string) ([]*ManagerDecl, error)

	// LoadHooks reads a lookup-module file from a registry config root.
	LoadHooks(ctx context.Context, path string) ([]*HookDecl, error)
}
