package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Workspace is the format-agnostic representation of a workspace file. It
// names every discoverable code root the process knows about.
type Workspace struct {
	CommonRoot string
	Projects   []*RootDecl
	Plugins    []*RootDecl
}

// RootDecl declares a single discoverable root with its unique label.
type RootDecl struct {
	Label    string
	RootPath string
}

// ManagerDecl is the format-agnostic representation of one `manager` block
// from a managers declaration file.
type ManagerDecl struct {
	Name         string
	LookupModule string
	Abstract     bool
	Description  string

	// File is the declaration file the block came from, for diagnostics.
	File string
}

// HookDecl is the format-agnostic representation of one `hook` block from a
// lookup-module file. Impl references a declared hook implementation; Name,
// when set, overrides the addressable name within the declaring scope.
type HookDecl struct {
	Impl        string
	Name        string
	Description string
	Params      map[string]cty.Value

	// File is the declaration file the block came from, for diagnostics.
	File string
}
