package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- Workspace Structures ---

// RootBlock represents a `project` or `plugin` block in a workspace file.
// Its label is the unique label of the registry config it declares.
type RootBlock struct {
	Label string `hcl:"label,label"`
	Root  string `hcl:"root"`
}

// WorkspaceConfig represents the top-level structure of a workspace file,
// naming the common root and every project and plugin root.
type WorkspaceConfig struct {
	CommonRoot string       `hcl:"common_root,optional"`
	Projects   []*RootBlock `hcl:"project,block"`
	Plugins    []*RootBlock `hcl:"plugin,block"`
	Body       hcl.Body     `hcl:",remain"`
}

// --- Manager Declaration Schemas ---

// ManagerBlock represents a `manager` block from a managers declaration file.
type ManagerBlock struct {
	Name         string `hcl:"name,label"`
	LookupModule string `hcl:"lookup_module"`
	Abstract     bool   `hcl:"abstract,optional"`
	Description  string `hcl:"description,optional"`
}

// ManagersConfig represents the top-level structure of a managers
// declaration file (`managers.hcl` under the common root or a plugin root).
type ManagersConfig struct {
	Managers []*ManagerBlock `hcl:"manager,block"`
	Body     hcl.Body        `hcl:",remain"`
}

// --- Hook Declaration Schemas ---

// HookBlock represents a `hook` block from a lookup-module file. Its label
// references a declared hook implementation by ID; the optional `name`
// attribute overrides the addressable name within the declaring scope.
type HookBlock struct {
	Impl        string         `hcl:"impl,label"`
	Name        string         `hcl:"name,optional"`
	Description string         `hcl:"description,optional"`
	Params      hcl.Expression `hcl:"params,optional"`
}

// HooksConfig represents the top-level structure of a lookup-module file.
type HooksConfig struct {
	Hooks []*HookBlock `hcl:"hook,block"`
	Body  hcl.Body     `hcl:",remain"`
}
