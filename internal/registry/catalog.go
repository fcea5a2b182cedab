package registry

import (
	"fmt"
	"log/slog"
	"strings"
)

// HookSpec describes one compiled hook implementation. Declaring a spec is a
// pure, side-effect-free act: it makes the implementation referencable from
// declaration files but does not register it to any scope.
type HookSpec struct {
	// Impl is the process-wide unique implementation identifier that
	// declaration files reference.
	Impl string

	// Manager names the owning manager. May be left empty when a Base
	// provides it.
	Manager string

	// Name is the addressable name of the hook. Defaults to the lowercased
	// Impl when empty.
	Name string

	// Abstract excludes the spec from registration. Abstract specs exist
	// purely as shared declaration surfaces for other specs to base on.
	Abstract bool

	// Base references a previously declared spec whose manager linkage this
	// spec inherits. The base may itself be concrete.
	Base string

	// Global marks a configless hook, registered under the global scope
	// during a manager's FindAll pass rather than from a declaration file.
	Global bool

	Description string

	// New constructs a fresh hook instance. Required for concrete specs.
	New func() any
}

// Catalog holds every declared hook implementation, keyed by Impl and kept
// in declaration order. It validates manager linkage at declaration time so
// a broken hook fails when it is declared, not when it is first used.
type Catalog struct {
	managers *ManagerRegistry
	specs    map[string]*HookSpec
	order    []string
}

// NewCatalog creates an empty catalog resolving managers against the given
// registry.
func NewCatalog(managers *ManagerRegistry) *Catalog {
	return &Catalog{
		managers: managers,
		specs:    make(map[string]*HookSpec),
	}
}

// Declare validates and records a hook spec. Concrete specs must resolve,
// directly or through their base chain, to a registered manager; failing
// that is a ManagerLookupError. Abstract specs skip the manager check.
func (c *Catalog) Declare(spec HookSpec) error {
	if spec.Impl == "" {
		return fmt.Errorf("hook spec must supply an Impl identifier")
	}
	if _, exists := c.specs[spec.Impl]; exists {
		return fmt.Errorf("hook implementation '%s' already declared", spec.Impl)
	}
	if spec.Base != "" {
		if _, ok := c.specs[spec.Base]; !ok {
			return fmt.Errorf("'%s' hook references unknown base '%s'", spec.Impl, spec.Base)
		}
	}

	if spec.Manager == "" {
		spec.Manager = c.inheritedManager(spec.Base)
	}

	if !spec.Abstract {
		if spec.Manager == "" {
			return fmt.Errorf("'%s' hook must be linked to a manager", spec.Impl)
		}
		if _, err := c.managers.GetManager(spec.Manager); err != nil {
			return &ManagerLookupError{Hook: spec.Impl, Manager: spec.Manager, Choices: c.managers.Names()}
		}
		if spec.Name == "" {
			spec.Name = strings.ToLower(spec.Impl)
		}
		if spec.New == nil {
			return fmt.Errorf("'%s' hook must supply a New factory", spec.Impl)
		}
	}

	slog.Debug("Declaring hook implementation.", "impl", spec.Impl, "manager", spec.Manager, "abstract", spec.Abstract)
	c.specs[spec.Impl] = &spec
	c.order = append(c.order, spec.Impl)
	return nil
}

// inheritedManager walks the base chain until a spec carries a manager name.
// Bases are always declared before their dependents, so the walk terminates.
func (c *Catalog) inheritedManager(base string) string {
	for base != "" {
		spec := c.specs[base]
		if spec.Manager != "" {
			return spec.Manager
		}
		base = spec.Base
	}
	return ""
}

// Get returns the declared spec for an implementation ID.
func (c *Catalog) Get(impl string) (*HookSpec, bool) {
	spec, ok := c.specs[impl]
	return spec, ok
}

// Specs returns every declared spec in declaration order.
func (c *Catalog) Specs() []*HookSpec {
	specs := make([]*HookSpec, 0, len(c.order))
	for _, impl := range c.order {
		specs = append(specs, c.specs[impl])
	}
	return specs
}
