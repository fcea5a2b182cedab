package registry

import (
	"context"
	"fmt"

	"github.com/vk/hookwire/internal/ctxlog"
	"github.com/vk/hookwire/internal/fsutil"
)

// ManagersFile is the well-known declaration file scanned for manager
// blocks under the common root and each plugin root.
const ManagersFile = "managers.hcl"

// ScanManagers populates the manager directory from the managers
// declaration file of the common roots and every plugin root, in
// registration order. A root without the file contributes nothing.
// Scanning is idempotent per root.
func (r *Registry) ScanManagers(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	roots := append(r.Configs.Configs(KindCommon), r.Configs.Configs(KindPlugin)...)
	for _, cfg := range roots {
		scope := scopeKey(cfg)
		if r.scannedRoots[scope] {
			continue
		}

		path, found := fsutil.LookupFile(cfg.RootPath, ManagersFile)
		if !found {
			logger.Debug("No managers declaration file under root.", "scope", scope)
			r.scannedRoots[scope] = true
			continue
		}

		decls, err := r.loader.LoadManagers(ctx, path)
		if err != nil {
			return err
		}

		registered := 0
		for _, decl := range decls {
			if decl.Abstract {
				logger.Debug("Skipping abstract manager declaration.", "manager", decl.Name, "file", decl.File)
				continue
			}
			if err := r.RegisterManager(NewManager(decl.Name, decl.LookupModule)); err != nil {
				return fmt.Errorf("%s: %w", decl.File, err)
			}
			registered++
		}
		r.scannedRoots[scope] = true
		logger.Debug("Managers declaration file scanned.", "scope", scope, "managers_registered", registered)
	}
	return nil
}

// Find discovers hooks under exactly one registry config's root. It probes
// the root for this manager's lookup module; absence means the scope
// contributes nothing and is not an error. A present file is parsed, and
// every hook block resolving to this manager is linked under the config's
// scope. Calling Find again for an already-discovered config is a no-op.
func (m *Manager) Find(ctx context.Context, cfg *RegistryConfig) error {
	if cfg == nil {
		return nil
	}
	logger := ctxlog.FromContext(ctx)

	scope := scopeKey(cfg)
	if m.discovered[scope] {
		logger.Debug("Scope already discovered, skipping.", "manager", m.Name, "scope", scope)
		return nil
	}

	path, found := fsutil.LookupFile(cfg.RootPath, m.LookupModule+".hcl")
	if !found {
		logger.Debug("No lookup module under root, scope contributes nothing.",
			"manager", m.Name, "scope", scope, "lookup_module", m.LookupModule)
		m.discovered[scope] = true
		return nil
	}

	decls, err := m.reg.loader.LoadHooks(ctx, path)
	if err != nil {
		return err
	}

	linked := 0
	for _, decl := range decls {
		spec, ok := m.reg.Catalog.Get(decl.Impl)
		if !ok {
			return fmt.Errorf("%s: hook block references unknown implementation '%s'", decl.File, decl.Impl)
		}
		if spec.Abstract {
			return fmt.Errorf("%s: abstract hook '%s' cannot be registered to a scope", decl.File, decl.Impl)
		}
		// Blocks owned by another manager are that manager's concern; it
		// links them when it scans its own lookup module.
		if spec.Manager != m.Name {
			continue
		}

		name := decl.Name
		if name == "" {
			name = spec.Name
		}
		description := decl.Description
		if description == "" {
			description = spec.Description
		}
		hook := &RegisteredHook{
			Spec:        spec,
			Name:        name,
			Scope:       scope,
			Description: description,
			Params:      decl.Params,
			File:        decl.File,
		}
		if err := m.insert(scope, hook); err != nil {
			return err
		}
		linked++
	}

	m.discovered[scope] = true
	logger.Debug("Scope discovery complete.", "manager", m.Name, "scope", scope, "hooks_linked", linked)
	return nil
}

// FindAll discovers hooks across every registered config: common roots
// first, then plugins, then projects, each in registration order, followed
// by the global pass for configless hooks. The fixed order keeps output of
// listing operations reproducible.
func (m *Manager) FindAll(ctx context.Context) error {
	for _, cfg := range m.reg.Configs.AllConfigs() {
		if err := m.Find(ctx, cfg); err != nil {
			return err
		}
	}
	return m.findGlobal(ctx)
}

// findGlobal links every catalog spec marked global and owned by this
// manager under the global scope. Idempotent like a config scope.
func (m *Manager) findGlobal(ctx context.Context) error {
	if m.discovered[GlobalScope] {
		return nil
	}
	logger := ctxlog.FromContext(ctx)

	linked := 0
	for _, spec := range m.reg.Catalog.Specs() {
		if !spec.Global || spec.Abstract || spec.Manager != m.Name {
			continue
		}
		hook := &RegisteredHook{
			Spec:        spec,
			Name:        spec.Name,
			Scope:       GlobalScope,
			Description: spec.Description,
		}
		if err := m.insert(GlobalScope, hook); err != nil {
			return err
		}
		linked++
	}

	m.discovered[GlobalScope] = true
	logger.Debug("Global discovery pass complete.", "manager", m.Name, "hooks_linked", linked)
	return nil
}
