package registry

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// GlobalScope is the sentinel scope key for configless hooks. Kind-prefixed
// scope keys always contain a slash, so the sentinel cannot collide.
const GlobalScope = "global"

// RegisteredHook is one concrete hook linked to a manager under a scope.
type RegisteredHook struct {
	// Spec is the declared implementation backing this registration.
	Spec *HookSpec

	// Name is the addressable name within the owning scope. Declaration
	// files may override the spec's default.
	Name string

	// Scope is the scope key the hook was registered under.
	Scope string

	Description string

	// Params carries the declaration file's `params` attribute, made
	// available to the hook's consumer. Nil for global hooks.
	Params map[string]cty.Value

	// File is the declaration file the registration came from. Empty for
	// global hooks.
	File string
}

// Manager owns one named extension capability. It declares the lookup
// module searched for under each registry config root and groups the hooks
// discovered there by scope.
//
// Name and LookupModule are set at construction and must not change.
// Discovery mutates the internal sets and is single-writer; once every
// FindAll pass has completed the manager is effectively immutable and safe
// for concurrent reads.
type Manager struct {
	Name         string
	LookupModule string

	reg        *Registry
	hooks      map[string]map[string]*RegisteredHook
	hookOrder  map[string][]string
	scopeOrder []string
	discovered map[string]bool
}

// NewManager creates a manager. Both attributes are mandatory.
func NewManager(name string, lookupModule string) *Manager {
	if name == "" {
		panic("manager must supply a name attribute")
	}
	if lookupModule == "" {
		panic("manager must supply a lookup_module attribute")
	}
	return &Manager{
		Name:         name,
		LookupModule: lookupModule,
		hooks:        make(map[string]map[string]*RegisteredHook),
		hookOrder:    make(map[string][]string),
		discovered:   make(map[string]bool),
	}
}

// insert links a hook under a scope, enforcing the duplicate-name invariant.
// Re-registering the identical implementation under the same name is a
// no-op, which makes re-discovery idempotent by identity.
func (m *Manager) insert(scope string, hook *RegisteredHook) error {
	byName, ok := m.hooks[scope]
	if !ok {
		byName = make(map[string]*RegisteredHook)
		m.hooks[scope] = byName
		m.scopeOrder = append(m.scopeOrder, scope)
	}
	if existing, exists := byName[hook.Name]; exists {
		if existing.Spec == hook.Spec {
			return nil
		}
		return &DuplicateHookError{
			Name:     hook.Name,
			Manager:  m.Name,
			Scope:    scope,
			Existing: existing.Spec.Impl,
			Incoming: hook.Spec.Impl,
		}
	}
	byName[hook.Name] = hook
	m.hookOrder[scope] = append(m.hookOrder[scope], hook.Name)
	return nil
}

// GetHooks returns the hooks registered under a config's scope, in
// registration order. An undiscovered or empty scope yields an empty slice.
func (m *Manager) GetHooks(cfg *RegistryConfig) []*RegisteredHook {
	if cfg == nil {
		return nil
	}
	return m.scopeHooks(scopeKey(cfg))
}

// GlobalHooks returns the hooks registered under the global scope, in
// registration order.
func (m *Manager) GlobalHooks() []*RegisteredHook {
	return m.scopeHooks(GlobalScope)
}

func (m *Manager) scopeHooks(scope string) []*RegisteredHook {
	names := m.hookOrder[scope]
	hooks := make([]*RegisteredHook, 0, len(names))
	for _, name := range names {
		hooks = append(hooks, m.hooks[scope][name])
	}
	return hooks
}

// GetHookByName returns the hook with the given name within a config's
// scope. Absence is a recoverable HookNotFoundError.
func (m *Manager) GetHookByName(cfg *RegistryConfig, name string) (*RegisteredHook, error) {
	scope := ""
	if cfg != nil {
		scope = scopeKey(cfg)
	}
	if hook, ok := m.hooks[scope][name]; ok {
		return hook, nil
	}
	return nil, &HookNotFoundError{Name: name, Manager: m.Name, Scope: scope}
}

// GetHook returns the hook with the given name from the global scope.
func (m *Manager) GetHook(name string) (*RegisteredHook, error) {
	if hook, ok := m.hooks[GlobalScope][name]; ok {
		return hook, nil
	}
	return nil, &HookNotFoundError{Name: name, Manager: m.Name}
}

// SearchHook looks a name up in the given config's scope first, then in the
// common scopes, the plugin scopes, and finally the global scope. It
// returns a HookNotFoundError when the name is absent everywhere.
func (m *Manager) SearchHook(name string, cfg *RegistryConfig) (*RegisteredHook, error) {
	if cfg != nil {
		if hook, ok := m.hooks[scopeKey(cfg)][name]; ok {
			return hook, nil
		}
	}
	if m.reg != nil {
		fallbacks := append(m.reg.Configs.Configs(KindCommon), m.reg.Configs.Configs(KindPlugin)...)
		for _, fallback := range fallbacks {
			if hook, ok := m.hooks[scopeKey(fallback)][name]; ok {
				return hook, nil
			}
		}
	}
	if hook, ok := m.hooks[GlobalScope][name]; ok {
		return hook, nil
	}
	return nil, &HookNotFoundError{Name: name, Manager: m.Name}
}

// ConfigsFor returns the scope keys holding a hook with the given name, in
// discovery order.
func (m *Manager) ConfigsFor(name string) []string {
	var scopes []string
	for _, scope := range m.scopeOrder {
		if _, ok := m.hooks[scope][name]; ok {
			scopes = append(scopes, scope)
		}
	}
	return scopes
}

// HookNames returns the sorted, de-duplicated names of every registered
// hook across all scopes.
func (m *Manager) HookNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, scope := range m.scopeOrder {
		for _, name := range m.hookOrder[scope] {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// HasHooks returns an error when the manager has not registered any hooks.
func (m *Manager) HasHooks() error {
	if len(m.scopeOrder) == 0 {
		return fmt.Errorf("'%s' manager does not contain any hooks", m.Name)
	}
	return nil
}
