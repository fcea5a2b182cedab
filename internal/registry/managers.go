package registry

// ManagerRegistry is the process-wide directory of managers, keyed by name
// and kept in registration order.
type ManagerRegistry struct {
	managers map[string]*Manager
	order    []string
}

// NewManagerRegistry creates an empty ManagerRegistry.
func NewManagerRegistry() *ManagerRegistry {
	return &ManagerRegistry{
		managers: make(map[string]*Manager),
	}
}

// Register adds a manager. At most one manager may hold a given name.
func (r *ManagerRegistry) Register(m *Manager) error {
	if _, exists := r.managers[m.Name]; exists {
		return &ManagerAlreadyRegisteredError{Name: m.Name}
	}
	r.managers[m.Name] = m
	r.order = append(r.order, m.Name)
	return nil
}

// GetManager returns the manager with the given name.
func (r *ManagerRegistry) GetManager(name string) (*Manager, error) {
	if m, ok := r.managers[name]; ok {
		return m, nil
	}
	return nil, &ManagerNotFoundError{Name: name, Choices: r.order}
}

// Managers returns all registered managers in registration order.
func (r *ManagerRegistry) Managers() []*Manager {
	managers := make([]*Manager, 0, len(r.order))
	for _, name := range r.order {
		managers = append(managers, r.managers[name])
	}
	return managers
}

// Names returns all registered manager names in registration order.
func (r *ManagerRegistry) Names() []string {
	return append([]string(nil), r.order...)
}
