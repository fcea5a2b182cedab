package registry

import (
	"context"
	"io"

	"github.com/vk/hookwire/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Module is the interface hook packages implement to be compiled into the
// binary. Register declares the package's hook specs into the catalog.
type Module interface {
	Register(c *Catalog) error
}

// Runner is implemented by hook instances that can be executed as commands
// by the CLI consumer.
type Runner interface {
	Run(ctx context.Context, out io.Writer, args []string) error
}

// ParamReceiver is implemented by hook instances that accept the declaring
// scope's params before being run.
type ParamReceiver interface {
	SetParams(params map[string]cty.Value)
}

// Registry holds all the registered managers, configs, and declared hook
// implementations for a single application instance. All mutation happens
// on the main startup/discovery path; once discovery has completed the
// registry is effectively immutable and safe for concurrent reads.
type Registry struct {
	Managers *ManagerRegistry
	Configs  *ConfigRegistry
	Catalog  *Catalog

	loader       config.Loader
	scannedRoots map[string]bool
}

// New creates and initializes a new Registry instance. The loader reads
// declaration files during manager scans and hook discovery.
func New(loader config.Loader) *Registry {
	r := &Registry{
		Managers:     NewManagerRegistry(),
		Configs:      NewConfigRegistry(),
		loader:       loader,
		scannedRoots: make(map[string]bool),
	}
	r.Catalog = NewCatalog(r.Managers)
	return r
}

// RegisterManager wires a manager to this registry and adds it to the
// manager directory.
func (r *Registry) RegisterManager(m *Manager) error {
	if err := r.Managers.Register(m); err != nil {
		return err
	}
	m.reg = r
	return nil
}
