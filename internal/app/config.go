package app

// CommandsManager is the name of the built-in manager owning runnable
// command hooks.
const CommandsManager = "commands"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkspacePath string // hcl workspace file naming the code roots
	ManagerName   string // manager to discover and query
	ProjectLabel  string // optional project scope for hook resolution
	ListOnly      bool   // list managers and hooks instead of running
	Command       string // hook name to run via the commands manager
	Args          []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. The workspace path is optional: without
// one, only built-in managers and global hooks are available.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManagerName == "" {
		cfg.ManagerName = CommandsManager
	}
	return &cfg, nil
}
