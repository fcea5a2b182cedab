package registry

import (
	"fmt"
)

// Kind classifies a registry config root.
type Kind int

const (
	KindCommon Kind = iota
	KindPlugin
	KindProject
)

// String returns the lowercase kind name used in scope keys and messages.
func (k Kind) String() string {
	switch k {
	case KindCommon:
		return "common"
	case KindPlugin:
		return "plugin"
	case KindProject:
		return "project"
	default:
		return "unknown"
	}
}

// RegistryConfig describes one discoverable code root. Instances are created
// once at startup from the workspace and are immutable afterwards.
type RegistryConfig struct {
	Label    string
	RootPath string
	Kind     Kind
}

// scopeKey returns the identity a config registers hooks under. The kind
// prefix keeps two configs with the same label in different kinds apart.
func scopeKey(cfg *RegistryConfig) string {
	return cfg.Kind.String() + "/" + cfg.Label
}

// ConfigRegistry is a queryable collection of registry configs, grouped by
// kind and kept in registration order.
type ConfigRegistry struct {
	configs map[Kind]map[string]*RegistryConfig
	order   map[Kind][]string
}

// NewConfigRegistry creates an empty ConfigRegistry.
func NewConfigRegistry() *ConfigRegistry {
	return &ConfigRegistry{
		configs: make(map[Kind]map[string]*RegistryConfig),
		order:   make(map[Kind][]string),
	}
}

// AddConfig registers a config. Labels must be unique within a kind.
func (r *ConfigRegistry) AddConfig(cfg *RegistryConfig) error {
	if cfg.Label == "" {
		return fmt.Errorf("%s config must supply a label", cfg.Kind)
	}
	byLabel, ok := r.configs[cfg.Kind]
	if !ok {
		byLabel = make(map[string]*RegistryConfig)
		r.configs[cfg.Kind] = byLabel
	}
	if _, exists := byLabel[cfg.Label]; exists {
		return fmt.Errorf("%s config labels aren't unique. Duplicates: %s", cfg.Kind, cfg.Label)
	}
	byLabel[cfg.Label] = cfg
	r.order[cfg.Kind] = append(r.order[cfg.Kind], cfg.Label)
	return nil
}

// GetConfig returns the config with the given label within a kind.
func (r *ConfigRegistry) GetConfig(kind Kind, label string) (*RegistryConfig, error) {
	if cfg, ok := r.configs[kind][label]; ok {
		return cfg, nil
	}
	return nil, &ConfigNotFoundError{Kind: kind, Label: label, Choices: r.order[kind]}
}

// Configs returns all configs of a kind in registration order.
func (r *ConfigRegistry) Configs(kind Kind) []*RegistryConfig {
	labels := r.order[kind]
	configs := make([]*RegistryConfig, 0, len(labels))
	for _, label := range labels {
		configs = append(configs, r.configs[kind][label])
	}
	return configs
}

// AllConfigs returns every config in discovery order: common roots first,
// then plugins, then projects, each in registration order. The fixed kind
// order lets common- and plugin-provided declarations land before the
// project-level declarations that depend on them.
func (r *ConfigRegistry) AllConfigs() []*RegistryConfig {
	var configs []*RegistryConfig
	for _, kind := range []Kind{KindCommon, KindPlugin, KindProject} {
		configs = append(configs, r.Configs(kind)...)
	}
	return configs
}
