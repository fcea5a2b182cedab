package env_vars

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/vk/hookwire/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Command dumps the process environment, optionally filtered by prefix.
type Command struct{}

// Run implements registry.Runner. An optional first argument filters
// variables by name prefix.
func (c *Command) Run(ctx context.Context, out io.Writer, args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && strings.HasPrefix(pair[0], prefix) {
			envMap[pair[0]] = pair[1]
		}
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(out, "%s=%s\n", k, envMap[k])
	}
	return nil
}

// Register declares the hook with the catalog.
func (m *Module) Register(c *registry.Catalog) error {
	return c.Declare(registry.HookSpec{
		Impl:        "EnvVars",
		Name:        "env_vars",
		Manager:     "commands",
		Global:      true,
		Description: "Print the process environment, optionally filtered by prefix.",
		New:         func() any { return new(Command) },
	})
}
