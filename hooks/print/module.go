package print

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/vk/hookwire/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Command echoes its arguments, or the declaring scope's params when no
// arguments are given.
type Command struct {
	// Params is populated by the caller from the registered hook before Run.
	Params map[string]cty.Value
}

// SetParams implements registry.ParamReceiver.
func (c *Command) SetParams(params map[string]cty.Value) {
	c.Params = params
}

// Run implements registry.Runner.
func (c *Command) Run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) > 0 {
		for _, arg := range args {
			fmt.Fprintln(out, arg)
		}
		return nil
	}

	if len(c.Params) == 0 {
		fmt.Fprintln(out, "(null)")
		return nil
	}

	// Sort keys for consistent output
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		val := c.Params[k]
		if val.Type() == cty.String {
			fmt.Fprintf(out, "%s = %q\n", k, val.AsString())
		} else {
			fmt.Fprintf(out, "%s = %s\n", k, val.GoString())
		}
	}
	return nil
}

// Register declares the hook with the catalog.
func (m *Module) Register(c *registry.Catalog) error {
	return c.Declare(registry.HookSpec{
		Impl:        "Print",
		Manager:     "commands",
		Global:      true,
		Description: "Echo arguments or scope params to standard output.",
		New:         func() any { return new(Command) },
	})
}
