package http_request

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vk/hookwire/internal/ctxlog"
	"github.com/vk/hookwire/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Command issues a single HTTP request and reports the response status.
type Command struct {
	// Client may be injected for testing; a default client with a timeout
	// is used otherwise.
	Client *http.Client
}

// Run implements registry.Runner. Usage: http_request URL [METHOD].
func (c *Command) Run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("http_request requires a URL argument")
	}
	url := args[0]
	method := http.MethodGet
	if len(args) > 1 {
		method = args[1]
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("Making HTTP request", "method", method, "url", url)

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Info("Received HTTP response", "status", resp.Status)
	fmt.Fprintf(out, "%s %s -> %s (%d bytes)\n", method, url, resp.Status, len(body))
	return nil
}

// Register declares the hook with the catalog.
func (m *Module) Register(c *registry.Catalog) error {
	return c.Declare(registry.HookSpec{
		Impl:        "HttpRequest",
		Name:        "http_request",
		Manager:     "commands",
		Global:      true,
		Description: "Issue an HTTP request and report the response status.",
		New:         func() any { return new(Command) },
	})
}
