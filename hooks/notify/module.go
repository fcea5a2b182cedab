package notify

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/vk/hookwire/internal/ctxlog"
	"github.com/vk/hookwire/internal/registry"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Command emits a socket.io event to a remote endpoint.
type Command struct {
	// Timeout bounds the connect-and-emit round trip.
	Timeout time.Duration
}

// Run implements registry.Runner. Usage: notify URL EVENT [MESSAGE].
func (c *Command) Run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("notify requires URL and EVENT arguments")
	}
	rawURL, event := args[0], args[1]
	message := ""
	if len(args) > 2 {
		message = args[2]
	}

	logger := ctxlog.FromContext(ctx).With("url", rawURL, "event", event)
	logger.Debug("Notify started")
	defer logger.Debug("Notify finished")

	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	var isConnected atomic.Bool
	done := make(chan error, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket("/", opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Connected, emitting event", "sid", io.Id())
		io.Emit(event, message)
		done <- nil
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if connectErr, ok := errs[0].(error); ok {
			done <- connectErr
			return
		}
		done <- fmt.Errorf("connect error: %v", errs[0])
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return fmt.Errorf("timed out after connecting while emitting event '%s'", event)
		}
		return fmt.Errorf("timed out while waiting for initial connection")
	case err := <-done:
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "emitted '%s' to %s\n", event, rawURL)
	return nil
}

// Register declares the hook with the catalog.
func (m *Module) Register(c *registry.Catalog) error {
	return c.Declare(registry.HookSpec{
		Impl:        "Notify",
		Manager:     "commands",
		Global:      true,
		Description: "Emit a socket.io event to a remote endpoint.",
		New:         func() any { return new(Command) },
	})
}
