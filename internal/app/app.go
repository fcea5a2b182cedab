package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/hookwire/internal/config"
	"github.com/vk/hookwire/internal/ctxlog"
	"github.com/vk/hookwire/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. Any
// startup failure (unreadable workspace, broken declaration) panics; the
// caller recovers and turns it into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, mods ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New(loader)

	// Built-in managers must exist before any hook declaration resolves
	// against them.
	if err := reg.RegisterManager(registry.NewManager(CommandsManager, CommandsManager)); err != nil {
		panic(fmt.Errorf("failed to register built-in managers: %w", err))
	}

	if appConfig.WorkspacePath != "" {
		ws, err := loader.LoadWorkspace(ctx, appConfig.WorkspacePath)
		if err != nil {
			panic(fmt.Errorf("failed to load workspace: %w", err))
		}
		if err := populateConfigs(reg, ws); err != nil {
			panic(fmt.Errorf("failed to register workspace roots: %w", err))
		}
		logger.Debug("Workspace roots registered.")
	}

	// Scan managers.hcl under the common root and each plugin root.
	if err := reg.ScanManagers(ctx); err != nil {
		panic(fmt.Errorf("failed to scan manager declarations: %w", err))
	}
	logger.Debug("Manager declarations scanned.", "managers", len(reg.Managers.Names()))

	if len(mods) == 0 {
		mods = builtinHooks
	}
	for _, mod := range mods {
		if err := mod.Register(reg.Catalog); err != nil {
			panic(fmt.Errorf("failed to declare built-in hooks: %w", err))
		}
	}
	logger.Debug("All hook packages declared.", "count", len(mods))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// populateConfigs registers the workspace's roots: the common root first,
// then plugins, then projects, preserving declaration order within a kind.
func populateConfigs(reg *registry.Registry, ws *config.Workspace) error {
	if ws.CommonRoot != "" {
		cfg := &registry.RegistryConfig{Label: "common", RootPath: ws.CommonRoot, Kind: registry.KindCommon}
		if err := reg.Configs.AddConfig(cfg); err != nil {
			return err
		}
	}
	for _, decl := range ws.Plugins {
		cfg := &registry.RegistryConfig{Label: decl.Label, RootPath: decl.RootPath, Kind: registry.KindPlugin}
		if err := reg.Configs.AddConfig(cfg); err != nil {
			return err
		}
	}
	for _, decl := range ws.Projects {
		cfg := &registry.RegistryConfig{Label: decl.Label, RootPath: decl.RootPath, Kind: registry.KindProject}
		if err := reg.Configs.AddConfig(cfg); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
