package app

import (
	"context"
	"fmt"

	"github.com/vk/hookwire/internal/ctxlog"
	"github.com/vk/hookwire/internal/registry"
)

// Run executes the configured operation: listing the registries, or
// resolving and running a command hook.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if cfg.ListOnly {
		for _, mgr := range a.registry.Managers.Managers() {
			if err := mgr.FindAll(ctx); err != nil {
				return err
			}
		}
		return a.list()
	}

	mgr, err := a.registry.Managers.GetManager(cfg.ManagerName)
	if err != nil {
		return err
	}
	if err := mgr.FindAll(ctx); err != nil {
		return err
	}

	if cfg.Command == "" {
		return fmt.Errorf("no command given. Known commands: %v", mgr.HookNames())
	}

	var scopeCfg *registry.RegistryConfig
	if cfg.ProjectLabel != "" {
		scopeCfg, err = a.registry.Configs.GetConfig(registry.KindProject, cfg.ProjectLabel)
		if err != nil {
			return err
		}
	}

	hook, err := mgr.SearchHook(cfg.Command, scopeCfg)
	if err != nil {
		return err
	}

	instance := hook.Spec.New()
	if receiver, ok := instance.(registry.ParamReceiver); ok {
		receiver.SetParams(hook.Params)
	}
	runner, ok := instance.(registry.Runner)
	if !ok {
		return fmt.Errorf("'%s' hook of manager '%s' is not runnable", hook.Name, mgr.Name)
	}

	a.logger.Debug("Running command hook.", "command", hook.Name, "impl", hook.Spec.Impl, "scope", hook.Scope)
	return runner.Run(ctx, a.outW, cfg.Args)
}

// list prints every manager and its hooks grouped by scope, in the
// deterministic discovery order.
func (a *App) list() error {
	for _, mgr := range a.registry.Managers.Managers() {
		fmt.Fprintf(a.outW, "%s (lookup module: %s)\n", mgr.Name, mgr.LookupModule)

		printHooks := func(scope string, hooks []*registry.RegisteredHook) {
			if len(hooks) == 0 {
				return
			}
			fmt.Fprintf(a.outW, "  [%s]\n", scope)
			for _, hook := range hooks {
				if hook.Description != "" {
					fmt.Fprintf(a.outW, "    %s: %s\n", hook.Name, hook.Description)
				} else {
					fmt.Fprintf(a.outW, "    %s\n", hook.Name)
				}
			}
		}

		for _, cfg := range a.registry.Configs.AllConfigs() {
			hooks := mgr.GetHooks(cfg)
			printHooks(cfg.Kind.String()+"/"+cfg.Label, hooks)
		}
		printHooks(registry.GlobalScope, mgr.GlobalHooks())
	}
	return nil
}
