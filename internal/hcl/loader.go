package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/hookwire/internal/config"
	"github.com/vk/hookwire/internal/ctxlog"
	"github.com/vk/hookwire/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadWorkspace parses a workspace file into the format-agnostic model.
func (l *Loader) LoadWorkspace(ctx context.Context, path string) (*config.Workspace, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading workspace file.", "path", path)

	var raw schema.WorkspaceConfig
	if err := l.decodeFile(path, &raw); err != nil {
		return nil, err
	}

	ws := &config.Workspace{CommonRoot: raw.CommonRoot}
	for _, block := range raw.Projects {
		ws.Projects = append(ws.Projects, &config.RootDecl{Label: block.Label, RootPath: block.Root})
	}
	for _, block := range raw.Plugins {
		ws.Plugins = append(ws.Plugins, &config.RootDecl{Label: block.Label, RootPath: block.Root})
	}

	logger.Debug("Workspace loaded.", "projects", len(ws.Projects), "plugins", len(ws.Plugins))
	return ws, nil
}

// LoadManagers parses a managers declaration file into the model.
func (l *Loader) LoadManagers(ctx context.Context, path string) ([]*config.ManagerDecl, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading managers declaration file.", "path", path)

	var raw schema.ManagersConfig
	if err := l.decodeFile(path, &raw); err != nil {
		return nil, err
	}

	decls := make([]*config.ManagerDecl, 0, len(raw.Managers))
	for _, block := range raw.Managers {
		decls = append(decls, &config.ManagerDecl{
			Name:         block.Name,
			LookupModule: block.LookupModule,
			Abstract:     block.Abstract,
			Description:  block.Description,
			File:         path,
		})
	}
	return decls, nil
}

// LoadHooks parses a lookup-module file into the model. The optional
// `params` attribute must evaluate to an object of constant values.
func (l *Loader) LoadHooks(ctx context.Context, path string) ([]*config.HookDecl, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading lookup-module file.", "path", path)

	var raw schema.HooksConfig
	if err := l.decodeFile(path, &raw); err != nil {
		return nil, err
	}

	decls := make([]*config.HookDecl, 0, len(raw.Hooks))
	for _, block := range raw.Hooks {
		decl := &config.HookDecl{
			Impl:        block.Impl,
			Name:        block.Name,
			Description: block.Description,
			File:        path,
		}
		if block.Params != nil {
			val, diags := block.Params.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to evaluate params for hook '%s' in %s: %w", block.Impl, path, diags)
			}
			if !val.IsNull() {
				if !val.Type().IsObjectType() && !val.Type().IsMapType() {
					return nil, fmt.Errorf("params for hook '%s' in %s must be an object, got %s",
						block.Impl, path, val.Type().FriendlyName())
				}
				decl.Params = val.AsValueMap()
			}
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// decodeFile parses one HCL file and decodes its body into the target
// schema struct. Any diagnostic is fatal and wrapped with the file path.
func (l *Loader) decodeFile(path string, target any) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	if diags := gohcl.DecodeBody(file.Body, nil, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return nil
}
