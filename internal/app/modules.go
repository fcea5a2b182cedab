package app

import (
	"github.com/vk/hookwire/hooks/env_vars"
	"github.com/vk/hookwire/hooks/http_request"
	"github.com/vk/hookwire/hooks/notify"
	"github.com/vk/hookwire/hooks/print"
	"github.com/vk/hookwire/internal/registry"
)

// builtinHooks is the definitive list of all hook packages that are
// compiled into the hookwire binary.
var builtinHooks = []registry.Module{
	&print.Module{},
	&env_vars.Module{},
	&http_request.Module{},
	&notify.Module{},
}
