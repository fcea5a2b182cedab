package registry

import (
	"fmt"
)

// ManagerNotFoundError reports a lookup for a manager name that is not
// registered. It is a recoverable condition suitable for user-facing output.
type ManagerNotFoundError struct {
	Name    string
	Choices []string
}

func (e *ManagerNotFoundError) Error() string {
	return fmt.Sprintf("'%s' manager does not exist. Choices are: %v", e.Name, e.Choices)
}

// ManagerAlreadyRegisteredError reports a second registration under an
// already-taken manager name. This is a fatal declaration error.
type ManagerAlreadyRegisteredError struct {
	Name string
}

func (e *ManagerAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("manager names aren't unique. Duplicates: %s", e.Name)
}

// ManagerLookupError reports a concrete hook declaration whose manager name
// does not resolve to a registered manager. This is a fatal declaration
// error surfaced at declaration time, not at use time.
type ManagerLookupError struct {
	Hook    string
	Manager string
	Choices []string
}

func (e *ManagerLookupError) Error() string {
	return fmt.Sprintf("'%s' hook is linked to unknown manager '%s'. Choices are: %v",
		e.Hook, e.Manager, e.Choices)
}

// HookNotFoundError reports a query for a hook name that is not registered
// in the queried scope. It represents a normal "unknown command" condition
// and must be presentable as a clean message.
type HookNotFoundError struct {
	Name    string
	Manager string
	Scope   string
}

func (e *HookNotFoundError) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("'%s' hook was not found in '%s' manager", e.Name, e.Manager)
	}
	return fmt.Sprintf("'%s' hook was not found in '%s' manager for scope '%s'", e.Name, e.Manager, e.Scope)
}

// DuplicateHookError reports two concrete hooks claiming the same name
// within the same (manager, scope) pair. Both implementation identities are
// carried so the diagnostic can name the colliding declarations.
type DuplicateHookError struct {
	Name     string
	Manager  string
	Scope    string
	Existing string
	Incoming string
}

func (e *DuplicateHookError) Error() string {
	return fmt.Sprintf("hook name '%s' is already registered in scope '%s' of manager '%s': declared by both '%s' and '%s'",
		e.Name, e.Scope, e.Manager, e.Existing, e.Incoming)
}

// ConfigNotFoundError reports a lookup for a registry config label that is
// not registered for the given kind.
type ConfigNotFoundError struct {
	Kind    Kind
	Label   string
	Choices []string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("'%s' %s config does not exist. Choices are: %v", e.Label, e.Kind, e.Choices)
}
