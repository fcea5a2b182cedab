// Package registry provides the central manager/hook registration and
// discovery engine.
//
// A Registry is the single context object owning every piece of process-wide
// state: the ManagerRegistry of capability owners, the ConfigRegistry of
// discoverable code roots, and the Catalog of compiled hook implementations.
// Hook packages declare their implementations into the Catalog at startup;
// declaration files under each registry config root decide which of those
// implementations the scope exposes. Discovery probes each root for a
// manager's lookup module, parses it, and links the referenced hooks to the
// manager under that scope.
//
// Discovery is additive and idempotent: a scope is scanned at most once per
// process, re-scanning is a no-op, and nothing is ever rolled back. The
// duplicate-name and linkage invariants are enforced while linking, so a
// broken declaration fails loudly at discovery time instead of silently
// vanishing from the framework.
package registry
