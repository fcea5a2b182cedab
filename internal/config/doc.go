// Package config defines the format-agnostic declaration model and the
// loader interface that hides the concrete file format from the core
// registry. The HCL implementation lives in the `hcl` package.
package config
