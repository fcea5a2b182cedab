// Package hcl provides the concrete HCL implementation of the declaration
// loading interface defined in the `config` package. It is responsible for
// all file parsing and HCL-to-model translation.
package hcl
