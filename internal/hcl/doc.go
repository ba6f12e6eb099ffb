// Package hcl provides the concrete HCL implementation of the
// mesh-definition loader defined in the `config` package. It is responsible
// for file discovery, HCL parsing, `var.*` expression evaluation, and
// translation of schema structs into the agnostic model.
package hcl
