// Package config defines the format-agnostic model of a mesh definition
// and the loader interface a concrete format (HCL today) implements. The
// app layer consumes only this model; it never sees HCL types.
package config
