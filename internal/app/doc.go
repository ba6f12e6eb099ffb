// Package app contains the core application logic: loading a mesh
// definition, constructing and validating every declared node identity, and
// reporting the resolved addressing. It is decoupled from any specific
// entrypoint like a CLI.
package app
