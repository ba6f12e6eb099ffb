// Package schema defines the HCL-facing structures of a mesh-definition
// file. These structs are decoded with gohcl and then translated into the
// format-agnostic model in the config package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Remap represents the optional `remap` block of a node declaration. A
// namespace remap, when present, supersedes the declared namespace entirely.
type Remap struct {
	Namespace hcl.Expression `hcl:"namespace,optional"`
}

// Node represents a `node` block from a mesh file: one addressable entity
// to be constructed and validated by the naming engine.
type Node struct {
	Name      string         `hcl:"name,label"`
	Namespace hcl.Expression `hcl:"namespace,optional"`
	Remap     *Remap         `hcl:"remap,block"`
}

// Mesh represents the top-level structure of a mesh file, containing all
// declared nodes.
type Mesh struct {
	Nodes []*Node  `hcl:"node,block"`
	Body  hcl.Body `hcl:",remain"`
}
