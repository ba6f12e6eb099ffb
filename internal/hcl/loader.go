package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/meshgridgo/internal/config"
	"github.com/vk/meshgridgo/internal/ctxlog"
	"github.com/vk/meshgridgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL mesh loader. The vars map is exposed to mesh
// expressions as the `var` object, e.g. `namespace = var.fleet_ns`.
func NewLoader(vars map[string]string) *Loader {
	ctyVars := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		ctyVars[k] = cty.StringVal(v)
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}
	if len(ctyVars) > 0 {
		evalCtx.Variables["var"] = cty.ObjectVal(ctyVars)
	}
	return &Loader{evalCtx: evalCtx}
}

// Load orchestrates the HCL mesh loading process across all given paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := &config.Model{}
	parser := hclparse.NewParser()
	declared := make(map[string]string) // node label -> file, for duplicate detection

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse mesh file %s: %w", file, diags)
		}

		var mesh schema.Mesh
		diags = gohcl.DecodeBody(hclFile.Body, l.evalCtx, &mesh)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode mesh file %s: %w", file, diags)
		}

		for _, n := range mesh.Nodes {
			if prev, dup := declared[n.Name]; dup {
				return nil, fmt.Errorf("node %q declared in both %s and %s", n.Name, prev, file)
			}
			declared[n.Name] = file

			decl, err := l.translateNode(n)
			if err != nil {
				return nil, fmt.Errorf("in mesh file %s: %w", file, err)
			}
			model.Nodes = append(model.Nodes, decl)
		}
	}

	logger.Debug("HCL loading complete.", "nodes", len(model.Nodes))
	return model, nil
}

// translateNode converts an HCL node schema into the agnostic model,
// evaluating namespace expressions against the loader's eval context.
func (l *Loader) translateNode(n *schema.Node) (*config.NodeDecl, error) {
	decl := &config.NodeDecl{Name: n.Name}

	ns, present, err := l.evalString(n.Namespace)
	if err != nil {
		return nil, fmt.Errorf("node %q: namespace: %w", n.Name, err)
	}
	if present {
		decl.Namespace = ns
	}

	if n.Remap != nil {
		override, present, err := l.evalString(n.Remap.Namespace)
		if err != nil {
			return nil, fmt.Errorf("node %q: remap namespace: %w", n.Name, err)
		}
		if present {
			decl.NamespaceOverride = &override
		}
	}

	return decl, nil
}

// evalString evaluates an optional string-typed attribute expression. The
// second result reports whether the attribute was present at all.
func (l *Loader) evalString(expr hcl.Expression) (string, bool, error) {
	if expr == nil {
		return "", false, nil
	}
	val, diags := expr.Value(l.evalCtx)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() {
		return "", false, nil
	}
	if val.Type() != cty.String {
		return "", false, fmt.Errorf("expected a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), true, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && filepath.Ext(p) == ".hcl" {
					if _, wasSeen := seen[p]; !wasSeen {
						allFiles = append(allFiles, p)
						seen[p] = struct{}{}
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else if filepath.Ext(path) == ".hcl" {
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
