package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/meshgridgo/internal/node"
)

// Run constructs every node declared in the mesh model, validating names
// and namespaces through the naming engine, and writes the resolved
// addressing to the output writer. All declarations are attempted so the
// user sees every failure in one pass; the returned error joins them.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	if len(a.model.Nodes) == 0 {
		a.logger.Warn("No nodes declared in mesh, nothing to resolve.")
		return nil
	}

	var errs []error
	resolved := 0
	for _, decl := range a.model.Nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		opts := []node.Option{node.WithLogger(a.logger)}
		if decl.NamespaceOverride != nil {
			opts = append(opts, node.WithNamespaceOverride(*decl.NamespaceOverride))
		}

		n, err := node.New(decl.Name, decl.Namespace, opts...)
		if err != nil {
			a.logger.Error("Node declaration rejected.", "node", decl.Name, "error", err)
			errs = append(errs, fmt.Errorf("node %q: %w", decl.Name, err))
			continue
		}

		n.Logger().Info("Node identity resolved.",
			"fqn", n.FullyQualifiedName(),
			"namespace", n.Namespace(),
		)
		fmt.Fprintf(a.outW, "%s\tlogger=%s\tuid=%s\n",
			n.FullyQualifiedName(), n.Identity().LoggerName(), n.UID())
		resolved++
	}

	a.logger.Info("Mesh resolution finished.", "resolved", resolved, "rejected", len(errs))
	if len(errs) > 0 {
		return fmt.Errorf("mesh resolution failed: %w", errors.Join(errs...))
	}
	return nil
}
