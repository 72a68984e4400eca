package core

import (
	"fmt"
	"log/slog"

	"github.com/benji-bou/canopy/core/composite"
	"github.com/benji-bou/canopy/core/template"
)

// Run builds the layout tree, replays its actions and finally traverses the
// tree with r. Action failures do not stop the run: they are returned
// alongside the tree. The error is only set when the tree cannot be built.
func Run(tpl template.Layout, r composite.Reporter, opt ...template.BuildOption) (composite.Node, []error, error) {
	root, err := tpl.Build(opt...)
	if err != nil {
		return nil, nil, fmt.Errorf("run layout: %w", err)
	}
	errs := tpl.Apply(root, r, opt...)
	root.Operation(r)
	slog.Debug("layout run", "object", "core", "function", "Run", "layout", tpl.Name, "nodes", composite.Count(root), "failedActions", len(errs))
	return root, errs, nil
}
