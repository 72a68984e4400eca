package template

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/benji-bou/canopy/core/composite"
	"github.com/benji-bou/canopy/helper/collections/set"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrMissingNode   = errors.New("add action without node")
)

type ActionOp string

const (
	OpAdd       ActionOp = "add"
	OpRemove    ActionOp = "remove"
	OpChild     ActionOp = "child"
	OpOperation ActionOp = "operation"
)

// Action targets the node reached by following Target positions from the
// root. Position is used by remove and child, Node by add.
type Action struct {
	Op       ActionOp  `yaml:"op" json:"op" required:"true" enum:"add,remove,child,operation"`
	Target   []int     `yaml:"target" json:"target,omitempty"`
	Position int       `yaml:"position" json:"position,omitempty"`
	Node     *NodeSpec `yaml:"node" json:"node,omitempty"`
}

// Apply replays every action on root. A failing action is logged and
// collected, then the next one runs.
func (l Layout) Apply(root composite.Node, r composite.Reporter, opt ...BuildOption) []error {
	cfg := newBuildConfig(opt...)
	for _, n := range composite.Walk(root) {
		cfg.ids.Add(n.ID())
	}
	var errs []error
	for i, action := range l.Actions {
		if err := action.apply(root, r, cfg); err != nil {
			slog.Warn("action failed, continuing", "object", "Layout", "function", "Apply", "index", i, "op", action.Op, "error", err)
			errs = append(errs, fmt.Errorf("action %d (%s): %w", i, action.Op, err))
		}
	}
	return errs
}

func (a Action) apply(root composite.Node, r composite.Reporter, cfg buildConfig) error {
	target, err := composite.Find(root, a.Target...)
	if err != nil {
		return err
	}
	switch a.Op {
	case OpAdd:
		if a.Node == nil {
			return ErrMissingNode
		}
		scratch := cfg
		scratch.ids = set.New(cfg.ids.Values()...)
		child, err := a.Node.build(scratch)
		if err != nil {
			return err
		}
		if err := target.Add(child); err != nil {
			return err
		}
		for _, n := range composite.Walk(child) {
			cfg.ids.Add(n.ID())
		}
		return nil
	case OpRemove:
		return target.Remove(a.Position)
	case OpChild:
		child, err := target.Child(a.Position)
		if err != nil {
			return err
		}
		slog.Info("child found", "object", "Layout", "function", "Apply", "target", target.Name(), "position", a.Position, "child", child.Name())
		return nil
	case OpOperation:
		target.Operation(r)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, a.Op)
}
