package composite

import (
	"github.com/benji-bou/canopy/helper"
	"github.com/google/uuid"
)

// Node is the capability set shared by Leaf and Composite. The interface is
// sealed: operate keeps implementations inside this package so traversal can
// carry the depth without exposing it.
//
// A Composite owns its children exclusively. Adding the same node under two
// parents, or an ancestor under its descendant, is not detected here and
// makes Operation diverge.
type Node interface {
	ID() string
	Name() string
	IsLeaf() bool

	Add(child Node) error
	Remove(position int) error
	Child(position int) (Node, error)
	Children() []Node

	// Operation reports the node then, for a Composite, every child in
	// insertion order (depth-first, pre-order). A nil Reporter discards.
	Operation(r Reporter)

	operate(r Reporter, depth int)
}

type nodeConfig struct {
	id       string
	name     string
	reporter Reporter
}

type Option = helper.Option[nodeConfig]

func WithID(id string) Option {
	return func(configure *nodeConfig) {
		configure.id = id
	}
}

func WithName(name string) Option {
	return func(configure *nodeConfig) {
		configure.name = name
	}
}

// WithReporter receives the EventCreated announcement of a Leaf.
func WithReporter(r Reporter) Option {
	return func(configure *nodeConfig) {
		configure.reporter = r
	}
}

func newConfig(defaultName string, opt ...Option) nodeConfig {
	cfg := helper.Configure(nodeConfig{name: defaultName}, opt...)
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.name == "" {
		cfg.name = defaultName
	}
	return cfg
}

func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Composite:
		return v == nil
	}
	return false
}
