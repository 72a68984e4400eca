package template

import (
	"errors"
	"fmt"
	"maps"

	"github.com/benji-bou/canopy/core/composite"
	"github.com/benji-bou/canopy/helper"
	"github.com/benji-bou/canopy/helper/collections/set"
)

var (
	ErrUnknownKind      = errors.New("unknown node kind")
	ErrLeafWithChildren = errors.New("leaf cannot declare children")
	ErrDuplicateID      = errors.New("duplicate node id")
)

type Kind string

const (
	KindLeaf      Kind = "leaf"
	KindComposite Kind = "composite"
)

// NodeSpec describes one node. An empty Kind means composite when Children
// is set and leaf otherwise. Include replaces the spec with the root of
// another layout file; only Name and Variables may accompany it.
type NodeSpec struct {
	Kind      Kind           `yaml:"kind" json:"kind,omitempty" enum:"leaf,composite"`
	ID        string         `yaml:"id" json:"id,omitempty"`
	Name      string         `yaml:"name" json:"name,omitempty"`
	Children  []NodeSpec     `yaml:"children" json:"children,omitempty"`
	Include   string         `yaml:"include" json:"include,omitempty"`
	Variables map[string]any `yaml:"variables" json:"variables,omitempty"`
}

func (s NodeSpec) resolveKind() (Kind, error) {
	switch s.Kind {
	case "":
		if len(s.Children) > 0 {
			return KindComposite, nil
		}
		return KindLeaf, nil
	case KindLeaf:
		if len(s.Children) > 0 {
			return "", fmt.Errorf("%w: %s", ErrLeafWithChildren, s.Name)
		}
		return KindLeaf, nil
	case KindComposite:
		return KindComposite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}

func (s *NodeSpec) resolveIncludes(cfg layoutConfig) error {
	if s.Include == "" {
		for i := range s.Children {
			if err := s.Children[i].resolveIncludes(cfg); err != nil {
				return fmt.Errorf("child %d: %w", i, err)
			}
		}
		return nil
	}
	if cfg.disableIncludes {
		return fmt.Errorf("%w: %s", ErrIncludeDisabled, s.Include)
	}
	if s.Kind != "" || len(s.Children) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInclude, s.Include)
	}
	variables := maps.Clone(cfg.variables)
	maps.Copy(variables, s.Variables)
	opts := []Option{WithVariables(variables), WithBaseDir(cfg.baseDir), withStack(cfg.stack)}
	if cfg.hermetic {
		opts = append(opts, WithHermeticFuncs())
	}
	included, err := NewFile(s.Include, opts...)
	if err != nil {
		return fmt.Errorf("include %s: %w", s.Include, err)
	}
	name := s.Name
	*s = *included.Root
	if name != "" {
		s.Name = name
	}
	return nil
}

type buildConfig struct {
	reporter composite.Reporter
	ids      *set.Set[string]
}

type BuildOption = helper.Option[buildConfig]

// WithReporter receives the creation announcement of every built leaf.
func WithReporter(r composite.Reporter) BuildOption {
	return func(configure *buildConfig) {
		configure.reporter = r
	}
}

func newBuildConfig(opt ...BuildOption) buildConfig {
	cfg := helper.Configure(buildConfig{}, opt...)
	cfg.ids = set.New[string]()
	return cfg
}

// Build creates a fresh tree from the spec.
func (s NodeSpec) Build(opt ...BuildOption) (composite.Node, error) {
	return s.build(newBuildConfig(opt...))
}

func (s NodeSpec) build(cfg buildConfig) (composite.Node, error) {
	kind, err := s.resolveKind()
	if err != nil {
		return nil, err
	}
	if s.ID != "" {
		if cfg.ids.Contains(s.ID) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		cfg.ids.Add(s.ID)
	}
	opts := []composite.Option{composite.WithID(s.ID), composite.WithName(s.Name), composite.WithReporter(cfg.reporter)}
	if kind == KindLeaf {
		return composite.NewLeaf(opts...), nil
	}
	c := composite.New(opts...)
	for i, childSpec := range s.Children {
		child, err := childSpec.build(cfg)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		if err := c.Add(child); err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
	}
	return c, nil
}

func (l Layout) Build(opt ...BuildOption) (composite.Node, error) {
	if l.Root == nil {
		return nil, ErrEmptyLayout
	}
	root, err := l.Root.Build(opt...)
	if err != nil {
		return nil, fmt.Errorf("build layout %s: %w", l.Name, err)
	}
	return root, nil
}
