package template

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/benji-bou/canopy/helper"
	"github.com/benji-bou/canopy/helper/collections/set"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyLayout     = errors.New("layout has no root")
	ErrIncludeCycle    = errors.New("include cycle")
	ErrIncludeDisabled = errors.New("includes are disabled")
	ErrInvalidInclude  = errors.New("include cannot declare kind or children")
)

// Layout is a YAML build script: a tree description plus actions replayed
// on the built tree.
type Layout struct {
	Name        string         `yaml:"name" json:"name,omitempty"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Version     string         `yaml:"version" json:"version,omitempty"`
	Author      string         `yaml:"author" json:"author,omitempty"`
	Root        *NodeSpec      `yaml:"root" json:"root" required:"true"`
	Actions     []Action       `yaml:"actions" json:"actions,omitempty"`
	Variables   map[string]any `yaml:"-" json:"-"`
}

type layoutConfig struct {
	variables       map[string]any
	baseDir         string
	disableIncludes bool
	hermetic        bool
	stack           *set.Set[string]
}

type Option = helper.Option[layoutConfig]

func WithVariables(variables map[string]any) Option {
	return func(configure *layoutConfig) {
		configure.variables = variables
	}
}

// WithBaseDir resolves relative includes of a raw layout against dir.
func WithBaseDir(dir string) Option {
	return func(configure *layoutConfig) {
		configure.baseDir = dir
	}
}

// WithoutIncludes rejects any include, for layouts coming from untrusted input.
func WithoutIncludes() Option {
	return func(configure *layoutConfig) {
		configure.disableIncludes = true
	}
}

// WithHermeticFuncs restricts interpolation to sprig functions that do not
// read the environment, for layouts coming from untrusted input.
func WithHermeticFuncs() Option {
	return func(configure *layoutConfig) {
		configure.hermetic = true
	}
}

func withStack(stack *set.Set[string]) Option {
	return func(configure *layoutConfig) {
		configure.stack = stack
	}
}

func configure(opt ...Option) layoutConfig {
	cfg := helper.Configure(layoutConfig{}, opt...)
	if cfg.variables == nil {
		cfg.variables = map[string]any{}
	}
	if cfg.stack == nil {
		cfg.stack = set.New[string]()
	}
	return cfg
}

func NewFile(path string, opt ...Option) (Layout, error) {
	cfg := configure(opt...)
	if !filepath.IsAbs(path) && cfg.baseDir != "" {
		path = filepath.Join(cfg.baseDir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Layout{}, fmt.Errorf("resolve layout path %s: %w", path, err)
	}
	if cfg.stack.Contains(abs) {
		chain := slices.Collect(helper.IterMap(cfg.stack.All(), filepath.Base))
		chain = append(chain, filepath.Base(abs))
		return Layout{}, fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(chain, " -> "))
	}
	content, err := os.ReadFile(abs) // #nosec G304
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	cfg.stack.Add(abs)
	defer cfg.stack.Remove(abs)
	cfg.baseDir = filepath.Dir(abs)
	return newLayout(content, cfg)
}

func New(raw []byte, opt ...Option) (Layout, error) {
	return newLayout(raw, configure(opt...))
}

func newLayout(raw []byte, cfg layoutConfig) (Layout, error) {
	funcs := sprig.TxtFuncMap()
	if cfg.hermetic {
		funcs = sprig.HermeticTxtFuncMap()
	}
	raw, err := interpolate(raw, cfg.variables, funcs)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing layout, %w", err)
	}
	l := Layout{Variables: cfg.variables}
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return Layout{}, fmt.Errorf("decoding layout yaml: %w", err)
	}
	if l.Root == nil {
		return Layout{}, ErrEmptyLayout
	}
	if err := l.Root.resolveIncludes(cfg); err != nil {
		return Layout{}, fmt.Errorf("root: %w", err)
	}
	for i := range l.Actions {
		if l.Actions[i].Node == nil {
			continue
		}
		if err := l.Actions[i].Node.resolveIncludes(cfg); err != nil {
			return Layout{}, fmt.Errorf("action %d: %w", i, err)
		}
	}
	return l, nil
}

func InterpolateVariable(raw []byte, variables map[string]any) ([]byte, error) {
	return interpolate(raw, variables, sprig.TxtFuncMap())
}

func interpolate(raw []byte, variables map[string]any, funcs template.FuncMap) ([]byte, error) {
	goTpl, err := template.New("LayoutInterpolation").Funcs(funcs).Parse(string(raw))
	if err != nil {
		return raw, fmt.Errorf("as go template failed, %w", err)
	}
	interpolated := &bytes.Buffer{}
	if err := goTpl.Execute(interpolated, variables); err != nil {
		return nil, fmt.Errorf("executing variable interpolation, %w", err)
	}
	slog.Debug("layout interpolated", "object", "Layout", "function", "InterpolateVariable", "size", interpolated.Len())
	return interpolated.Bytes(), nil
}
