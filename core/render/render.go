package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/benji-bou/canopy/core/composite"
	"github.com/benji-bou/canopy/helper"
)

const (
	DefaultLeafPattern      = `{{ repeat .Depth "  " }}I am leaf`
	DefaultCompositePattern = `{{ repeat .Depth "  " }}I am composite. I have {{ .Children }} children`
	DefaultCreatedPattern   = `Hello, I'm child!`
)

type config struct {
	patterns map[composite.EventKind]string
}

type Option = helper.OptionError[config]

func WithLeafPattern(pattern string) Option {
	return withPattern(composite.EventLeaf, pattern)
}

func WithCompositePattern(pattern string) Option {
	return withPattern(composite.EventComposite, pattern)
}

func WithCreatedPattern(pattern string) Option {
	return withPattern(composite.EventCreated, pattern)
}

func withPattern(kind composite.EventKind, pattern string) Option {
	return func(configure *config) error {
		if pattern == "" {
			return fmt.Errorf("empty %s pattern", kind)
		}
		configure.patterns[kind] = pattern
		return nil
	}
}

// TextReporter renders each event as one line on the underlying writer.
// After the first failure every following event is dropped; Err reports it.
type TextReporter struct {
	w   io.Writer
	tpl *template.Template
	err error
}

func New(w io.Writer, opt ...Option) (*TextReporter, error) {
	cfg, err := helper.ConfigureWithError(config{patterns: map[composite.EventKind]string{
		composite.EventLeaf:      DefaultLeafPattern,
		composite.EventComposite: DefaultCompositePattern,
		composite.EventCreated:   DefaultCreatedPattern,
	}}, opt...)
	if err != nil {
		return nil, fmt.Errorf("text reporter initialization: %w", err)
	}
	root := template.New("report").Funcs(sprig.TxtFuncMap())
	for kind, pattern := range cfg.patterns {
		if _, err := root.New(string(kind)).Parse(pattern); err != nil {
			return nil, fmt.Errorf("couldn't parse %s pattern: %w", kind, err)
		}
	}
	return &TextReporter{w: w, tpl: root}, nil
}

func (r *TextReporter) Report(ev composite.Event) {
	if r.err != nil {
		return
	}
	buff := &bytes.Buffer{}
	if err := r.tpl.ExecuteTemplate(buff, string(ev.Kind), ev); err != nil {
		r.err = fmt.Errorf("render %s event of %s: %w", ev.Kind, ev.ID, err)
		return
	}
	buff.WriteByte('\n')
	if _, err := r.w.Write(buff.Bytes()); err != nil {
		r.err = fmt.Errorf("write %s event of %s: %w", ev.Kind, ev.ID, err)
	}
}

func (r *TextReporter) Err() error {
	return r.err
}

// Lines renders a full traversal of root.
func Lines(root composite.Node, opt ...Option) ([]string, error) {
	buff := &bytes.Buffer{}
	r, err := New(buff, opt...)
	if err != nil {
		return nil, err
	}
	root.Operation(r)
	if r.Err() != nil {
		return nil, r.Err()
	}
	return strings.Split(strings.TrimSuffix(buff.String(), "\n"), "\n"), nil
}
