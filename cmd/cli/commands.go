package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/benji-bou/canopy/core"
	"github.com/benji-bou/canopy/core/composite"
	"github.com/benji-bou/canopy/core/graph"
	"github.com/benji-bou/canopy/core/render"
	"github.com/benji-bou/canopy/core/template"
	"github.com/urfave/cli/v2"
)

func layoutFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "layout",
		Aliases:  []string{"l"},
		Usage:    "layout file describing the tree",
		Required: true,
	}
}

func varFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "var",
		Usage: "layout variable as key=value, repeatable",
	}
}

func parseVariables(raw []string) (map[string]any, error) {
	variables := make(map[string]any, len(raw))
	for _, kv := range raw {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid variable %q, expected key=value", kv)
		}
		variables[key] = value
	}
	return variables, nil
}

func loadLayout(c *cli.Context) (template.Layout, error) {
	variables, err := parseVariables(c.StringSlice("var"))
	if err != nil {
		return template.Layout{}, err
	}
	tpl, err := template.NewFile(c.String("layout"), template.WithVariables(variables))
	if err != nil {
		return template.Layout{}, fmt.Errorf("load layout: %w", err)
	}
	return tpl, nil
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "build a layout, replay its actions and print the traversal",
		Flags: []cli.Flag{
			layoutFlag(),
			varFlag(),
			&cli.BoolFlag{Name: "announce", Usage: "print leaf creation announcements"},
			&cli.StringFlag{Name: "leaf-pattern", Value: render.DefaultLeafPattern, Usage: "go template rendering a leaf"},
			&cli.StringFlag{Name: "composite-pattern", Value: render.DefaultCompositePattern, Usage: "go template rendering a composite"},
		},
		Action: func(c *cli.Context) error {
			tpl, err := loadLayout(c)
			if err != nil {
				return err
			}
			reporter, err := render.New(c.App.Writer,
				render.WithLeafPattern(c.String("leaf-pattern")),
				render.WithCompositePattern(c.String("composite-pattern")),
			)
			if err != nil {
				return err
			}
			opts := []template.BuildOption{}
			if c.Bool("announce") {
				opts = append(opts, template.WithReporter(reporter))
			}
			_, errs, err := core.Run(tpl, reporter, opts...)
			if err != nil {
				return err
			}
			if len(errs) > 0 {
				slog.Info("run completed with failed actions", "layout", tpl.Name, "failed", len(errs))
			}
			return reporter.Err()
		},
	}
}

// demoCommand replays the reference scenario: two leaves under a root, two
// invalid positions reported without stopping, then the traversal.
func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "run the built-in composite demonstration",
		Action: func(c *cli.Context) error {
			w := c.App.Writer
			reporter, err := render.New(w)
			if err != nil {
				return err
			}
			root := composite.New(composite.WithName("root"))
			for range 2 {
				if err := root.Add(composite.NewLeaf(composite.WithReporter(reporter))); err != nil {
					return err
				}
			}
			fmt.Fprintf(w, "children: %d\n", root.Len())
			if _, err := root.Child(5); err != nil {
				slog.Debug("get child failed, continuing", "function", "demo", "error", err)
				fmt.Fprintln(w, err)
			}
			if err := root.Remove(5); err != nil {
				slog.Debug("remove child failed, continuing", "function", "demo", "error", err)
				fmt.Fprintln(w, err)
			}
			root.Operation(reporter)
			return reporter.Err()
		},
	}
}

func dotCommand() *cli.Command {
	return &cli.Command{
		Name:  "dot",
		Usage: "write the layout tree as a graphviz DOT graph",
		Flags: []cli.Flag{
			layoutFlag(),
			varFlag(),
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file, stdout when empty"},
		},
		Action: func(c *cli.Context) error {
			tpl, err := loadLayout(c)
			if err != nil {
				return err
			}
			root, err := tpl.Build()
			if err != nil {
				return err
			}
			tg, err := graph.New(root)
			if err != nil {
				return err
			}
			output := c.String("output")
			if output == "" {
				return tg.DrawGraph(c.App.Writer)
			}
			file, err := os.Create(output) // #nosec G304
			if err != nil {
				return fmt.Errorf("create dot output: %w", err)
			}
			defer file.Close()
			return tg.DrawGraph(file)
		},
	}
}

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "print the JSON schema of layout files",
		Action: func(c *cli.Context) error {
			raw, err := template.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, string(raw))
			return err
		},
	}
}
