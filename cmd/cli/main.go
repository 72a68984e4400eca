package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/benji-bou/canopy/helper"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "canopy",
		Usage: "canopy builds composite trees from layouts and walks them",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logs",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "log format, text or json",
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			switch c.String("log-format") {
			case "text":
				helper.SetLog(level, helper.WithWriter(c.App.ErrWriter))
			case "json":
				helper.SetLog(level, helper.WithJSON(), helper.WithWriter(c.App.ErrWriter))
			default:
				return fmt.Errorf("unknown log format %q", c.String("log-format"))
			}
			return nil
		},
		Commands: []*cli.Command{
			runCommand(),
			demoCommand(),
			dotCommand(),
			schemaCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
