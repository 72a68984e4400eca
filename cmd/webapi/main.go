package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benji-bou/canopy/core/api"
	"github.com/benji-bou/canopy/core/api/ctrl"
	"github.com/benji-bou/canopy/helper"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "canopy-webapi",
		Usage: "serve canopy layouts over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":8080",
				EnvVars: []string{"ADDR"},
				Usage:   "listen address",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logs",
			},
		},
		Action: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			helper.SetLog(level, helper.WithJSON())
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return api.Listen(ctx, c.String("addr"), slog.Default(), ctrl.NewTree())
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
