package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/benji-bou/canopy/helper"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Ctrler interface {
	Route() []helper.SrvOption
}

func options(logger *slog.Logger, ctrl ...Ctrler) []helper.SrvOption {
	optSrv := []helper.SrvOption{
		helper.WithLog(logger),
		helper.WithMiddleware(middleware.CORS()),
		helper.WithGet("/ping", func(c echo.Context) error {
			return c.String(http.StatusOK, "pong")
		}),
	}
	for _, c := range ctrl {
		optSrv = append(optSrv, c.Route()...)
	}
	return optSrv
}

// Handler exposes the controllers without binding a listener.
func Handler(logger *slog.Logger, ctrl ...Ctrler) http.Handler {
	return helper.NewServer(options(logger, ctrl...)...)
}

func Listen(ctx context.Context, addr string, logger *slog.Logger, ctrl ...Ctrler) error {
	return helper.RunServer(append([]helper.SrvOption{
		helper.WithContext(ctx),
		helper.WithAddr(addr),
	}, options(logger, ctrl...)...)...)
}
