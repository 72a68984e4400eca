package helper

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
)

const (
	shutdownTimeout time.Duration = 10 * time.Second
	defaultAddr                   = ":8080"
)

type RouteConfigurable interface {
	Add(method, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	Group(prefix string, middleware ...echo.MiddlewareFunc) (sg *echo.Group)
	Use(middleware ...echo.MiddlewareFunc)
}

type SrvOption func(e RouteConfigurable)

type Srv struct {
	*echo.Echo
	Addr string
	ctx  context.Context
}

func shutdown(e *echo.Echo) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(ctx)
}

// NewServer configures an echo instance without starting it.
func NewServer(opt ...SrvOption) *Srv {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Pre(middleware.RemoveTrailingSlash())

	srv := &Srv{Echo: e, Addr: defaultAddr, ctx: context.Background()}
	for _, o := range opt {
		if o != nil {
			o(srv)
		}
	}
	return srv
}

// RunServer serves until the context given with WithContext is done or the
// listener fails.
func RunServer(opt ...SrvOption) (err error) {
	srv := NewServer(opt...)
	defer func(e *echo.Echo) {
		if errShutdown := shutdown(e); err == nil {
			err = errShutdown
		}
	}(srv.Echo)
	errCServer := make(chan error, 1)
	go func() {
		defer close(errCServer)
		slog.Info("http server listening", "addr", srv.Addr)
		if errStart := srv.Start(srv.Addr); errStart != nil {
			errCServer <- errStart
		}
	}()
	select {
	case <-srv.ctx.Done():
		return nil
	case err = <-errCServer:
		return err
	}
}

func WithContext(ctx context.Context) SrvOption {
	return func(e RouteConfigurable) {
		if srv, isSrv := e.(*Srv); isSrv {
			srv.ctx = ctx
		}
	}
}

// WithLog logs every request except /ping through slog-echo.
func WithLog(logger *slog.Logger) SrvOption {
	return func(e RouteConfigurable) {
		if logger == nil {
			logger = NewLogger(os.Stdout, slog.LevelInfo, true)
		}
		config := slogecho.Config{
			DefaultLevel:       slog.LevelInfo,
			ClientErrorLevel:   slog.LevelWarn,
			ServerErrorLevel:   slog.LevelError,
			WithRequestHeader:  false,
			WithRequestBody:    true,
			WithResponseHeader: false,
			WithResponseBody:   false,
			Filters:            []slogecho.Filter{slogecho.IgnorePathPrefix("/ping")},
		}
		e.Use(slogecho.NewWithConfig(logger, config))
	}
}

func WithGroup(grouppath string, opt ...SrvOption) SrvOption {
	return func(e RouteConfigurable) {
		g := e.Group(grouppath)
		for _, o := range opt {
			o(g)
		}
	}
}

func WithMiddleware(m ...echo.MiddlewareFunc) SrvOption {
	return func(e RouteConfigurable) {
		e.Use(m...)
	}
}

func WithGet(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) SrvOption {
	return func(e RouteConfigurable) {
		e.GET(path, h, m...)
	}
}

func WithPost(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) SrvOption {
	return func(e RouteConfigurable) {
		e.POST(path, h, m...)
	}
}

func WithAddr(addr string) SrvOption {
	return func(e RouteConfigurable) {
		if srv, isSrv := e.(*Srv); isSrv {
			srv.Addr = addr
			return
		}
		slog.Warn("cannot set Addr on a route group", "addr", addr)
	}
}
