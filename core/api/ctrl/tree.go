package ctrl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/benji-bou/canopy/core"
	"github.com/benji-bou/canopy/core/api"
	"github.com/benji-bou/canopy/core/graph"
	"github.com/benji-bou/canopy/core/render"
	"github.com/benji-bou/canopy/core/template"
	"github.com/benji-bou/canopy/helper"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	maxLayoutSize  = 1 << 20
	maxLayoutLimit = "1M"
)

func NewTree() api.Ctrler {
	return Tree{}
}

// Tree runs layouts posted in the request body. Query parameters become
// layout variables. The body is untrusted: includes are rejected and
// interpolation cannot read the environment.
type Tree struct{}

type RunResponse struct {
	Output []string `json:"output"`
	Errors []string `json:"errors"`
}

func (t Tree) Route() []helper.SrvOption {
	return []helper.SrvOption{
		helper.WithGroup("/tree",
			helper.WithMiddleware(middleware.BodyLimit(maxLayoutLimit)),
			helper.WithPost("/run", t.run),
			helper.WithPost("/dot", t.dot),
			helper.WithGet("/schema", t.schema),
		),
	}
}

func readLayout(body io.ReadCloser) ([]byte, error) {
	defer body.Close()
	content, err := io.ReadAll(io.LimitReader(body, maxLayoutSize+1))
	if err != nil {
		return nil, fmt.Errorf("read layout body: %w", err)
	}
	if len(content) > maxLayoutSize {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("layout larger than %d bytes", maxLayoutSize))
	}
	return content, nil
}

func (Tree) layoutFromBody(c echo.Context) (template.Layout, error) {
	content, err := readLayout(c.Request().Body)
	if err != nil {
		return template.Layout{}, err
	}
	variables := make(map[string]any)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			variables[key] = values[0]
		}
	}
	return template.New(content, template.WithVariables(variables), template.WithoutIncludes(), template.WithHermeticFuncs())
}

// badRequest keeps the status of errors that already carry one.
func badRequest(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func (t Tree) run(c echo.Context) error {
	tpl, err := t.layoutFromBody(c)
	if err != nil {
		return badRequest(err)
	}
	buff := &bytes.Buffer{}
	reporter, err := render.New(buff)
	if err != nil {
		slog.Error("text reporter unavailable", "object", "Tree", "function", "run", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	_, errs, err := core.Run(tpl, reporter)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := reporter.Err(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, RunResponse{
		Output: strings.Split(strings.TrimSuffix(buff.String(), "\n"), "\n"),
		Errors: helper.ErrorStrings(errs),
	})
}

func (t Tree) dot(c echo.Context) error {
	tpl, err := t.layoutFromBody(c)
	if err != nil {
		return badRequest(err)
	}
	root, err := tpl.Build()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	tg, err := graph.New(root)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	buff := &bytes.Buffer{}
	if err := tg.DrawGraph(buff); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "text/vnd.graphviz", buff.Bytes())
}

func (Tree) schema(c echo.Context) error {
	raw, err := template.Schema()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSONBlob(http.StatusOK, raw)
}
