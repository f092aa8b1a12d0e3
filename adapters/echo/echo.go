// Package cmpengineecho provides Echo framework integration for cmpengine.
//
// Mount an engine's HTTP surface onto an Echo instance or group:
//
//	e := echo.New()
//	cmpengineecho.Mount(e, eng)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	cmpengineecho.MountGroup(g, eng, cmpengineecho.WithPath("/blocks/"))
package cmpengineecho

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/cmpengine"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	path string
}

// WithPath sets the URL path prefix for engine routes.
// Defaults to "/_engine/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

func resolve(opts []Option) *options {
	o := &options{path: "/_engine/"}
	for _, opt := range opts {
		opt(o)
	}
	if !strings.HasSuffix(o.path, "/") {
		o.path += "/"
	}
	return o
}

// Mount serves eng's handler on an Echo instance.
//
//	e := echo.New()
//	cmpengineecho.Mount(e, eng, cmpengineecho.WithPath("/c/"))
func Mount(e *echo.Echo, eng *cmpengine.Engine, opts ...Option) {
	o := resolve(opts)
	e.Any(o.path+"*", echo.WrapHandler(strip(o.path, eng.Handler())))
}

// MountGroup serves eng's handler on an Echo group, sharing the group's
// middleware (auth, logging, etc.).
func MountGroup(g *echo.Group, eng *cmpengine.Engine, opts ...Option) {
	o := resolve(opts)
	g.Any(o.path+"*", func(c echo.Context) error {
		prefix := strings.TrimSuffix(c.Path(), "*")
		strip(prefix, eng.Handler()).ServeHTTP(c.Response(), c.Request())
		return nil
	})
}

func strip(prefix string, h http.Handler) http.Handler {
	return http.StripPrefix(strings.TrimSuffix(prefix, "/"), h)
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return cmpengineecho.Render(c, eng.Render(desc))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}

// Page renders a description as a full HTML page.
func Page(c echo.Context, eng *cmpengine.Engine, title string, desc cmpengine.Description) error {
	return Render(c, eng.Page(title, desc))
}
