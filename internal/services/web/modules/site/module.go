// Package site serves the marketing page and its gallery slider fragments.
package site

import (
	"net/http"
	"time"

	"github.com/prestonhollow/detailing/internal/services/web/content"
	module "github.com/prestonhollow/detailing/internal/services/web/module"
	"github.com/prestonhollow/detailing/internal/services/web/routepath"
	"github.com/prestonhollow/detailing/internal/services/web/widget"
)

// Config carries the site module's dependencies.
type Config struct {
	// Source supplies the current catalog. Nil serves built-in defaults.
	Source *content.Source
	// Reporter receives widget attach failures. Nil drops them.
	Reporter widget.FailureReporter
	// Now defaults to time.Now.
	Now func() time.Time
}

// Module provides the public site routes.
type Module struct {
	cfg Config
}

// New returns a site module.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "site" }

// Mount wires site route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.cfg))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
