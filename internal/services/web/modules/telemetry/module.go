// Package telemetry accepts browser reports about booking widget failures.
package telemetry

import (
	"net/http"

	"github.com/prestonhollow/detailing/internal/services/web/content"
	module "github.com/prestonhollow/detailing/internal/services/web/module"
	"github.com/prestonhollow/detailing/internal/services/web/routepath"
	"github.com/prestonhollow/detailing/internal/services/web/widget"
	"golang.org/x/time/rate"
)

const (
	// DefaultRate is the sustained report rate per second.
	DefaultRate = 1
	// DefaultBurst is the report burst size.
	DefaultBurst = 10
)

// Config carries the telemetry module's dependencies.
type Config struct {
	// Source identifies the booking script reports may name.
	Source *content.Source
	// Reporter records accepted reports. Nil accepts and drops them.
	Reporter widget.FailureReporter
	// Rate and Burst size the report token bucket. Zero values use the
	// defaults.
	Rate  float64
	Burst int
}

// Module provides the telemetry routes.
type Module struct {
	cfg Config
}

// New returns a telemetry module.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "telemetry" }

// Mount wires telemetry route handlers. Each mount owns its own limiter.
func (m Module) Mount() (module.Mount, error) {
	limit, burst := rate.Limit(m.cfg.Rate), m.cfg.Burst
	if limit <= 0 {
		limit = DefaultRate
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	mux := http.NewServeMux()
	h := newHandlers(m.cfg.Source, m.cfg.Reporter, rate.NewLimiter(limit, burst))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.TelemetryPrefix, Handler: mux}, nil
}
