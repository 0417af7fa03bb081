// Package modules lists the feature modules the web service mounts.
package modules

import (
	"time"

	"github.com/prestonhollow/detailing/internal/services/web/content"
	module "github.com/prestonhollow/detailing/internal/services/web/module"
	"github.com/prestonhollow/detailing/internal/services/web/modules/site"
	"github.com/prestonhollow/detailing/internal/services/web/modules/telemetry"
	"github.com/prestonhollow/detailing/internal/services/web/widget"
)

// Dependencies carries shared inputs for module construction.
type Dependencies struct {
	Source      *content.Source
	Reporter    widget.FailureReporter
	ReportRate  float64
	ReportBurst int
	Now         func() time.Time
}

// Default returns the modules served by the web service.
func Default(deps Dependencies) []module.Module {
	return []module.Module{
		site.New(site.Config{
			Source:   deps.Source,
			Reporter: deps.Reporter,
			Now:      deps.Now,
		}),
		telemetry.New(telemetry.Config{
			Source:   deps.Source,
			Reporter: deps.Reporter,
			Rate:     deps.ReportRate,
			Burst:    deps.ReportBurst,
		}),
	}
}
