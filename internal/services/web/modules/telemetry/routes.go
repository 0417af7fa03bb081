package telemetry

import (
	"net/http"

	"github.com/prestonhollow/detailing/internal/services/web/platform/httpx"
	"github.com/prestonhollow/detailing/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.WidgetFailures, h.handleWidgetFailure)
	mux.HandleFunc(routepath.WidgetFailures, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.TelemetryPrefix, h.handleNotFound)
}
