package site

import (
	"net/http"

	"github.com/prestonhollow/detailing/internal/services/web/platform/httpx"
	"github.com/prestonhollow/detailing/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)

	mux.HandleFunc(http.MethodPost+" "+routepath.SliderPattern, h.handleSlider)
	mux.HandleFunc(http.MethodGet+" "+routepath.SliderPattern, httpx.MethodNotAllowed(http.MethodPost))

	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
