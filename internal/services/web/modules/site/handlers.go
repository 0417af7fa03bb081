package site

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/prestonhollow/detailing/internal/platform/i18n"
	apperrors "github.com/prestonhollow/detailing/internal/services/web/platform/errors"
	"github.com/prestonhollow/detailing/internal/services/web/platform/httpx"
	"github.com/prestonhollow/detailing/internal/services/web/templates"
)

// maxSliderFormBytes bounds the slider form body.
const maxSliderFormBytes = 4 << 10

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := i18n.ResolveLocalizer(w, r)
	catalog := h.service.catalog()
	page := h.service.pageContext(r, loc, lang, catalog)
	view := h.service.home(httpx.RequestContext(r), page, catalog)
	templ.Handler(templates.HomePage(view)).ServeHTTP(w, r)
}

func (h handlers) handleSlider(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSliderFormBytes)
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "invalid slider form"))
		return
	}
	view, ok := h.service.sliderView(r.PathValue("sliderID"), r.PostFormValue("instance"), r.PostFormValue("position"))
	if !ok {
		if httpx.IsHTMXRequest(r) {
			httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "slider not found"))
			return
		}
		h.handleNotFound(w, r)
		return
	}
	loc, _ := i18n.ResolveLocalizer(w, r)
	templ.Handler(templates.Slider(loc, view)).ServeHTTP(w, r)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	loc, lang := i18n.ResolveLocalizer(w, r)
	page := h.service.pageContext(r, loc, lang, h.service.catalog())
	templ.Handler(templates.NotFoundPage(page), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
}
