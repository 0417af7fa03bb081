package telemetry

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/prestonhollow/detailing/internal/services/web/content"
	apperrors "github.com/prestonhollow/detailing/internal/services/web/platform/errors"
	"github.com/prestonhollow/detailing/internal/services/web/platform/httpx"
	"github.com/prestonhollow/detailing/internal/services/web/storage"
	"github.com/prestonhollow/detailing/internal/services/web/widget"
	"golang.org/x/time/rate"
)

// maxReportBytes bounds a report body.
const maxReportBytes = 4 << 10

// failureReport is the browser report payload.
type failureReport struct {
	Src    string `json:"src"`
	Reason string `json:"reason"`
	Page   string `json:"page"`
}

type handlers struct {
	source   *content.Source
	reporter widget.FailureReporter
	limiter  *rate.Limiter
}

func newHandlers(source *content.Source, reporter widget.FailureReporter, limiter *rate.Limiter) handlers {
	return handlers{source: source, reporter: reporter, limiter: limiter}
}

func (h handlers) handleWidgetFailure(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		_ = httpx.WriteJSONError(w, apperrors.E(apperrors.KindRateLimited, "too many reports"))
		return
	}

	var report failureReport
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReportBytes))
	if err := decoder.Decode(&report); err != nil {
		_ = httpx.WriteJSONError(w, apperrors.E(apperrors.KindInvalidInput, "invalid report body"))
		return
	}
	failure, err := h.failure(r, report)
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	if h.reporter != nil {
		h.reporter.ReportFailure(httpx.RequestContext(r), failure)
	}
	w.WriteHeader(http.StatusNoContent)
}

// failure validates report against the current booking script. Reports for
// any other script are rejected so the endpoint cannot be used as a general
// log sink.
func (h handlers) failure(r *http.Request, report failureReport) (widget.Failure, error) {
	src := strings.TrimSpace(report.Src)
	if src == "" {
		return widget.Failure{}, apperrors.E(apperrors.KindInvalidInput, "src is required")
	}
	if src != strings.TrimSpace(h.source.Catalog().Booking.ScriptURL) {
		return widget.Failure{}, apperrors.E(apperrors.KindInvalidInput, "src is not the booking widget")
	}
	reason := strings.TrimSpace(report.Reason)
	if reason == "" {
		reason = "error"
	}
	return widget.Failure{
		Src:       src,
		Reason:    reason,
		Page:      pagePath(report.Page),
		Origin:    storage.OriginBrowser,
		UserAgent: r.UserAgent(),
	}, nil
}

// pagePath keeps only the path of a reported page.
func pagePath(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !strings.HasPrefix(parsed.Path, "/") {
		return ""
	}
	return parsed.Path
}

func (handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONError(w, apperrors.E(apperrors.KindNotFound, "not found"))
}
