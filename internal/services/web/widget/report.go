package widget

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/prestonhollow/detailing/internal/platform/timeouts"
	"github.com/prestonhollow/detailing/internal/services/web/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FailureEvent is the span event name recorded for each failure.
const FailureEvent = "widget.load_failed"

// Failure is one external resource load failure.
type Failure struct {
	Src       string
	Reason    string
	Page      string
	Origin    string
	UserAgent string
}

// Reporter fans a failure out to the log, the active span, and an optional
// store. Failures are never retried or propagated.
type Reporter struct {
	store storage.WidgetFailureStore
	now   func() time.Time
}

// NewReporter returns a reporter. store may be nil.
func NewReporter(store storage.WidgetFailureStore) *Reporter {
	return &Reporter{store: store, now: time.Now}
}

// ReportFailure records failure. Storage errors are logged and dropped.
func (r *Reporter) ReportFailure(ctx context.Context, failure Failure) {
	if ctx == nil {
		ctx = context.Background()
	}
	origin := strings.TrimSpace(failure.Origin)
	if origin == "" {
		origin = storage.OriginServer
	}
	log.Printf("widget load failed src=%s reason=%q page=%s origin=%s", failure.Src, failure.Reason, failure.Page, origin)

	trace.SpanFromContext(ctx).AddEvent(FailureEvent, trace.WithAttributes(
		attribute.String("widget.src", failure.Src),
		attribute.String("widget.reason", failure.Reason),
		attribute.String("widget.page", failure.Page),
		attribute.String("widget.origin", origin),
	))

	if r == nil || r.store == nil {
		return
	}
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.ReportWrite)
	defer cancel()
	err := r.store.RecordWidgetFailure(writeCtx, storage.WidgetFailure{
		Src:        failure.Src,
		Reason:     failure.Reason,
		Page:       failure.Page,
		Origin:     origin,
		UserAgent:  failure.UserAgent,
		OccurredAt: r.now(),
	})
	if err != nil {
		log.Printf("widget failure persist failed src=%s err=%v", failure.Src, err)
	}
}
