// Package templates renders the site's HTML as templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/prestonhollow/detailing/internal/platform/i18n"
	"github.com/prestonhollow/detailing/internal/services/web/widget"
)

// Localizer formats catalog messages.
type Localizer = i18n.Localizer

// T formats key with loc. A nil localizer uses the base locale catalog.
func T(loc Localizer, key string, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format, ok := i18n.DefaultBundle().Message(i18n.BaseLocale, key)
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes ` name="value"` after URL sanitization.
func (h *htmlWriter) url(name, value string) {
	h.attr(name, string(templ.URL(strings.TrimSpace(value))))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// scripts writes one async script element per widget script.
func (h *htmlWriter) scripts(scripts []widget.Script) {
	for _, script := range scripts {
		h.raw("<script")
		h.url("src", script.Src)
		if script.Async {
			h.raw(" async")
		}
		h.attr("data-widget-src", script.Src)
		h.raw("></script>")
	}
}
