package site

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prestonhollow/detailing/internal/platform/i18n"
	"github.com/prestonhollow/detailing/internal/services/web/content"
	"github.com/prestonhollow/detailing/internal/services/web/render"
	"github.com/prestonhollow/detailing/internal/services/web/routepath"
	"github.com/prestonhollow/detailing/internal/services/web/slider"
	"github.com/prestonhollow/detailing/internal/services/web/templates"
	"github.com/prestonhollow/detailing/internal/services/web/widget"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type service struct {
	source   *content.Source
	reporter widget.FailureReporter
	now      func() time.Time
}

func newService(cfg Config) service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return service{source: cfg.Source, reporter: cfg.Reporter, now: now}
}

func (s service) catalog() content.Catalog {
	return s.source.Catalog()
}

func (s service) pageContext(r *http.Request, loc templates.Localizer, lang string, catalog content.Catalog) templates.PageContext {
	return templates.PageContext{
		Lang:      lang,
		Loc:       loc,
		Business:  catalog.Business,
		Languages: languageOptions(r, loc, lang),
		Year:      s.now().Year(),
	}
}

func languageOptions(r *http.Request, loc templates.Localizer, active string) []templates.LanguageOption {
	path, rawQuery := routepath.Root, ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	tags := i18n.SupportedTags()
	options := make([]templates.LanguageOption, 0, len(tags))
	for _, tag := range tags {
		value := tag.String()
		options = append(options, templates.LanguageOption{
			Tag:    value,
			Label:  templates.T(loc, "lang."+value),
			URL:    routepath.WithLanguage(path, rawQuery, value),
			Active: value == active,
		})
	}
	return options
}

// home assembles the full page. Each call owns a fresh load state, so every
// render activates the booking widget exactly once.
func (s service) home(ctx context.Context, page templates.PageContext, catalog content.Catalog) templates.HomeView {
	booking, bodyScripts := s.booking(ctx, catalog)
	page.BodyScripts = bodyScripts

	sliders := make([]slider.View, 0, len(catalog.Gallery))
	for _, entry := range catalog.Gallery {
		sliders = append(sliders, slider.NewView(sliderProps(entry, ""), slider.New()))
	}

	return templates.HomeView{
		Page:            page,
		MaintenanceNote: catalog.MaintenanceNote,
		Services:        render.ServiceBlocks(catalog.Packages),
		Materials:       render.MaterialBlocks(catalog.Materials),
		Sliders:         sliders,
		Booking:         booking,
	}
}

func (s service) booking(ctx context.Context, catalog content.Catalog) (templates.BookingView, []widget.Script) {
	loader := widget.NewLoader(catalog.Booking, widget.NewLoadState(), s.reporter)
	mountID := loader.MountID()

	var doc *widget.Document
	if catalog.Booking.HideMount {
		doc = widget.NewDocument()
	} else {
		doc = widget.NewDocument(mountID)
	}

	outcome, err := loader.Activate(ctx, doc)
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("widget.outcome", outcome.String()))
	if err != nil {
		log.Printf("booking widget not attached outcome=%s err=%v", outcome, err)
	}

	view := templates.BookingView{
		Phone: catalog.Business.Phone,
		Email: catalog.Business.Email,
	}
	if !catalog.Booking.HideMount {
		view.MountID = mountID
		view.MountScripts = doc.Scripts(mountID)
	}
	return view, doc.Scripts(widget.FallbackContainer)
}

// sliderView renders comparison id at the submitted position. The bool is
// false when the gallery has no such entry.
func (s service) sliderView(comparisonID, instanceID, rawPosition string) (slider.View, bool) {
	entry, ok := s.catalog().Comparison(comparisonID)
	if !ok {
		return slider.View{}, false
	}
	state := slider.New()
	state.SetInput(rawPosition)
	return slider.NewView(sliderProps(entry, instanceID), state), true
}

func sliderProps(entry content.Comparison, instanceID string) slider.Props {
	return slider.Props{
		ComparisonID: entry.ID,
		InstanceID:   instanceID,
		Label:        entry.Label,
		Before:       entry.Before,
		After:        entry.After,
	}
}
