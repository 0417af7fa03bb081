package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/prestonhollow/detailing/internal/services/web/content"
	"github.com/prestonhollow/detailing/internal/services/web/render"
	"github.com/prestonhollow/detailing/internal/services/web/routepath"
	"github.com/prestonhollow/detailing/internal/services/web/slider"
	"github.com/prestonhollow/detailing/internal/services/web/widget"
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang      string
	Loc       Localizer
	Title     string
	Business  content.Business
	Languages []LanguageOption
	Year      int
	// BodyScripts are widget scripts attached to the page body.
	BodyScripts []widget.Script
}

// BookingView is the booking section's rendering input.
type BookingView struct {
	// MountID is empty when the mount element is not rendered.
	MountID      string
	MountScripts []widget.Script
	Phone        string
	Email        string
}

// HomeView is everything the home page renders.
type HomeView struct {
	Page            PageContext
	MaintenanceNote string
	Services        []render.ServiceBlock
	Materials       []render.MaterialBlock
	Sliders         []slider.View
	Booking         BookingView
}

// Layout wraps body in the document shell.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		title := page.Title
		if title == "" {
			title = page.Business.Name
		}
		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw("</title>")
		if page.Business.Tagline != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", page.Business.Tagline)
			h.raw(">")
		}
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", routepath.SiteStylesheet)
		h.raw(">")
		// The reporter must be listening before any widget script starts.
		h.raw("<script")
		h.attr("src", routepath.WidgetReportScript)
		h.attr("data-report-url", routepath.WidgetFailures)
		h.raw("></script>")
		h.raw("<script")
		h.attr("src", routepath.HTMXScript)
		h.raw(" defer></script><script")
		h.attr("src", routepath.SliderScript)
		h.raw(" defer></script></head><body>")
		h.component(ctx, body)
		h.scripts(page.BodyScripts)
		h.raw("</body></html>")
		return h.err
	})
}

// HomePage renders the full marketing page.
func HomePage(view HomeView) templ.Component {
	return Layout(view.Page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		loc := view.Page.Loc
		h.component(ctx, Nav(view.Page))
		h.raw("<main>")
		h.component(ctx, Hero(view.Page))
		h.component(ctx, ServicesSection(loc, view.MaintenanceNote, view.Services))
		h.component(ctx, GallerySection(loc, view.Sliders))
		h.component(ctx, MaterialsSection(loc, view.Materials))
		h.component(ctx, BookingSection(loc, view.Booking))
		h.raw("</main>")
		h.component(ctx, Footer(view.Page))
		return h.err
	}))
}

// SectionHeader renders a section's eyebrow, title, and optional subtitle.
func SectionHeader(eyebrow, title, subtitle string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="section-header">`)
		if eyebrow != "" {
			h.raw(`<div class="eyebrow">`)
			h.text(eyebrow)
			h.raw("</div>")
		}
		h.raw("<h2>")
		h.text(title)
		h.raw("</h2>")
		if subtitle != "" {
			h.raw(`<p class="subtitle">`)
			h.text(subtitle)
			h.raw("</p>")
		}
		h.raw("</div>")
		return h.err
	})
}

// Nav renders the sticky header.
func Nav(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		loc := page.Loc
		h.raw(`<header class="site-nav"><div class="container nav-inner"><div class="brand">`)
		h.text(page.Business.Name)
		h.raw(`</div><nav class="nav-links">`)
		for _, link := range []struct{ href, key string }{
			{routepath.SectionServices, "nav.services"},
			{routepath.SectionGallery, "nav.gallery"},
			{routepath.SectionMaterials, "nav.materials"},
			{routepath.SectionBooking, "nav.booking"},
		} {
			h.raw("<a")
			h.attr("href", link.href)
			h.raw(">")
			h.text(T(loc, link.key))
			h.raw("</a>")
		}
		h.raw("</nav>")
		if len(page.Languages) > 0 {
			h.raw(`<div class="nav-languages"`)
			h.attr("aria-label", T(loc, "nav.language"))
			h.raw(">")
			for _, option := range page.Languages {
				h.raw("<a")
				h.url("href", option.URL)
				h.attr("hreflang", option.Tag)
				if option.Active {
					h.raw(` aria-current="true"`)
				}
				h.raw(">")
				h.text(option.Label)
				h.raw("</a>")
			}
			h.raw("</div>")
		}
		if page.Business.Phone != "" {
			h.raw(`<a class="button button-outline"`)
			h.url("href", "tel:"+page.Business.Phone)
			h.raw(">")
			h.text(T(loc, "nav.call"))
			h.raw("</a>")
		}
		h.raw("</div></header>")
		return h.err
	})
}

// Hero renders the opening banner.
func Hero(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		loc := page.Loc
		h.raw(`<div class="hero"><div class="container hero-grid"><div><h1>`)
		h.text(page.Business.Tagline)
		h.raw(`</h1><p class="lead">`)
		h.text(T(loc, "hero.intro"))
		h.raw(`</p><div class="hero-actions"><a class="button button-primary"`)
		h.attr("href", routepath.SectionBooking)
		h.raw(">")
		h.text(T(loc, "hero.book"))
		h.raw(`</a><a class="button button-outline"`)
		h.attr("href", routepath.SectionServices)
		h.raw(">")
		h.text(T(loc, "hero.view_services"))
		h.raw("</a></div>")
		if page.Business.ServiceArea != "" {
			h.raw(`<div class="muted">`)
			h.text(T(loc, "hero.serving", page.Business.ServiceArea))
			h.raw("</div>")
		}
		h.raw(`</div><div class="hero-showcase">`)
		h.text(T(loc, "hero.showcase"))
		h.raw("</div></div></div>")
		return h.err
	})
}

// ServicesSection renders one card per service block. An empty list renders
// an empty grid.
func ServicesSection(loc Localizer, maintenanceNote string, blocks []render.ServiceBlock) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section id="services" class="section section-alt"><div class="container">`)
		h.component(ctx, SectionHeader(T(loc, "services.eyebrow"), T(loc, "services.title"), maintenanceNote))
		h.raw(`<div class="card-grid" data-grid="services">`)
		for _, block := range blocks {
			h.raw(`<div class="card service-card"><h3>`)
			h.text(block.Name)
			h.raw(`</h3><p class="muted">`)
			h.text(block.Duration)
			h.raw(`</p><p class="price">`)
			h.text(block.Price)
			h.raw(`</p><ul class="features">`)
			for _, feature := range block.Features {
				h.raw("<li>")
				h.text(feature)
				h.raw("</li>")
			}
			h.raw("</ul></div>")
		}
		h.raw("</div></div></section>")
		return h.err
	})
}

// MaterialsSection renders one card per material block.
func MaterialsSection(loc Localizer, blocks []render.MaterialBlock) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section id="materials" class="section section-alt"><div class="container">`)
		h.component(ctx, SectionHeader(T(loc, "materials.eyebrow"), T(loc, "materials.title"), T(loc, "materials.subtitle")))
		h.raw(`<div class="card-grid" data-grid="materials">`)
		for _, block := range blocks {
			h.raw(`<div class="card material-card"><div class="material-use">`)
			h.text(block.UseCase)
			h.raw(`</div><p>`)
			h.text(block.Explanation)
			h.raw("</p></div>")
		}
		h.raw("</div></div></section>")
		return h.err
	})
}

// GallerySection renders the before/after sliders.
func GallerySection(loc Localizer, sliders []slider.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section id="gallery" class="section"><div class="container">`)
		h.component(ctx, SectionHeader(T(loc, "gallery.eyebrow"), T(loc, "gallery.title"), T(loc, "gallery.subtitle")))
		h.raw(`<div class="gallery-grid">`)
		for _, view := range sliders {
			h.component(ctx, Slider(loc, view))
		}
		h.raw("</div></div></section>")
		return h.err
	})
}

// Slider renders one comparison slider. The element replaces itself on
// HTMX swaps, so the fragment endpoint renders this component alone.
func Slider(loc Localizer, view slider.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		action := routepath.Slider(view.ComparisonID)
		position := strconv.Itoa(view.Position)
		h.raw(`<form class="comparison" method="post" data-slider`)
		h.attr("id", view.DOMID)
		h.attr("action", action)
		h.attr("hx-post", action)
		h.raw(` hx-trigger="change" hx-swap="outerHTML">`)
		h.raw(`<input type="hidden" name="instance"`)
		h.attr("value", view.InstanceID)
		h.raw(`><div class="comparison-frame"><img class="comparison-after"`)
		h.url("src", view.After)
		h.attr("alt", T(loc, "gallery.after_alt", view.Label))
		h.raw(`><img class="comparison-before" data-slider-before`)
		h.url("src", view.Before)
		h.attr("alt", T(loc, "gallery.before_alt", view.Label))
		h.attr("style", "clip-path: "+view.BeforeClip)
		h.raw(`><div class="comparison-divider" data-slider-divider`)
		h.attr("style", "left: "+view.DividerLeft)
		h.raw(`></div></div><input class="comparison-range" type="range" name="position" min="0" max="100" step="1"`)
		h.attr("value", position)
		h.attr("aria-label", T(loc, "gallery.slider_label", view.Label))
		h.raw("></form>")
		return h.err
	})
}

// BookingSection renders the widget mount element and the contact
// fallbacks, which are always present.
func BookingSection(loc Localizer, view BookingView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section id="booking" class="section"><div class="container">`)
		h.component(ctx, SectionHeader(T(loc, "booking.eyebrow"), T(loc, "booking.title"), T(loc, "booking.subtitle")))
		h.raw(`<div class="booking">`)
		if view.MountID != "" {
			h.raw(`<div class="booking-host"`)
			h.attr("id", view.MountID)
			h.raw(">")
			h.scripts(view.MountScripts)
			h.raw("</div>")
		}
		h.raw(`<p class="booking-help">`)
		h.text(T(loc, "booking.help"))
		if view.Phone != "" {
			h.raw(` <a`)
			h.url("href", "tel:"+view.Phone)
			h.raw(">")
			h.text(view.Phone)
			h.raw("</a>")
		}
		if view.Email != "" {
			h.raw(" ")
			h.text(T(loc, "booking.help_or"))
			h.raw(` <a`)
			h.url("href", "mailto:"+view.Email)
			h.raw(">")
			h.text(view.Email)
			h.raw("</a>")
		}
		h.raw(".</p></div></div></section>")
		return h.err
	})
}

// NotFoundPage renders the 404 page.
func NotFoundPage(page PageContext) templ.Component {
	if page.Title == "" {
		page.Title = T(page.Loc, "error.not_found.title")
	}
	return Layout(page, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.component(ctx, Nav(page))
		h.raw(`<main><section class="section"><div class="container error-state"><h1>`)
		h.text(T(page.Loc, "error.not_found.title"))
		h.raw("</h1><p>")
		h.text(T(page.Loc, "error.not_found.body"))
		h.raw(`</p><a class="button button-primary"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(page.Loc, "error.home"))
		h.raw("</a></div></section></main>")
		h.component(ctx, Footer(page))
		return h.err
	}))
}
