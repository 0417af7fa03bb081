// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "net/url"

const (
	Root               = "/"
	Health             = "/up"
	StaticPrefix       = "/static/"
	SlidersPrefix      = "/gallery/sliders/"
	SliderPattern      = SlidersPrefix + "{sliderID}"
	TelemetryPrefix    = "/telemetry/"
	WidgetFailures     = "/telemetry/widget-failures"
	SiteStylesheet     = StaticPrefix + "site.css"
	SliderScript       = StaticPrefix + "slider.js"
	WidgetReportScript = StaticPrefix + "widget-report.js"
	HTMXScript         = "https://unpkg.com/htmx.org@2.0.4"
	SectionServices    = "#services"
	SectionGallery     = "#gallery"
	SectionMaterials   = "#materials"
	SectionBooking     = "#booking"
)

// Slider returns the route that re-renders one gallery slider.
func Slider(sliderID string) string {
	return SlidersPrefix + url.PathEscape(sliderID)
}

// WithLanguage returns path with the lang query parameter set.
func WithLanguage(path, rawQuery, lang string) string {
	if path == "" {
		path = Root
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set("lang", lang)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
