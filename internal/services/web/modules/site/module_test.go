package site

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prestonhollow/detailing/internal/platform/i18n"
	"github.com/prestonhollow/detailing/internal/services/web/content"
	"github.com/prestonhollow/detailing/internal/services/web/routepath"
	"golang.org/x/net/html"
)

const testScriptURL = "https://widgets.example.test/booking.js"

func testCatalog() content.Catalog {
	return content.Catalog{
		Business: content.Business{
			Name:    "Test Detailing",
			Tagline: "Clean cars",
			Phone:   "+15550100",
			Email:   "hello@example.test",
		},
		Booking: content.Booking{ScriptURL: testScriptURL},
		Packages: []content.ServicePackage{
			{Name: "Exterior", Price: 55, Duration: "~2 hours", Features: []string{"Wash"}},
			{Name: "Full", Price: 99.6, Duration: "~4 hours", Features: []string{"Wash", "Vacuum"}},
		},
		Materials: []content.MaterialEntry{{UseCase: "Paint", Explanation: "pH-neutral soap"}},
		Gallery: []content.Comparison{
			{ID: "sedan", Label: "Sedan", Before: "https://img.example.test/b.jpg", After: "https://img.example.test/a.jpg"},
			{ID: "truck", Label: "Truck", Before: "https://img.example.test/b2.jpg", After: "https://img.example.test/a2.jpg"},
		},
	}
}

func mountHandler(t *testing.T, catalog content.Catalog) http.Handler {
	t.Helper()
	m := New(Config{
		Source: content.NewStaticSource(catalog),
		Now:    func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) },
	})
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	return mount.Handler
}

func parse(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func byID(n *html.Node, id string) *html.Node {
	nodes := findAll(n, func(node *html.Node) bool {
		value, ok := attr(node, "id")
		return ok && value == id
	})
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func widgetScripts(n *html.Node) []*html.Node {
	return findAll(n, func(node *html.Node) bool {
		if node.Data != "script" {
			return false
		}
		_, ok := attr(node, "data-widget-src")
		return ok
	})
}

func sliderForm(t *testing.T, n *html.Node) *html.Node {
	t.Helper()
	forms := findAll(n, func(node *html.Node) bool {
		_, ok := attr(node, "data-slider")
		return ok && node.Data == "form"
	})
	if len(forms) != 1 {
		t.Fatalf("slider forms = %d, want 1", len(forms))
	}
	return forms[0]
}

func inputNamed(n *html.Node, name string) *html.Node {
	nodes := findAll(n, func(node *html.Node) bool {
		value, ok := attr(node, "name")
		return node.Data == "input" && ok && value == name
	})
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func postSlider(t *testing.T, h http.Handler, sliderID string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, routepath.Slider(sliderID), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestModuleIDReturnsSite(t *testing.T) {
	t.Parallel()

	if got := New(Config{}).ID(); got != "site" {
		t.Fatalf("ID() = %q, want %q", got, "site")
	}
}

func TestHomeAttachesWidgetUnderMount(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	doc := parse(t, rr.Body.String())
	scripts := widgetScripts(doc)
	if len(scripts) != 1 {
		t.Fatalf("widget scripts = %d, want 1", len(scripts))
	}
	if src, _ := attr(scripts[0], "src"); src != testScriptURL {
		t.Fatalf("script src = %q, want %q", src, testScriptURL)
	}
	if _, ok := attr(scripts[0], "async"); !ok {
		t.Fatalf("widget script is not async")
	}
	if parent, _ := attr(scripts[0].Parent, "id"); parent != content.DefaultMountID {
		t.Fatalf("script parent id = %q, want %q", parent, content.DefaultMountID)
	}
}

func TestHomeFallsBackToBodyWhenMountHidden(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	catalog.Booking.HideMount = true
	h := mountHandler(t, catalog)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	doc := parse(t, rr.Body.String())
	if byID(doc, content.DefaultMountID) != nil {
		t.Fatalf("mount element rendered while hidden")
	}
	scripts := widgetScripts(doc)
	if len(scripts) != 1 {
		t.Fatalf("widget scripts = %d, want 1", len(scripts))
	}
	if got := scripts[0].Parent.Data; got != "body" {
		t.Fatalf("script parent = %q, want %q", got, "body")
	}

	booking := byID(doc, "booking")
	if booking == nil {
		t.Fatalf("booking section missing")
	}
	links := findAll(booking, func(node *html.Node) bool { return node.Data == "a" })
	if len(links) != 2 {
		t.Fatalf("booking links = %d, want 2 contact fallbacks", len(links))
	}
}

func TestHomeWithoutScriptURLLeavesBookingInert(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	catalog.Booking.ScriptURL = ""
	h := mountHandler(t, catalog)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	doc := parse(t, rr.Body.String())
	if got := len(widgetScripts(doc)); got != 0 {
		t.Fatalf("widget scripts = %d, want 0", got)
	}
	if byID(doc, content.DefaultMountID) == nil {
		t.Fatalf("mount element missing")
	}
}

func TestHomeRendersEachRenderWithOneWidget(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if got := len(widgetScripts(parse(t, rr.Body.String()))); got != 1 {
			t.Fatalf("render %d widget scripts = %d, want 1", i, got)
		}
	}
}

func TestHomeRendersPackagesInOrderWithTruncatedPrices(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rr.Body.String()

	first := strings.Index(body, "Exterior")
	second := strings.Index(body, "Full")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("packages out of order: Exterior at %d, Full at %d", first, second)
	}
	for _, want := range []string{"$55", "$99", "~4 hours", "Vacuum"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Contains(body, "$100") {
		t.Fatalf("price rounded instead of truncated")
	}
}

func TestHomeRendersIndependentSliders(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	doc := parse(t, rr.Body.String())
	forms := findAll(doc, func(node *html.Node) bool {
		_, ok := attr(node, "data-slider")
		return ok && node.Data == "form"
	})
	if len(forms) != 2 {
		t.Fatalf("sliders = %d, want 2", len(forms))
	}
	firstID, _ := attr(forms[0], "id")
	secondID, _ := attr(forms[1], "id")
	if firstID == "" || firstID == secondID {
		t.Fatalf("slider ids = %q, %q, want distinct", firstID, secondID)
	}
	for _, form := range forms {
		position := inputNamed(form, "position")
		if position == nil {
			t.Fatalf("slider missing position input")
		}
		if value, _ := attr(position, "value"); value != "50" {
			t.Fatalf("initial position = %q, want %q", value, "50")
		}
	}
}

func TestHomeUsesRequestedLanguage(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?lang=es-US", nil))

	doc := parse(t, rr.Body.String())
	htmlNodes := findAll(doc, func(node *html.Node) bool { return node.Data == "html" })
	if len(htmlNodes) != 1 {
		t.Fatalf("html elements = %d, want 1", len(htmlNodes))
	}
	if lang, _ := attr(htmlNodes[0], "lang"); lang != "es-US" {
		t.Fatalf("lang = %q, want %q", lang, "es-US")
	}

	var found bool
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == i18n.LangCookieName && cookie.Value == "es-US" {
			found = true
		}
	}
	if !found {
		t.Fatalf("language cookie not set")
	}
}

func TestSliderFragmentClampsPosition(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	tests := []struct {
		raw      string
		want     string
		wantClip string
	}{
		{raw: "137", want: "100", wantClip: "inset(0 0% 0 0)"},
		{raw: "-20", want: "0", wantClip: "inset(0 100% 0 0)"},
		{raw: "33.5", want: "34", wantClip: "inset(0 66% 0 0)"},
		{raw: "garbage", want: "50", wantClip: "inset(0 50% 0 0)"},
	}
	for _, tc := range tests {
		rr := postSlider(t, h, "sedan", url.Values{"position": {tc.raw}})
		if rr.Code != http.StatusOK {
			t.Fatalf("status for %q = %d, want %d", tc.raw, rr.Code, http.StatusOK)
		}
		form := sliderForm(t, parse(t, rr.Body.String()))
		if value, _ := attr(inputNamed(form, "position"), "value"); value != tc.want {
			t.Fatalf("position for %q = %q, want %q", tc.raw, value, tc.want)
		}
		if !strings.Contains(rr.Body.String(), tc.wantClip) {
			t.Fatalf("fragment for %q missing clip %q", tc.raw, tc.wantClip)
		}
	}
}

func TestSliderFragmentKeepsInstanceID(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	const instance = "7d9f2c1e-4b3a-4e6f-9a8b-1c2d3e4f5a6b"
	rr := postSlider(t, h, "truck", url.Values{"position": {"10"}, "instance": {instance}})
	form := sliderForm(t, parse(t, rr.Body.String()))
	if id, _ := attr(form, "id"); id != "slider-"+instance {
		t.Fatalf("slider id = %q, want %q", id, "slider-"+instance)
	}

	rr = postSlider(t, h, "truck", url.Values{"position": {"10"}, "instance": {`"><script>`}})
	form = sliderForm(t, parse(t, rr.Body.String()))
	if id, _ := attr(form, "id"); strings.Contains(id, "script") {
		t.Fatalf("slider id = %q, want a freshly issued id", id)
	}
}

func TestSliderFragmentUnknownIDIsNotFound(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	rr := postSlider(t, h, "missing", url.Values{"position": {"10"}})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestSliderFragmentRejectsGet(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Slider("sedan"), nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q, want %q", got, http.MethodPost)
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	h := mountHandler(t, testCatalog())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("body missing not-found copy")
	}
}

func TestHomeWithNilSourceServesDefaults(t *testing.T) {
	t.Parallel()

	mount, err := New(Config{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), content.Default().Business.Name) {
		t.Fatalf("body missing default business name")
	}
}
