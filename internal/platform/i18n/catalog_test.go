package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestEmbeddedBundleHasSupportedLocales(t *testing.T) {
	t.Parallel()

	bundle := DefaultBundle()
	for _, tag := range SupportedTags() {
		if !bundle.HasLocale(tag.String()) {
			t.Fatalf("missing locale %s", tag)
		}
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	t.Parallel()

	bundle := DefaultBundle()
	base := bundle.Keys(BaseLocale)
	for _, locale := range bundle.Locales() {
		keys := bundle.Keys(locale)
		if len(keys) != len(base) {
			t.Fatalf("%s has %d keys, want %d", locale, len(keys), len(base))
		}
		for i := range keys {
			if keys[i] != base[i] {
				t.Fatalf("%s key[%d] = %q, want %q", locale, i, keys[i], base[i])
			}
		}
	}
}

func TestRegisteredMessagesFormat(t *testing.T) {
	t.Parallel()

	en := message.NewPrinter(language.AmericanEnglish)
	if got := en.Sprintf("hero.serving", "North Dallas"); got != "Serving: North Dallas" {
		t.Fatalf("en hero.serving = %q", got)
	}
	es := message.NewPrinter(language.MustParse("es-US"))
	if got := es.Sprintf("nav.services"); got != "Servicios" {
		t.Fatalf("es nav.services = %q, want %q", got, "Servicios")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	value, ok := DefaultBundle().Message("fr-FR", "nav.booking")
	if !ok || value != "Book" {
		t.Fatalf("Message = %q, %v", value, ok)
	}
	if _, ok := DefaultBundle().Message(BaseLocale, "missing.key"); ok {
		t.Fatal("Message(missing) ok = true")
	}
}

func TestLoadFromFSValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "no files",
			files: map[string]string{"readme.txt": "x"},
		},
		{
			name: "locale mismatch",
			files: map[string]string{
				"locales/en-US/site.yaml": "locale: \"es-US\"\nnamespace: \"site\"\nmessages:\n  \"a\": \"b\"\n",
			},
		},
		{
			name: "namespace mismatch",
			files: map[string]string{
				"locales/en-US/site.yaml": "locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"a\": \"b\"\n",
			},
		},
		{
			name: "missing base locale",
			files: map[string]string{
				"locales/es-US/site.yaml": "locale: \"es-US\"\nnamespace: \"site\"\nmessages:\n  \"a\": \"b\"\n",
			},
		},
		{
			name: "duplicate key across namespaces",
			files: map[string]string{
				"locales/en-US/site.yaml":  "locale: \"en-US\"\nnamespace: \"site\"\nmessages:\n  \"a\": \"b\"\n",
				"locales/en-US/extra.yaml": "locale: \"en-US\"\nnamespace: \"extra\"\nmessages:\n  \"a\": \"c\"\n",
			},
		},
		{
			name: "unknown field",
			files: map[string]string{
				"locales/en-US/site.yaml": "locale: \"en-US\"\nnamespace: \"site\"\nmesages:\n  \"a\": \"b\"\n",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			for name, body := range tt.files {
				mustWriteFile(t, filepath.Join(dir, name), body)
			}
			if _, err := LoadFromFS(os.DirFS(dir)); err == nil {
				t.Fatal("LoadFromFS() error = nil, want error")
			}
		})
	}
}

func mustWriteFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}
