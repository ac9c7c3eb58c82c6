// Package locale provides the translated strings the pager host draws.
package locale

import (
	"embed"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
)

//go:embed messages/*.toml
var messages embed.FS

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := messages.ReadDir("messages")
		if err != nil {
			logging.Internal().Error("Failed to list message files", "error", err)
			return
		}
		for _, e := range entries {
			if _, err := bundle.LoadMessageFileFS(messages, "messages/"+e.Name()); err != nil {
				logging.Internal().Error("Failed to load message file", "file", e.Name(), "error", err)
			}
		}
	})
	return bundle
}

// Localizer renders the pager strings in the best matching language.
type Localizer struct {
	l *i18n.Localizer
}

// New creates a Localizer for the given language preferences, best first.
// With no preferences the LANG environment variable is used.
func New(langs ...string) *Localizer {
	if len(langs) == 0 {
		if env := EnvLanguage(); env != "" {
			langs = []string{env}
		}
	}
	return &Localizer{l: i18n.NewLocalizer(getBundle(), langs...)}
}

// EnvLanguage converts a POSIX locale such as de_DE.UTF-8 to a BCP 47 tag.
func EnvLanguage() string {
	v := os.Getenv("LANG")
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}

// Tags returns the languages messages are available in.
func Tags() []language.Tag {
	return getBundle().LanguageTags()
}

// PageIndicator returns the caption for page index (zero based) out of count.
func (l *Localizer) PageIndicator(index, count int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID: "page_indicator",
		TemplateData: map[string]any{
			"Index": index + 1,
			"Count": count,
		},
	})
}

// PageCount returns a pluralized page count.
func (l *Localizer) PageCount(count int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:   "page_count",
		PluralCount: count,
	})
}

// NoPages returns the text shown when the container is empty.
func (l *Localizer) NoPages() string {
	return l.localize(&i18n.LocalizeConfig{MessageID: "no_pages"})
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	s, err := l.l.Localize(cfg)
	if err != nil {
		logging.Internal().Warn("Missing translation", "message", cfg.MessageID, "error", err)
		return cfg.MessageID
	}
	return s
}
