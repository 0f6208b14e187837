package board

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Translator renders the board's user-facing labels for one locale,
// backed by go-i18n with the embedded TOML catalogs.
type Translator struct {
	localizer *i18n.Localizer
}

// NewTranslator builds a Translator for the given locale (e.g. "en", "es").
// Unknown locales fall back to English.
func NewTranslator(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range []string{"active.en.toml", "active.es.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}
}

// T renders the message identified by key, falling back to the key itself
// when no translation exists.
func (t *Translator) T(key string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}
