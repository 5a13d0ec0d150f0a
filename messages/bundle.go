package messages

import (
	"embed"
	"sync"

	"github.com/Xuanwo/go-locale"
	"github.com/napalu/goopt/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

// Bundle returns the message bundle of the tool. The embedded locales are
// loaded on first use.
func Bundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		b, err := i18n.NewBundleWithFS(localesFS, "locales")
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
		bundle = b
	})
	return bundle
}

// Provider resolves message keys against Bundle in its current default
// language, falling back to English.
type Provider struct{}

func (Provider) GetMessage(key string) string {
	b := Bundle()
	if msg, ok := b.GetTranslations(b.GetDefaultLanguage())[key]; ok {
		return msg
	}
	if msg, ok := b.GetTranslations(language.English)[key]; ok {
		return msg
	}
	return key
}

// ParseLanguage maps a --language value to a supported tag.
func ParseLanguage(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return language.English
	case "de":
		return language.German
	}
	return language.Und
}

// DetectLanguage returns the supported language matching the system locale,
// or language.Und.
func DetectLanguage() language.Tag {
	tag, err := locale.Detect()
	if err != nil {
		return language.Und
	}
	return ParseLanguage(tag.String())
}
