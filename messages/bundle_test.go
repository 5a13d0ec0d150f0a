package messages

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestBundleHasAllKeys(t *testing.T) {
	b := Bundle()
	en := b.GetTranslations(language.English)
	de := b.GetTranslations(language.German)

	for _, key := range []string{
		Keys.AppError.InvalidKeyFilter,
		Keys.AppGenerate.Disabled,
		Keys.AppCheck.Missing,
		Keys.AppInit.CreatedFile,
		Keys.AppAppConfig.GenerateDesc,
	} {
		assert.Contains(t, en, key)
		assert.Contains(t, de, key)
	}
	assert.Equal(t, len(en), len(de))
}

func TestProvider(t *testing.T) {
	p := Provider{}
	assert.Equal(t, "invalid key filter %q", p.GetMessage(Keys.AppError.InvalidKeyFilter))
	assert.Equal(t, "no.such.key", p.GetMessage("no.such.key"))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, language.English, ParseLanguage("en"))
	assert.Equal(t, language.German, ParseLanguage("de-AT"))
	assert.Equal(t, language.Und, ParseLanguage("fr"))
	assert.Equal(t, language.Und, ParseLanguage("not a language"))
}

func TestDetectLanguage(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("locale is not taken from the environment on this platform")
	}
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	assert.Equal(t, language.German, DetectLanguage())

	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	assert.Equal(t, language.Und, DetectLanguage())
}
