package generator

import (
	"testing"

	"github.com/napalu/i18n-bundle-gen/bundle"
	"github.com/napalu/i18n-bundle-gen/errors"
	"github.com/napalu/i18n-bundle-gen/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaIdentifier(t *testing.T) {
	tests := map[string]string{
		"I18N_TITLE":     "I18N_TITLE",
		"I18N.menu.file": "I18N_menu_file",
		"1ST":            "_1ST",
		"class":          "class_",
		"_":              "__",
		"":               "_EMPTY",
		"a-b c":          "a_b_c",
		"größe":          "größe",
	}
	for in, want := range tests {
		assert.Equal(t, want, javaIdentifier(in), in)
	}
}

func TestJavaPackage(t *testing.T) {
	assert.Equal(t, "", javaPackage(""))
	assert.Equal(t, "de.carne", javaPackage("de/carne"))
	assert.Equal(t, "my_app.int_", javaPackage("my-app/int"))
}

func TestGoExportedName(t *testing.T) {
	tests := map[string]string{
		"I18N_TITLE": "I18NTitle",
		"i18n.title": "I18NTitle",
		"1st_key":    "N1StKey",
		"":           "Key",
		"type":       "Type",
	}
	for in, want := range tests {
		assert.Equal(t, want, goExportedName(in), in)
	}
}

func TestGoPackageName(t *testing.T) {
	tests := map[string]string{
		"":         "i18n",
		"de/carne": "carne",
		"My-Pkg":   "mypkg",
		"2d":       "p2d",
		"type":     "type_",
	}
	for in, want := range tests {
		assert.Equal(t, want, goPackageName(in), in)
	}
}

func TestNameSetUnique(t *testing.T) {
	names := newNameSet("Bundle")
	assert.Equal(t, "Bundle2", names.unique("Bundle"))
	assert.Equal(t, "A2", names.unique("A2"))
	assert.Equal(t, "A", names.unique("A"))
	assert.Equal(t, "A3", names.unique("A"))
	assert.Equal(t, "A4", names.unique("A"))
}

func TestAssignNames(t *testing.T) {
	entries := []bundle.Entry{
		{Key: "I18N_A.B"},
		{Key: "I18N_A_B"},
		{Key: "BUNDLE_NAME"},
		{Key: "I18N_A-B"},
	}

	names := assignNames(entries, javaIdentifier, "BUNDLE_NAME")
	assert.Equal(t, 4, names.Count())

	var got []string
	for iter := names.Front(); iter != nil; iter = iter.Next() {
		got = append(got, *iter.Key+"="+iter.Value)
	}
	assert.Equal(t, []string{
		"I18N_A.B=I18N_A_B",
		"I18N_A_B=I18N_A_B2",
		"BUNDLE_NAME=BUNDLE_NAME2",
		"I18N_A-B=I18N_A_B3",
	}, got)
}

func TestJavaLiteral(t *testing.T) {
	tests := map[string]string{
		"plain":          `"plain"`,
		`say "hi"`:       `"say \"hi\""`,
		`back\slash`:     `"back\\slash"`,
		"line\nbreak\t!": `"line\nbreak\t!"`,
		"Größe":          `"Gr\u00f6\u00dfe"`,
		"\U0001F600":     `"\ud83d\ude00"`,
		"\x01":           `"\u0001"`,
	}
	for in, want := range tests {
		assert.Equal(t, want, javaLiteral(in), in)
	}
}

func TestJavadoc(t *testing.T) {
	tests := map[string]string{
		"Hello {0}!":       "Hello {0}!",
		"<b>bold</b> & co": "&lt;b&gt;bold&lt;/b&gt; &amp; co",
		"ends */ comment":  "ends *&#47; comment",
		"@param x":         "&#64;param x",
		`escape \u000a`:    "escape &#92;u000a",
		"two\nlines":       "two lines",
		"it's \"quoted\"":  "it&#39;s &#34;quoted&#34;",
	}
	for in, want := range tests {
		assert.Equal(t, want, javadoc(in), in)
	}
}

func TestNewEmitter(t *testing.T) {
	s := settings.Default(t.TempDir())
	for _, target := range Targets() {
		s.SetTarget(target)
		e, err := NewEmitter(s)
		require.NoError(t, err)
		assert.Equal(t, target, e.Name())
	}

	s.SetTarget("kotlin")
	_, err := NewEmitter(s)
	assert.ErrorIs(t, err, errors.ErrUnknownTarget)
	assert.EqualError(t, err, `unknown generation target "kotlin" (supported: java, go)`)
}

func TestGoFileName(t *testing.T) {
	assert.Equal(t, "textsi18n.go", goFileName("TextsI18N"))
	assert.Equal(t, "messages.go", goFileName("Messages"))
}
