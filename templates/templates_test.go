package templates

import (
	"strings"
	"testing"
	"text/template"

	"github.com/cbroglie/mustache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJavaTemplate(t *testing.T) {
	tmpl, err := JavaTemplate()
	require.NoError(t, err)

	out, err := mustache.Render(tmpl, JavaFile{
		Source:     "MainI18N.properties",
		ClassName:  "MainI18N",
		BundleName: `"MainI18N"`,
		Strings: []JavaString{
			{Constant: "I18N_A", Literal: `"I18N_A"`, DocKey: "I18N_A", DocValue: "a &amp; b"},
		},
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "package ")
	assert.Contains(t, out, `public static final String BUNDLE_NAME = "MainI18N";`)
	assert.Contains(t, out, `public static final String I18N_A = "I18N_A";`)
	assert.Contains(t, out, "Default format: <code>a &amp; b</code>")
	assert.Equal(t, 2, strings.Count(out, "I18N_A</code>"))
}

func TestJavaTemplateWithPackage(t *testing.T) {
	tmpl, err := JavaTemplate()
	require.NoError(t, err)

	out, err := mustache.Render(tmpl, JavaFile{Source: "de/carne/X.properties", Package: "de.carne", ClassName: "X"})
	require.NoError(t, err)
	assert.Contains(t, out, "package de.carne;")
	assert.Contains(t, out, "private X() {")
}

func TestGoFileTemplate(t *testing.T) {
	tmpl, err := template.New("go").Parse(GoFileTemplate)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, tmpl.Execute(&buf, GoFile{
		Source:     "app/Texts.properties",
		Package:    "app",
		VarName:    "Texts",
		BundleName: "app/Texts",
		Fields:     []GoField{{Name: "I18NTitle", Key: "I18N_TITLE", Doc: "Title"}},
	}))
	assert.Contains(t, buf.String(), "package app")
	assert.Contains(t, buf.String(), "var Texts = struct {")
	assert.Contains(t, buf.String(), `I18NTitle: "I18N_TITLE",`)
	assert.Contains(t, buf.String(), `Bundle: "app/Texts",`)
}
