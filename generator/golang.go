package generator

import (
	"bytes"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/napalu/i18n-bundle-gen/bundle"
	"github.com/napalu/i18n-bundle-gen/internal/log"
	"github.com/napalu/i18n-bundle-gen/messages"
	"github.com/napalu/i18n-bundle-gen/templates"
)

const goTarget = "go"

var goFileTemplate = template.Must(template.New("go").Parse(templates.GoFileTemplate))

type goEmitter struct {
	genDir string
	pkg    string
}

func (e *goEmitter) Name() string {
	return goTarget
}

func (e *goEmitter) OutputPath(b *bundle.Bundle) string {
	return filepath.Join(e.genDir, filepath.FromSlash(b.Dir()), goFileName(b.BaseName))
}

func (e *goEmitter) Render(b *bundle.Bundle, entries []bundle.Entry) ([]byte, error) {
	pkg := e.pkg
	if pkg == "" {
		pkg = goPackageName(b.Dir())
	}

	names := assignNames(entries, goExportedName, "Bundle")
	data := templates.GoFile{
		Source:     b.RelPath,
		Package:    pkg,
		VarName:    goExportedName(b.BaseName),
		BundleName: b.Name(),
	}
	for _, entry := range entries {
		name, _ := names.Get(entry.Key)
		data.Fields = append(data.Fields, templates.GoField{
			Name: name,
			Key:  entry.Key,
			Doc:  singleLine(entry.Value),
		})
	}

	var buf bytes.Buffer
	if err := goFileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		logger := log.WithComponent("generator")
		logger.Warn().Msg(messages.Bundle().T(messages.Keys.AppWarning.FailedToFormat, b.RelPath, err))
		return buf.Bytes(), nil
	}
	return formatted, nil
}

// goFileName lowercases the exported name of a bundle, "TextsI18N" becomes
// "textsi18n.go".
func goFileName(baseName string) string {
	return strings.ToLower(goExportedName(baseName)) + ".go"
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
