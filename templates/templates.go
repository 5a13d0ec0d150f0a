package templates

import (
	"embed"
)

//go:embed java/*.mustache
var javaFS embed.FS

// JavaTemplate returns the mustache template for Java classes.
func JavaTemplate() (string, error) {
	data, err := javaFS.ReadFile("java/I18N.java.mustache")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GoFileTemplate renders a GoFile. The output is passed through go/format.
const GoFileTemplate = `// Code generated by i18n-bundle-gen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

// {{.VarName}} holds the keys of resource bundle {{.BundleName}}.
var {{.VarName}} = struct {
	// Bundle is the name of the resource bundle.
	Bundle string
{{- range .Fields}}
	// {{.Name}}: {{.Doc}}
	{{.Name}} string
{{- end}}
}{
	Bundle: {{printf "%q" .BundleName}},
{{- range .Fields}}
	{{.Name}}: {{printf "%q" .Key}},
{{- end}}
}
`
