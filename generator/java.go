package generator

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/cbroglie/mustache"
	"github.com/napalu/i18n-bundle-gen/bundle"
	"github.com/napalu/i18n-bundle-gen/templates"
)

const javaTarget = "java"

type javaEmitter struct {
	genDir string
}

func (e *javaEmitter) Name() string {
	return javaTarget
}

// OutputPath follows the sanitized package, so the file location always
// matches the declared package and class.
func (e *javaEmitter) OutputPath(b *bundle.Bundle) string {
	dir := strings.ReplaceAll(javaPackage(b.Dir()), ".", "/")
	return filepath.Join(e.genDir, filepath.FromSlash(dir), javaIdentifier(b.BaseName)+".java")
}

func (e *javaEmitter) Render(b *bundle.Bundle, entries []bundle.Entry) ([]byte, error) {
	tmpl, err := templates.JavaTemplate()
	if err != nil {
		return nil, err
	}

	names := assignNames(entries, javaIdentifier, "BUNDLE_NAME")
	data := templates.JavaFile{
		Source:     b.RelPath,
		Package:    javaPackage(b.Dir()),
		ClassName:  javaIdentifier(b.BaseName),
		BundleName: javaLiteral(strings.ReplaceAll(b.Name(), "/", ".")),
	}
	for _, entry := range entries {
		constant, _ := names.Get(entry.Key)
		data.Strings = append(data.Strings, templates.JavaString{
			Constant: constant,
			Literal:  javaLiteral(entry.Key),
			DocKey:   javadoc(entry.Key),
			DocValue: javadoc(entry.Value),
		})
	}

	out, err := mustache.Render(tmpl, data)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// javaLiteral quotes s as a Java string literal using only ASCII.
func javaLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r >= 0x20 && r < 0x7f {
				b.WriteRune(r)
				continue
			}
			writeUnicodeEscape(&b, r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	if r > 0xffff {
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(b, `\u%04x\u%04x`, hi, lo)
		return
	}
	fmt.Fprintf(b, `\u%04x`, r)
}

var javadocReplacer = strings.NewReplacer(
	"*/", "*&#47;",
	"@", "&#64;",
	`\u`, "&#92;u",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// javadoc escapes s for use inside a Javadoc comment.
func javadoc(s string) string {
	return javadocReplacer.Replace(html.EscapeString(s))
}
