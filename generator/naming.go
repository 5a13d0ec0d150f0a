package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/napalu/goopt/v2/types/orderedmap"
	"github.com/napalu/i18n-bundle-gen/bundle"
)

var javaKeywords = map[string]bool{
	"_": true, "abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true, "double": true,
	"else": true, "enum": true, "extends": true, "false": true, "final": true,
	"finally": true, "float": true, "for": true, "goto": true, "if": true,
	"implements": true, "import": true, "instanceof": true, "int": true,
	"interface": true, "long": true, "native": true, "new": true, "null": true,
	"package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true,
	"super": true, "switch": true, "synchronized": true, "this": true,
	"throw": true, "throws": true, "transient": true, "true": true, "try": true,
	"void": true, "volatile": true, "while": true,
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// javaIdentifier turns s into a valid Java identifier.
func javaIdentifier(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	id := b.String()
	if id == "" {
		return "_EMPTY"
	}
	if javaKeywords[id] {
		id += "_"
	}
	return id
}

// javaPackage converts a slash separated bundle directory to a Java package.
func javaPackage(dir string) string {
	if dir == "" {
		return ""
	}
	parts := strings.Split(dir, "/")
	for i, part := range parts {
		parts[i] = javaIdentifier(part)
	}
	return strings.Join(parts, ".")
}

// goExportedName converts a bundle key to an exported Go identifier.
func goExportedName(s string) string {
	name := strcase.ToCamel(s)
	if name == "" {
		return "Key"
	}
	first, size := utf8.DecodeRuneInString(name)
	if !unicode.IsLetter(first) {
		return "N" + name
	}
	return string(unicode.ToUpper(first)) + name[size:]
}

// goPackageName converts the last element of a bundle directory to a Go
// package name.
func goPackageName(dir string) string {
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		dir = dir[i+1:]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(dir) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	name := b.String()
	switch {
	case name == "":
		return "i18n"
	case name[0] >= '0' && name[0] <= '9':
		name = "p" + name
	}
	if goKeywords[name] {
		name += "_"
	}
	return name
}

// nameSet hands out identifiers unique within one generated file.
type nameSet map[string]int

func newNameSet(reserved ...string) nameSet {
	n := make(nameSet)
	for _, r := range reserved {
		n[r] = 1
	}
	return n
}

// unique returns name, or name with the first free numeric suffix starting
// at 2 if it was handed out before.
func (n nameSet) unique(name string) string {
	if n[name] == 0 {
		n[name] = 1
		return name
	}
	for i := n[name] + 1; ; i++ {
		candidate := fmt.Sprintf("%s%d", name, i)
		if n[candidate] == 0 {
			n[name] = i
			n[candidate] = 1
			return candidate
		}
	}
}

// assignNames maps every entry key to an identifier built by convert, in
// entry order.
func assignNames(entries []bundle.Entry, convert func(string) string, reserved ...string) *orderedmap.OrderedMap[string, string] {
	names := newNameSet(reserved...)
	result := orderedmap.NewOrderedMap[string, string]()
	for _, e := range entries {
		result.Set(e.Key, names.unique(convert(e.Key)))
	}
	return result
}
