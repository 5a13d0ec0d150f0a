// Package bundle reads Java resource bundle property files.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/magiconair/properties"
	"golang.org/x/text/language"
)

// Extension is the file extension of resource bundles.
const Extension = ".properties"

// Encoding is the character encoding of a property file.
type Encoding string

const (
	UTF8      Encoding = "UTF-8"
	ISO8859_1 Encoding = "ISO-8859-1"
)

// ParseEncoding maps an encoding name to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "UTF-8", "UTF8":
		return UTF8, nil
	case "ISO-8859-1", "ISO8859-1", "ISO_8859_1", "LATIN1", "LATIN-1":
		return ISO8859_1, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", s)
}

func (e Encoding) loader() *properties.Loader {
	enc := properties.UTF8
	if e == ISO8859_1 {
		enc = properties.ISO_8859_1
	}
	return &properties.Loader{Encoding: enc, DisableExpansion: true}
}

// Entry is a single key of a bundle.
type Entry struct {
	Key     string
	Value   string
	Comment string
}

// Bundle is a parsed property file.
type Bundle struct {
	// Path is the absolute file path.
	Path string
	// RelPath is Path relative to the bundle root, always with '/'.
	RelPath string
	// BaseName is the file name without extension and locale suffix.
	BaseName string
	// Locale is the locale suffix of the file name, language.Und for the
	// base bundle.
	Locale   language.Tag
	Entries  []Entry
	encoding Encoding
}

// Load parses the property file at path. root is the directory the bundle
// name is derived from; it must contain path.
func Load(root, path string, enc Encoding) (*Bundle, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("bundle %s is outside of %s", path, root)
	}

	p, err := enc.loader().LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load bundle %s: %w", path, err)
	}

	name, tag := SplitLocale(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	b := &Bundle{
		Path:     path,
		RelPath:  filepath.ToSlash(rel),
		BaseName: name,
		Locale:   tag,
		encoding: enc,
	}
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		b.Entries = append(b.Entries, Entry{
			Key:     key,
			Value:   value,
			Comment: strings.TrimSpace(p.GetComment(key)),
		})
	}
	return b, nil
}

// Dir returns the directory of the bundle relative to its root, with '/'.
// The root directory itself is "".
func (b *Bundle) Dir() string {
	dir := filepath.ToSlash(filepath.Dir(filepath.FromSlash(b.RelPath)))
	if dir == "." {
		return ""
	}
	return dir
}

// Name returns the slash separated bundle name without locale and
// extension, e.g. "de/carne/MainI18N".
func (b *Bundle) Name() string {
	if dir := b.Dir(); dir != "" {
		return dir + "/" + b.BaseName
	}
	return b.BaseName
}

// Keys returns all keys in file order.
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.Entries))
	for _, e := range b.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Filter returns the entries whose key matches re. A nil re keeps all.
func (b *Bundle) Filter(re *regexp.Regexp) []Entry {
	var result []Entry
	for _, e := range b.Entries {
		if re == nil || re.MatchString(e.Key) {
			result = append(result, e)
		}
	}
	return result
}

// Variants loads the locale variants of a base bundle, i.e. files named
// <BaseName>_<locale>.properties next to it, ordered by locale.
func (b *Bundle) Variants() ([]*Bundle, error) {
	dir := filepath.Dir(b.Path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	root := strings.TrimSuffix(b.Path, filepath.FromSlash(b.RelPath))
	var variants []*Bundle
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		name, tag := SplitLocale(strings.TrimSuffix(entry.Name(), Extension))
		if name != b.BaseName || tag == language.Und {
			continue
		}
		v, err := Load(root, filepath.Join(dir, entry.Name()), b.encoding)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	sort.Slice(variants, func(i, j int) bool {
		return variants[i].Locale.String() < variants[j].Locale.String()
	})
	return variants, nil
}

// SplitLocale splits a Java bundle locale suffix off name. It tries the
// longest suffix first so "Main_de_CH" yields ("Main", de-CH). Names without
// a valid suffix are returned unchanged with language.Und.
func SplitLocale(name string) (string, language.Tag) {
	parts := strings.Split(name, "_")
	for i := 1; i < len(parts); i++ {
		base := strings.Join(parts[:i], "_")
		suffix := parts[i:]
		if base == "" || !isLocaleSuffix(suffix) {
			continue
		}
		tag, err := language.Parse(strings.Join(suffix, "-"))
		if err != nil || tag == language.Und {
			continue
		}
		return base, tag
	}
	return name, language.Und
}

// isLocaleSuffix follows java.util.Locale naming: a two or three letter
// lower case language, optionally followed by a country and a variant.
func isLocaleSuffix(parts []string) bool {
	if len(parts) == 0 || len(parts) > 3 {
		return false
	}
	lang := parts[0]
	if len(lang) < 2 || len(lang) > 3 || strings.ToLower(lang) != lang {
		return false
	}
	if len(parts) > 1 {
		country := parts[1]
		if !(len(country) == 2 && strings.ToUpper(country) == country) && !isDigits(country, 3) {
			return false
		}
	}
	return true
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
