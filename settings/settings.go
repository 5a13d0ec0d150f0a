// Package settings holds the configuration of the I18N generation step.
//
// A GenerateI18N value starts out with the defaults of Default, is then
// overlaid by a settings file and the command line through Merge and is
// finally read by the generator. It is not safe for concurrent mutation.
package settings

import (
	"path/filepath"
	"regexp"

	"github.com/napalu/i18n-bundle-gen/filetree"
)

const (
	DefaultKeyFilter = "^I18N_.*"
	DefaultGenDir    = "src/main/java"
	DefaultBundleDir = "src/main/resources"
	DefaultInclude   = "**/*I18N.properties"
	DefaultTarget    = "java"
	DefaultEncoding  = "UTF-8"
)

// GenerateI18N configures the generation of I18N helper sources.
type GenerateI18N struct {
	projectDir string
	enabled    bool
	keyFilter  *regexp.Regexp
	genDir     string
	bundles    *filetree.FileTree
	target     string
	encoding   string
	goPackage  string
}

// Default returns the settings used when nothing is configured, with paths
// resolved against projectDir.
func Default(projectDir string) *GenerateI18N {
	return &GenerateI18N{
		projectDir: projectDir,
		enabled:    false,
		keyFilter:  regexp.MustCompile(DefaultKeyFilter),
		genDir:     filepath.Join(projectDir, filepath.FromSlash(DefaultGenDir)),
		bundles:    filetree.New(filepath.Join(projectDir, filepath.FromSlash(DefaultBundleDir)), DefaultInclude),
		target:     DefaultTarget,
		encoding:   DefaultEncoding,
	}
}

// ProjectDir returns the directory relative paths are resolved against.
func (s *GenerateI18N) ProjectDir() string {
	return s.projectDir
}

// Enabled reports whether generation runs at all. Defaults to false.
func (s *GenerateI18N) Enabled() bool {
	return s.enabled
}

func (s *GenerateI18N) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// KeyFilter selects the bundle keys constants are generated for.
func (s *GenerateI18N) KeyFilter() *regexp.Regexp {
	return s.keyFilter
}

func (s *GenerateI18N) SetKeyFilter(keyFilter *regexp.Regexp) {
	s.keyFilter = keyFilter
}

// GenDir is the root directory of the generated sources.
func (s *GenerateI18N) GenDir() string {
	return s.genDir
}

func (s *GenerateI18N) SetGenDir(genDir string) {
	s.genDir = genDir
}

// Bundles returns the live selector of the bundle files to process.
func (s *GenerateI18N) Bundles() *filetree.FileTree {
	return s.bundles
}

// ConfigureBundles hands the live bundle selector to configure, e.g. to add
// further include or exclude patterns.
func (s *GenerateI18N) ConfigureBundles(configure func(*filetree.FileTree)) {
	configure(s.bundles)
}

// Target names the emitter used for generation ("java" or "go").
func (s *GenerateI18N) Target() string {
	return s.target
}

func (s *GenerateI18N) SetTarget(target string) {
	s.target = target
}

// Encoding is the character encoding of the bundle files.
func (s *GenerateI18N) Encoding() string {
	return s.encoding
}

func (s *GenerateI18N) SetEncoding(encoding string) {
	s.encoding = encoding
}

// GoPackage overrides the package name of generated Go sources. Empty means
// the name is derived from the bundle directory.
func (s *GenerateI18N) GoPackage() string {
	return s.goPackage
}

func (s *GenerateI18N) SetGoPackage(goPackage string) {
	s.goPackage = goPackage
}
