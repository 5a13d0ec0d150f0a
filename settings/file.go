package settings

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/napalu/i18n-bundle-gen/errors"
	"github.com/napalu/i18n-bundle-gen/filetree"
	"github.com/napalu/i18n-bundle-gen/util"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the settings file looked up in the project directory.
const DefaultFile = "i18n-gen.toml"

// File is the layout of a settings file.
type File struct {
	GenerateI18N Overrides `toml:"generate-i18n" yaml:"generate-i18n"`
}

// Overrides is a partial GenerateI18N. Unset fields leave the current value
// alone when merged.
type Overrides struct {
	Enabled   *bool           `toml:"enabled,omitempty" yaml:"enabled,omitempty"`
	KeyFilter *string         `toml:"key-filter,omitempty" yaml:"key-filter,omitempty"`
	GenDir    *string         `toml:"gen-dir,omitempty" yaml:"gen-dir,omitempty"`
	Target    *string         `toml:"target,omitempty" yaml:"target,omitempty"`
	Encoding  *string         `toml:"encoding,omitempty" yaml:"encoding,omitempty"`
	GoPackage *string         `toml:"go-package,omitempty" yaml:"go-package,omitempty"`
	Bundles   BundleOverrides `toml:"bundles,omitempty" yaml:"bundles,omitempty"`
}

// BundleOverrides adjusts the bundle selector.
type BundleOverrides struct {
	Dir     *string  `toml:"dir,omitempty" yaml:"dir,omitempty"`
	Include []string `toml:"include,omitempty" yaml:"include,omitempty"`
	Exclude []string `toml:"exclude,omitempty" yaml:"exclude,omitempty"`
	// ReplaceIncludes drops the current include patterns before Include is
	// applied.
	ReplaceIncludes bool `toml:"replace-includes,omitempty" yaml:"replace-includes,omitempty"`
}

// LoadFile reads the overrides of a settings file. YAML is used for .yaml
// and .yml files, TOML otherwise. A missing file yields empty overrides.
func LoadFile(path string) (Overrides, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Overrides{}, nil
	}
	if err != nil {
		return Overrides{}, errors.ErrFailedToLoadSettings.WithArgs(path).Wrap(err)
	}

	var f File
	if isYAML(path) {
		err = yaml.Unmarshal(contents, &f)
	} else {
		err = toml.Unmarshal(contents, &f)
	}
	if err != nil {
		return Overrides{}, errors.ErrFailedToLoadSettings.WithArgs(path).Wrap(err)
	}
	return f.GenerateI18N, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Merge applies the set fields of o. Relative paths are resolved against
// the project directory, bundle patterns are added to the live selector.
// The key filter is compiled here; an invalid pattern is reported as
// ErrInvalidKeyFilter and leaves s unchanged.
func (s *GenerateI18N) Merge(o Overrides) error {
	var keyFilter *regexp.Regexp
	if util.NotEmpty(o.KeyFilter) {
		re, err := regexp.Compile(*o.KeyFilter)
		if err != nil {
			return errors.ErrInvalidKeyFilter.WithArgs(*o.KeyFilter).Wrap(err)
		}
		keyFilter = re
	}

	if o.Enabled != nil {
		s.SetEnabled(*o.Enabled)
	}
	if keyFilter != nil {
		s.SetKeyFilter(keyFilter)
	}
	if util.NotEmpty(o.GenDir) {
		s.SetGenDir(s.resolve(*o.GenDir))
	}
	if util.NotEmpty(o.Target) {
		s.SetTarget(strings.ToLower(*o.Target))
	}
	if util.NotEmpty(o.Encoding) {
		s.SetEncoding(*o.Encoding)
	}
	if o.GoPackage != nil {
		s.SetGoPackage(util.Safe(o.GoPackage))
	}

	s.ConfigureBundles(func(bundles *filetree.FileTree) {
		if util.NotEmpty(o.Bundles.Dir) {
			bundles.Dir = s.resolve(*o.Bundles.Dir)
		}
		if o.Bundles.ReplaceIncludes {
			bundles.Includes = nil
		}
		bundles.Include(o.Bundles.Include...).Exclude(o.Bundles.Exclude...)
	})
	return nil
}

func (s *GenerateI18N) resolve(path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.projectDir, path)
}

const defaultTOML = `# i18n-bundle-gen settings
[generate-i18n]
enabled = false
key-filter = "^I18N_.*"
gen-dir = "src/main/java"
# java or go
target = "java"
# UTF-8 or ISO-8859-1
encoding = "UTF-8"

[generate-i18n.bundles]
dir = "src/main/resources"
include = ["**/*I18N.properties"]
exclude = []
`

const defaultYAML = `# i18n-bundle-gen settings
generate-i18n:
  enabled: false
  key-filter: "^I18N_.*"
  gen-dir: src/main/java
  # java or go
  target: java
  # UTF-8 or ISO-8859-1
  encoding: UTF-8
  bundles:
    dir: src/main/resources
    include:
      - "**/*I18N.properties"
    exclude: []
`

// WriteDefault writes a settings file holding the defaults. An existing file
// is only replaced if force is set; created reports whether it was written.
func WriteDefault(path string, force bool) (created bool, err error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.ErrFailedToWriteSettings.WithArgs(path).Wrap(err)
	}

	contents := defaultTOML
	if isYAML(path) {
		contents = defaultYAML
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return false, errors.ErrFailedToWriteSettings.WithArgs(path).Wrap(err)
	}
	return true, nil
}
