package translations

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/i18n-bundle-gen/errors"
	"github.com/napalu/i18n-bundle-gen/internal/log"
	"github.com/napalu/i18n-bundle-gen/messages"
	"github.com/napalu/i18n-bundle-gen/options"
	"github.com/napalu/i18n-bundle-gen/settings"
)

// stdout receives the user facing output of all commands.
var stdout io.Writer = os.Stdout

func appConfig(parser *goopt.Parser) (*options.AppConfig, error) {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return nil, errors.ErrFailedToGetConfig
	}
	if cfg.TR == nil {
		cfg.TR = messages.Bundle()
	}
	return cfg, nil
}

func projectDir(cfg *options.AppConfig) (string, error) {
	dir := cfg.ProjectDir
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(dir)
}

// settingsPath returns the absolute settings file path.
func settingsPath(cfg *options.AppConfig, projectDir string) string {
	path := cfg.Config
	if path == "" {
		path = settings.DefaultFile
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}

// loadSettings builds the settings from the defaults, the settings file and
// the given command line overrides, in that order.
func loadSettings(cfg *options.AppConfig, overrides ...settings.Overrides) (*settings.GenerateI18N, error) {
	logger := log.WithComponent("cli")

	dir, err := projectDir(cfg)
	if err != nil {
		return nil, err
	}
	s := settings.Default(dir)

	path := settingsPath(cfg, dir)
	if cfg.Verbose {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppSettings.Using, displayPath(dir, path)))
		} else {
			fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppSettings.NotFound, displayPath(dir, path)))
		}
	}

	fileOverrides, err := settings.LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, o := range append([]settings.Overrides{fileOverrides}, overrides...) {
		if err := s.Merge(o); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Str("project", dir).
		Bool("enabled", s.Enabled()).
		Str("target", s.Target()).
		Str("bundles", s.Bundles().String()).
		Str("gen_dir", s.GenDir()).
		Msg("settings loaded")
	return s, nil
}

// generateOverrides converts the generate command flags to settings
// overrides. Flags that were not given stay unset.
func generateOverrides(cmd options.GenerateCmd) settings.Overrides {
	var o settings.Overrides
	if cmd.Enable {
		enabled := true
		o.Enabled = &enabled
	}
	o.KeyFilter = optional(cmd.KeyFilter)
	o.GenDir = optional(cmd.GenDir)
	o.Target = optional(cmd.Target)
	o.Encoding = optional(cmd.Encoding)
	o.GoPackage = optional(cmd.GoPackage)
	o.Bundles.Dir = optional(cmd.BundleDir)
	o.Bundles.Include = cmd.Include
	o.Bundles.Exclude = cmd.Exclude
	return o
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// displayPath shortens path to be relative to dir where possible.
func displayPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
