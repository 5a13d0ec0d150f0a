package translations

import (
	"fmt"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/i18n-bundle-gen/generator"
	"github.com/napalu/i18n-bundle-gen/messages"
)

// List prints the selected bundles with the keys that pass the key filter.
// It does not depend on generation being enabled.
func List(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, err := appConfig(parser)
	if err != nil {
		return err
	}

	s, err := loadSettings(cfg)
	if err != nil {
		return err
	}

	bundles, err := generator.New(s).Bundles()
	if err != nil {
		return err
	}
	if len(bundles) == 0 {
		fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppGenerate.NoBundles, displayPath(s.ProjectDir(), s.Bundles().Dir)))
		return nil
	}

	for _, b := range bundles {
		entries := b.Filter(s.KeyFilter())
		fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppList.Bundle, b.RelPath, len(entries), len(b.Entries)))
		for _, e := range entries {
			fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppList.Key, e.Key, e.Value))
		}
	}
	return nil
}
