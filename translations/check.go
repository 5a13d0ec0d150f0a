package translations

import (
	"fmt"
	"regexp"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/i18n-bundle-gen/bundle"
	"github.com/napalu/i18n-bundle-gen/errors"
	"github.com/napalu/i18n-bundle-gen/generator"
	"github.com/napalu/i18n-bundle-gen/messages"
)

// finding is a key that differs between a base bundle and a locale variant.
type finding struct {
	Variant string
	Key     string
	// Missing is set for base keys absent from the variant, otherwise the
	// key only exists in the variant.
	Missing bool
}

// compareVariant reports the filtered keys of base missing from variant and
// the filtered keys of variant unknown to base, each in file order.
func compareVariant(base, variant *bundle.Bundle, keyFilter *regexp.Regexp) []finding {
	baseKeys := keySet(base.Filter(keyFilter))
	variantEntries := variant.Filter(keyFilter)
	variantKeys := keySet(variantEntries)

	var findings []finding
	for _, e := range base.Filter(keyFilter) {
		if !variantKeys[e.Key] {
			findings = append(findings, finding{Variant: variant.RelPath, Key: e.Key, Missing: true})
		}
	}
	for _, e := range variantEntries {
		if !baseKeys[e.Key] {
			findings = append(findings, finding{Variant: variant.RelPath, Key: e.Key})
		}
	}
	return findings
}

func keySet(entries []bundle.Entry) map[string]bool {
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		set[e.Key] = true
	}
	return set
}

// Check compares the locale variants of every selected bundle with the base
// bundle. With --strict any finding fails the command.
func Check(parser *goopt.Parser, _ *goopt.Command) error {
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

	issues := 0
	for _, b := range bundles {
		variants, err := b.Variants()
		if err != nil {
			return errors.ErrFailedToLoadBundle.WithArgs(b.RelPath).Wrap(err)
		}
		if len(variants) == 0 {
			fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppCheck.NoVariants, b.RelPath))
			continue
		}

		var findings []finding
		for _, v := range variants {
			findings = append(findings, compareVariant(b, v, s.KeyFilter())...)
		}
		if len(findings) == 0 {
			fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppCheck.Consistent, b.RelPath, len(variants)))
			continue
		}
		for _, f := range findings {
			key := messages.Keys.AppCheck.Extra
			if f.Missing {
				key = messages.Keys.AppCheck.Missing
			}
			fmt.Fprintln(stdout, cfg.TR.T(key, f.Variant, f.Key))
		}
		issues += len(findings)
	}

	if issues > 0 && cfg.Check.Strict {
		return errors.ErrCheckFailed.WithArgs(issues)
	}
	return nil
}
