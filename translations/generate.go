package translations

import (
	"context"
	"fmt"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/i18n-bundle-gen/generator"
	"github.com/napalu/i18n-bundle-gen/messages"
)

func Generate(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, err := appConfig(parser)
	if err != nil {
		return err
	}

	s, err := loadSettings(cfg, generateOverrides(cfg.Generate))
	if err != nil {
		return err
	}

	result, err := generator.New(s).Run(context.Background())
	if err != nil {
		return err
	}
	if result.Disabled {
		fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppGenerate.Disabled))
		return nil
	}
	if len(result.Bundles) == 0 {
		fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppGenerate.NoBundles, displayPath(s.ProjectDir(), s.Bundles().Dir)))
		return nil
	}

	for _, b := range result.Bundles {
		switch b.Status {
		case generator.Written:
			fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppGenerate.Written, displayPath(s.ProjectDir(), b.Output), b.Keys))
		case generator.Unchanged:
			if cfg.Verbose {
				fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppGenerate.Unchanged, displayPath(s.ProjectDir(), b.Output)))
			}
		case generator.Skipped:
			if cfg.Verbose {
				fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppGenerate.Skipped, b.Source, s.KeyFilter()))
			}
		}
	}
	fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppGenerate.Summary,
		len(result.Bundles),
		result.Count(generator.Written),
		result.Count(generator.Unchanged),
		result.Count(generator.Skipped)))
	return nil
}
