package translations

import (
	"fmt"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/i18n-bundle-gen/messages"
	"github.com/napalu/i18n-bundle-gen/settings"
)

func Init(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, err := appConfig(parser)
	if err != nil {
		return err
	}

	dir, err := projectDir(cfg)
	if err != nil {
		return err
	}
	path := settingsPath(cfg, dir)

	created, err := settings.WriteDefault(path, cfg.Init.Force)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppInit.FileExists, displayPath(dir, path)))
		return nil
	}

	fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppInit.CreatedFile, displayPath(dir, path)))
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, cfg.TR.T(messages.Keys.AppInit.NextSteps))
	fmt.Fprintf(stdout, "1. %s\n", cfg.TR.T(messages.Keys.AppInit.Step1, displayPath(dir, path)))
	fmt.Fprintf(stdout, "2. %s\n", cfg.TR.T(messages.Keys.AppInit.Step2))
	return nil
}
