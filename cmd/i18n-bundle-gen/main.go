package main

//go:generate goopt-i18n-gen -i "../../messages/locales/*.json" validate -s "../../options/*.go" -g
//go:generate goopt-i18n-gen -i "../../messages/locales/*.json" generate -o ../../messages/messages.go -p messages

import (
	"fmt"
	"os"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/i18n-bundle-gen/errors"
	"github.com/napalu/i18n-bundle-gen/internal/log"
	"github.com/napalu/i18n-bundle-gen/messages"
	"github.com/napalu/i18n-bundle-gen/options"
	"github.com/napalu/i18n-bundle-gen/translations"
	"golang.org/x/text/language"
)

func main() {
	cfg := &options.AppConfig{}

	// Assign command functions
	cfg.Generate.Exec = translations.Generate
	cfg.List.Exec = translations.List
	cfg.Check.Exec = translations.Check
	cfg.Init.Exec = translations.Init

	bundle := messages.Bundle()
	cfg.TR = bundle

	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithEnvNameConverter(goopt.ToKebabCase),
		goopt.WithCommandNameConverter(goopt.ToKebabCase),
		goopt.WithUserBundle(bundle))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	success := parser.Parse(os.Args)

	// Handle language switching, the system locale applies without --language
	lang := messages.DetectLanguage()
	if cfg.Language != "" {
		lang = messages.ParseLanguage(cfg.Language)
	}
	if lang != language.Und && lang != bundle.GetDefaultLanguage() {
		bundle.SetDefaultLanguage(lang)
		// goopt's own messages follow the tool language
		i18n.Default().SetDefaultLanguage(lang)
	}

	logConfig := log.Config{}
	if cfg.Verbose {
		logConfig.Level = "debug"
	}
	log.Configure(logConfig)

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(0)
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.AppError.ParseError, err))
			fmt.Fprintln(os.Stderr)
		}
		parser.PrintUsageWithGroups(os.Stderr)
		os.Exit(1)
	}

	if errCount := parser.ExecuteCommands(); errCount > 0 {
		for _, cmdErr := range parser.GetCommandExecutionErrors() {
			fmt.Fprintln(os.Stderr, errors.ErrCommandFailed.WithArgs(cmdErr.Key, cmdErr.Value))
		}
		os.Exit(1)
	}
}
