package options

import (
	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
)

// GenerateCmd command configuration. Every flag overrides the settings file
// when set.
type GenerateCmd struct {
	Enable    bool     `goopt:"short:e;desc:Enable generation regardless of the settings file;descKey:app.generate_cmd.enable_desc"`
	KeyFilter string   `goopt:"short:k;desc:Regular expression selecting the bundle keys to generate;descKey:app.generate_cmd.key_filter_desc"`
	GenDir    string   `goopt:"short:o;desc:Target directory of the generated sources;descKey:app.generate_cmd.gen_dir_desc"`
	BundleDir string   `goopt:"short:b;desc:Root directory of the resource bundles;descKey:app.generate_cmd.bundle_dir_desc"`
	Include   []string `goopt:"short:i;desc:Additional include patterns for bundle files;descKey:app.generate_cmd.include_desc"`
	Exclude   []string `goopt:"short:x;desc:Exclude patterns for bundle files;descKey:app.generate_cmd.exclude_desc"`
	Target    string   `goopt:"short:t;desc:Generation target (java, go);descKey:app.generate_cmd.target_desc"`
	Encoding  string   `goopt:"desc:Character encoding of the bundle files (UTF-8, ISO-8859-1);descKey:app.generate_cmd.encoding_desc"`
	GoPackage string   `goopt:"short:p;desc:Package name of generated Go sources;descKey:app.generate_cmd.go_package_desc"`
	Exec      goopt.CommandFunc
}

// ListCmd command configuration
type ListCmd struct {
	Exec goopt.CommandFunc
}

// CheckCmd command configuration
type CheckCmd struct {
	Strict bool `goopt:"short:s;desc:Exit with error if locale variants are inconsistent;descKey:app.check_cmd.strict_desc"`
	Exec   goopt.CommandFunc
}

// InitCmd command configuration
type InitCmd struct {
	Force bool `goopt:"short:f;desc:Force overwrite of an existing settings file;descKey:app.init_cmd.force_desc"`
	Exec  goopt.CommandFunc
}

// AppConfig main application configuration
type AppConfig struct {
	ProjectDir string          `goopt:"short:C;desc:Project directory relative paths are resolved against;default:.;descKey:app.app_config.project_dir_desc"`
	Config     string          `goopt:"short:c;desc:Settings file (TOML or YAML), relative to the project directory;default:i18n-gen.toml;descKey:app.app_config.config_desc"`
	Verbose    bool            `goopt:"short:v;desc:Enable verbose output;descKey:app.app_config.verbose_desc"`
	Language   string          `goopt:"short:l;desc:Language for output (en, de);descKey:app.app_config.language_desc"`
	Help       bool            `goopt:"short:h;desc:Show help;descKey:app.app_config.help_desc"`
	Generate   GenerateCmd     `goopt:"kind:command;name:generate;desc:Generate I18N helper sources from resource bundles;descKey:app.app_config.generate_desc"`
	List       ListCmd         `goopt:"kind:command;name:list;desc:List the selected bundles and their eligible keys;descKey:app.app_config.list_desc"`
	Check      CheckCmd        `goopt:"kind:command;name:check;desc:Check locale variants against their base bundles;descKey:app.app_config.check_desc"`
	Init       InitCmd         `goopt:"kind:command;name:init;desc:Write a default settings file;descKey:app.app_config.init_desc"`
	TR         i18n.Translator `ignore:"true"` // Translator for messages
}
