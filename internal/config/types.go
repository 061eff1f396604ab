package config

import "github.com/rio-labs/riogen/pkg/models"

// Config is the root of the riogen user configuration file.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Theme    ThemeConfig    `yaml:"theme"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
}

// DefaultsConfig holds the answers used when the create command is not
// told otherwise.
type DefaultsConfig struct {
	AppType  models.AppType `yaml:"app_type"`
	Template string         `yaml:"template"`
}

// ThemeConfig holds the colours written into the generated root module.
type ThemeConfig struct {
	PrimaryColor   string `yaml:"primary_color"`
	SecondaryColor string `yaml:"secondary_color"`
	Light          bool   `yaml:"light"`
}

// CatalogConfig lists extra template directories, loaded after the
// built-in templates. Later directories override earlier ones by name.
type CatalogConfig struct {
	TemplateDirs []string `yaml:"template_dirs"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
