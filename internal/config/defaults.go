package config

import (
	"github.com/rio-labs/riogen/internal/defs"
	"github.com/rio-labs/riogen/internal/theme"
	"github.com/rio-labs/riogen/pkg/models"
)

// Default value constants.
const (
	DefaultAppType  = models.AppTypeWebsite
	DefaultTemplate = defs.EmptyTemplateName

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Environment variables overriding file values.
const (
	EnvConfigPath = "RIOGEN_CONFIG"
	EnvAppType    = "RIOGEN_APP_TYPE"
	EnvTemplate   = "RIOGEN_TEMPLATE"
	EnvLogLevel   = "RIOGEN_LOG_LEVEL"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			AppType:  DefaultAppType,
			Template: DefaultTemplate,
		},
		Theme: ThemeConfig{
			PrimaryColor:   theme.DefaultPrimaryHex,
			SecondaryColor: theme.DefaultSecondaryHex,
			Light:          true,
		},
		Catalog: CatalogConfig{
			TemplateDirs: []string{},
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
