package config

import (
	"slices"

	"github.com/rio-labs/riogen/internal/theme"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the configuration for correctness. All problems are
// collected into a single *ValidationErrors.
func Validate(cfg *Config) error {
	var errs []*ValidationError

	errs = append(errs, validateDefaults(&cfg.Defaults)...)
	errs = append(errs, validateTheme(&cfg.Theme)...)
	errs = append(errs, validateLog(&cfg.Log)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateDefaults(d *DefaultsConfig) []*ValidationError {
	if d.AppType != "" && !d.AppType.IsValid() {
		return []*ValidationError{{Key: "defaults.app_type", Value: string(d.AppType), Err: ErrInvalidAppType}}
	}
	return nil
}

func validateTheme(t *ThemeConfig) []*ValidationError {
	var errs []*ValidationError
	for key, value := range map[string]string{
		"theme.primary_color":   t.PrimaryColor,
		"theme.secondary_color": t.SecondaryColor,
	} {
		if value == "" {
			continue // defaults apply
		}
		if _, err := theme.ParseColor(value); err != nil {
			errs = append(errs, &ValidationError{Key: key, Value: value, Err: ErrInvalidColor})
		}
	}
	slices.SortFunc(errs, func(a, b *ValidationError) int {
		if a.Key < b.Key {
			return -1
		}
		if a.Key > b.Key {
			return 1
		}
		return 0
	})
	return errs
}

func validateLog(l *LogConfig) []*ValidationError {
	var errs []*ValidationError
	if l.Level != "" && !slices.Contains(validLogLevels, l.Level) {
		errs = append(errs, &ValidationError{Key: "log.level", Value: l.Level, Err: ErrInvalidLogLevel})
	}
	if l.Format != "" && !slices.Contains(validLogFormats, l.Format) {
		errs = append(errs, &ValidationError{Key: "log.format", Value: l.Format, Err: ErrInvalidLogFormat})
	}
	return errs
}
