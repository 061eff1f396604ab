package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rio-labs/riogen/pkg/models"
)

// maxConfigSize bounds the configuration file read into memory.
const maxConfigSize = 1 << 20

// DefaultPath returns the configuration file location: $RIOGEN_CONFIG if
// set, otherwise riogen/config.yaml below the user configuration directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return filepath.Clean(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, "riogen", "config.yaml"), nil
}

// loadFile reads the configuration file at path on top of the compiled
// defaults. A missing file yields the defaults and loaded == false.
func loadFile(path string) (cfg *Config, loaded bool, err error) {
	cfg = NewDefaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, false, nil
		}
		return nil, false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return nil, false, fmt.Errorf("%w: %s is larger than %d bytes", ErrInvalidConfig, path, maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	if cfg.Catalog.TemplateDirs == nil {
		cfg.Catalog.TemplateDirs = []string{}
	}

	return cfg, true, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if appType := os.Getenv(EnvAppType); appType != "" {
		cfg.Defaults.AppType = appTypeFromEnv(appType)
	}
	if tmpl := os.Getenv(EnvTemplate); tmpl != "" {
		cfg.Defaults.Template = tmpl
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
}

func appTypeFromEnv(v string) models.AppType {
	return models.AppType(strings.ToLower(strings.TrimSpace(v)))
}
