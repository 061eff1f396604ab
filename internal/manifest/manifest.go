// Package manifest reads the rio.toml file at the root of a generated project.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/rio-labs/riogen/internal/defs"
	"github.com/rio-labs/riogen/pkg/models"
)

// Sentinel errors for manifest operations.
var (
	// ErrManifestNotFound indicates the project has no rio.toml.
	ErrManifestNotFound = errors.New("manifest: rio.toml not found")

	// ErrInvalidManifest indicates rio.toml could not be parsed or is incomplete.
	ErrInvalidManifest = errors.New("manifest: invalid rio.toml")
)

// Load reads and validates the rio.toml in projectDir.
func Load(projectDir string) (*models.ProjectConfig, error) {
	path := filepath.Join(filepath.Clean(projectDir), defs.RioTOML)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates rio.toml content.
func Parse(data []byte) (*models.ProjectConfig, error) {
	var cfg models.ProjectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %s", ErrInvalidManifest, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if cfg.App.MainModule == "" {
		return nil, fmt.Errorf("%w: app.main_module is required", ErrInvalidManifest)
	}
	// Rio treats a missing app_type as a website.
	if cfg.App.AppType == "" {
		cfg.App.AppType = models.AppTypeWebsite
	}
	if !cfg.App.AppType.IsValid() {
		return nil, fmt.Errorf("%w: app.app_type %q must be one of %v", ErrInvalidManifest, cfg.App.AppType, models.ValidAppTypes())
	}
	return &cfg, nil
}
