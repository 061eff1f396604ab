package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rio-labs/riogen/internal/defs"
)

// @MX:ANCHOR: [AUTO] ConfigManager is the single access point for user configuration
// @MX:REASON: read by the composition root and every command that needs defaults
// ConfigManager provides thread-safe configuration management.
// It must be initialized via Load() before use.
type ConfigManager struct {
	mu     sync.RWMutex
	config *Config
	path   string
	loaded bool
}

// NewConfigManager creates a new ConfigManager instance.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{}
}

// Load reads the configuration file at path, merges it with compiled
// defaults, applies environment overrides and validates the result.
// An empty path means DefaultPath().
func (m *ConfigManager) Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, loaded, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		var verrs *ValidationErrors
		if errors.As(err, &verrs) {
			verrs.Path = path
		}
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = cfg
	m.path = path
	m.loaded = loaded
	return cfg, nil
}

// Get returns the current in-memory configuration, or the compiled
// defaults if Load() has not been called.
func (m *ConfigManager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return NewDefaultConfig()
	}
	return m.config
}

// Path returns the file the configuration was loaded from.
func (m *ConfigManager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// FromFile reports whether the configuration file existed when loaded.
func (m *ConfigManager) FromFile() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Save validates cfg and writes it atomically to path, creating parent
// directories as needed.
func Save(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return atomicWrite(path, data)
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".riogen-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
