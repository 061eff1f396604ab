// Package cli provides the Cobra command tree and dependency injection
// wiring for riogen. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rio-labs/riogen/internal/catalog"
	"github.com/rio-labs/riogen/internal/config"
	"github.com/rio-labs/riogen/internal/core/project"
	"github.com/rio-labs/riogen/internal/template"
	"github.com/rio-labs/riogen/internal/theme"
	"github.com/rio-labs/riogen/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.ConfigManager
	Catalog  *catalog.Catalog
	Renderer template.Renderer
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root that wires all domain modules
// @MX:REASON: called from Execute and from every command test
// InitDependencies creates the dependencies that need no configuration.
// The catalog and logger are finished by Configure once flags are parsed.
func InitDependencies() {
	deps = &Dependencies{
		Config:   config.NewConfigManager(),
		Headless: ui.NewHeadlessManager(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// Configure loads the user configuration at configPath (empty for the
// default location) and builds the logger, renderer and template catalog
// from it. The configured answers become the headless defaults.
// Diagnostics go to logOut when verbose is set or the configured
// level is debug.
func (d *Dependencies) Configure(configPath string, verbose bool, logOut io.Writer) error {
	cfg, err := d.Config.Load(configPath)
	if err != nil {
		return err
	}

	d.Logger = newLogger(cfg.Log, verbose, logOut)
	d.Logger.Debug("configuration loaded", "path", d.Config.Path(), "from_file", d.Config.FromFile())

	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}
	d.Renderer = template.NewRenderer(fsys)

	cat, err := catalog.NewWithDirs(d.Logger, cfg.Catalog.TemplateDirs...)
	if err != nil {
		return fmt.Errorf("load template catalog: %w", err)
	}
	d.Catalog = cat

	d.Headless.SetDefaults(map[string]string{
		ui.KeyAppType:  string(cfg.Defaults.AppType),
		ui.KeyTemplate: cfg.Defaults.Template,
	})
	return nil
}

// NewAssembler creates a project assembler for the given theme.
func (d *Dependencies) NewAssembler(th theme.Theme) project.Assembler {
	return project.NewAssembler(d.Renderer, th, d.Logger)
}

// newLogger builds the diagnostic logger. Without verbose output and below
// debug level, logs are discarded so they never mix with command output.
func newLogger(lc config.LogConfig, verbose bool, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := parseLevel(lc.Level)
	if verbose {
		level = slog.LevelDebug
	} else if level > slog.LevelDebug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
