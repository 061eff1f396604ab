package catalog

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/rio-labs/riogen/internal/defs"
	"github.com/rio-labs/riogen/internal/snippet"
)

//go:embed templates
var builtin embed.FS

// Builtin returns the templates compiled into the binary.
func Builtin() (fs.FS, error) {
	return fs.Sub(builtin, "templates")
}

// Catalog is the set of templates available for project creation.
type Catalog struct {
	templates map[string]*snippet.ProjectTemplate
	logger    *slog.Logger
}

// New loads the built-in templates followed by every extra source. A
// template in a later source replaces a built-in one with the same name.
func New(logger *slog.Logger, extra ...fs.FS) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	fsys, err := Builtin()
	if err != nil {
		return nil, fmt.Errorf("open built-in templates: %w", err)
	}

	c := &Catalog{templates: make(map[string]*snippet.ProjectTemplate), logger: logger}
	for _, source := range append([]fs.FS{fsys}, extra...) {
		if err := c.add(source); err != nil {
			return nil, err
		}
	}

	if _, ok := c.templates[defs.EmptyTemplateName]; !ok {
		return nil, fmt.Errorf("%w: built-in %s template is missing", ErrInvalidTemplate, defs.EmptyTemplateName)
	}
	return c, nil
}

// NewWithDirs is like New but loads the extra templates from directories
// on the local filesystem. Missing directories are skipped.
func NewWithDirs(logger *slog.Logger, dirs ...string) (*Catalog, error) {
	var sources []fs.FS
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			if logger != nil {
				logger.Warn("template directory not found, skipping", "path", dir)
			}
			continue
		}
		sources = append(sources, os.DirFS(dir))
	}
	return New(logger, sources...)
}

func (c *Catalog) add(source fs.FS) error {
	templates, err := LoadAll(source)
	if err != nil {
		return err
	}
	for _, t := range templates {
		if _, dup := c.templates[t.Name]; dup {
			c.logger.Info("template overridden", "name", t.Name)
		}
		c.templates[t.Name] = t
		c.logger.Debug("template loaded",
			"name", t.Name,
			"pages", len(t.PageSnippets),
			"components", len(t.ComponentSnippets),
			"assets", len(t.AssetSnippets),
		)
	}
	return nil
}

// Find returns the template with the given name. Matching is
// case-insensitive.
func (c *Catalog) Find(name string) (*snippet.ProjectTemplate, error) {
	if t, ok := c.templates[name]; ok {
		return t, nil
	}
	for _, key := range c.Names() {
		if strings.EqualFold(key, name) {
			return c.templates[key], nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrTemplateUnknown, name, strings.Join(c.Names(), ", "))
}

// List returns all templates, the Empty template first and the rest sorted
// by name.
func (c *Catalog) List() []*snippet.ProjectTemplate {
	list := make([]*snippet.ProjectTemplate, 0, len(c.templates))
	for _, name := range c.Names() {
		list = append(list, c.templates[name])
	}
	return list
}

// Names returns the template names in List order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == defs.EmptyTemplateName:
			return -1
		case b == defs.EmptyTemplateName:
			return 1
		}
		return strings.Compare(a, b)
	})
	return names
}
