package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/rio-labs/riogen/internal/defs"
	"github.com/rio-labs/riogen/internal/snippet"
)

// LoadAll loads every "project-template-<Name>" directory at the root of
// fsys, in directory order.
func LoadAll(fsys fs.FS) ([]*snippet.ProjectTemplate, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read template root: %w", err)
	}

	var templates []*snippet.ProjectTemplate
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), defs.TemplateDirPrefix) {
			continue
		}
		tmpl, err := LoadTemplate(fsys, entry.Name())
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// LoadTemplate loads a single template directory. Snippet sections are
// parsed here, once, so malformed markers surface at load time.
func LoadTemplate(fsys fs.FS, dir string) (*snippet.ProjectTemplate, error) {
	name := strings.TrimPrefix(path.Base(dir), defs.TemplateDirPrefix)
	if name == "" {
		return nil, fmt.Errorf("%w: %s has no name", ErrInvalidTemplate, dir)
	}

	meta, err := loadMeta(fsys, dir)
	if err != nil {
		return nil, err
	}

	source, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("open template %s: %w", dir, err)
	}

	tmpl := &snippet.ProjectTemplate{
		Name:         name,
		Description:  strings.TrimSpace(meta.Description),
		Dependencies: meta.Dependencies,
		OnAppStart:   meta.OnAppStart,
		Source:       source,
	}
	if tmpl.Dependencies == nil {
		tmpl.Dependencies = map[string]string{}
	}

	if tmpl.AssetSnippets, err = loadAssets(source, defs.AssetsDir); err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	if tmpl.ComponentSnippets, err = loadCodeSnippets(source, defs.ComponentsDir); err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	if tmpl.PageSnippets, err = loadCodeSnippets(source, defs.PagesDir); err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	if len(tmpl.PageSnippets) == 0 {
		return nil, fmt.Errorf("%w: template %s has no pages", ErrInvalidTemplate, name)
	}

	others, err := loadCodeSnippets(source, ".")
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	for _, s := range others {
		if s.Name == defs.RootInitPy {
			tmpl.RootInitSnippet = s
			continue
		}
		tmpl.OtherSnippets = append(tmpl.OtherSnippets, s)
	}

	return tmpl, nil
}

// loadCodeSnippets parses every .py file directly inside dir.
func loadCodeSnippets(fsys fs.FS, dir string) ([]*snippet.Snippet, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var snippets []*snippet.Snippet
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), defs.PythonSuffix) {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		s, err := snippet.Parse(entry.Name(), string(data), snippet.WithFilePath(p))
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, s)
	}
	return snippets, nil
}

// loadAssets lists the opaque files inside dir without reading them.
func loadAssets(fsys fs.FS, dir string) ([]*snippet.Snippet, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var assets []*snippet.Snippet
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		assets = append(assets, snippet.NewAsset(entry.Name(), path.Join(dir, entry.Name())))
	}
	return assets, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
