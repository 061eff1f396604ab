package snippet

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/rio-labs/riogen/internal/defs"
)

// ProjectTemplate is a named bundle of snippets and metadata describing one
// kind of starter project. Templates are built by the catalog and are never
// modified afterwards.
type ProjectTemplate struct {
	Name         string
	Description  string            // Markdown, copied into the README verbatim.
	Dependencies map[string]string // Package name -> version constraint.

	AssetSnippets     []*Snippet
	ComponentSnippets []*Snippet
	PageSnippets      []*Snippet
	OtherSnippets     []*Snippet // Whole files written into the main module.
	RootInitSnippet   *Snippet   // May be nil.

	// OnAppStart is a Python expression passed as on_app_start, if set.
	OnAppStart *string

	// Source holds the template files. Asset FilePaths are relative to it.
	// When nil, FilePaths are paths on the local filesystem.
	Source fs.FS
}

// IsEmpty reports whether this is the built-in no-op template.
func (t *ProjectTemplate) IsEmpty() bool {
	return t.Name == defs.EmptyTemplateName
}

// DependencyNames returns the dependency package names, sorted.
func (t *ProjectTemplate) DependencyNames() []string {
	return slices.Sorted(maps.Keys(t.Dependencies))
}
