package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"
	"text/template"
)

// funcs are available in every file template.
var funcs = template.FuncMap{
	"capitalize": capitalize, // Python's str.capitalize
	"pyRepr":     PythonRepr,
}

// Renderer renders the file templates of a generated project.
type Renderer interface {
	// Render executes the named template with data. It returns
	// ErrTemplateNotFound for unknown names and ErrMissingTemplateKey when
	// data lacks a referenced field. Values in data are copied verbatim, so
	// user text containing "{{" is never expanded.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS

	mu     sync.Mutex
	parsed map[string]*template.Template
}

// NewRenderer creates a Renderer reading templates from fsys, usually
// EmbeddedTemplates. Parsed templates are cached.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys, parsed: make(map[string]*template.Template)}
}

func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	tmpl, err := r.lookup(templateName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingTemplateKey, templateName, err)
	}

	return buf.Bytes(), nil
}

// lookup returns the parsed template, parsing it on first use.
func (r *renderer) lookup(name string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.parsed[name]; ok {
		return tmpl, nil
	}

	src, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	r.parsed[name] = tmpl
	return tmpl, nil
}
