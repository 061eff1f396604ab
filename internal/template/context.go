package template

import (
	"github.com/rio-labs/riogen/internal/defs"
	"github.com/rio-labs/riogen/internal/naming"
	"github.com/rio-labs/riogen/internal/snippet"
	"github.com/rio-labs/riogen/pkg/models"
	"github.com/rio-labs/riogen/pkg/version"
)

// TemplateContext provides data for rendering the file templates.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Project
	ProjectName   string // Raw, human-supplied name.
	ModuleName    string // Python module identifier.
	DirectoryName string // Kebab-case project directory name.
	AppType       models.AppType

	// Template
	TemplateName        string
	TemplateDescription string
	IsEmptyTemplate     bool

	// Meta
	Version string // riogen version
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with sensible defaults,
// then applies any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		ModuleName:      naming.FallbackModuleName,
		DirectoryName:   naming.DeriveDirectoryName(naming.FallbackModuleName),
		AppType:         models.AppTypeWebsite,
		TemplateName:    defs.EmptyTemplateName,
		IsEmptyTemplate: true,
		Version:         version.GetVersion(),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// WithProject sets the raw project name and the names derived from it.
func WithProject(rawName string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = rawName
		c.ModuleName = naming.DeriveModuleName(rawName)
		c.DirectoryName = naming.DeriveDirectoryName(c.ModuleName)
	}
}

// WithAppType sets the application type.
func WithAppType(t models.AppType) ContextOption {
	return func(c *TemplateContext) {
		c.AppType = t
	}
}

// WithTemplate sets the template name and description.
func WithTemplate(t *snippet.ProjectTemplate) ContextOption {
	return func(c *TemplateContext) {
		if t == nil {
			return
		}
		c.TemplateName = t.Name
		c.TemplateDescription = t.Description
		c.IsEmptyTemplate = t.IsEmpty()
	}
}

// WithVersion overrides the generator version.
func WithVersion(v string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = v
	}
}
