package defs

// Common file names written into a generated project.
const (
	// RioTOML is the project configuration manifest read by the Rio runtime.
	RioTOML = "rio.toml"

	// ReadmeMD is the generated project README.
	ReadmeMD = "README.md"

	// RequirementsTXT lists the template's Python dependencies.
	RequirementsTXT = "requirements.txt"

	// InitPy is the package init file of every generated Python package.
	InitPy = "__init__.py"

	// MainPy is the entry point stub written for app projects.
	MainPy = "__main__.py"

	// PythonSuffix is the suffix every code snippet name ends with.
	PythonSuffix = ".py"
)

// Subdirectories of the generated main module.
const (
	AssetsDir     = "assets"
	ComponentsDir = "components"
	PagesDir      = "pages"
)

// Template catalog layout.
const (
	// TemplateDirPrefix prefixes every template directory name in a catalog.
	TemplateDirPrefix = "project-template-"

	// MetaYAML holds a template's description, dependencies and hooks.
	MetaYAML = "meta.yaml"

	// RootInitPy supplies the additional imports and code of the root init.
	RootInitPy = "root_init.py"

	// EmptyTemplateName is the built-in no-op template.
	EmptyTemplateName = "Empty"
)
