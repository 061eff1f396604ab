package template

import (
	"embed"
	"io/fs"
)

// File templates rendered for every generated project.
const (
	ReadmeTemplate  = "README.md.tmpl"
	RioTOMLTemplate = "rio.toml.tmpl"
	MainPyTemplate  = "__main__.py.tmpl"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// EmbeddedTemplates returns the file templates compiled into the binary.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
