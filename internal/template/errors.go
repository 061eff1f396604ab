// Package template renders the files of a generated project: the Python
// sources assembled from snippets and the text files rendered from the
// embedded Go templates.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named file template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a key referenced by a template is missing.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrDuplicatePage indicates two pages would share a class name or URL.
	ErrDuplicatePage = errors.New("template: duplicate page")
)
