// Package catalog discovers project templates and loads them into
// snippet.ProjectTemplate values. Built-in templates are compiled into the
// binary; more can be loaded from directories on disk.
package catalog

import "errors"

// Sentinel errors for the catalog package.
var (
	// ErrTemplateUnknown indicates no template with the requested name exists.
	ErrTemplateUnknown = errors.New("catalog: unknown template")

	// ErrInvalidTemplate indicates a template directory is malformed.
	ErrInvalidTemplate = errors.New("catalog: invalid template")
)
