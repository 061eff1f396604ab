// Package snippet models the named source fragments project templates are
// made of, and the delimited sections that are spliced into generated code.
package snippet

import (
	"errors"
	"fmt"
)

// Sentinel errors for the snippet package.
var (
	// ErrSectionNotFound indicates a requested section is absent from a snippet.
	ErrSectionNotFound = errors.New("snippet: section not found")

	// ErrMalformedSection indicates duplicate or unmatched section markers.
	ErrMalformedSection = errors.New("snippet: malformed section")
)

// SectionError carries the snippet and section a failure relates to.
type SectionError struct {
	Snippet string // Snippet name, e.g. "sample_page.py".
	Section string // Section name, e.g. "component".
	Line    int    // 1-based line of the offending marker, 0 if not applicable.
	Reason  string // Extra detail for malformed sections.
	Err     error  // ErrSectionNotFound or ErrMalformedSection.
}

// Error implements the error interface.
func (e *SectionError) Error() string {
	msg := fmt.Sprintf("%v: %q in %s", e.Err, e.Section, e.Snippet)
	if e.Line > 0 {
		msg += fmt.Sprintf(":%d", e.Line)
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Unwrap returns the underlying sentinel error.
func (e *SectionError) Unwrap() error {
	return e.Err
}
