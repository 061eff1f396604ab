package snippet

import (
	"path"
	"slices"
	"strings"

	"github.com/rio-labs/riogen/internal/defs"
	"github.com/rio-labs/riogen/internal/naming"
)

// Well-known section names.
const (
	SectionComponent         = "component"
	SectionAdditionalImports = "additional-imports"
	SectionAdditionalCode    = "additional-code"
)

// Snippet is a named source fragment. Its sections are parsed once, when
// the snippet is created, and the snippet is read-only afterwards.
type Snippet struct {
	Name     string // File-like name, e.g. "sample_page.py".
	Source   string // Raw source text.
	FilePath string // Origin of the snippet, used to copy binary assets.

	sections map[string]string
}

// Option configures a Snippet during Parse.
type Option func(*Snippet)

// WithFilePath records where the snippet was loaded from.
func WithFilePath(p string) Option {
	return func(s *Snippet) {
		s.FilePath = p
	}
}

// Parse creates a Snippet and extracts its sections. It returns a
// *SectionError wrapping ErrMalformedSection if markers are duplicated or
// unmatched.
func Parse(name, source string, opts ...Option) (*Snippet, error) {
	sections, err := parseSections(name, source)
	if err != nil {
		return nil, err
	}
	s := &Snippet{Name: name, Source: source, sections: sections}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustParse is like Parse but panics on error. Use it for snippets that
// are compiled into the binary.
func MustParse(name, source string, opts ...Option) *Snippet {
	s, err := Parse(name, source, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewAsset creates a snippet for an opaque file that is copied verbatim.
func NewAsset(name, filePath string) *Snippet {
	return &Snippet{Name: name, FilePath: filePath}
}

// Section returns the text strictly between the markers of the named
// section, byte for byte.
func (s *Snippet) Section(name string) (string, error) {
	text, ok := s.sections[name]
	if !ok {
		return "", &SectionError{Snippet: s.Name, Section: name, Err: ErrSectionNotFound}
	}
	return text, nil
}

// HasSection reports whether the snippet defines the named section.
func (s *Snippet) HasSection(name string) bool {
	_, ok := s.sections[name]
	return ok
}

// SectionNames returns the names of all sections, sorted.
func (s *Snippet) SectionNames() []string {
	names := make([]string, 0, len(s.sections))
	for name := range s.sections {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// StrippedCode returns the source with all section marker lines removed.
// Used for snippets that are written out as standalone files.
func (s *Snippet) StrippedCode() string {
	return stripMarkers(s.Source)
}

// Stem returns the snippet name without its directory and .py suffix.
func (s *Snippet) Stem() string {
	return strings.TrimSuffix(path.Base(s.Name), defs.PythonSuffix)
}

// ClassName returns the name of the class the snippet defines.
func (s *Snippet) ClassName() string {
	return naming.ClassName(s.Stem())
}
