// Package naming derives the identifiers a generated project is built from:
// the Python module name, the project directory name, the class name
// defined by a snippet and the URL segment of a page.
//
// Every function here is pure and never fails.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/unicode/norm"
)

// FallbackModuleName is used when nothing usable is left of a raw name.
const FallbackModuleName = "rio_app"

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	underscoreRuns       = regexp.MustCompile(`_{2,}`)
)

// DeriveModuleName turns an arbitrary human-supplied project name into a
// lowercase, underscore-separated Python module identifier.
//
// The result only contains [a-z0-9_], never starts with a digit and is
// never empty.
func DeriveModuleName(raw string) string {
	name := strcase.ToSnake(foldToASCII(raw))
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isIdentifierRune(r) {
			b.WriteRune(r)
		}
	}
	name = StripInvalidFilenameCharacters(b.String())

	name = underscoreRuns.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "0123456789_")
	name = strings.TrimRight(name, "_")

	if name == "" {
		return FallbackModuleName
	}
	return name
}

// DeriveDirectoryName returns the kebab-case directory name for a module.
func DeriveDirectoryName(module string) string {
	return strings.ReplaceAll(module, "_", "-")
}

// ModuleNameFromDirectory reverses DeriveDirectoryName.
func ModuleNameFromDirectory(dir string) string {
	return strings.ReplaceAll(dir, "-", "_")
}

// ClassName returns the name of the class defined in a snippet with the
// given file stem, e.g. "sample_component" -> "SampleComponent".
func ClassName(stem string) string {
	var b strings.Builder
	for part := range strings.SplitSeq(stem, "_") {
		b.WriteString(capitalize(part))
	}
	return b.String()
}

// URLSegment returns the URL segment a page with the given stem is served at.
func URLSegment(stem string) string {
	return strings.ToLower(strings.ReplaceAll(stem, "_", "-"))
}

// StripInvalidFilenameCharacters removes characters that are not allowed in
// file names on common platforms.
func StripInvalidFilenameCharacters(name string) string {
	return invalidFilenameChars.ReplaceAllString(name, "")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// foldToASCII decomposes accented characters and drops everything that has
// no ASCII base form. Spaces survive so word boundaries are kept.
func foldToASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r > unicode.MaxASCII:
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isIdentifierRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
