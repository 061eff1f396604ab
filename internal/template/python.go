package template

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rio-labs/riogen/internal/naming"
	"github.com/rio-labs/riogen/internal/snippet"
	"github.com/rio-labs/riogen/internal/theme"
)

// rootInitHeader opens the __init__.py of the main module.
const rootInitHeader = `from __future__ import annotations

from pathlib import Path
from typing import *  # type: ignore

import rio

from . import pages
from . import components as comps
`

// componentHeader opens every component and page file.
const componentHeader = `from __future__ import annotations

from dataclasses import KW_ONLY, field
from typing import *  # type: ignore

import rio

from .. import components as comps

`

// RootInitData holds everything the root __init__.py is generated from.
type RootInitData struct {
	RawName    string
	Pages      []*snippet.Snippet
	MainPage   *snippet.Snippet // Served at the site root.
	RootInit   *snippet.Snippet // May be nil.
	OnAppStart *string          // Omitted from the output when nil.
	Theme      theme.Theme
}

// WriteRootInit writes the __init__.py of the project's main module: the
// theme and the app object routing every page to its class.
func WriteRootInit(w io.Writer, data RootInitData) error {
	if err := checkPages(data.Pages, data.MainPage); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(rootInitHeader)
	b.WriteString("\n")

	// Optional sections of the root init snippet, one blank line after each
	wroteSection := false
	for _, name := range []string{snippet.SectionAdditionalImports, snippet.SectionAdditionalCode} {
		if data.RootInit == nil || !data.RootInit.HasSection(name) {
			continue
		}
		text, err := data.RootInit.Section(name)
		if err != nil {
			return err
		}
		b.WriteString(text)
		b.WriteString("\n\n")
		wroteSection = true
	}
	if !wroteSection {
		b.WriteString("\n")
	}

	light := "False"
	if data.Theme.Light {
		light = "True"
	}

	fmt.Fprintf(&b, `# Define a theme for Rio to use.
#
# You can modify the colors here to adapt the appearance of your app or website.
# The most important parameters are listed, but more are available! You can find
# them all in the docs.
theme = rio.Theme.from_color(
    primary_color=rio.Color.from_hex("%s"),
    secondary_color=rio.Color.from_hex("%s"),
    light=%s,
)


# Create the Rio app
app = rio.App(
    name=%s,
    pages=[
`, data.Theme.PrimaryHex(), data.Theme.SecondaryHex(), light, PythonRepr(data.RawName))

	for _, page := range data.Pages {
		fmt.Fprintf(&b, "        rio.Page(\n            page_url=%s,\n            build=pages.%s,\n        ),\n",
			PythonRepr(pageURL(page, data.MainPage)), page.ClassName())
	}
	b.WriteString("    ],\n")

	if data.OnAppStart != nil {
		b.WriteString("    # This function will be called once the app is ready.\n")
		b.WriteString("    #\n")
		b.WriteString("    # `rio run` will also call it again each time the app is reloaded.\n")
		fmt.Fprintf(&b, "    on_app_start=%s,\n", *data.OnAppStart)
	}

	b.WriteString("    theme=theme,\n")
	b.WriteString("    assets_dir=Path(__file__).parent / \"assets\",\n")
	b.WriteString(")\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// pageURL returns the URL segment a page is served at. The main page is
// served at the site root.
func pageURL(page, mainPage *snippet.Snippet) string {
	if page == mainPage {
		return ""
	}
	return naming.URLSegment(page.Stem())
}

// checkPages rejects page lists whose class names or URLs would collide.
func checkPages(pages []*snippet.Snippet, mainPage *snippet.Snippet) error {
	classes := make(map[string]string, len(pages))
	urls := make(map[string]string, len(pages))
	for _, p := range pages {
		if prev, ok := classes[p.ClassName()]; ok {
			return fmt.Errorf("%w: %s and %s both define class %s", ErrDuplicatePage, prev, p.Name, p.ClassName())
		}
		classes[p.ClassName()] = p.Name

		url := pageURL(p, mainPage)
		if prev, ok := urls[url]; ok {
			return fmt.Errorf("%w: %s and %s are both served at %q", ErrDuplicatePage, prev, p.Name, url)
		}
		urls[url] = p.Name
	}
	return nil
}

// WriteComponentFile writes the Python file of a component or page. The
// snippet must have a "component" section; nothing is written otherwise.
func WriteComponentFile(w io.Writer, snip *snippet.Snippet) error {
	component, err := snip.Section(snippet.SectionComponent)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(componentHeader)

	if snip.HasSection(snippet.SectionAdditionalImports) {
		imports, err := snip.Section(snippet.SectionAdditionalImports)
		if err != nil {
			return err
		}
		b.WriteString(imports)
		b.WriteString("\n\n")
	}

	b.WriteString(component)
	if !strings.HasSuffix(component, "\n") {
		b.WriteString("\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// WriteBarrelFile writes an __init__.py that re-exports the class of every
// snippet, in order:
//
//	from .foo import Foo
//	from .bar import Bar
func WriteBarrelFile(w io.Writer, snippets []*snippet.Snippet) error {
	var b strings.Builder
	for _, s := range snippets {
		fmt.Fprintf(&b, "from .%s import %s\n", s.Stem(), s.ClassName())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRequirements writes one "package<constraint>" line per dependency,
// sorted by package name. It writes nothing and returns false when there
// are no dependencies; callers must then not create the file at all.
func WriteRequirements(w io.Writer, tmpl *snippet.ProjectTemplate) (bool, error) {
	if tmpl == nil || len(tmpl.Dependencies) == 0 {
		return false, nil
	}
	var b strings.Builder
	for _, pkg := range tmpl.DependencyNames() {
		b.WriteString(pkg)
		b.WriteString(tmpl.Dependencies[pkg])
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return true, err
}

// PythonRepr renders s as a Python string literal, quoting the way
// Python's repr() does.
func PythonRepr(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case !unicode.IsPrint(r) && r > unicode.MaxASCII:
			if r <= 0xff {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else if r <= 0xffff {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// capitalize mirrors Python's str.capitalize.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
