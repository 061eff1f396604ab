package snippet

import (
	"regexp"
	"strings"
)

// markerPattern matches a whole line that opens or closes a section:
//
//	# <component>
//	# </component>
var markerPattern = regexp.MustCompile(`^[ \t]*#[ \t]*<(/?)([A-Za-z0-9_-]+)>[ \t]*$`)

// marker is a parsed section delimiter line.
type marker struct {
	name    string
	closing bool
}

// parseMarker reports whether line is a section marker.
func parseMarker(line string) (marker, bool) {
	m := markerPattern.FindStringSubmatch(strings.TrimSuffix(line, "\r"))
	if m == nil {
		return marker{}, false
	}
	return marker{name: m[2], closing: m[1] == "/"}, true
}

// openSection tracks a section whose closing marker has not been seen yet.
type openSection struct {
	name      string
	startLine int // index of the first content line
	markerAt  int // 1-based line number of the opening marker
}

// parseSections extracts every named section of source. Sections may nest;
// an outer section keeps the inner marker lines verbatim.
func parseSections(snippetName, source string) (map[string]string, error) {
	lines := strings.Split(source, "\n")
	sections := make(map[string]string)
	var stack []openSection

	for i, line := range lines {
		mk, ok := parseMarker(line)
		if !ok {
			continue
		}

		if !mk.closing {
			if _, dup := sections[mk.name]; dup || isOpen(stack, mk.name) {
				return nil, &SectionError{
					Snippet: snippetName, Section: mk.name, Line: i + 1,
					Reason: "duplicate section", Err: ErrMalformedSection,
				}
			}
			stack = append(stack, openSection{name: mk.name, startLine: i + 1, markerAt: i + 1})
			continue
		}

		if len(stack) == 0 {
			return nil, &SectionError{
				Snippet: snippetName, Section: mk.name, Line: i + 1,
				Reason: "closing marker without opening marker", Err: ErrMalformedSection,
			}
		}
		top := stack[len(stack)-1]
		if top.name != mk.name {
			return nil, &SectionError{
				Snippet: snippetName, Section: mk.name, Line: i + 1,
				Reason: "expected closing marker for " + top.name, Err: ErrMalformedSection,
			}
		}
		stack = stack[:len(stack)-1]
		sections[mk.name] = strings.Join(lines[top.startLine:i], "\n")
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, &SectionError{
			Snippet: snippetName, Section: top.name, Line: top.markerAt,
			Reason: "section is never closed", Err: ErrMalformedSection,
		}
	}

	return sections, nil
}

func isOpen(stack []openSection, name string) bool {
	for _, s := range stack {
		if s.name == name {
			return true
		}
	}
	return false
}

// stripMarkers removes every marker line from source.
func stripMarkers(source string) string {
	lines := strings.Split(source, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := parseMarker(line); ok {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
