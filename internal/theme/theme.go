// Package theme holds the colour palette written into the theme declaration
// of a generated project. The palette is an explicit value injected into
// the assembler rather than a package-level default.
package theme

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Default palette of a freshly generated project.
const (
	DefaultPrimaryHex   = "#01dffd"
	DefaultSecondaryHex = "#0083ff"
)

// ErrInvalidColor indicates a colour string could not be parsed.
var ErrInvalidColor = errors.New("theme: invalid color")

// Theme is the palette used to render `rio.Theme.from_color(...)`.
type Theme struct {
	Primary   colorful.Color
	Secondary colorful.Color
	Light     bool
}

// Default returns the default light theme.
func Default() Theme {
	t, err := FromHex(DefaultPrimaryHex, DefaultSecondaryHex, true)
	if err != nil {
		panic(err)
	}
	return t
}

// FromHex builds a theme from two hex colours. The leading '#' is optional
// and the three-digit short form is accepted.
func FromHex(primary, secondary string, light bool) (Theme, error) {
	p, err := ParseColor(primary)
	if err != nil {
		return Theme{}, err
	}
	s, err := ParseColor(secondary)
	if err != nil {
		return Theme{}, err
	}
	return Theme{Primary: p, Secondary: s, Light: light}, nil
}

// ParseColor parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseColor(s string) (colorful.Color, error) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// PrimaryHex returns the primary colour as lowercase "rrggbb".
func (t Theme) PrimaryHex() string {
	return hexDigits(t.Primary)
}

// SecondaryHex returns the secondary colour as lowercase "rrggbb".
func (t Theme) SecondaryHex() string {
	return hexDigits(t.Secondary)
}

// WithSecondaryFromPrimary derives the secondary colour by rotating the
// primary hue, for palettes where only one colour was chosen.
func (t Theme) WithSecondaryFromPrimary() Theme {
	h, c, l := t.Primary.Hcl()
	t.Secondary = colorful.Hcl(h+30, c, l).Clamped()
	return t
}

func hexDigits(c colorful.Color) string {
	return strings.TrimPrefix(c.Clamped().Hex(), "#")
}
