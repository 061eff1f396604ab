package config

import "github.com/rio-labs/riogen/internal/theme"

// BuildTheme converts the theme section into a theme.Theme. An empty
// primary colour selects the default palette; an empty secondary colour is
// derived from the primary one.
func (c *Config) BuildTheme() (theme.Theme, error) {
	t := c.Theme
	if t.PrimaryColor == "" {
		d := theme.Default()
		d.Light = t.Light
		return d, nil
	}

	primary, err := theme.ParseColor(t.PrimaryColor)
	if err != nil {
		return theme.Theme{}, err
	}
	if t.SecondaryColor == "" {
		return theme.Theme{Primary: primary, Light: t.Light}.WithSecondaryFromPrimary(), nil
	}
	return theme.FromHex(t.PrimaryColor, t.SecondaryColor, t.Light)
}
