package models

// AppType represents the kind of Rio project being generated.
type AppType string

const (
	// AppTypeApp is a desktop application, started with a local window.
	AppTypeApp AppType = "app"

	// AppTypeWebsite is a website served over HTTP.
	AppTypeWebsite AppType = "website"
)

// ValidAppTypes returns all valid application type values.
func ValidAppTypes() []AppType {
	return []AppType{AppTypeApp, AppTypeWebsite}
}

// IsValid checks if the application type is a valid value.
func (t AppType) IsValid() bool {
	switch t {
	case AppTypeApp, AppTypeWebsite:
		return true
	}
	return false
}

// String returns the raw value as written to rio.toml.
func (t AppType) String() string {
	return string(t)
}
