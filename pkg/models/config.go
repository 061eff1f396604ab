package models

// ProjectConfig mirrors the rio.toml file at the root of a generated project.
// The runtime that later loads the project depends on this schema.
type ProjectConfig struct {
	App AppSection `toml:"app" json:"app"`
}

// AppSection represents the [app] table of rio.toml.
type AppSection struct {
	AppType    AppType `toml:"app_type" json:"app_type"`
	MainModule string  `toml:"main_module" json:"main_module"`
}
