// Package models provides shared data models and types for riogen.
//
// # Application Types
//
// Generated projects are either desktop applications or websites:
//   - [AppTypeApp]: started in a local window, gets a __main__.py entry point
//   - [AppTypeWebsite]: served over HTTP
//
// Use [AppType] and its constants:
//
//	t := models.AppTypeWebsite
//	if t.IsValid() {
//	    fmt.Println("Valid type:", t)
//	}
//
// # Project Configuration
//
// [ProjectConfig] is the decoded form of the rio.toml file written at the
// root of every generated project. Its [AppSection] records the application
// type and the name of the main Python module.
package models
