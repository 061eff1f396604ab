package naming

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNamingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: module names are non-empty lowercase identifiers
	properties.Property("module name is a valid identifier", prop.ForAll(
		func(raw string) bool {
			name := DeriveModuleName(raw)
			if name == "" {
				return false
			}
			if unicode.IsDigit(rune(name[0])) {
				return false
			}
			for _, r := range name {
				if !isIdentifierRune(r) {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	// Property: printable input behaves the same as arbitrary input
	properties.Property("printable names are valid identifiers", prop.ForAll(
		func(raw string) bool {
			name := DeriveModuleName(raw)
			return name != "" && strings.Trim(name, "abcdefghijklmnopqrstuvwxyz0123456789_") == ""
		},
		gen.RegexMatch(`^[ -~]{0,40}$`),
	))

	// Property: derivation is idempotent on its own output
	properties.Property("module name is a fixed point", prop.ForAll(
		func(raw string) bool {
			name := DeriveModuleName(raw)
			return DeriveModuleName(name) == name
		},
		gen.AlphaString(),
	))

	// Property: directory and module names round trip
	properties.Property("directory name round trip", prop.ForAll(
		func(raw string) bool {
			module := DeriveModuleName(raw)
			dir := DeriveDirectoryName(module)
			return !strings.Contains(dir, "_") && ModuleNameFromDirectory(dir) == module
		},
		gen.AnyString(),
	))

	// Property: class names never contain underscores
	properties.Property("class name has no separators", prop.ForAll(
		func(stem string) bool {
			return !strings.Contains(ClassName(stem), "_")
		},
		gen.RegexMatch(`^[a-z_]{0,30}$`),
	))

	properties.TestingRun(t)
}
