package naming

import (
	"strings"
	"testing"
)

func TestDeriveModuleName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"spaces_and_punctuation", "My Cool App!", "my_cool_app"},
		{"camel_case", "MyCoolApp", "my_cool_app"},
		{"already_snake", "my_cool_app", "my_cool_app"},
		{"kebab", "my-cool-app", "my_cool_app"},
		{"dots", "my.cool.app", "my_cool_app"},
		{"accents", "Café Noir", "cafe_noir"},
		{"leading_digits", "123abc", "abc"},
		{"only_digits", "123", FallbackModuleName},
		{"only_symbols", "!!!", FallbackModuleName},
		{"empty", "", FallbackModuleName},
		{"whitespace", "   ", FallbackModuleName},
		{"non_latin", "日本語", FallbackModuleName},
		{"filename_chars", `a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"surrounding_space", "  Todo List  ", "todo_list"},
		{"repeated_separators", "foo  --  bar", "foo_bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveModuleName(tt.raw); got != tt.want {
				t.Errorf("DeriveModuleName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDeriveModuleName_FallbackIsValidIdentifier(t *testing.T) {
	got := DeriveModuleName("123")
	if got == "" {
		t.Fatal("fallback must not be empty")
	}
	if strings.Trim(got, "0123456789") == "" {
		t.Errorf("fallback %q must not be purely digits", got)
	}
}

func TestDeriveDirectoryName(t *testing.T) {
	if got := DeriveDirectoryName("my_cool_app"); got != "my-cool-app" {
		t.Errorf("DeriveDirectoryName() = %q, want %q", got, "my-cool-app")
	}

	module := DeriveModuleName("My Cool App!")
	dir := DeriveDirectoryName(module)
	if back := ModuleNameFromDirectory(dir); back != module {
		t.Errorf("round trip: ModuleNameFromDirectory(%q) = %q, want %q", dir, back, module)
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"sample_component", "SampleComponent"},
		{"page", "Page"},
		{"main_page", "MainPage"},
		{"about_us_page", "AboutUsPage"},
		{"HTML_view", "HtmlView"},
		{"trailing_", "Trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			got := ClassName(tt.stem)
			if got != tt.want {
				t.Errorf("ClassName(%q) = %q, want %q", tt.stem, got, tt.want)
			}
			if again := ClassName(tt.stem); again != got {
				t.Errorf("ClassName(%q) not deterministic: %q then %q", tt.stem, got, again)
			}
		})
	}
}

func TestURLSegment(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"extra_page", "extra-page"},
		{"About_Us", "about-us"},
		{"home", "home"},
	}

	for _, tt := range tests {
		if got := URLSegment(tt.stem); got != tt.want {
			t.Errorf("URLSegment(%q) = %q, want %q", tt.stem, got, tt.want)
		}
	}
}

func TestStripInvalidFilenameCharacters(t *testing.T) {
	if got := StripInvalidFilenameCharacters(`what?is<this>`); got != "whatisthis" {
		t.Errorf("StripInvalidFilenameCharacters() = %q, want %q", got, "whatisthis")
	}
}
