package theme

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	th := Default()
	if got := th.PrimaryHex(); got != "01dffd" {
		t.Errorf("PrimaryHex() = %q, want %q", got, "01dffd")
	}
	if got := th.SecondaryHex(); got != "0083ff" {
		t.Errorf("SecondaryHex() = %q, want %q", got, "0083ff")
	}
	if !th.Light {
		t.Error("default theme should be light")
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		wantP     string
		wantS     string
	}{
		{"with_hash", "#FF0000", "#00ff00", "ff0000", "00ff00"},
		{"without_hash", "123456", "abcdef", "123456", "abcdef"},
		{"short_form", "#fff", "000", "ffffff", "000000"},
		{"surrounding_space", " #112233 ", "#445566", "112233", "445566"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := FromHex(tt.primary, tt.secondary, false)
			if err != nil {
				t.Fatalf("FromHex() error = %v", err)
			}
			if got := th.PrimaryHex(); got != tt.wantP {
				t.Errorf("PrimaryHex() = %q, want %q", got, tt.wantP)
			}
			if got := th.SecondaryHex(); got != tt.wantS {
				t.Errorf("SecondaryHex() = %q, want %q", got, tt.wantS)
			}
		})
	}
}

func TestFromHex_Invalid(t *testing.T) {
	for _, bad := range []string{"", "#12345", "zzzzzz", "#1234567"} {
		if _, err := FromHex(bad, "#000000", true); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("FromHex(%q) error = %v, want ErrInvalidColor", bad, err)
		}
	}
}

func TestWithSecondaryFromPrimary(t *testing.T) {
	th := Default().WithSecondaryFromPrimary()
	if th.PrimaryHex() != "01dffd" {
		t.Errorf("primary changed: %q", th.PrimaryHex())
	}
	if th.SecondaryHex() == th.PrimaryHex() {
		t.Error("derived secondary should differ from primary")
	}
	if len(th.SecondaryHex()) != 6 {
		t.Errorf("SecondaryHex() = %q, want 6 hex digits", th.SecondaryHex())
	}
}
