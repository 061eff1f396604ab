package models

import "testing"

func TestAppTypeIsValid(t *testing.T) {
	tests := []struct {
		name string
		t    AppType
		want bool
	}{
		{"app", AppTypeApp, true},
		{"website", AppTypeWebsite, true},
		{"empty", AppType(""), false},
		{"uppercase", AppType("APP"), false},
		{"unknown", AppType("desktop"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.IsValid(); got != tt.want {
				t.Errorf("AppType(%q).IsValid() = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestValidAppTypes(t *testing.T) {
	types := ValidAppTypes()
	if len(types) != 2 {
		t.Fatalf("ValidAppTypes() returned %d types, want 2", len(types))
	}
	for _, at := range types {
		if !at.IsValid() {
			t.Errorf("ValidAppTypes() contains invalid type %q", at)
		}
	}
}

func TestAppTypeString(t *testing.T) {
	if got := AppTypeWebsite.String(); got != "website" {
		t.Errorf("String() = %q, want %q", got, "website")
	}
}
