package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}
}

func TestHeadlessManager_Detection(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		terminal bool
		want     bool
	}{
		{"terminal", nil, true, false},
		{"no terminal", nil, false, true},
		{"non-interactive env", map[string]string{EnvNonInteractive: "1"}, true, true},
		{"non-interactive false", map[string]string{EnvNonInteractive: "false"}, true, false},
		{"ci", map[string]string{"CI": "true"}, true, true},
		{"ci garbage", map[string]string{"CI": "yes please"}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hm := &HeadlessManager{
				getenv:   func(k string) string { return tt.env[k] },
				terminal: func() bool { return tt.terminal },
			}
			if got := hm.IsHeadless(); got != tt.want {
				t.Errorf("IsHeadless() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeadlessManager_Defaults(t *testing.T) {
	hm := NewHeadlessManager()
	if got := hm.Default(KeyTemplate, "Empty"); got != "Empty" {
		t.Errorf("Default() on empty manager = %q, want fallback", got)
	}

	src := map[string]string{KeyTemplate: "Counter", KeyAppType: ""}
	hm.SetDefaults(src)
	src[KeyTemplate] = "mutated"

	if got := hm.Default(KeyTemplate, "Empty"); got != "Counter" {
		t.Errorf("Default(%q) = %q, want Counter", KeyTemplate, got)
	}
	if got := hm.Default(KeyAppType, "website"); got != "website" {
		t.Errorf("empty values should be ignored, got %q", got)
	}
}

func TestProgress_Headless(t *testing.T) {
	var buf bytes.Buffer
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	bar := NewProgress(&buf, Palette{}, hm).Start("creating", 3)
	bar.SetTitle("validating")
	bar.Increment(1)
	bar.SetTitle("copying assets")
	bar.Increment(5)
	bar.SetTitle("done")
	bar.Done()
	bar.Done()
	bar.Increment(1)

	want := "[1/3] validating\n[3/3] copying assets\n[3/3] done\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestProgress_Interactive(t *testing.T) {
	var buf bytes.Buffer
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	bar := NewProgress(&buf, Palette{Primary: "#01dffd", Secondary: "#0083ff"}, hm).Start("creating", 2)
	bar.SetTitle("writing pages")
	bar.Increment(1)

	out := buf.String()
	if !strings.Contains(out, "[1/2] writing pages") {
		t.Errorf("output = %q, want step label", out)
	}
	if strings.HasPrefix(out, "[1/2]") {
		t.Errorf("interactive output should start with the rendered bar: %q", out)
	}
}

func TestProgress_NoColorFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	bar := NewProgress(&buf, Palette{NoColor: true}, hm).Start("creating", 1)
	bar.Done()

	if buf.String() != "[1/1] creating\n" {
		t.Errorf("output = %q", buf.String())
	}
}
