package cli

import (
	"strings"
	"testing"

	"github.com/rio-labs/riogen/pkg/version"
)

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"create", "templates", "info", "config", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have --%s flag", name)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, version.GetVersion()) {
		t.Errorf("output %q should contain version %q", out, version.GetVersion())
	}
}

func TestConfigureDependencies(t *testing.T) {
	if _, err := executeCommand(t, "templates"); err != nil {
		t.Fatalf("templates: %v", err)
	}
	d := GetDeps()
	if d == nil {
		t.Fatal("dependencies should be initialized")
	}
	if d.Catalog == nil {
		t.Error("Catalog should be set after configuration")
	}
	if d.Renderer == nil {
		t.Error("Renderer should be set after configuration")
	}
	if d.Logger == nil {
		t.Error("Logger should be set after configuration")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"", "INFO"},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
