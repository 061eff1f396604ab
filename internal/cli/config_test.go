package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/rio-labs/riogen/internal/config"
)

func TestConfigCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range configCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"path", "show", "init"} {
		if !names[want] {
			t.Errorf("config should have a %s subcommand", want)
		}
	}
}

func TestConfigCmd_Path(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	out, err := executeCommand(t, "config", "path", "--config", cfgPath)
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != cfgPath {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(out), cfgPath)
	}
}

func TestConfigCmd_ShowDefaults(t *testing.T) {
	out, err := executeCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "showing defaults") {
		t.Errorf("output should mention defaults, got:\n%s", out)
	}
	if !strings.Contains(out, "app_type: website") {
		t.Errorf("output should contain the default app type, got:\n%s", out)
	}
}

func TestConfigCmd_InitWritesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := executeCommand(t, "config", "init", "--config", cfgPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Configuration written") {
		t.Errorf("output should confirm the write, got:\n%s", out)
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("parse written config: %v", err)
	}
	if err := config.Validate(&cfg); err != nil {
		t.Errorf("written config should be valid: %v", err)
	}
}

func TestConfigCmd_InitKeepsExisting(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	original := "defaults:\n  template: Counter\n"
	if err := os.WriteFile(cfgPath, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "config", "init", "--config", cfgPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("output should warn about the existing file, got:\n%s", out)
	}
	data, _ := os.ReadFile(cfgPath)
	if string(data) != original {
		t.Errorf("existing config was modified: %q", data)
	}

	if _, err := executeCommand(t, "config", "init", "--config", cfgPath, "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
	data, _ = os.ReadFile(cfgPath)
	if !strings.Contains(string(data), "template: Counter") || !strings.Contains(string(data), "app_type: website") {
		t.Errorf("forced init should write the merged configuration, got:\n%s", data)
	}
}
