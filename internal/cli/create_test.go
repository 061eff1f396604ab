package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rio-labs/riogen/internal/manifest"
	"github.com/rio-labs/riogen/pkg/models"
)

func TestCreateCmd_Exists(t *testing.T) {
	if createCmd == nil {
		t.Fatal("createCmd should not be nil")
	}
	if createCmd.Use != "create [project-name]" {
		t.Errorf("createCmd.Use = %q, want %q", createCmd.Use, "create [project-name]")
	}
	if createCmd.Short == "" || createCmd.Long == "" {
		t.Error("createCmd should have short and long descriptions")
	}
}

func TestCreateCmd_HasFlags(t *testing.T) {
	flags := []string{"type", "template", "dir", "primary-color", "secondary-color", "dark", "non-interactive"}
	for _, name := range flags {
		if createCmd.Flags().Lookup(name) == nil {
			t.Errorf("create command should have --%s flag", name)
		}
	}
}

func TestCreateCmd_NonInteractiveWebsite(t *testing.T) {
	parent := t.TempDir()

	out, err := executeCommand(t, "create", "My Cool App", "--dir", parent, "--non-interactive")
	if err != nil {
		t.Fatalf("create: %v\n%s", err, out)
	}

	projectDir := filepath.Join(parent, "my-cool-app")
	for _, rel := range []string{
		"rio.toml",
		"README.md",
		"my_cool_app/__init__.py",
		"my_cool_app/components/__init__.py",
		"my_cool_app/components/sample_component.py",
		"my_cool_app/pages/__init__.py",
		"my_cool_app/pages/sample_page.py",
	} {
		if _, err := os.Stat(filepath.Join(projectDir, rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}
	for _, rel := range []string{"requirements.txt", "my_cool_app/__main__.py"} {
		if _, err := os.Stat(filepath.Join(projectDir, rel)); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s should not be created for an Empty website", rel)
		}
	}

	pc, err := manifest.Load(projectDir)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if pc.App.AppType != models.AppTypeWebsite || pc.App.MainModule != "my_cool_app" {
		t.Errorf("manifest = %+v, want website/my_cool_app", pc.App)
	}

	if !strings.Contains(out, "The project has been created!") {
		t.Errorf("output should announce the project, got:\n%s", out)
	}
	if !strings.Contains(out, "rio run") {
		t.Errorf("output should show how to run the project, got:\n%s", out)
	}
	if strings.Contains(out, "pip install") {
		t.Errorf("output should not mention pip without dependencies, got:\n%s", out)
	}
	if !strings.Contains(out, "[6/6] done") {
		t.Errorf("headless progress should reach the last stage, got:\n%s", out)
	}
}

func TestCreateCmd_AppWithDependencies(t *testing.T) {
	parent := t.TempDir()

	out, err := executeCommand(t, "create", "counter", "--dir", parent,
		"--type", "app", "--template", "counter", "--primary-color", "#ff0000", "--dark", "--non-interactive")
	if err != nil {
		t.Fatalf("create: %v\n%s", err, out)
	}

	projectDir := filepath.Join(parent, "counter")
	req, err := os.ReadFile(filepath.Join(projectDir, "requirements.txt"))
	if err != nil {
		t.Fatalf("read requirements.txt: %v", err)
	}
	if string(req) != "humanize>=4.0\n" {
		t.Errorf("requirements.txt = %q", req)
	}
	if _, err := os.Stat(filepath.Join(projectDir, "counter", "__main__.py")); err != nil {
		t.Errorf("apps should have a __main__.py: %v", err)
	}

	init, err := os.ReadFile(filepath.Join(projectDir, "counter", "__init__.py"))
	if err != nil {
		t.Fatalf("read __init__.py: %v", err)
	}
	if !strings.Contains(string(init), "ff0000") {
		t.Errorf("root module should use the primary colour flag:\n%s", init)
	}
	if !strings.Contains(string(init), "light=False") {
		t.Errorf("root module should use a dark theme:\n%s", init)
	}
	if !strings.Contains(out, "pip install -r requirements.txt") {
		t.Errorf("output should ask to install dependencies, got:\n%s", out)
	}
}

func TestCreateCmd_NonInteractiveRequiresName(t *testing.T) {
	_, err := executeCommand(t, "create", "--dir", t.TempDir(), "--non-interactive")
	if err == nil || !strings.Contains(err.Error(), "project name is required") {
		t.Errorf("expected missing name error, got %v", err)
	}
}

func TestCreateCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad type", []string{"--type", "desktop"}, "invalid --type"},
		{"bad primary", []string{"--primary-color", "blue-ish"}, "invalid --primary-color"},
		{"bad secondary", []string{"--secondary-color", "#12"}, "invalid --secondary-color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"create", "demo", "--dir", t.TempDir(), "--non-interactive"}, tt.args...)
			_, err := executeCommand(t, args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateCmd_UnknownTemplate(t *testing.T) {
	parent := t.TempDir()
	_, err := executeCommand(t, "create", "demo", "--dir", parent, "--template", "Nope", "--non-interactive")
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if _, statErr := os.Stat(filepath.Join(parent, "demo")); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("no project directory should be created for an unknown template")
	}
}

func TestCreateCmd_DirectoryNotEmpty(t *testing.T) {
	parent := t.TempDir()
	projectDir := filepath.Join(parent, "demo")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, "keep.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := executeCommand(t, "create", "demo", "--dir", parent, "--non-interactive")
	if err == nil || !strings.Contains(err.Error(), "already exists and is not empty") {
		t.Errorf("expected not-empty error, got %v", err)
	}
}

func TestCreateCmd_ConfigDefaults(t *testing.T) {
	parent := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "defaults:\n  app_type: app\n  template: Counter\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "create", "from config", "--dir", parent, "--config", cfgPath, "--non-interactive")
	if err != nil {
		t.Fatalf("create: %v\n%s", err, out)
	}
	pc, err := manifest.Load(filepath.Join(parent, "from-config"))
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if pc.App.AppType != models.AppTypeApp {
		t.Errorf("app type = %q, want app from config", pc.App.AppType)
	}
	if _, err := os.Stat(filepath.Join(parent, "from-config", "requirements.txt")); err != nil {
		t.Errorf("Counter template from config should add requirements.txt: %v", err)
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/tmp/my-app", "/tmp/my-app"},
		{"/tmp/my app", "'/tmp/my app'"},
		{"/tmp/it's", `'/tmp/it'\''s'`},
	}
	for _, tt := range tests {
		if got := shellQuote(tt.in); got != tt.want {
			t.Errorf("shellQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
