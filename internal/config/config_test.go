package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Paths.Routes != DefaultRoutesDir {
		t.Errorf("Paths.Routes = %q, want %q", cfg.Paths.Routes, DefaultRoutesDir)
	}
	if got, want := cfg.RoutesPath(), filepath.Join(dir, "src", "routes"); got != want {
		t.Errorf("RoutesPath() = %q, want %q", got, want)
	}
	if got, want := cfg.ServeAddr(), "localhost:4173"; got != want {
		t.Errorf("ServeAddr() = %q, want %q", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "name": "my-app",
  "paths": {"routes": "app/routes"},
  "serve": {"port": 9000, "host": "0.0.0.0"}
}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Name != "my-app" {
		t.Errorf("Name = %q, want my-app", cfg.Name)
	}
	if got, want := cfg.RoutesPath(), filepath.Join(dir, "app", "routes"); got != want {
		t.Errorf("RoutesPath() = %q, want %q", got, want)
	}
	if got, want := cfg.ServeAddr(), "0.0.0.0:9000"; got != want {
		t.Errorf("ServeAddr() = %q, want %q", got, want)
	}
}

func TestLoadPartialFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"name":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Paths.Routes != DefaultRoutesDir {
		t.Errorf("Paths.Routes = %q, want default", cfg.Paths.Routes)
	}
	if cfg.Serve.Port != DefaultPort || cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve = %+v, want defaults", cfg.Serve)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), ConfigFileName) {
		t.Errorf("Load(malformed) error = %v, want parse error naming %s", err, ConfigFileName)
	}
}

func TestRoutesPathAbsolute(t *testing.T) {
	cfg := New("/project")
	cfg.Paths.Routes = "/elsewhere/routes"
	if got := cfg.RoutesPath(); got != "/elsewhere/routes" {
		t.Errorf("RoutesPath() = %q, want /elsewhere/routes", got)
	}
}
