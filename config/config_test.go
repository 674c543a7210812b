package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	wantTargets := []string{"frontend/src", "backend/src", "payment-server"}
	if len(cfg.Clean.Targets) != len(wantTargets) {
		t.Fatalf("expected %d targets, got %v", len(wantTargets), cfg.Clean.Targets)
	}
	for i, target := range wantTargets {
		if cfg.Clean.Targets[i] != target {
			t.Errorf("expected target %d = %s, got %s", i, target, cfg.Clean.Targets[i])
		}
	}
	if len(cfg.Clean.Extensions) != 3 {
		t.Errorf("expected 3 extensions, got %v", cfg.Clean.Extensions)
	}
	if cfg.Ledger.Enabled {
		t.Error("expected ledger disabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/decomment.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "decomment.yaml")

	content := `
clean:
  targets: [src]
  extensions: [.ts]
  dry_run: true
logging:
  level: error
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Clean.Targets) != 1 || cfg.Clean.Targets[0] != "src" {
		t.Errorf("expected targets=[src], got %v", cfg.Clean.Targets)
	}
	if len(cfg.Clean.Extensions) != 1 || cfg.Clean.Extensions[0] != ".ts" {
		t.Errorf("expected extensions=[.ts], got %v", cfg.Clean.Extensions)
	}
	if !cfg.Clean.DryRun {
		t.Error("expected DryRun=true")
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected Level=error, got %s", cfg.Logging.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "decomment.yaml")
	if err := os.WriteFile(configPath, []byte("clean: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureStateDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, StateDir, "config.yaml")

	content := `
ledger:
  enabled: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Ledger.Enabled {
		t.Error("expected ledger enabled from .decomment/config.yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decomment.yaml")
	cfg := DefaultConfig()
	cfg.Clean.Excludes = []string{"**/vendor/**"}

	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Clean.Excludes) != 1 || loaded.Clean.Excludes[0] != "**/vendor/**" {
		t.Errorf("expected excludes to survive save, got %v", loaded.Clean.Excludes)
	}
}

func TestLedgerDBPath(t *testing.T) {
	path := LedgerDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".decomment", "ledger.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}

	cfg := DefaultConfig()
	cfg.Ledger.Path = "state/clean.db"
	if got := cfg.LedgerDBPath("/srv"); got != filepath.Join("/srv", "state", "clean.db") {
		t.Errorf("expected relative ledger path under root, got %s", got)
	}
}
