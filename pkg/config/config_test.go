package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luau-tools/luausense/pkg/vocab"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.MaxLimit != 64 {
		t.Errorf("Server.MaxLimit = %d, want 64", cfg.Server.MaxLimit)
	}
	if cfg.Server.MaxQuery != 60 {
		t.Errorf("Server.MaxQuery = %d, want 60", cfg.Server.MaxQuery)
	}
	if cfg.CLI.DefaultLimit != 24 {
		t.Errorf("CLI.DefaultLimit = %d, want 24", cfg.CLI.DefaultLimit)
	}
	if len(cfg.HighlightOverrides()) != 0 {
		t.Errorf("Default config carries highlight overrides: %v", cfg.HighlightOverrides())
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig returned error: %v", err)
	}
	if cfg.Server.MaxLimit != DefaultConfig().Server.MaxLimit {
		t.Errorf("Fresh config does not carry defaults: %+v", cfg.Server)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Config file was not created: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
max_limit = 10

[highlight]
keyword = "#ff0000"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.MaxLimit != 10 {
		t.Errorf("Server.MaxLimit = %d, want 10", cfg.Server.MaxLimit)
	}
	// untouched sections keep their defaults
	if cfg.Server.MaxQuery != 60 {
		t.Errorf("Server.MaxQuery = %d, want 60", cfg.Server.MaxQuery)
	}

	overrides := cfg.HighlightOverrides()
	if len(overrides) != 1 {
		t.Fatalf("HighlightOverrides() = %v, want single keyword entry", overrides)
	}
	if overrides[vocab.Keyword] != "#ff0000" {
		t.Errorf("Keyword override = %q, want %q", overrides[vocab.Keyword], "#ff0000")
	}
}

// a type mismatch in one key must not lose the rest of the file
func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
max_limit = "plenty"
max_query = 40

[highlight]
function = "#00ff00"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.MaxLimit != 64 {
		t.Errorf("Bad max_limit should fall back to default, got %d", cfg.Server.MaxLimit)
	}
	if cfg.Server.MaxQuery != 40 {
		t.Errorf("Server.MaxQuery = %d, want 40", cfg.Server.MaxQuery)
	}
	if cfg.Highlight.Function != "#00ff00" {
		t.Errorf("Highlight.Function = %q, want %q", cfg.Highlight.Function, "#00ff00")
	}
}

func TestSaveConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.MaxLimit = 32
	cfg.Highlight.Constant = "#aabbcc"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded.Server.MaxLimit != 32 {
		t.Errorf("Server.MaxLimit = %d, want 32", loaded.Server.MaxLimit)
	}
	if loaded.Highlight.Constant != "#aabbcc" {
		t.Errorf("Highlight.Constant = %q, want %q", loaded.Highlight.Constant, "#aabbcc")
	}
}
