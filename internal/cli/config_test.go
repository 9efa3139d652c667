package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
template = "grid-3x3"
paper = "letter"
unit = "in"
margin = 0.5
store = "redis"

[redis]
addr = "localhost:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Template != "grid-3x3" || cfg.Paper != "letter" || cfg.Unit != "in" {
		t.Errorf("layout defaults = %+v", cfg)
	}
	if cfg.Margin != 0.5 {
		t.Errorf("margin = %g", cfg.Margin)
	}
	if cfg.Store != "redis" || cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("store config = %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want default", cfg.Addr)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Store != "file" || cfg.Addr != ":8080" {
		t.Errorf("defaults = %+v", cfg)
	}
}
