package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "test" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "test")
	}
	if cfg.Addr() != "localhost:8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "localhost:8080")
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("CHESSMODEL_DB", "/tmp/positions")

	body := `{
		"server": {"host": "0.0.0.0", "port": 9090, "allowedOrigins": ["https://example.com"]},
		"storage": {"dir": "${CHESSMODEL_DB}"}
	}`
	if err := os.WriteFile(filepath.Join(dir, "config.prod.json"), []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load("prod")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.Storage.Dir != "/tmp/positions" {
		t.Errorf("Storage.Dir = %q, want %q", cfg.Storage.Dir, "/tmp/positions")
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.dev.json"), []byte("{"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load("dev"); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CHESSMODEL_ENV", "")
	if got := GetEnv(); got != "dev" {
		t.Errorf("GetEnv() = %q, want dev", got)
	}
	t.Setenv("CHESSMODEL_ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
