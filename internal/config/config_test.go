package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaultsWithoutConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Fatalf("server port want 8080 got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("database driver want sqlite got %s", cfg.Database.Driver)
	}
	if cfg.JWT.ExpireHours != 24 {
		t.Fatalf("jwt expire hours want 24 got %d", cfg.JWT.ExpireHours)
	}
	if cfg.Upload.Storage != "local" {
		t.Fatalf("upload storage want local got %s", cfg.Upload.Storage)
	}
}

func TestLoadReadsConfigFileAndEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
		_ = os.Unsetenv("JWT_EXPIRE_HOURS")
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	yml := "server:\n  port: \"9090\"\ndatabase:\n  driver: postgres\n  dsn: host=db\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("JWT_EXPIRE_HOURS=6\n"), 0o644); err != nil {
		t.Fatalf("write env failed: %v", err)
	}

	cfg := Load()
	if cfg.Server.Port != "9090" {
		t.Fatalf("server port want 9090 got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.DSN != "host=db" {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.JWT.ExpireHours != 6 {
		t.Fatalf("env override jwt expire hours want 6 got %d", cfg.JWT.ExpireHours)
	}
}
