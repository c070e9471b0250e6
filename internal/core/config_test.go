package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func testProject(t *testing.T) Project {
	t.Helper()
	project, err := InitProject(t.TempDir(), false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	return project
}

func TestLoadConfigDefaults(t *testing.T) {
	project := testProject(t)
	cfg, err := LoadConfig(project, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Fatalf("expected sqlite backend, got %s", cfg.Backend)
	}
	if cfg.StoreName != DefaultStoreName {
		t.Fatalf("expected default store name, got %s", cfg.StoreName)
	}
	if cfg.Log.File != project.LogPath() {
		t.Fatalf("expected log at %s, got %s", project.LogPath(), cfg.Log.File)
	}
}

func TestLoadConfigFileAndFlags(t *testing.T) {
	project := testProject(t)
	yaml := "backend: pebble\nstore_name: draft\nlog:\n  level: debug\n  file: logs/out.log\n"
	if err := os.WriteFile(filepath.Join(project.Dir(), "embedg.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(project, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != BackendPebble || cfg.StoreName != "draft" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Log.File != filepath.Join(project.Root, "logs", "out.log") {
		t.Fatalf("expected log path resolved against root, got %s", cfg.Log.File)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", "", "")
	flags.String("log-level", "", "")
	if err := flags.Parse([]string{"--backend", "sqlite"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err = LoadConfig(project, flags)
	if err != nil {
		t.Fatalf("load with flags: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Fatalf("expected flag to override file, got %s", cfg.Backend)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unset flag should not override file, got %s", cfg.Log.Level)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	project := testProject(t)
	t.Setenv("EMBEDG_STORE_NAME", "from-env")
	cfg, err := LoadConfig(project, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StoreName != "from-env" {
		t.Fatalf("expected env store name, got %s", cfg.StoreName)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	project := testProject(t)
	t.Setenv("EMBEDG_BACKEND", "redis")
	if _, err := LoadConfig(project, nil); err == nil {
		t.Fatalf("expected unknown backend error")
	}
}
