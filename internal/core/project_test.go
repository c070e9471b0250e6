package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndDiscoverProject(t *testing.T) {
	root := t.TempDir()
	project, err := InitProject(root, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if project.DBPath != filepath.Join(root, DirName, "embedg.db") {
		t.Fatalf("unexpected db path %s", project.DBPath)
	}

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := DiscoverProject(nested)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if found.Root != project.Root {
		t.Fatalf("expected root %s, got %s", project.Root, found.Root)
	}
	if found.PebblePath() != filepath.Join(root, DirName, "pebble") {
		t.Fatalf("unexpected pebble path %s", found.PebblePath())
	}
}

func TestInitProjectTwiceRequiresForce(t *testing.T) {
	root := t.TempDir()
	if _, err := InitProject(root, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := InitProject(root, false); err == nil {
		t.Fatalf("expected error on second init")
	}
	if _, err := InitProject(root, true); err != nil {
		t.Fatalf("forced init: %v", err)
	}
}

func TestDiscoverProjectMissing(t *testing.T) {
	_, err := DiscoverProject(t.TempDir())
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestEnsureGitignoreAppendsMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("*.db"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	EnsureGitignore(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(data)
	if strings.Count(content, "*.db\n") != 1 {
		t.Fatalf("expected single *.db entry, got %q", content)
	}
	if !strings.Contains(content, "pebble/") {
		t.Fatalf("expected pebble entry, got %q", content)
	}
}
