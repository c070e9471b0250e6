package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adamavenir/embedg/internal/core"
)

func TestOpenDatabaseInitializesProject(t *testing.T) {
	project, err := core.InitProject(t.TempDir(), false)
	if err != nil {
		t.Fatalf("init project: %v", err)
	}

	conn, err := OpenDatabase(project)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	exists, err := SchemaExists(conn)
	if err != nil || !exists {
		t.Fatalf("expected schema, exists=%v err=%v", exists, err)
	}

	data, err := os.ReadFile(filepath.Join(project.Dir(), ".gitignore"))
	if err != nil {
		t.Fatalf("read gitignore: %v", err)
	}
	if !strings.Contains(string(data), "*.db") {
		t.Fatalf("expected db ignore entry, got %q", data)
	}
}
