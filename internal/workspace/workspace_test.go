package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adamavenir/embedg/internal/core"
	"go.uber.org/zap"
)

func initProject(t *testing.T) core.Project {
	t.Helper()
	project, err := core.InitProject(t.TempDir(), false)
	if err != nil {
		t.Fatalf("init project: %v", err)
	}
	return project
}

func TestOpenPersistsAcrossSessions(t *testing.T) {
	for _, backend := range []string{core.BackendSQLite, core.BackendPebble} {
		t.Run(backend, func(t *testing.T) {
			project := initProject(t)
			t.Setenv("EMBEDG_BACKEND", backend)
			ctx := context.Background()

			ws, err := Open(ctx, Options{Dir: project.Root, Logger: zap.NewNop()})
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if ws.Config.Backend != backend {
				t.Fatalf("expected backend %s, got %s", backend, ws.Config.Backend)
			}
			ws.Store.SetContent("from " + backend)
			if err := ws.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			again, err := Open(ctx, Options{Dir: project.Root, Logger: zap.NewNop()})
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer again.Close()
			if got := again.Store.Message().Content; got != "from "+backend {
				t.Fatalf("expected persisted content, got %q", got)
			}
		})
	}
}

func TestOpenWithoutProject(t *testing.T) {
	_, err := Open(context.Background(), Options{Dir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error outside a project")
	}
}

func TestOpenWritesLogFile(t *testing.T) {
	project := initProject(t)
	t.Setenv("EMBEDG_LOG_LEVEL", "debug")

	ws, err := Open(context.Background(), Options{Dir: project.Root})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := ws.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	info, err := os.Stat(filepath.Join(project.Dir(), "embedg.log"))
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected debug output in log file")
	}
}
