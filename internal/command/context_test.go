package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adamavenir/embedg/internal/core"
	"github.com/spf13/cobra"
)

// contextCmd returns a root command whose "probe" subcommand captures the
// resolved context.
func contextCmd(t *testing.T, got **CommandContext) *cobra.Command {
	t.Helper()
	root := NewRootCmd("test")
	root.AddCommand(&cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return err
			}
			t.Cleanup(func() { _ = ctx.Close() })
			*got = ctx
			return nil
		},
	})
	return root
}

func TestGetContextDiscoversFromWorkingDirectory(t *testing.T) {
	projectDir := t.TempDir()
	if _, err := core.InitProject(projectDir, false); err != nil {
		t.Fatalf("init project: %v", err)
	}
	nested := filepath.Join(projectDir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})

	var ctx *CommandContext
	if _, err := executeCommand(contextCmd(t, &ctx), "probe"); err != nil {
		t.Fatalf("probe: %v", err)
	}
	want, _ := filepath.EvalSymlinks(projectDir)
	got, _ := filepath.EvalSymlinks(ctx.Project.Root)
	if got != want {
		t.Fatalf("expected project root %s, got %s", want, got)
	}
	if ctx.Config.Backend != core.BackendSQLite {
		t.Fatalf("expected sqlite backend, got %s", ctx.Config.Backend)
	}
}

func TestGetContextFlags(t *testing.T) {
	projectDir := t.TempDir()
	if _, err := core.InitProject(projectDir, false); err != nil {
		t.Fatalf("init project: %v", err)
	}

	var ctx *CommandContext
	if _, err := executeCommand(contextCmd(t, &ctx), "probe", "--project", projectDir, "--backend", "pebble", "--json"); err != nil {
		t.Fatalf("probe: %v", err)
	}
	if ctx.Config.Backend != core.BackendPebble {
		t.Fatalf("expected pebble backend, got %s", ctx.Config.Backend)
	}
	if !ctx.JSONMode {
		t.Fatal("expected json mode")
	}
	if len(ctx.Store.Message().Embeds) != 1 {
		t.Fatal("expected default message in a fresh pebble slot")
	}
}
