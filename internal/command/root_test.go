package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommandVersion(t *testing.T) {
	cmd := NewRootCmd("test")

	output, err := executeCommand(cmd, "--version")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(output, "embedg version test") {
		t.Fatalf("expected version output, got %q", output)
	}
}

func TestRootCommandHelp(t *testing.T) {
	cmd := NewRootCmd("test")

	output, err := executeCommand(cmd)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(output, "local editor for rich message embeds") {
		t.Fatalf("expected help output, got %q", output)
	}
	for _, name := range []string{"embed", "field", "button", "select", "saved", "edit"} {
		if !strings.Contains(output, name) {
			t.Fatalf("expected %s in help output, got %q", name, output)
		}
	}
}

func TestEmbedSetHelpListsProperties(t *testing.T) {
	cmd := NewRootCmd("test")

	output, err := executeCommand(cmd, "embed", "set", "--help")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(output, "author-name") || !strings.Contains(output, "thumbnail") {
		t.Fatalf("expected property list, got %q", output)
	}
}
