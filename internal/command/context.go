package command

import (
	"github.com/adamavenir/embedg/internal/workspace"
	"github.com/spf13/cobra"
)

// CommandContext provides shared command resources.
type CommandContext struct {
	*workspace.Workspace
	JSONMode bool
}

// GetContext opens the project the command runs against.
func GetContext(cmd *cobra.Command) (*CommandContext, error) {
	projectDir, _ := cmd.Flags().GetString("project")
	jsonMode, _ := cmd.Flags().GetBool("json")

	ws, err := workspace.Open(cmdContext(cmd), workspace.Options{
		Dir:   projectDir,
		Flags: cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}
	return &CommandContext{Workspace: ws, JSONMode: jsonMode}, nil
}
