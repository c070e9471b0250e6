package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adamavenir/embedg/internal/core"
	"github.com/adamavenir/embedg/internal/workspace"
	"github.com/spf13/cobra"
)

type initResult struct {
	Initialized bool   `json:"initialized"`
	Path        string `json:"path"`
	Backend     string `json:"backend"`
}

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize embedg in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			jsonMode, _ := cmd.Flags().GetBool("json")
			root, _ := cmd.Flags().GetString("project")
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return writeCommandError(cmd, err)
				}
				root = cwd
			}

			project, err := core.InitProject(root, force)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			ws, err := workspace.OpenProject(cmdContext(cmd), project, workspace.Options{Flags: cmd.Flags()})
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ws.Close()
			ws.Store.Clear()

			result := initResult{Initialized: true, Path: project.Root, Backend: ws.Config.Backend}
			if jsonMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized embedg in %s (%s backend)\n", project.Root, result.Backend)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "reinitialize, discarding the current message")
	return cmd
}
