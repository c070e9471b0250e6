package command

import (
	"path/filepath"

	"github.com/adamavenir/embedg/internal/editor"
	"github.com/spf13/cobra"
)

// NewEditCmd creates the interactive editor command.
func NewEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive message editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			err = editor.Run(editor.Options{
				Store:       ctx.Store,
				Logger:      ctx.Logger.Named("editor"),
				ProjectName: filepath.Base(ctx.Project.Root),
			})
			if err != nil {
				return writeCommandError(cmd, err)
			}
			return nil
		},
	}
}
