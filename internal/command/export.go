package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the current message as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			copyOut, _ := cmd.Flags().GetBool("copy")

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			data, err := json.MarshalIndent(ctx.Store.Message(), "", "  ")
			if err != nil {
				return writeCommandError(cmd, err)
			}
			data = append(data, '\n')

			switch {
			case copyOut:
				if err := clipboard.WriteAll(string(data)); err != nil {
					return writeCommandError(cmd, fmt.Errorf("copy to clipboard: %w", err))
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to clipboard\n", humanize.Bytes(uint64(len(data))))
			case len(args) == 1 && args[0] != "-":
				if err := os.WriteFile(args[0], data, 0o644); err != nil {
					return writeCommandError(cmd, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s to %s\n", humanize.Bytes(uint64(len(data))), args[0])
			default:
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			return nil
		},
	}

	cmd.Flags().Bool("copy", false, "copy to the clipboard instead of writing")
	return cmd
}
