package command

import (
	"github.com/spf13/cobra"
)

// NewClearCmd creates the clear command.
func NewClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the message to the default starter message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				ctx.Store.Clear()
				return "Message reset to default", nil
			})
		},
	}
}

// NewResetCmd creates the reset command.
func NewResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the message with an empty one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				ctx.Store.Reset()
				return "Message emptied", nil
			})
		},
	}
}
