package command

import (
	"fmt"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/spf13/cobra"
)

// NewRowCmd creates the component row command group.
func NewRowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Manage component rows (indices are 0-based)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Append an empty action row",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					ctx.Store.AddComponentRow(types.ComponentRow{ID: ctx.Store.NewID(), Components: []types.Component{}})
					return fmt.Sprintf("Added row %d", len(ctx.Store.Message().Components)-1), nil
				})
			},
		},
		listMoveCmd("rm <row>", "Delete a row", rowIndex, func(ctx *CommandContext, i int) string {
			ctx.Store.DeleteComponentRow(i)
			return fmt.Sprintf("Deleted row %d", i)
		}),
		listMoveCmd("up <row>", "Move a row up", rowIndex, func(ctx *CommandContext, i int) string {
			ctx.Store.MoveComponentRowUp(i)
			return fmt.Sprintf("Moved row %d up", i)
		}),
		listMoveCmd("down <row>", "Move a row down", rowIndex, func(ctx *CommandContext, i int) string {
			ctx.Store.MoveComponentRowDown(i)
			return fmt.Sprintf("Moved row %d down", i)
		}),
		listMoveCmd("dup <row>", "Duplicate a row", rowIndex, func(ctx *CommandContext, i int) string {
			ctx.Store.DuplicateComponentRow(i)
			return fmt.Sprintf("Duplicated row %d", i)
		}),
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every row",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					ctx.Store.ClearComponentRows()
					return "Rows cleared", nil
				})
			},
		},
	)
	return cmd
}

// componentActionCmd builds a command addressing one component in a row.
// Buttons and select menus share the row list, so these work for both.
func componentActionCmd(use, short string, apply func(ctx *CommandContext, i, j int) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				i, j, err := componentIndex(ctx.Store.Message(), args[0], args[1])
				if err != nil {
					return "", err
				}
				return apply(ctx, i, j), nil
			})
		},
	}
}
