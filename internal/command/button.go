package command

import (
	"fmt"
	"strings"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/spf13/cobra"
)

// NewButtonCmd creates the button command group.
func NewButtonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "button",
		Short: "Manage buttons in component rows (indices are 0-based)",
	}

	cmd.AddCommand(
		newButtonAddCmd(),
		newButtonSetCmd(),
		componentActionCmd("rm <row> <component>", "Delete a component", func(ctx *CommandContext, i, j int) string {
			ctx.Store.DeleteButton(i, j)
			return fmt.Sprintf("Deleted component %d in row %d", j, i)
		}),
		componentActionCmd("up <row> <component>", "Move a component left", func(ctx *CommandContext, i, j int) string {
			ctx.Store.MoveButtonUp(i, j)
			return fmt.Sprintf("Moved component %d in row %d up", j, i)
		}),
		componentActionCmd("down <row> <component>", "Move a component right", func(ctx *CommandContext, i, j int) string {
			ctx.Store.MoveButtonDown(i, j)
			return fmt.Sprintf("Moved component %d in row %d down", j, i)
		}),
		componentActionCmd("dup <row> <component>", "Duplicate a component", func(ctx *CommandContext, i, j int) string {
			ctx.Store.DuplicateButton(i, j)
			return fmt.Sprintf("Duplicated component %d in row %d", j, i)
		}),
		&cobra.Command{
			Use:   "clear <row>",
			Short: "Remove every component from a row",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					i, err := rowIndex(ctx.Store.Message(), args[0])
					if err != nil {
						return "", err
					}
					ctx.Store.ClearButtons(i)
					return fmt.Sprintf("Cleared row %d", i), nil
				})
			},
		},
	)
	return cmd
}

func newButtonAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <row>",
		Short: "Append a button to a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, _ := cmd.Flags().GetString("label")
			styleFlag, _ := cmd.Flags().GetString("style")
			url, _ := cmd.Flags().GetString("url")

			style, err := types.ParseButtonStyle(styleFlag)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if url != "" && !cmd.Flags().Changed("style") {
				style = types.ButtonStyleLink
			}

			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				msg := ctx.Store.Message()
				i, err := rowIndex(msg, args[0])
				if err != nil {
					return "", err
				}
				ctx.Store.AddButton(i, types.Button{
					ID:    ctx.Store.NewID(),
					Style: style,
					Label: label,
					URL:   types.StringPtr(url),
				})
				return fmt.Sprintf("Added button %d to row %d", len(msg.Components[i].Components), i), nil
			})
		},
	}

	cmd.Flags().String("label", "", "button label")
	cmd.Flags().String("style", "primary", "primary, secondary, success, danger, or link")
	cmd.Flags().String("url", "", "link target (implies --style link)")
	return cmd
}

func newButtonSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <row> <component> <style|label|url> [value]",
		Short: "Set a button property",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				i, j, err := componentIndex(ctx.Store.Message(), args[0], args[1])
				if err != nil {
					return "", err
				}
				if ctx.Store.GetButton(i, j) == nil {
					return "", fmt.Errorf("component %d in row %d is not a button", j, i)
				}
				value := ""
				if len(args) > 3 {
					value = args[3]
				}

				property := strings.ToLower(args[2])
				switch property {
				case "style":
					style, err := types.ParseButtonStyle(value)
					if err != nil {
						return "", err
					}
					ctx.Store.SetButtonStyle(i, j, style)
				case "label":
					ctx.Store.SetButtonLabel(i, j, value)
				case "url":
					ctx.Store.SetButtonURL(i, j, value)
				default:
					return "", fmt.Errorf("unknown button property: %s. Use style, label, or url", args[2])
				}
				return fmt.Sprintf("Set %s on button %d in row %d", property, j, i), nil
			})
		},
	}
}
