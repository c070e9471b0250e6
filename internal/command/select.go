package command

import (
	"fmt"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/spf13/cobra"
)

// NewSelectCmd creates the select menu command group.
func NewSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Manage select menus in component rows (indices are 0-based)",
	}

	cmd.AddCommand(
		newSelectAddCmd(),
		&cobra.Command{
			Use:   "placeholder <row> <component> [text]",
			Short: "Set or clear a select menu placeholder",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					i, j, err := selectMenuIndex(ctx, args[0], args[1])
					if err != nil {
						return "", err
					}
					text := ""
					if len(args) > 2 {
						text = args[2]
					}
					ctx.Store.SetSelectMenuPlaceholder(i, j, text)
					return fmt.Sprintf("Updated placeholder of select %d in row %d", j, i), nil
				})
			},
		},
		newSelectOptionCmd(),
	)
	return cmd
}

// selectMenuIndex resolves row and component indices and checks the target is a select menu.
func selectMenuIndex(ctx *CommandContext, rowArg, componentArg string) (int, int, error) {
	i, j, err := componentIndex(ctx.Store.Message(), rowArg, componentArg)
	if err != nil {
		return 0, 0, err
	}
	if ctx.Store.GetSelectMenu(i, j) == nil {
		return 0, 0, fmt.Errorf("component %d in row %d is not a select menu", j, i)
	}
	return i, j, nil
}

func optionIndex(ctx *CommandContext, args []string) (int, int, int, error) {
	i, j, err := selectMenuIndex(ctx, args[0], args[1])
	if err != nil {
		return 0, 0, 0, err
	}
	menu := ctx.Store.GetSelectMenu(i, j)
	k, err := parseIndex(args[2], len(menu.Options), "option")
	if err != nil {
		return 0, 0, 0, err
	}
	return i, j, k, nil
}

func newSelectAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <row>",
		Short: "Append a select menu to a row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			placeholder, _ := cmd.Flags().GetString("placeholder")
			options, _ := cmd.Flags().GetStringSlice("option")

			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				msg := ctx.Store.Message()
				i, err := rowIndex(msg, args[0])
				if err != nil {
					return "", err
				}
				menu := types.SelectMenu{
					ID:          ctx.Store.NewID(),
					Placeholder: types.StringPtr(placeholder),
					Options:     make([]types.SelectMenuOption, 0, len(options)),
				}
				for _, label := range options {
					menu.Options = append(menu.Options, types.SelectMenuOption{ID: ctx.Store.NewID(), Label: label})
				}
				ctx.Store.AddSelectMenu(i, menu)
				return fmt.Sprintf("Added select %d to row %d", len(msg.Components[i].Components), i), nil
			})
		},
	}

	cmd.Flags().String("placeholder", "", "placeholder text")
	cmd.Flags().StringSlice("option", nil, "option label (repeatable)")
	return cmd
}

func newSelectOptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "option",
		Short: "Manage select menu options",
	}

	optionAction := func(use, short string, apply func(ctx *CommandContext, i, j, k int) string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <row> <component> <option>",
			Short: short,
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					i, j, k, err := optionIndex(ctx, args)
					if err != nil {
						return "", err
					}
					return apply(ctx, i, j, k), nil
				})
			},
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <row> <component> <label>",
			Short: "Append an option",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					i, j, err := selectMenuIndex(ctx, args[0], args[1])
					if err != nil {
						return "", err
					}
					ctx.Store.AddSelectMenuOption(i, j, types.SelectMenuOption{ID: ctx.Store.NewID(), Label: args[2]})
					return fmt.Sprintf("Added option %q to select %d in row %d", args[2], j, i), nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear <row> <component>",
			Short: "Remove every option",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					i, j, err := selectMenuIndex(ctx, args[0], args[1])
					if err != nil {
						return "", err
					}
					ctx.Store.ClearSelectMenuOptions(i, j)
					return fmt.Sprintf("Cleared options of select %d in row %d", j, i), nil
				})
			},
		},
		&cobra.Command{
			Use:   "set <row> <component> <option> <label>",
			Short: "Set an option label",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					i, j, k, err := optionIndex(ctx, args)
					if err != nil {
						return "", err
					}
					ctx.Store.SetSelectMenuOptionLabel(i, j, k, args[3])
					return fmt.Sprintf("Set label of option %d", k), nil
				})
			},
		},
		optionAction("rm", "Delete an option", func(ctx *CommandContext, i, j, k int) string {
			ctx.Store.DeleteSelectMenuOption(i, j, k)
			return fmt.Sprintf("Deleted option %d", k)
		}),
		optionAction("up", "Move an option up", func(ctx *CommandContext, i, j, k int) string {
			ctx.Store.MoveSelectMenuOptionUp(i, j, k)
			return fmt.Sprintf("Moved option %d up", k)
		}),
		optionAction("down", "Move an option down", func(ctx *CommandContext, i, j, k int) string {
			ctx.Store.MoveSelectMenuOptionDown(i, j, k)
			return fmt.Sprintf("Moved option %d down", k)
		}),
		optionAction("dup", "Duplicate an option", func(ctx *CommandContext, i, j, k int) string {
			ctx.Store.DuplicateSelectMenuOption(i, j, k)
			return fmt.Sprintf("Duplicated option %d", k)
		}),
	)
	return cmd
}
