package command

import (
	"fmt"
	"strings"

	"github.com/adamavenir/embedg/internal/db"
	"github.com/adamavenir/embedg/internal/store"
	"github.com/adamavenir/embedg/internal/types"
	"github.com/spf13/cobra"
)

// NewEmbedCmd creates the embed command group.
func NewEmbedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Manage embeds (indices are 0-based)",
	}

	cmd.AddCommand(
		newEmbedAddCmd(),
		newEmbedSetCmd(),
		listMoveCmd("rm <embed>", "Delete an embed", embedIndex, func(ctx *CommandContext, i int) string {
			ctx.Store.DeleteEmbed(i)
			return fmt.Sprintf("Deleted embed %d", i)
		}),
		listMoveCmd("up <embed>", "Move an embed up", embedIndex, func(ctx *CommandContext, i int) string {
			ctx.Store.MoveEmbedUp(i)
			return fmt.Sprintf("Moved embed %d up", i)
		}),
		listMoveCmd("down <embed>", "Move an embed down", embedIndex, func(ctx *CommandContext, i int) string {
			ctx.Store.MoveEmbedDown(i)
			return fmt.Sprintf("Moved embed %d down", i)
		}),
		listMoveCmd("dup <embed>", "Duplicate an embed", embedIndex, func(ctx *CommandContext, i int) string {
			ctx.Store.DuplicateEmbed(i)
			return fmt.Sprintf("Duplicated embed %d", i)
		}),
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every embed",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					ctx.Store.ClearEmbeds()
					return "Embeds cleared", nil
				})
			},
		},
	)
	return cmd
}

// listMoveCmd builds a command taking a single top-level index.
func listMoveCmd(use, short string, resolve func(types.Message, string) (int, error), apply func(*CommandContext, int) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				i, err := resolve(ctx.Store.Message(), args[0])
				if err != nil {
					return "", err
				}
				return apply(ctx, i), nil
			})
		},
	}
}

func newEmbedAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an embed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			url, _ := cmd.Flags().GetString("url")
			colorFlag, _ := cmd.Flags().GetString("color")

			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				if colorFlag == "" {
					colorFlag, _ = db.GetConfig(ctx.DB, "default_embed_color")
				}
				color, err := types.ParseColor(colorFlag)
				if err != nil {
					return "", err
				}
				ctx.Store.AddEmbed(types.Embed{
					ID:          ctx.Store.NewID(),
					Title:       types.StringPtr(title),
					Description: types.StringPtr(description),
					URL:         types.StringPtr(url),
					Color:       color,
					Fields:      []types.EmbedField{},
				})
				return fmt.Sprintf("Added embed %d", len(ctx.Store.Message().Embeds)-1), nil
			})
		},
	}

	cmd.Flags().String("title", "", "embed title")
	cmd.Flags().String("description", "", "embed description")
	cmd.Flags().String("url", "", "title link")
	cmd.Flags().String("color", "", "side color (#rrggbb); defaults to config default_embed_color")
	return cmd
}

func newEmbedSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <embed> <property> [value]",
		Short: "Set an embed property; omit the value to clear it",
		Long:  "Set an embed property; omit the value to clear it.\n\nProperties: " + strings.Join(store.EmbedProperties, ", "),
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				return setEmbedProperty(ctx, args)
			})
		},
	}
}

// setEmbedProperty applies args of the form <embed> <property> [value].
func setEmbedProperty(ctx *CommandContext, args []string) (string, error) {
	i, err := embedIndex(ctx.Store.Message(), args[0])
	if err != nil {
		return "", err
	}
	property := strings.ToLower(args[1])
	value := ""
	if len(args) > 2 {
		value = args[2]
	}
	if err := ctx.Store.SetEmbedProperty(i, property, value); err != nil {
		return "", err
	}
	if value == "" {
		return fmt.Sprintf("Cleared %s on embed %d", property, i), nil
	}
	return fmt.Sprintf("Set %s on embed %d", property, i), nil
}
