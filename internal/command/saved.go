package command

import (
	"fmt"
	"time"

	"github.com/adamavenir/embedg/internal/db"
	"github.com/adamavenir/embedg/internal/types"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewSavedCmd creates the saved message library commands.
func NewSavedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Save, list, and restore named messages",
	}

	cmd.AddCommand(
		newSavedSaveCmd(),
		newSavedListCmd(),
		newSavedLoadCmd(),
		newSavedRmCmd(),
	)
	return cmd
}

func newSavedSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current message under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			saved, err := db.SaveMessage(ctx.DB, args[0], types.StringPtr(description), ctx.Store.Message())
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if ctx.JSONMode {
				return writeJSON(cmd.OutOrStdout(), saved)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", saved.Name, saved.ID)
			return nil
		},
	}

	cmd.Flags().String("description", "", "short description")
	return cmd
}

func newSavedListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [glob]",
		Short: "List saved messages, optionally filtered by a name glob",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			saved, err := db.ListSavedMessages(ctx.DB, filter)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			out := cmd.OutOrStdout()
			if ctx.JSONMode {
				if saved == nil {
					saved = []types.SavedMessage{}
				}
				return writeJSON(out, saved)
			}
			if len(saved) == 0 {
				fmt.Fprintln(out, "No saved messages")
				return nil
			}
			for _, item := range saved {
				updated := humanize.Time(time.UnixMilli(item.UpdatedAt))
				fmt.Fprintf(out, "%s  %s", item.Name, updated)
				if item.Description != nil {
					fmt.Fprintf(out, "  %s", truncate(*item.Description, 50))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newSavedLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <name|id>",
		Short: "Replace the current message with a saved one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				saved, err := db.GetSavedMessage(ctx.DB, args[0])
				if err != nil {
					return "", err
				}
				msg := saved.Data
				msg.Normalize()
				msg.FillIDs(ctx.Store.NewID)
				ctx.Store.Replace(msg)
				return fmt.Sprintf("Loaded %s", saved.Name), nil
			})
		},
	}
}

func newSavedRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name|id>",
		Short: "Delete a saved message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			if err := db.DeleteSavedMessage(ctx.DB, args[0]); err != nil {
				return writeCommandError(cmd, err)
			}
			if ctx.JSONMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
