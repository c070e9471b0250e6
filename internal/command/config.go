package command

import (
	"fmt"
	"strings"

	"github.com/adamavenir/embedg/internal/db"
	"github.com/adamavenir/embedg/internal/types"
	"github.com/alecthomas/chroma/styles"
	"github.com/spf13/cobra"
)

// configValidators checks values for known keys before they are stored.
var configValidators = map[string]func(string) error{
	"highlight_style": func(value string) error {
		if _, ok := styles.Registry[value]; !ok {
			return fmt.Errorf("unknown highlight style: %s", value)
		}
		return nil
	},
	"default_embed_color": func(value string) error {
		_, err := types.ParseColor(value)
		return err
	},
}

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set project configuration",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				entries, err := db.GetAllConfig(ctx.DB)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				if ctx.JSONMode {
					return writeJSON(out, entries)
				}
				if len(entries) == 0 {
					fmt.Fprintln(out, "No configuration set")
					return nil
				}
				fmt.Fprintln(out, "Configuration:")
				for _, entry := range entries {
					fmt.Fprintf(out, "  %s: %s\n", entry.Key, displayOrDash(entry.Value))
				}
				return nil
			}

			key := normalizeConfigKey(args[0])
			if len(args) == 1 {
				value, err := db.GetConfig(ctx.DB, key)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				if value == "" {
					return writeCommandError(cmd, fmt.Errorf("config key '%s' not found", args[0]))
				}
				if ctx.JSONMode {
					return writeJSON(out, map[string]string{key: value})
				}
				fmt.Fprintf(out, "%s: %s\n", key, value)
				return nil
			}

			if validate, ok := configValidators[key]; ok {
				if err := validate(args[1]); err != nil {
					return writeCommandError(cmd, err)
				}
			}
			if err := db.SetConfig(ctx.DB, key, args[1]); err != nil {
				return writeCommandError(cmd, err)
			}
			if ctx.JSONMode {
				return writeJSON(out, map[string]string{key: args[1]})
			}
			fmt.Fprintf(out, "Set %s = %s\n", key, args[1])
			return nil
		},
	}

	return cmd
}

func normalizeConfigKey(value string) string {
	return strings.ReplaceAll(strings.ToLower(value), "-", "_")
}
