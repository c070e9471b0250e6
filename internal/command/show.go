package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/adamavenir/embedg/internal/db"
	"github.com/adamavenir/embedg/internal/types"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, _ := cmd.Flags().GetBool("summary")

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			msg := ctx.Store.Message()
			out := cmd.OutOrStdout()
			if ctx.JSONMode {
				return json.NewEncoder(out).Encode(msg)
			}
			if summary {
				writeSummary(out, msg)
				return nil
			}

			data, err := json.MarshalIndent(msg, "", "  ")
			if err != nil {
				return writeCommandError(cmd, err)
			}
			text := string(data)
			if useColor(out) {
				style, _ := db.GetConfig(ctx.DB, "highlight_style")
				text = highlightJSON(text, style)
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}

	cmd.Flags().Bool("summary", false, "print an outline instead of JSON")
	return cmd
}

func writeSummary(out io.Writer, msg types.Message) {
	if msg.Username != nil {
		fmt.Fprintf(out, "username: %s\n", *msg.Username)
	}
	if msg.AvatarURL != nil {
		fmt.Fprintf(out, "avatar: %s\n", *msg.AvatarURL)
	}
	fmt.Fprintf(out, "content: %s\n", truncate(msg.Content, 60))
	if msg.TTS {
		fmt.Fprintln(out, "tts: on")
	}

	fmt.Fprintf(out, "%s:\n", plural(len(msg.Embeds), "embed"))
	for i, embed := range msg.Embeds {
		title := types.StringValue(embed.Title)
		if title == "" {
			title = truncate(types.StringValue(embed.Description), 40)
		}
		fmt.Fprintf(out, "  [%d] %s (%s)\n", i, title, plural(len(embed.Fields), "field"))
		for j, field := range embed.Fields {
			inline := ""
			if field.Inline != nil && *field.Inline {
				inline = " [inline]"
			}
			fmt.Fprintf(out, "      [%d] %s = %s%s\n", j, field.Name, truncate(field.Value, 40), inline)
		}
	}

	fmt.Fprintf(out, "%s:\n", plural(len(msg.Components), "row"))
	for i, row := range msg.Components {
		parts := make([]string, 0, len(row.Components))
		for _, c := range row.Components {
			parts = append(parts, describeComponent(c))
		}
		fmt.Fprintf(out, "  [%d] %s\n", i, strings.Join(parts, " · "))
	}
}

func describeComponent(c types.Component) string {
	switch c := c.(type) {
	case *types.Button:
		return fmt.Sprintf("button %q (%s)", c.Label, c.Style)
	case *types.SelectMenu:
		return fmt.Sprintf("select %q (%s)", types.StringValue(c.Placeholder), plural(len(c.Options), "option"))
	}
	return "unknown"
}
