package command

import (
	"fmt"
	"strings"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/spf13/cobra"
)

// NewContentCmd creates the content command.
func NewContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content [text...]",
		Short: "Show or set the message text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				if len(args) == 0 {
					return ctx.Store.Message().Content, nil
				}
				ctx.Store.SetContent(strings.Join(args, " "))
				return "Content updated", nil
			})
		},
	}
}

// NewUsernameCmd creates the username command.
func NewUsernameCmd() *cobra.Command {
	return optionalMessageCmd("username", "sender name override", func(msg types.Message) *string {
		return msg.Username
	}, func(ctx *CommandContext, value string) {
		ctx.Store.SetUsername(value)
	})
}

// NewAvatarCmd creates the avatar command.
func NewAvatarCmd() *cobra.Command {
	return optionalMessageCmd("avatar", "sender avatar URL override", func(msg types.Message) *string {
		return msg.AvatarURL
	}, func(ctx *CommandContext, value string) {
		ctx.Store.SetAvatarURL(value)
	})
}

func optionalMessageCmd(name, what string, get func(types.Message) *string, set func(*CommandContext, string)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [value]",
		Short: "Show or set the " + what,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clearValue, _ := cmd.Flags().GetBool("clear")
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				switch {
				case clearValue:
					set(ctx, "")
					return fmt.Sprintf("%s cleared", name), nil
				case len(args) == 0:
					value := get(ctx.Store.Message())
					if value == nil {
						return fmt.Sprintf("%s not set", name), nil
					}
					return *value, nil
				}
				set(ctx, args[0])
				return fmt.Sprintf("%s updated", name), nil
			})
		},
	}
	cmd.Flags().Bool("clear", false, "remove the override")
	return cmd
}

// NewTTSCmd creates the tts command.
func NewTTSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tts [on|off]",
		Short: "Show or toggle text-to-speech",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				if len(args) == 0 {
					if ctx.Store.Message().TTS {
						return "tts: on", nil
					}
					return "tts: off", nil
				}
				on, err := parseBool(args[0])
				if err != nil {
					return "", err
				}
				ctx.Store.SetTTS(on)
				return fmt.Sprintf("tts set to %s", args[0]), nil
			})
		},
	}
}
