package command

import (
	"fmt"
	"strings"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/spf13/cobra"
)

// NewFieldCmd creates the field command group.
func NewFieldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Manage embed fields (indices are 0-based)",
	}

	cmd.AddCommand(
		newFieldAddCmd(),
		newFieldListCmd(),
		newFieldSetCmd(),
		fieldActionCmd("rm", "Delete a field", "Deleted", (*storeFieldOps).delete),
		fieldActionCmd("up", "Move a field up", "Moved up", (*storeFieldOps).up),
		fieldActionCmd("down", "Move a field down", "Moved down", (*storeFieldOps).down),
		fieldActionCmd("dup", "Duplicate a field", "Duplicated", (*storeFieldOps).dup),
		&cobra.Command{
			Use:   "clear <embed>",
			Short: "Remove every field from an embed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return mutate(cmd, func(ctx *CommandContext) (string, error) {
					i, err := embedIndex(ctx.Store.Message(), args[0])
					if err != nil {
						return "", err
					}
					ctx.Store.ClearEmbedFields(i)
					return fmt.Sprintf("Cleared fields on embed %d", i), nil
				})
			},
		},
	)
	return cmd
}

type storeFieldOps CommandContext

func (o *storeFieldOps) delete(i, j int) { o.Store.DeleteEmbedField(i, j) }
func (o *storeFieldOps) up(i, j int)     { o.Store.MoveEmbedFieldUp(i, j) }
func (o *storeFieldOps) down(i, j int)   { o.Store.MoveEmbedFieldDown(i, j) }
func (o *storeFieldOps) dup(i, j int)    { o.Store.DuplicateEmbedField(i, j) }

func fieldActionCmd(name, short, verb string, apply func(*storeFieldOps, int, int)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <embed> <field>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				i, j, err := fieldIndex(ctx.Store.Message(), args[0], args[1])
				if err != nil {
					return "", err
				}
				apply((*storeFieldOps)(ctx), i, j)
				return fmt.Sprintf("%s field %d on embed %d", verb, j, i), nil
			})
		},
	}
}

func newFieldAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <embed>",
		Short: "Append a field to an embed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			value, _ := cmd.Flags().GetString("value")
			inline, _ := cmd.Flags().GetBool("inline")
			inlineSet := cmd.Flags().Changed("inline")

			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				msg := ctx.Store.Message()
				i, err := embedIndex(msg, args[0])
				if err != nil {
					return "", err
				}
				field := types.EmbedField{ID: ctx.Store.NewID(), Name: name, Value: value}
				if inlineSet {
					field.Inline = &inline
				}
				ctx.Store.AddEmbedField(i, field)
				return fmt.Sprintf("Added field %d to embed %d", len(msg.Embeds[i].Fields), i), nil
			})
		},
	}

	cmd.Flags().String("name", "", "field name")
	cmd.Flags().String("value", "", "field value")
	cmd.Flags().Bool("inline", false, "render the field inline")
	return cmd
}

func newFieldListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <embed>",
		Short: "List the fields of an embed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			msg := ctx.Store.Message()
			i, err := embedIndex(msg, args[0])
			if err != nil {
				return writeCommandError(cmd, err)
			}
			fields := msg.Embeds[i].Fields

			out := cmd.OutOrStdout()
			if ctx.JSONMode {
				return writeJSON(out, fields)
			}
			if len(fields) == 0 {
				fmt.Fprintf(out, "Embed %d has no fields\n", i)
				return nil
			}
			for j, field := range fields {
				marker := ""
				if field.Inline != nil && *field.Inline {
					marker = " (inline)"
				}
				fmt.Fprintf(out, "%d. %s: %s%s\n", j, displayOrDash(field.Name), truncate(field.Value, 60), marker)
			}
			return nil
		},
	}
}

func newFieldSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <embed> <field> <name|value|inline> [value]",
		Short: "Set a field property",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, func(ctx *CommandContext) (string, error) {
				i, j, err := fieldIndex(ctx.Store.Message(), args[0], args[1])
				if err != nil {
					return "", err
				}
				value := ""
				if len(args) > 3 {
					value = args[3]
				}

				property := strings.ToLower(args[2])
				switch property {
				case "name":
					ctx.Store.SetEmbedFieldName(i, j, value)
				case "value":
					ctx.Store.SetEmbedFieldValue(i, j, value)
				case "inline":
					if value == "" {
						ctx.Store.SetEmbedFieldInline(i, j, nil)
						break
					}
					inline, err := parseBool(value)
					if err != nil {
						return "", err
					}
					ctx.Store.SetEmbedFieldInline(i, j, &inline)
				default:
					return "", fmt.Errorf("unknown field property: %s. Use name, value, or inline", args[2])
				}
				return fmt.Sprintf("Set %s on field %d of embed %d", property, j, i), nil
			})
		},
	}
}
