package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adamavenir/embedg/internal/db"
	"github.com/adamavenir/embedg/internal/store"
	"github.com/adamavenir/embedg/internal/types"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type ToolContext struct {
	Store  *store.Store
	DB     *sql.DB
	Logger *zap.Logger
}

type getArgs struct {
	Embed *int `json:"embed,omitempty" jsonschema:"Only return the embed at this 0-based index"`
}

type setContentArgs struct {
	Content string `json:"content" jsonschema:"Message text shown above the embeds"`
}

type addEmbedArgs struct {
	Title       string `json:"title,omitempty" jsonschema:"Embed title"`
	Description string `json:"description,omitempty" jsonschema:"Embed description"`
	URL         string `json:"url,omitempty" jsonschema:"Link for the title"`
	Color       string `json:"color,omitempty" jsonschema:"Side color as #rrggbb or a decimal number"`
}

type embedSetArgs struct {
	Embed    int    `json:"embed" jsonschema:"0-based embed index"`
	Property string `json:"property" jsonschema:"title, description, url, color, timestamp, author-name, author-url, author-icon, footer-text, footer-icon, thumbnail, or image"`
	Value    string `json:"value,omitempty" jsonschema:"New value. Empty clears the property."`
}

type addFieldArgs struct {
	Embed  int    `json:"embed" jsonschema:"0-based embed index"`
	Name   string `json:"name,omitempty" jsonschema:"Field name"`
	Value  string `json:"value,omitempty" jsonschema:"Field value"`
	Inline *bool  `json:"inline,omitempty" jsonschema:"Render the field inline"`
}

type setFieldArgs struct {
	Embed  int     `json:"embed" jsonschema:"0-based embed index"`
	Field  int     `json:"field" jsonschema:"0-based field index"`
	Name   *string `json:"name,omitempty" jsonschema:"New field name"`
	Value  *string `json:"value,omitempty" jsonschema:"New field value"`
	Inline *bool   `json:"inline,omitempty" jsonschema:"Render the field inline"`
}

type fieldActionArgs struct {
	Embed  int    `json:"embed" jsonschema:"0-based embed index"`
	Field  int    `json:"field" jsonschema:"0-based field index"`
	Action string `json:"action" jsonschema:"up, down, dup, or delete"`
}

type clearFieldsArgs struct {
	Embed int `json:"embed" jsonschema:"0-based embed index"`
}

type replaceArgs struct {
	Message string `json:"message" jsonschema:"Complete message JSON. Missing ids are assigned."`
}

type saveArgs struct {
	Name        string `json:"name" jsonschema:"Name to save the current message under"`
	Description string `json:"description,omitempty" jsonschema:"Short description"`
}

type loadArgs struct {
	Ref string `json:"ref" jsonschema:"Saved message name or id"`
}

// RegisterTools registers the message editing tools.
func RegisterTools(server *mcp.Server, ctx *ToolContext) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_get",
		Description: "Get the message being edited as JSON. Indices used by the other tools are positions in these lists.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args getArgs) (*mcp.CallToolResult, any, error) {
		return handleGet(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_set_content",
		Description: "Set the message text.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args setContentArgs) (*mcp.CallToolResult, any, error) {
		return handleSetContent(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_add_embed",
		Description: "Append an embed to the message.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args addEmbedArgs) (*mcp.CallToolResult, any, error) {
		return handleAddEmbed(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_embed_set",
		Description: "Set or clear one property of an embed.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args embedSetArgs) (*mcp.CallToolResult, any, error) {
		return handleEmbedSet(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_add_field",
		Description: "Append a name/value field to an embed.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args addFieldArgs) (*mcp.CallToolResult, any, error) {
		return handleAddField(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_set_field",
		Description: "Update the name, value, or inline flag of a field. Omitted properties are left alone.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args setFieldArgs) (*mcp.CallToolResult, any, error) {
		return handleSetField(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_field_action",
		Description: "Move a field up or down, duplicate it, or delete it.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args fieldActionArgs) (*mcp.CallToolResult, any, error) {
		return handleFieldAction(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_clear_fields",
		Description: "Remove every field from an embed.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args clearFieldsArgs) (*mcp.CallToolResult, any, error) {
		return handleClearFields(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_replace",
		Description: "Replace the whole message with the given JSON.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args replaceArgs) (*mcp.CallToolResult, any, error) {
		return handleReplace(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_save",
		Description: "Save the current message to the project's library under a name.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args saveArgs) (*mcp.CallToolResult, any, error) {
		return handleSave(*ctx, args), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "embedg_load",
		Description: "Replace the current message with a saved one.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, args loadArgs) (*mcp.CallToolResult, any, error) {
		return handleLoad(*ctx, args), nil, nil
	})
}

func handleGet(ctx ToolContext, args getArgs) *mcp.CallToolResult {
	msg := ctx.Store.Message()
	var value any = msg
	if args.Embed != nil {
		if err := checkIndex(*args.Embed, len(msg.Embeds), "embed"); err != nil {
			return toolError(err.Error())
		}
		value = msg.Embeds[*args.Embed]
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(string(data), false)
}

func handleSetContent(ctx ToolContext, args setContentArgs) *mcp.CallToolResult {
	ctx.Store.SetContent(args.Content)
	return toolResult("Content updated", false)
}

func handleAddEmbed(ctx ToolContext, args addEmbedArgs) *mcp.CallToolResult {
	color, err := types.ParseColor(args.Color)
	if err != nil {
		return toolError(err.Error())
	}
	if color == nil && ctx.DB != nil {
		if fallback, _ := db.GetConfig(ctx.DB, "default_embed_color"); fallback != "" {
			color, _ = types.ParseColor(fallback)
		}
	}
	ctx.Store.AddEmbed(types.Embed{
		ID:          ctx.Store.NewID(),
		Title:       types.StringPtr(args.Title),
		Description: types.StringPtr(args.Description),
		URL:         types.StringPtr(args.URL),
		Color:       color,
		Fields:      []types.EmbedField{},
	})
	return toolResult(fmt.Sprintf("Added embed %d", len(ctx.Store.Message().Embeds)-1), false)
}

func handleEmbedSet(ctx ToolContext, args embedSetArgs) *mcp.CallToolResult {
	if err := checkIndex(args.Embed, len(ctx.Store.Message().Embeds), "embed"); err != nil {
		return toolError(err.Error())
	}
	if err := ctx.Store.SetEmbedProperty(args.Embed, args.Property, args.Value); err != nil {
		return toolError(err.Error())
	}
	return toolResult(fmt.Sprintf("Updated %s on embed %d", args.Property, args.Embed), false)
}

func handleAddField(ctx ToolContext, args addFieldArgs) *mcp.CallToolResult {
	msg := ctx.Store.Message()
	if err := checkIndex(args.Embed, len(msg.Embeds), "embed"); err != nil {
		return toolError(err.Error())
	}
	ctx.Store.AddEmbedField(args.Embed, types.EmbedField{
		ID:     ctx.Store.NewID(),
		Name:   args.Name,
		Value:  args.Value,
		Inline: args.Inline,
	})
	return toolResult(fmt.Sprintf("Added field %d to embed %d", len(msg.Embeds[args.Embed].Fields), args.Embed), false)
}

func handleSetField(ctx ToolContext, args setFieldArgs) *mcp.CallToolResult {
	if err := checkField(ctx, args.Embed, args.Field); err != nil {
		return toolError(err.Error())
	}
	if args.Name == nil && args.Value == nil && args.Inline == nil {
		return toolError("Nothing to update: pass name, value, or inline")
	}
	if args.Name != nil {
		ctx.Store.SetEmbedFieldName(args.Embed, args.Field, *args.Name)
	}
	if args.Value != nil {
		ctx.Store.SetEmbedFieldValue(args.Embed, args.Field, *args.Value)
	}
	if args.Inline != nil {
		ctx.Store.SetEmbedFieldInline(args.Embed, args.Field, args.Inline)
	}
	return toolResult(fmt.Sprintf("Updated field %d on embed %d", args.Field, args.Embed), false)
}

func handleFieldAction(ctx ToolContext, args fieldActionArgs) *mcp.CallToolResult {
	if err := checkField(ctx, args.Embed, args.Field); err != nil {
		return toolError(err.Error())
	}
	i, j := args.Embed, args.Field
	switch strings.ToLower(strings.TrimSpace(args.Action)) {
	case "up":
		ctx.Store.MoveEmbedFieldUp(i, j)
	case "down":
		ctx.Store.MoveEmbedFieldDown(i, j)
	case "dup", "duplicate":
		ctx.Store.DuplicateEmbedField(i, j)
	case "delete", "rm":
		ctx.Store.DeleteEmbedField(i, j)
	default:
		return toolError(fmt.Sprintf("Unknown action %q. Use up, down, dup, or delete", args.Action))
	}
	return toolResult(fmt.Sprintf("Applied %s to field %d on embed %d", args.Action, j, i), false)
}

func handleClearFields(ctx ToolContext, args clearFieldsArgs) *mcp.CallToolResult {
	if err := checkIndex(args.Embed, len(ctx.Store.Message().Embeds), "embed"); err != nil {
		return toolError(err.Error())
	}
	ctx.Store.ClearEmbedFields(args.Embed)
	return toolResult(fmt.Sprintf("Cleared fields on embed %d", args.Embed), false)
}

func handleReplace(ctx ToolContext, args replaceArgs) *mcp.CallToolResult {
	msg, err := types.DecodeMessage([]byte(args.Message))
	if err != nil {
		return toolError(err.Error())
	}
	msg.FillIDs(ctx.Store.NewID)
	ctx.Store.Replace(msg)
	ctx.Logger.Info("message replaced", zap.Int("embeds", len(msg.Embeds)), zap.Int("rows", len(msg.Components)))
	return toolResult(fmt.Sprintf("Message replaced (%d embeds, %d rows)", len(msg.Embeds), len(msg.Components)), false)
}

func handleSave(ctx ToolContext, args saveArgs) *mcp.CallToolResult {
	if strings.TrimSpace(args.Name) == "" {
		return toolError("Error: name cannot be empty")
	}
	saved, err := db.SaveMessage(ctx.DB, args.Name, types.StringPtr(args.Description), ctx.Store.Message())
	if err != nil {
		return toolError(err.Error())
	}
	return toolResult(fmt.Sprintf("Saved %s (%s)", saved.Name, saved.ID), false)
}

func handleLoad(ctx ToolContext, args loadArgs) *mcp.CallToolResult {
	saved, err := db.GetSavedMessage(ctx.DB, strings.TrimSpace(args.Ref))
	if err != nil {
		return toolError(err.Error())
	}
	msg := saved.Data
	msg.Normalize()
	msg.FillIDs(ctx.Store.NewID)
	ctx.Store.Replace(msg)
	return toolResult(fmt.Sprintf("Loaded %s", saved.Name), false)
}

func checkIndex(i, n int, what string) error {
	if i < 0 || i >= n {
		if n == 0 {
			return fmt.Errorf("%s index %d out of range (no %ss)", what, i, what)
		}
		return fmt.Errorf("%s index %d out of range (0-%d)", what, i, n-1)
	}
	return nil
}

func checkField(ctx ToolContext, embed, field int) error {
	msg := ctx.Store.Message()
	if err := checkIndex(embed, len(msg.Embeds), "embed"); err != nil {
		return err
	}
	return checkIndex(field, len(msg.Embeds[embed].Fields), "field")
}

func toolResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}

func toolError(text string) *mcp.CallToolResult {
	return toolResult(text, true)
}
