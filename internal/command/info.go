package command

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/adamavenir/embedg/internal/core"
	"github.com/adamavenir/embedg/internal/db"
	"github.com/adamavenir/embedg/internal/types"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type documentInfo struct {
	Embeds     int `json:"embeds"`
	Fields     int `json:"fields"`
	Rows       int `json:"rows"`
	Components int `json:"components"`
	Bytes      int `json:"bytes"`
}

type projectInfo struct {
	Initialized bool              `json:"initialized"`
	Path        string            `json:"path,omitempty"`
	Backend     string            `json:"backend,omitempty"`
	StoreName   string            `json:"store_name,omitempty"`
	Database    string            `json:"database,omitempty"`
	DBSize      int64             `json:"db_size,omitempty"`
	LogFile     string            `json:"log_file,omitempty"`
	SavedCount  int               `json:"saved_count"`
	Document    *documentInfo     `json:"document,omitempty"`
	Config      map[string]string `json:"config,omitempty"`
}

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show project paths, backend, and document statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")
			projectDir, _ := cmd.Flags().GetString("project")

			if _, err := core.DiscoverProject(projectDir); err != nil {
				if jsonMode {
					return writeJSON(cmd.OutOrStdout(), projectInfo{Initialized: false})
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Not initialized")
				fmt.Fprintln(cmd.OutOrStdout(), "Run: embedg init")
				return nil
			}

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			info, err := getProjectInfo(ctx)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if jsonMode {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			formatProjectInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func getProjectInfo(ctx *CommandContext) (projectInfo, error) {
	info := projectInfo{
		Initialized: true,
		Path:        ctx.Project.Root,
		Backend:     ctx.Config.Backend,
		StoreName:   ctx.Config.StoreName,
		Database:    ctx.Project.DBPath,
		LogFile:     ctx.Config.Log.File,
		Document:    describeDocument(ctx.Store.Message()),
	}
	if stat, err := os.Stat(ctx.Project.DBPath); err == nil {
		info.DBSize = stat.Size()
	}

	saved, err := db.ListSavedMessages(ctx.DB, "")
	if err != nil {
		return projectInfo{}, err
	}
	info.SavedCount = len(saved)

	entries, err := db.GetAllConfig(ctx.DB)
	if err != nil {
		return projectInfo{}, err
	}
	info.Config = make(map[string]string, len(entries))
	for _, entry := range entries {
		info.Config[entry.Key] = entry.Value
	}
	return info, nil
}

func describeDocument(msg types.Message) *documentInfo {
	doc := &documentInfo{Embeds: len(msg.Embeds), Rows: len(msg.Components)}
	for _, embed := range msg.Embeds {
		doc.Fields += len(embed.Fields)
	}
	for _, row := range msg.Components {
		doc.Components += len(row.Components)
	}
	if data, err := json.Marshal(msg); err == nil {
		doc.Bytes = len(data)
	}
	return doc
}

func formatProjectInfo(out io.Writer, info projectInfo) {
	fmt.Fprintf(out, "Project: %s\n", info.Path)
	fmt.Fprintf(out, "  Backend: %s (slot %q)\n", info.Backend, info.StoreName)
	fmt.Fprintf(out, "  Database: %s (%s)\n", info.Database, humanize.Bytes(uint64(info.DBSize)))
	if info.LogFile != "" {
		fmt.Fprintf(out, "  Log: %s\n", info.LogFile)
	}
	if doc := info.Document; doc != nil {
		fmt.Fprintf(out, "  Document: %s, %s, %s, %s (%s)\n",
			plural(doc.Embeds, "embed"), plural(doc.Fields, "field"),
			plural(doc.Rows, "row"), plural(doc.Components, "component"),
			humanize.Bytes(uint64(doc.Bytes)))
	}
	fmt.Fprintf(out, "  Saved messages: %d\n", info.SavedCount)
}
