package command

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/adamavenir/embedg/internal/types"
	"github.com/adamavenir/embedg/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the current message with JSON from a file",
		Long:  "Replace the current message with JSON from a file. Accepts a bare message or an exported store record. With --watch, re-imports whenever the file changes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watchFile, _ := cmd.Flags().GetBool("watch")
			path := args[0]
			if watchFile && path == "-" {
				return writeCommandError(cmd, fmt.Errorf("--watch needs a file path"))
			}

			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.Close()

			load := func() (types.Message, error) {
				msg, err := readMessageFile(path, cmd.InOrStdin())
				if err != nil {
					return types.Message{}, err
				}
				msg.FillIDs(ctx.Store.NewID)
				ctx.Store.Replace(msg)
				return msg, nil
			}

			msg, err := load()
			if err != nil {
				return writeCommandError(cmd, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %s (%s, %s)\n", path, plural(len(msg.Embeds), "embed"), plural(len(msg.Components), "row"))
			if !watchFile {
				return nil
			}

			runCtx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			watcher, err := watch.New(path, func() error {
				msg, err := load()
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
					return err
				}
				fmt.Fprintf(out, "Reloaded %s (%s)\n", path, plural(len(msg.Embeds), "embed"))
				return nil
			}, watch.WithLogger(ctx.Logger.Named("watch")))
			if err != nil {
				return writeCommandError(cmd, err)
			}

			ctx.Logger.Info("watching import file", zap.String("path", path))
			fmt.Fprintf(out, "Watching %s (ctrl+c to stop)\n", path)
			if err := watcher.Run(runCtx); err != nil {
				return writeCommandError(cmd, err)
			}
			return nil
		},
	}

	cmd.Flags().Bool("watch", false, "re-import when the file changes")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
