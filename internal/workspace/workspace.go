// Package workspace wires a project's configuration, database, slot backend
// and document store together for the CLI and the MCP server.
package workspace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adamavenir/embedg/internal/core"
	"github.com/adamavenir/embedg/internal/db"
	"github.com/adamavenir/embedg/internal/store"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Options controls how a workspace is opened.
type Options struct {
	// Dir is where project discovery starts. Empty means the working directory.
	Dir string
	// Flags are bound over embedg.yaml and EMBEDG_* values.
	Flags *pflag.FlagSet
	// Logger replaces the configured logger when set.
	Logger *zap.Logger
}

// Workspace is an opened project.
type Workspace struct {
	Project core.Project
	Config  core.Config
	DB      *sql.DB
	Slot    store.Slot
	Store   *store.Store
	Logger  *zap.Logger

	closers []func() error
}

// Open discovers the project and loads its current message.
func Open(ctx context.Context, opts Options) (*Workspace, error) {
	project, err := core.DiscoverProject(opts.Dir)
	if err != nil {
		return nil, err
	}
	return OpenProject(ctx, project, opts)
}

// OpenProject opens a known project.
func OpenProject(ctx context.Context, project core.Project, opts Options) (*Workspace, error) {
	cfg, err := core.LoadConfig(project, opts.Flags)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{Project: project, Config: cfg, Logger: opts.Logger}
	if ws.Logger == nil {
		logger, err := core.NewLogger(cfg.Log)
		if err != nil {
			return nil, err
		}
		ws.Logger = logger
		ws.closers = append(ws.closers, func() error {
			_ = logger.Sync()
			return nil
		})
	}

	conn, err := db.OpenDatabase(project)
	if err != nil {
		_ = ws.Close()
		return nil, err
	}
	ws.DB = conn
	ws.closers = append(ws.closers, conn.Close)

	switch cfg.Backend {
	case core.BackendPebble:
		slot, err := db.OpenPebbleSlot(project.PebblePath())
		if err != nil {
			_ = ws.Close()
			return nil, fmt.Errorf("open pebble: %w", err)
		}
		ws.Slot = slot
		ws.closers = append(ws.closers, slot.Close)
	default:
		ws.Slot = db.NewSQLiteSlot(conn)
	}

	ws.Store = store.New(ws.Slot, core.NewSequence(),
		store.WithLogger(ws.Logger.Named("store")),
		store.WithName(cfg.StoreName),
	)
	if err := ws.Store.Load(ctx); err != nil {
		_ = ws.Close()
		return nil, err
	}

	ws.Logger.Debug("workspace opened",
		zap.String("root", project.Root),
		zap.String("backend", cfg.Backend),
		zap.String("store", cfg.StoreName),
	)
	return ws, nil
}

// Close releases resources in reverse order of acquisition.
func (w *Workspace) Close() error {
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	return errors.Join(errs...)
}
