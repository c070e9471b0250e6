package mcp

import (
	"context"

	"github.com/adamavenir/embedg/internal/workspace"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Server exposes one project's message over MCP stdio.
type Server struct {
	ws     *workspace.Workspace
	server *mcp.Server
	logger *zap.Logger
}

// NewServer opens the project at projectPath and registers the tools.
func NewServer(ctx context.Context, projectPath, version string) (*Server, error) {
	ws, err := workspace.Open(ctx, workspace.Options{Dir: projectPath})
	if err != nil {
		return nil, err
	}
	logger := ws.Logger.Named("mcp")
	logger.Info("discovered project", zap.String("root", ws.Project.Root))

	server := mcp.NewServer(&mcp.Implementation{Name: "embedg", Version: version}, nil)
	RegisterTools(server, &ToolContext{Store: ws.Store, DB: ws.DB, Logger: logger})

	return &Server{ws: ws, server: server, logger: logger}, nil
}

// Run serves requests on stdin/stdout until the client disconnects or ctx
// is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Close releases the project.
func (s *Server) Close() error {
	s.logger.Info("server closed")
	return s.ws.Close()
}
