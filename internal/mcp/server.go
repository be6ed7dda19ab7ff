// Package mcp provides an MCP (Model Context Protocol) server exposing
// entrain's validation and journey planning tools.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/k2jama/entrain/internal/logging"
	"github.com/k2jama/entrain/internal/store"
	"github.com/k2jama/entrain/internal/validation"
)

// Server wraps the MCP SDK server and the validation engine behind it.
type Server struct {
	server *sdk.Server
	engine *validation.Engine
	store  *store.ProfileStore
}

// Config holds server configuration.
type Config struct {
	Name      string // Server name (e.g., "entrain")
	Version   string // Server version
	StorePath string // Profile database path
	AuditDir  string // Audit log directory, empty disables auditing
	LogLevel  string // Log verbosity
}

// NewServer creates a new MCP server with entrain tools.
func NewServer(cfg *Config) (*Server, error) {
	profileStore, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("opening profile store: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)
	audit := logging.NewAuditLogger(cfg.AuditDir, cfg.LogLevel)

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			// Client initialized, ready to serve
		},
	})

	s := &Server{
		server: mcpServer,
		engine: validation.NewEngine(logger, audit),
		store:  profileStore,
	}

	if err := s.registerTools(); err != nil {
		profileStore.Close()
		return nil, fmt.Errorf("registering tools: %w", err)
	}
	if err := s.registerResources(); err != nil {
		profileStore.Close()
		return nil, fmt.Errorf("registering resources: %w", err)
	}

	return s, nil
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	err := s.server.Run(ctx, &sdk.StdioTransport{})

	s.store.Close()

	return err
}

// Close closes the server and releases resources.
func (s *Server) Close() error {
	return s.store.Close()
}
