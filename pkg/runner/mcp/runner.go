package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"
)

// Runner coordinates MCP server startup. The server speaks over stdio.
type Runner struct {
	Service *Service
	Name    string
	Version string
}

// Run starts the Model Context Protocol server using stdio transport.
func Run(ctx context.Context, svc *Service) error {
	r := Runner{
		Service: svc,
		Name:    "calm",
		Version: "dev",
	}
	return r.Do(ctx)
}

// NewServer builds the MCP server with every resource and tool registered.
func (r Runner) NewServer() *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "calm"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read calm's coping exercises and affirmations, and read or add journal entries."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	registerResources(srv, r.Service)
	registerTools(srv, r.Service)
	return srv
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil || r.Service.Storage == nil {
		return errors.New("mcp runner requires persistence")
	}
	return server.ServeStdio(r.NewServer())
}
