// Command server is the stdio MCP entry point for the rejestr.io bridge.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/config"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools/registry"
)

func main() {
	// stdout carries the MCP transport; all logging goes to stderr.
	log.SetOutput(os.Stderr)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Warn("configuration warning", "error", err)
	}

	mcpServer := server.NewMCPServer(
		"Rejestr.io MCP Server",
		"1.0.0",
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(true),
		server.WithLogging(),
	)

	client := rejestr.New(cfg.Rejestr.BaseURL, cfg.Rejestr.APIKey)

	reg := NewToolRegistry(mcpServer)
	for name, tool := range registry.NewProvider(client).Tools {
		reg.Register(name, tool)
	}

	log.Info("serving rejestr.io tools over stdio", "tools", len(reg.tools))

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatal("server error", "error", err)
	}
}

// ToolRegistry manages tool registration and lifecycle
type ToolRegistry struct {
	server *server.MCPServer
	tools  map[string]tools.Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *server.MCPServer) *ToolRegistry {
	return &ToolRegistry{
		server: mcpServer,
		tools:  make(map[string]tools.Tool),
	}
}

// Register registers a tool with the server
func (r *ToolRegistry) Register(name string, tool tools.Tool) {
	r.tools[name] = tool
	r.server.AddTool(tool.Handle(), tool.Handler)
}
