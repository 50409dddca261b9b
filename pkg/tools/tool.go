// Package tools defines the contract shared by every MCP tool in this server.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is implemented by every operation exposed over MCP.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
