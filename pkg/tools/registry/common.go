// Package registry exposes the rejestr.io business-registry endpoints as MCP tools.
//
// Every tool follows the same template: extract plain string arguments,
// interpolate them into a fixed endpoint, delegate to the rejestr client, and
// return either the remote JSON untouched or a uniform error result. No tool
// validates identifier formats locally; the remote API owns those rules.
package registry

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Helper to extract a string argument.
func stringArg(req mcp.CallToolRequest, key string) (string, error) {
	val, ok := req.Params.Arguments[key]
	if !ok {
		return "", fmt.Errorf("missing argument: %s", key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("argument %s is not a string", key)
	}

	return str, nil
}

// errorResult converts a failed remote call into the uniform error result
// shared by every tool. The IsError flag discriminates it from a payload.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("An error occurred: %v", err))
}

// paramError reports an invalid or missing tool argument.
func paramError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
