package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
)

// TokenAmountTool reports the remaining rejestr.io account balance.
type TokenAmountTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewTokenAmountTool creates the balance-check tool.
func NewTokenAmountTool(client *rejestr.Client) tools.Tool {
	t := &TokenAmountTool{client: client}

	t.handle = mcp.NewTool(
		"get_token_amount",
		mcp.WithDescription("Checks the current rejestr.io account token balance in PLN. Some operations, like retrieving financial statements in JSON format, cost tokens; call this first to confirm there are sufficient credits before making metered requests."),
	)

	return t
}

// Handle returns the tool's definition.
func (t *TokenAmountTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches konto/stan and renders the balance with a PLN suffix.
func (t *TokenAmountTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := t.client.Get(ctx, "konto/stan")
	if err != nil {
		return errorResult(err), nil
	}

	var balance any
	if err := json.Unmarshal(raw, &balance); err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%v PLN", balance)), nil
}
