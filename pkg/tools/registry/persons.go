package registry

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
)

// PersonDataTool retrieves details about an individual from the registry.
type PersonDataTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewPersonDataTool creates the person lookup tool.
func NewPersonDataTool(client *rejestr.Client) tools.Tool {
	t := &PersonDataTool{client: client}

	t.handle = mcp.NewTool(
		"get_person_data",
		mcp.WithDescription("Retrieves detailed information about an individual (company officer, board member, shareholder or beneficiary): full name, addresses, roles in companies and related connections. First find the company with the company tools or get_beneficiary, extract the person id from its data, then call this tool."),
		mcp.WithString(
			"id",
			mcp.Required(),
			mcp.Description("Unique person identifier in the rejestr.io database, obtained from company data or a beneficiary list."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *PersonDataTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches osoby/{id}.
func (t *PersonDataTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := stringArg(request, "id")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("osoby/%s", id))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}
