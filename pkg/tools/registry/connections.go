package registry

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
)

// CompanyConnectionsTool lists business connections for a company.
type CompanyConnectionsTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewCompanyConnectionsTool creates the company connection graph tool.
func NewCompanyConnectionsTool(client *rejestr.Client) tools.Tool {
	t := &CompanyConnectionsTool{client: client}

	t.handle = mcp.NewTool(
		"get_connections_by_krs",
		mcp.WithDescription("Retrieves all business connections and relationships for a company: connected entities (people and companies), relationship types (owner, board member, representative), roles and relationship dates. Useful for mapping ownership structure, key decision makers and due diligence."),
		mcp.WithString(
			"krs",
			mcp.Required(),
			mcp.Description("KRS number of the company, zero-padded (\"0000012345\") or bare (\"12345\")."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *CompanyConnectionsTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches org/{krs}/krs-powiazania.
func (t *CompanyConnectionsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	krs, err := stringArg(request, "krs")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("org/%s/krs-powiazania", krs))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}

// PersonConnectionsTool lists business connections for an individual.
type PersonConnectionsTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewPersonConnectionsTool creates the person connection graph tool.
func NewPersonConnectionsTool(client *rejestr.Client) tools.Tool {
	t := &PersonConnectionsTool{client: client}

	t.handle = mcp.NewTool(
		"get_connections_by_person",
		mcp.WithDescription("Retrieves all business connections and relationships for an individual: every company where the person has a role (owner, board member, proxy, shareholder), with company details, role descriptions and relationship dates. The person id must be obtained first from company data or a beneficiary list."),
		mcp.WithString(
			"id",
			mcp.Required(),
			mcp.Description("Unique person identifier in the rejestr.io database."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *PersonConnectionsTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches osoby/{id}/krs-powiazania.
func (t *PersonConnectionsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := stringArg(request, "id")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("osoby/%s/krs-powiazania", id))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}
