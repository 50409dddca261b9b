package registry

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
)

// BeneficiaryTool lists a company's real beneficiaries from the CRBR register.
type BeneficiaryTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewBeneficiaryTool creates the beneficiary list tool.
func NewBeneficiaryTool(client *rejestr.Client) tools.Tool {
	t := &BeneficiaryTool{client: client}

	t.handle = mcp.NewTool(
		"get_beneficiary",
		mcp.WithDescription("Retrieves the list of real beneficiaries for a company from CRBR (Central Register of Real Beneficiaries): personal data, citizenship and residence, nature of beneficial ownership and entry dates. This data comes from CRBR, not KRS, so beneficial owners may differ from formal representatives. Not every company has a CRBR entry; missing entries fail remotely."),
		mcp.WithString(
			"krs",
			mcp.Required(),
			mcp.Description("KRS number of the company, zero-padded (\"0000012345\") or bare (\"12345\")."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *BeneficiaryTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches org/{krs}/crbr.
func (t *BeneficiaryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	krs, err := stringArg(request, "krs")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("org/%s/crbr", krs))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}
