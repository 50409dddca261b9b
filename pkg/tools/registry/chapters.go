package registry

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
)

// KRSChaptersTool retrieves one chapter of a company's KRS documentation.
type KRSChaptersTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewKRSChaptersTool creates the KRS chapter fetch tool.
func NewKRSChaptersTool(client *rejestr.Client) tools.Tool {
	t := &KRSChaptersTool{client: client}

	t.handle = mcp.NewTool(
		"get_company_krs_documentation",
		mcp.WithDescription("Retrieves one chapter of a company's KRS (National Court Register) documentation. The register is organized into chapters, each covering a specific aspect of the company."),
		mcp.WithString(
			"krs",
			mcp.Required(),
			mcp.Description("KRS number, zero-padded (\"0000012345\") or bare (\"12345\")."),
		),
		mcp.WithString(
			"chapter",
			mcp.Required(),
			mcp.Description("Chapter name, one of: \"ogolny\" (general data, purpose, representatives), \"oddzialy\" (branches and organizational units), \"akcje\" (shares and shareholders), \"wzmianki\" (mentions and annotations such as bankruptcy or liquidation), \"zobowiazania\" (liabilities and encumbrances), \"przeksztalcenia\" (transformations and organizational changes). Any other value is rejected by the remote API."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *KRSChaptersTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches org/{krs}/krs-rozdzialy/{chapter}. The chapter string is
// forwarded verbatim; the remote API owns the valid set.
func (t *KRSChaptersTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	krs, err := stringArg(request, "krs")
	if err != nil {
		return paramError(err), nil
	}

	chapter, err := stringArg(request, "chapter")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("org/%s/krs-rozdzialy/%s", krs, chapter))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}
