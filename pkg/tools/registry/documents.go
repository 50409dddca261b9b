package registry

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
)

// FinancialDocumentsTool lists a company's financial filings in KRS.
type FinancialDocumentsTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewFinancialDocumentsTool creates the financial document list tool.
func NewFinancialDocumentsTool(client *rejestr.Client) tools.Tool {
	t := &FinancialDocumentsTool{client: client}

	t.handle = mcp.NewTool(
		"get_financial_documents",
		mcp.WithDescription("Retrieves metadata for all financial documents a company filed in KRS: document id, type, reporting period, filing date and the czy_ma_json flag marking documents available in structured JSON. This tool returns the list only; to download a statement use get_financial_statement_in_json with a document id where czy_ma_json is true."),
		mcp.WithString(
			"krs",
			mcp.Required(),
			mcp.Description("KRS number of the company, zero-padded (\"0000012345\") or bare (\"12345\")."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *FinancialDocumentsTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches org/{krs}/krs-dokumenty.
func (t *FinancialDocumentsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	krs, err := stringArg(request, "krs")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("org/%s/krs-dokumenty", krs))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}

// FinancialStatementTool downloads one financial statement in JSON form.
type FinancialStatementTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewFinancialStatementTool creates the metered statement download tool.
func NewFinancialStatementTool(client *rejestr.Client) tools.Tool {
	t := &FinancialStatementTool{client: client}

	t.handle = mcp.NewTool(
		"get_financial_statement_in_json",
		mcp.WithDescription("Downloads a complete financial statement in structured JSON: balance sheet, profit and loss, cash flows and notes. IMPORTANT: this request costs 0.50 PLN per document. Inform the user about the cost and get confirmation first, check the balance with get_token_amount, and only request documents where get_financial_documents reported czy_ma_json = true. Neither the cost nor the availability flag is enforced here."),
		mcp.WithString(
			"krs",
			mcp.Required(),
			mcp.Description("KRS number of the company, zero-padded (\"0000012345\") or bare (\"12345\")."),
		),
		mcp.WithString(
			"doc_id",
			mcp.Required(),
			mcp.Description("Document identifier from get_financial_documents; only documents with czy_ma_json = true have a JSON rendition."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *FinancialStatementTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches org/{krs}/krs-dokumenty/{doc_id}?format=json.
func (t *FinancialStatementTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	krs, err := stringArg(request, "krs")
	if err != nil {
		return paramError(err), nil
	}

	docID, err := stringArg(request, "doc_id")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("org/%s/krs-dokumenty/%s?format=json", krs, docID))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}
