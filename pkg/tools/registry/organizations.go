package registry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
)

// CompanyByNIPTool looks up a company by its tax identification number.
type CompanyByNIPTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewCompanyByNIPTool creates the NIP lookup tool.
func NewCompanyByNIPTool(client *rejestr.Client) tools.Tool {
	t := &CompanyByNIPTool{client: client}

	t.handle = mcp.NewTool(
		"get_company_info_using_nip",
		mcp.WithDescription("Retrieves comprehensive company information by NIP (Polish tax identification number): name, legal form, status, registration numbers (KRS, REGON, NIP), addresses, capital and registration dates."),
		mcp.WithString(
			"nip",
			mcp.Required(),
			mcp.Description("10-digit tax identification number without separators, e.g. \"1234567890\" (not \"123-456-78-90\")."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *CompanyByNIPTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches org/nip/{nip}.
func (t *CompanyByNIPTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nip, err := stringArg(request, "nip")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("org/nip/%s", nip))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}

// CompanyByKRSTool looks up a company by its National Court Register number.
type CompanyByKRSTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewCompanyByKRSTool creates the KRS lookup tool.
func NewCompanyByKRSTool(client *rejestr.Client) tools.Tool {
	t := &CompanyByKRSTool{client: client}

	t.handle = mcp.NewTool(
		"get_company_info_using_krs",
		mcp.WithDescription("Retrieves comprehensive company information by KRS (National Court Register) number, the primary identifier for companies registered in Poland: name, legal form, status, registration numbers, addresses, share capital, management and representatives."),
		mcp.WithString(
			"krs",
			mcp.Required(),
			mcp.Description("KRS number, either zero-padded (\"0000012345\") or bare (\"12345\"). Both formats are accepted and forwarded as given."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *CompanyByKRSTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches org/{krs}. The id is passed through unmodified; the remote
// resolves padded and bare forms to the same record.
func (t *CompanyByKRSTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	krs, err := stringArg(request, "krs")
	if err != nil {
		return paramError(err), nil
	}

	raw, err := t.client.Get(ctx, fmt.Sprintf("org/%s", krs))
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}

// CompanySearchTool searches for companies by name.
type CompanySearchTool struct {
	client *rejestr.Client
	handle mcp.Tool
}

// NewCompanySearchTool creates the name search tool.
func NewCompanySearchTool(client *rejestr.Client) tools.Tool {
	t := &CompanySearchTool{client: client}

	t.handle = mcp.NewTool(
		"get_company_info_using_name",
		mcp.WithDescription("Searches for companies by name. Returns a paginated envelope: liczba_wszystkich_wynikow (total match count) and wyniki (a page of summaries with id, nazwy, numery, stan, adres, krs_wpisy, krs_powiazania_liczby). Results are sorted by text relevance modified by share capital, 10 per page. For exact data after finding a company, use get_company_info_using_krs or get_company_info_using_nip with the numbers from the results."),
		mcp.WithString(
			"name",
			mcp.Required(),
			mcp.Description("Company name or partial name to search for, e.g. \"Microsoft\". Case-insensitive, partial matches supported."),
		),
	)

	return t
}

// Handle returns the tool's definition.
func (t *CompanySearchTool) Handle() mcp.Tool {
	return t.handle
}

// Handler fetches org?nazwa={name}. The name is query-encoded so spaces and
// diacritics reach the remote intact.
func (t *CompanySearchTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := stringArg(request, "name")
	if err != nil {
		return paramError(err), nil
	}

	params := url.Values{}
	params.Set("nazwa", name)

	raw, err := t.client.Get(ctx, "org?"+params.Encode())
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}
