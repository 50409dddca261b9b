package registry

import (
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/rejestr"
	"github.com/KolegaLiterat/rejestr-io-mcp/pkg/tools"
)

// Provider bundles every rejestr.io tool behind a single constructor, keyed by
// tool name.
type Provider struct {
	Tools map[string]tools.Tool
}

// NewProvider builds all registry tools around one shared client.
func NewProvider(client *rejestr.Client) *Provider {
	p := &Provider{
		Tools: make(map[string]tools.Tool),
	}

	for _, tool := range []tools.Tool{
		NewTokenAmountTool(client),
		NewCompanyByNIPTool(client),
		NewCompanyByKRSTool(client),
		NewCompanySearchTool(client),
		NewKRSChaptersTool(client),
		NewPersonDataTool(client),
		NewBeneficiaryTool(client),
		NewCompanyConnectionsTool(client),
		NewPersonConnectionsTool(client),
		NewFinancialDocumentsTool(client),
		NewFinancialStatementTool(client),
	} {
		p.Tools[tool.Handle().Name] = tool
	}

	return p
}
