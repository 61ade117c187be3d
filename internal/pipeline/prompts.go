package pipeline

import (
	"fmt"

	"github.com/akolanti/CatalystAPI/internal/config"
)

const defaultSinglePrompt = `Summarise the attached company disclosures ONLY from a stock catalyst perspective.

Focus on:
- New orders or revenue visibility
- Capacity expansion or capex
- Margin, cost, or profitability commentary
- Balance sheet changes
- Management guidance or outlook
- Strategic or structural developments

Ignore:
- Boilerplate
- Legal text
- Repetition
- Detailed financial tables

Return the output in JSON with keys:
- growth_orders
- margins_costs
- capex_capacity
- balance_sheet
- management_outlook
- strategic_events

If there are no meaningful catalysts, return an empty JSON object.`

const defaultChunkPrompt = `Summarise this section of the company disclosures ONLY from a stock catalyst perspective.

Focus on:
- New orders or revenue visibility
- Capacity expansion or capex
- Margin, cost, or profitability commentary
- Balance sheet changes
- Management guidance or outlook
- Strategic or structural developments

Ignore:
- Boilerplate
- Legal text
- Repetition
- Detailed financial tables

Return the output in JSON with keys:
- growth_orders
- margins_costs
- capex_capacity
- balance_sheet
- management_outlook
- strategic_events

If there are no meaningful catalysts in this section, return an empty JSON object.`

const defaultCombinePrompt = `You have been provided with JSON summaries from different sections of a company disclosure document. Each section summary contains catalyst information in JSON format with keys: growth_orders, margins_costs, capex_capacity, balance_sheet, management_outlook, strategic_events.

Please combine these section summaries into a single, comprehensive JSON object with the same keys.

Rules:
- Merge information from all sections
- Eliminate redundancy
- Keep only the most important and specific catalyst information
- If a key has no meaningful catalysts across all sections, use an empty array or null
- Maintain JSON structure with keys: growth_orders, margins_costs, capex_capacity, balance_sheet, management_outlook, strategic_events

Return ONLY the final combined JSON object, no additional text.`

type prompts struct {
	single  string
	chunk   string
	combine string
}

// loadPrompts builds the three summarization prompts. Defaults carry a
// "Company: X" prefix when the stock is known; prompts overridden in
// config.json are used verbatim.
func loadPrompts(stockName string) prompts {
	prefix := ""
	if stockName != "" {
		prefix = fmt.Sprintf("Company: %s\n\n", stockName)
	}

	p := prompts{
		single:  prefix + defaultSinglePrompt,
		chunk:   prefix + defaultChunkPrompt,
		combine: defaultCombinePrompt,
	}

	overrides := config.GetRuntimeConfig().GeminiPrompts
	if v, ok := overrides["single_request"]; ok {
		p.single = v
	}
	if v, ok := overrides["chunk_request"]; ok {
		p.chunk = v
	}
	if v, ok := overrides["combine_request"]; ok {
		p.combine = v
	}
	return p
}
