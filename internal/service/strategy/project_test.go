package strategy

import (
	"testing"
)

func TestProjectSummaries_ExtractsFixedSubset(t *testing.T) {
	data := []map[string]interface{}{
		{
			"id":              float64(416156),
			"strategy_name":   "RELIANCE Scalping",
			"main_symbol":     "RELIANCE",
			"trading_type":    "Live",
			"is_deployed":     true,
			"created_at":      "2025-01-15T09:16:00Z",
			"required_margin": float64(100000),
		},
		{
			// camelCase spelling from the other endpoint generation
			"id":             "abc123",
			"strategyName":   "SILVER Scalping",
			"mainSymbol":     "SILVER",
			"tradingType":    "Paper",
			"isDeployed":     false,
			"createdAt":      "2025-02-01T10:00:00Z",
			"requiredMargin": "250000",
		},
	}

	summaries := ProjectSummaries(data)
	if len(summaries) != 2 {
		t.Fatalf("len = %d", len(summaries))
	}

	first := summaries[0]
	if first.ID != "416156" || first.Name != "RELIANCE Scalping" || first.Symbol != "RELIANCE" {
		t.Fatalf("first = %+v", first)
	}
	if !first.IsDeployed || first.TradingType != "Live" {
		t.Fatalf("first = %+v", first)
	}
	if first.FormattedMargin != "100000.00" {
		t.Fatalf("first margin = %q", first.FormattedMargin)
	}

	second := summaries[1]
	if second.ID != "abc123" || second.Name != "SILVER Scalping" || second.Symbol != "SILVER" {
		t.Fatalf("second = %+v", second)
	}
	if second.IsDeployed || second.TradingType != "Paper" {
		t.Fatalf("second = %+v", second)
	}
	if second.FormattedMargin != "250000.00" {
		t.Fatalf("second margin = %q", second.FormattedMargin)
	}
}

func TestProjectSummaries_MissingFieldsAreNotErrors(t *testing.T) {
	summaries := ProjectSummaries([]map[string]interface{}{{}})
	if len(summaries) != 1 {
		t.Fatalf("len = %d", len(summaries))
	}
	s := summaries[0]
	if s.ID != "" || s.Name != "" || s.Symbol != "" || s.FormattedMargin != "" {
		t.Fatalf("expected zero-valued summary, got %+v", s)
	}
	if s.IsDeployed {
		t.Fatalf("IsDeployed should default to false")
	}
}

func TestProjectSummaries_EmptyInput(t *testing.T) {
	if got := ProjectSummaries(nil); got == nil || len(got) != 0 {
		t.Fatalf("ProjectSummaries(nil) = %#v, want empty slice", got)
	}
}
