package strategy

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

func TestCompileQuery_Defaults(t *testing.T) {
	record, err := CompileQuery(domain.StrategyQueryFilter{})
	if err != nil {
		t.Fatalf("CompileQuery error: %v", err)
	}
	if record.Skip != 0 || record.Take != 20 {
		t.Fatalf("skip/take = %d/%d", record.Skip, record.Take)
	}
	if record.Symbols == nil || len(record.Symbols) != 0 {
		t.Fatalf("symbols = %#v, want empty list", record.Symbols)
	}
	if record.SortBy != "createdAt" {
		t.Fatalf("sortBy = %q", record.SortBy)
	}

	// The remote contract requires a list; null is never acceptable.
	raw, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"symbols":[]`) {
		t.Fatalf("symbols must serialize as [], got %s", raw)
	}
	if !strings.Contains(string(raw), `"tradingType"`) {
		t.Fatalf("expected camelCase tradingType, got %s", raw)
	}
}

func TestCompileQuery_PassesThroughFilters(t *testing.T) {
	record, err := CompileQuery(domain.StrategyQueryFilter{
		Skip:        40,
		Take:        10,
		Search:      "reliance",
		Symbols:     []string{"RELIANCE", "INFY"},
		TradingType: "Live",
		SortKey:     "strategyName",
	})
	if err != nil {
		t.Fatalf("CompileQuery error: %v", err)
	}
	if record.Skip != 40 || record.Take != 10 || record.Search != "reliance" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.TradingType != "Live" || record.SortBy != "strategyName" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if len(record.Symbols) != 2 {
		t.Fatalf("symbols = %#v", record.Symbols)
	}
}

func TestCompileQuery_RejectsInvalidRanges(t *testing.T) {
	if _, err := CompileQuery(domain.StrategyQueryFilter{Skip: -1}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("negative skip: err = %v", err)
	}
	if _, err := CompileQuery(domain.StrategyQueryFilter{Take: -5}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("negative take: err = %v", err)
	}
	if _, err := CompileQuery(domain.StrategyQueryFilter{TradingType: "Margin"}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("bad trading type: err = %v", err)
	}
}
