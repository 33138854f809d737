package strategy

import (
	"fmt"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

const defaultTake = 20

var validTradingTypes = map[string]bool{
	"":         true,
	"Live":     true,
	"Paper":    true,
	"Backtest": true,
}

// CompileQuery maps a StrategyQueryFilter onto the wire query record. Pure
// field renaming plus defaulting; no derived fields. An unset symbol list
// compiles to an empty list because the remote contract requires one.
func CompileQuery(f domain.StrategyQueryFilter) (domain.StrategyQueryRecord, error) {
	if f.Skip < 0 {
		return domain.StrategyQueryRecord{}, fmt.Errorf("%w: skip must be >= 0, got %d", ErrInvalidParameter, f.Skip)
	}
	if f.Take < 0 {
		return domain.StrategyQueryRecord{}, fmt.Errorf("%w: take must be > 0, got %d", ErrInvalidParameter, f.Take)
	}
	if !validTradingTypes[f.TradingType] {
		return domain.StrategyQueryRecord{}, fmt.Errorf("%w: trading_type must be Live, Paper or Backtest, got %q", ErrInvalidParameter, f.TradingType)
	}

	take := f.Take
	if take == 0 {
		take = defaultTake
	}
	symbols := f.Symbols
	if symbols == nil {
		symbols = []string{}
	}
	sortBy := f.SortKey
	if sortBy == "" {
		sortBy = "createdAt"
	}

	return domain.StrategyQueryRecord{
		Skip:        f.Skip,
		Take:        take,
		Search:      f.Search,
		Symbols:     symbols,
		TradingType: f.TradingType,
		SortBy:      sortBy,
	}, nil
}
