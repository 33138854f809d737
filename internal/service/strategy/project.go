package strategy

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

// ProjectSummaries maps each element of the remote data list onto a
// StrategySummary. Absent optional fields resolve to zero values, never to
// an error; the remote mixes snake_case and camelCase key spellings, so
// both are tried.
func ProjectSummaries(data []map[string]interface{}) []domain.StrategySummary {
	out := make([]domain.StrategySummary, 0, len(data))
	for _, item := range data {
		out = append(out, projectSummary(item))
	}
	return out
}

func projectSummary(item map[string]interface{}) domain.StrategySummary {
	return domain.StrategySummary{
		ID:              fieldString(item, "id"),
		Name:            fieldString(item, "strategy_name", "strategyName", "name"),
		Symbol:          fieldString(item, "main_symbol", "mainSymbol", "symbol"),
		TradingType:     fieldString(item, "trading_type", "tradingType"),
		IsDeployed:      fieldBool(item, "is_deployed", "isDeployed"),
		CreatedAt:       fieldString(item, "created_at", "createdAt"),
		FormattedMargin: formatMargin(item),
	}
}

func formatMargin(item map[string]interface{}) string {
	for _, key := range []string{"required_margin", "requiredMargin"} {
		switch v := item[key].(type) {
		case float64:
			return decimal.NewFromFloat(v).StringFixed(2)
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d.StringFixed(2)
			}
		}
	}
	return ""
}

func fieldString(item map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := item[key].(type) {
		case string:
			return v
		case float64:
			// Remote ids arrive as JSON numbers on some endpoints.
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

func fieldBool(item map[string]interface{}, keys ...string) bool {
	for _, key := range keys {
		if v, ok := item[key].(bool); ok {
			return v
		}
	}
	return false
}
