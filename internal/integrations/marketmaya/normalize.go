package marketmaya

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

// Normalize collapses the platform's inconsistent response encodings into
// one tagged outcome. Failure arrives as a connectivity fault, an HTTP
// error status, or an error flag buried inside a success-status body; the
// body itself may be a mapping or a bare list. Every combination lands in
// exactly one SubmissionOutcome variant, so callers never branch on
// transport shape.
func Normalize(resp Response, err error) domain.SubmissionOutcome {
	if err != nil {
		return domain.SubmissionOutcome{
			Kind:    domain.OutcomeTransportError,
			Message: err.Error(),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.SubmissionOutcome{
			Kind:       domain.OutcomeRemoteError,
			Message:    errorMessage(resp.Body),
			StatusCode: resp.StatusCode,
		}
	}

	trimmed := strings.TrimSpace(string(resp.Body))
	if strings.HasPrefix(trimmed, "[") {
		return normalizeList(resp.Body)
	}

	var body map[string]interface{}
	if unmarshalErr := json.Unmarshal(resp.Body, &body); unmarshalErr != nil {
		return domain.SubmissionOutcome{
			Kind:    domain.OutcomeRemoteError,
			Message: "malformed response body: " + snippet(resp.Body),
		}
	}

	// The platform overloads HTTP success with payload-level failure.
	if flagged, message := errorFlag(body); flagged {
		return domain.SubmissionOutcome{
			Kind:    domain.OutcomeRemoteError,
			Message: message,
		}
	}

	return domain.SubmissionOutcome{
		Kind:       domain.OutcomeSuccess,
		Identifier: identifierField(body),
		Detail:     body,
	}
}

// normalizeList handles the bare-list success encoding: an implicit
// success whose identifier, when present, rides on the first element.
func normalizeList(raw []byte) domain.SubmissionOutcome {
	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return domain.SubmissionOutcome{
			Kind:    domain.OutcomeRemoteError,
			Message: "malformed response body: " + snippet(raw),
		}
	}
	outcome := domain.SubmissionOutcome{Kind: domain.OutcomeSuccess}
	if len(items) > 0 {
		if first, ok := items[0].(map[string]interface{}); ok {
			outcome.Identifier = identifierField(first)
			outcome.Detail = first
		}
	}
	return outcome
}

func errorFlag(body map[string]interface{}) (bool, string) {
	if v, ok := body["error"]; ok && v != nil {
		switch val := v.(type) {
		case string:
			if val != "" {
				return true, val
			}
		case bool:
			if val {
				return true, errorMessageFromMap(body)
			}
		default:
			return true, errorMessageFromMap(body)
		}
	}
	if status, ok := body["status"].(string); ok && strings.EqualFold(status, "error") {
		return true, errorMessageFromMap(body)
	}
	return false, ""
}

func errorMessageFromMap(body map[string]interface{}) string {
	if s, ok := body["message"].(string); ok && s != "" {
		return s
	}
	if s, ok := body["error"].(string); ok && s != "" {
		return s
	}
	return "remote platform reported an error"
}

// errorMessage extracts a human-readable message from an HTTP error body,
// preferring the structured message/error keys and falling back to raw
// text.
func errorMessage(raw []byte) string {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err == nil {
		if s, ok := body["message"].(string); ok && s != "" {
			return s
		}
		if s, ok := body["error"].(string); ok && s != "" {
			return s
		}
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "remote request failed"
	}
	return text
}

// identifierField reads the server-assigned identifier from an id-like
// field. Identifiers arrive as strings or JSON numbers depending on the
// endpoint; both are rendered as strings, absent ones as "".
func identifierField(body map[string]interface{}) string {
	for _, key := range []string{"id", "strategy_id", "strategyId"} {
		switch v := body[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func snippet(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if len(text) > 120 {
		return text[:120] + "..."
	}
	return text
}
