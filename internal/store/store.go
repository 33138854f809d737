package store

import "github.com/SureshAmal/mmcopilot-mcp/internal/domain"

// Store is the invocation audit trail used by the HTTP layer. It is the
// only state this service keeps; the compile-and-submit path itself is
// stateless.
type Store interface {
	AppendEvent(tool string, eventType domain.EventType, outcome string, payload map[string]interface{}) domain.Event
	ListEvents(limit int) []domain.Event
}
