package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

const maxRetained = 1000

// Store keeps the invocation audit trail in process memory. It is the
// default backend and the fallback when postgres is unavailable.
type Store struct {
	mu     sync.RWMutex
	events []domain.Event
}

func NewStore() *Store {
	return &Store{events: make([]domain.Event, 0, 256)}
}

func (s *Store) AppendEvent(tool string, eventType domain.EventType, outcome string, payload map[string]interface{}) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := domain.Event{
		ID:        uuid.NewString(),
		Tool:      tool,
		Type:      eventType,
		Outcome:   outcome,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	s.events = append(s.events, event)
	if len(s.events) > maxRetained {
		s.events = s.events[len(s.events)-maxRetained:]
	}
	return event
}

func (s *Store) ListEvents(limit int) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	if len(s.events) == 0 {
		return []domain.Event{}
	}
	start := max(len(s.events)-limit, 0)
	out := slices.Clone(s.events[start:])
	slices.Reverse(out)
	return out
}
