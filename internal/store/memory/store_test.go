package memory

import (
	"testing"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

func TestAppendAndListEvents(t *testing.T) {
	s := NewStore()

	first := s.AppendEvent("create_scalping_strategy", domain.EventStrategySubmitted, "success", map[string]interface{}{
		"strategy_id": "abc123",
	})
	if first.ID == "" {
		t.Fatalf("expected generated event id")
	}
	if first.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
	second := s.AppendEvent("get_my_strategies", domain.EventToolInvoked, "success", nil)

	events := s.ListEvents(10)
	if len(events) != 2 {
		t.Fatalf("len = %d", len(events))
	}
	// Newest first.
	if events[0].ID != second.ID || events[1].ID != first.ID {
		t.Fatalf("unexpected order: %v then %v", events[0].Tool, events[1].Tool)
	}
}

func TestListEvents_LimitAndDefault(t *testing.T) {
	s := NewStore()
	for i := 0; i < 30; i++ {
		s.AppendEvent("create_strategy", domain.EventToolInvoked, "success", nil)
	}
	if got := len(s.ListEvents(5)); got != 5 {
		t.Fatalf("limit 5 returned %d", got)
	}
	if got := len(s.ListEvents(0)); got != 20 {
		t.Fatalf("default limit returned %d", got)
	}
}

func TestListEvents_EmptyStore(t *testing.T) {
	s := NewStore()
	if got := s.ListEvents(10); got == nil || len(got) != 0 {
		t.Fatalf("ListEvents on empty store = %#v", got)
	}
}
