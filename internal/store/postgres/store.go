package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
	"github.com/SureshAmal/mmcopilot-mcp/internal/security/secretbox"
)

const schema = `
create table if not exists tool_invocations (
	id         text primary key,
	tool       text not null,
	event_type text not null,
	outcome    text not null,
	payload    text,
	encrypted  boolean not null default false,
	created_at timestamptz not null
)`

// Store persists the invocation audit trail in postgres. When an encryption
// key is configured, payloads are sealed before they hit the table.
type Store struct {
	db  *sql.DB
	box *secretbox.Box
}

func NewStore(databaseURL, auditEncryptionKey string) (*Store, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	var box *secretbox.Box
	if auditEncryptionKey != "" {
		box, err = secretbox.New(auditEncryptionKey)
		if err != nil {
			return nil, err
		}
	}
	return &Store{db: db, box: box}, nil
}

func (s *Store) AppendEvent(tool string, eventType domain.EventType, outcome string, payload map[string]interface{}) domain.Event {
	event := domain.Event{
		ID:        uuid.NewString(),
		Tool:      tool,
		Type:      eventType,
		Outcome:   outcome,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte("{}")
	}
	stored := string(raw)
	encrypted := false
	if s.box != nil {
		if sealed, err := s.box.Seal(raw); err == nil {
			stored = sealed
			encrypted = true
		}
	}

	// Auditing is best effort; a failed insert never blocks the call.
	_, _ = s.db.Exec(
		`insert into tool_invocations(id, tool, event_type, outcome, payload, encrypted, created_at)
		 values ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.Tool, string(event.Type), event.Outcome, stored, encrypted, event.CreatedAt,
	)
	return event
}

func (s *Store) ListEvents(limit int) []domain.Event {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`select id, tool, event_type, outcome, payload, encrypted, created_at
		 from tool_invocations
		 order by created_at desc
		 limit $1`,
		limit,
	)
	if err != nil {
		return []domain.Event{}
	}
	defer rows.Close()

	events := make([]domain.Event, 0, limit)
	for rows.Next() {
		var (
			event     domain.Event
			eventType string
			stored    sql.NullString
			encrypted bool
		)
		if err := rows.Scan(&event.ID, &event.Tool, &eventType, &event.Outcome, &stored, &encrypted, &event.CreatedAt); err != nil {
			continue
		}
		event.Type = domain.EventType(eventType)
		event.Payload = s.decodePayload(stored, encrypted)
		events = append(events, event)
	}
	return events
}

func (s *Store) decodePayload(stored sql.NullString, encrypted bool) map[string]interface{} {
	if !stored.Valid || stored.String == "" {
		return nil
	}
	raw := []byte(stored.String)
	if encrypted {
		if s.box == nil {
			return map[string]interface{}{"sealed": true}
		}
		opened, err := s.box.Open(stored.String)
		if err != nil {
			return map[string]interface{}{"sealed": true}
		}
		raw = opened
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}
