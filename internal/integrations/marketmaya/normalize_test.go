package marketmaya

import (
	"errors"
	"testing"

	"github.com/SureshAmal/mmcopilot-mcp/internal/domain"
)

func TestNormalize_TransportFailure(t *testing.T) {
	outcome := Normalize(Response{}, errors.New("dial tcp: connection refused"))
	if outcome.Kind != domain.OutcomeTransportError {
		t.Fatalf("kind = %s", outcome.Kind)
	}
	if outcome.Message == "" {
		t.Fatalf("expected transport message")
	}
}

func TestNormalize_HttpErrorStatus(t *testing.T) {
	outcome := Normalize(Response{StatusCode: 500, Body: []byte(`{"message":"x"}`)}, nil)
	if outcome.Kind != domain.OutcomeRemoteError {
		t.Fatalf("kind = %s", outcome.Kind)
	}
	if outcome.Message != "x" {
		t.Fatalf("message = %q", outcome.Message)
	}
	if outcome.StatusCode != 500 {
		t.Fatalf("status = %d", outcome.StatusCode)
	}
}

func TestNormalize_HttpErrorStatus_ErrorKeyAndRawFallback(t *testing.T) {
	outcome := Normalize(Response{StatusCode: 401, Body: []byte(`{"error":"unauthorized"}`)}, nil)
	if outcome.Kind != domain.OutcomeRemoteError || outcome.Message != "unauthorized" {
		t.Fatalf("outcome = %+v", outcome)
	}

	outcome = Normalize(Response{StatusCode: 502, Body: []byte("Bad Gateway")}, nil)
	if outcome.Kind != domain.OutcomeRemoteError || outcome.Message != "Bad Gateway" {
		t.Fatalf("outcome = %+v", outcome)
	}

	outcome = Normalize(Response{StatusCode: 503, Body: nil}, nil)
	if outcome.Kind != domain.OutcomeRemoteError || outcome.Message != "remote request failed" {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestNormalize_ErrorFlaggedBody(t *testing.T) {
	outcome := Normalize(Response{StatusCode: 200, Body: []byte(`{"error":"x"}`)}, nil)
	if outcome.Kind != domain.OutcomeRemoteError {
		t.Fatalf("kind = %s", outcome.Kind)
	}
	if outcome.Message != "x" {
		t.Fatalf("message = %q", outcome.Message)
	}
	// Transport reported success, so no status code is attached.
	if outcome.StatusCode != 0 {
		t.Fatalf("status = %d, want 0", outcome.StatusCode)
	}
}

func TestNormalize_StatusErrorBody(t *testing.T) {
	outcome := Normalize(Response{StatusCode: 200, Body: []byte(`{"status":"error","message":"limit reached"}`)}, nil)
	if outcome.Kind != domain.OutcomeRemoteError || outcome.Message != "limit reached" {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestNormalize_BareListBody(t *testing.T) {
	outcome := Normalize(Response{StatusCode: 200, Body: []byte(`[{"id":7}]`)}, nil)
	if outcome.Kind != domain.OutcomeSuccess {
		t.Fatalf("kind = %s", outcome.Kind)
	}
	if outcome.Identifier != "7" {
		t.Fatalf("identifier = %q", outcome.Identifier)
	}

	// First element without an id-like field: still a success, identifier
	// unknown.
	outcome = Normalize(Response{StatusCode: 200, Body: []byte(`[{"client_id":40495}]`)}, nil)
	if outcome.Kind != domain.OutcomeSuccess || outcome.Identifier != "" {
		t.Fatalf("outcome = %+v", outcome)
	}

	outcome = Normalize(Response{StatusCode: 200, Body: []byte(`[]`)}, nil)
	if outcome.Kind != domain.OutcomeSuccess || outcome.Identifier != "" {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestNormalize_SuccessBody(t *testing.T) {
	outcome := Normalize(Response{StatusCode: 200, Body: []byte(`{"id":7}`)}, nil)
	if outcome.Kind != domain.OutcomeSuccess || outcome.Identifier != "7" {
		t.Fatalf("outcome = %+v", outcome)
	}

	outcome = Normalize(Response{StatusCode: 200, Body: []byte(`{"id":"abc123","is_deployed":false}`)}, nil)
	if outcome.Kind != domain.OutcomeSuccess || outcome.Identifier != "abc123" {
		t.Fatalf("outcome = %+v", outcome)
	}
	if outcome.Detail == nil {
		t.Fatalf("expected decoded detail")
	}

	// Identifier defaults to empty when no id-like field exists.
	outcome = Normalize(Response{StatusCode: 200, Body: []byte(`{"ok":true}`)}, nil)
	if outcome.Kind != domain.OutcomeSuccess || outcome.Identifier != "" {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestNormalize_StrategyIDFallback(t *testing.T) {
	outcome := Normalize(Response{StatusCode: 200, Body: []byte(`{"strategy_id":"st-9"}`)}, nil)
	if outcome.Identifier != "st-9" {
		t.Fatalf("identifier = %q", outcome.Identifier)
	}
}

func TestNormalize_MalformedSuccessBody(t *testing.T) {
	outcome := Normalize(Response{StatusCode: 200, Body: []byte(`not json at all`)}, nil)
	if outcome.Kind != domain.OutcomeRemoteError {
		t.Fatalf("kind = %s", outcome.Kind)
	}

	outcome = Normalize(Response{StatusCode: 200, Body: []byte(`[broken`)}, nil)
	if outcome.Kind != domain.OutcomeRemoteError {
		t.Fatalf("kind = %s", outcome.Kind)
	}
}
