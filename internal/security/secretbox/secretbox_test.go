package secretbox

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
)

func testKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestSealOpenRoundTrip(t *testing.T) {
	box, err := New(testKey(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	payload := []byte(`{"tool":"create_scalping_strategy","strategy_id":"abc123"}`)
	sealed, err := box.Seal(payload)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if sealed == string(payload) {
		t.Fatalf("sealed output must not equal plaintext")
	}

	opened, err := box.Open(sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(opened) != string(payload) {
		t.Fatalf("round trip mismatch: %q", opened)
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	box, err := New(testKey(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sealed, err := box.Seal([]byte("audit payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	tampered := "A" + sealed[1:]
	if _, err := box.Open(tampered); err == nil {
		t.Fatalf("expected tampered ciphertext to fail")
	}
}

func TestNewRejectsBadKeys(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatalf("empty key accepted")
	}
	if _, err := New("not base64!!"); err == nil {
		t.Fatalf("non-base64 key accepted")
	}
	short := base64.StdEncoding.EncodeToString([]byte("short"))
	if _, err := New(short); err == nil {
		t.Fatalf("short key accepted")
	}
}
