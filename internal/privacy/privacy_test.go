package privacy

import (
	"encoding/base64"
	"testing"
)

func TestHashSessionID(t *testing.T) {
	hash := HashSessionID("some-session-id")

	if len(hash) != 8 {
		t.Errorf("expected 8 character hash, got %d (%q)", len(hash), hash)
	}
	if hash == "some-session-id" {
		t.Error("hash must not equal the original identifier")
	}
	if HashSessionID("some-session-id") != hash {
		t.Error("hash must be deterministic")
	}
	if HashSessionID("other-session-id") == hash {
		t.Error("different identifiers should hash differently")
	}
}

func TestHashSessionIDArbitraryInput(t *testing.T) {
	for _, id := range []string{"a", "üñïçödé", "id with spaces", "\x00\x01"} {
		if got := HashSessionID(id); len(got) != 8 {
			t.Errorf("HashSessionID(%q) = %q, want 8 characters", id, got)
		}
	}
}

func TestNewSessionID(t *testing.T) {
	id, err := NewSessionID()
	if err != nil {
		t.Fatalf("NewSessionID failed: %v", err)
	}

	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		t.Fatalf("session id is not URL-safe base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("expected 32 bytes of randomness, got %d", len(raw))
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewSessionID()
		if err != nil {
			t.Fatalf("NewSessionID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate session id generated: %s", id)
		}
		seen[id] = true
	}
}
