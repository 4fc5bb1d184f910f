package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("user-123", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken: %v", err)
	}
	if id != "user-123" {
		t.Errorf("extracted id = %q, want user-123", id)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ExtractIDFromToken(token); err == nil {
		t.Error("expired token should not validate")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ExtractIDFromToken("not-a-token"); err == nil {
		t.Error("garbage should not validate")
	}
}
