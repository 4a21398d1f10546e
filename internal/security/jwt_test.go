package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIssueAndParseAccess(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute, time.Hour)
	id := uuid.New()

	tokens, refresh, err := m.Issue("admin", id)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens to be issued")
	}
	if tokens.ExpiresIn != 60 {
		t.Fatalf("expected expires_in 60, got %d", tokens.ExpiresIn)
	}
	if refresh.JTI == "" {
		t.Fatalf("expected refresh jti to be set")
	}

	uid, role, err := m.ParseAccess(tokens.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if uid != id {
		t.Fatalf("expected user id %s, got %s", id, uid)
	}
	if role != "admin" {
		t.Fatalf("expected role admin, got %s", role)
	}
}

func TestParseRefreshRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute, time.Hour)
	id := uuid.New()

	tokens, issued, err := m.Issue("admin", id)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := m.ParseRefresh(tokens.RefreshToken)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if claims.JTI != issued.JTI {
		t.Fatalf("expected jti %s, got %s", issued.JTI, claims.JTI)
	}
	if claims.UserID != id.String() {
		t.Fatalf("expected user id %s, got %s", id, claims.UserID)
	}
}

func TestParseAccess_WrongSecret(t *testing.T) {
	m1 := NewJWTManager("secret-one", time.Minute, time.Hour)
	m2 := NewJWTManager("secret-two", time.Minute, time.Hour)

	tokens, _, err := m1.Issue("admin", uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := m2.ParseAccess(tokens.AccessToken); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}

func TestParseAccess_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, time.Hour)
	tokens, _, err := m.Issue("admin", uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := m.ParseAccess(tokens.AccessToken); err == nil {
		t.Fatalf("expected error for expired token")
	}
}
