package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/transrodar/backend/internal/security"
	"github.com/transrodar/backend/internal/store"
)

// fakeRefreshStore is a map-backed RefreshTokenStore with the same
// single-use Consume semantics as the Redis implementation.
type fakeRefreshStore struct {
	jtis map[string]bool
}

func newFakeRefreshStore() *fakeRefreshStore {
	return &fakeRefreshStore{jtis: map[string]bool{}}
}

func (s *fakeRefreshStore) key(adminID, jti string) string { return adminID + ":" + jti }

func (s *fakeRefreshStore) Put(ctx context.Context, adminID, jti string) error {
	s.jtis[s.key(adminID, jti)] = true
	return nil
}

func (s *fakeRefreshStore) Consume(ctx context.Context, adminID, jti string) error {
	k := s.key(adminID, jti)
	if !s.jtis[k] {
		return store.ErrRefreshInvalid
	}
	delete(s.jtis, k)
	return nil
}

func newRefreshRouter(jwt *security.JWTManager, refresh RefreshTokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/refresh", Refresh(jwt, refresh))
	return r
}

func postRefresh(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"refresh_token":"` + token + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRefresh_RotatesOnce(t *testing.T) {
	jwt := security.NewJWTManager("test-secret", time.Minute, time.Hour)
	refreshStore := newFakeRefreshStore()
	r := newRefreshRouter(jwt, refreshStore)

	adminID := uuid.New()
	tokens, claims, err := jwt.Issue("admin", adminID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := refreshStore.Put(context.Background(), adminID.String(), claims.JTI); err != nil {
		t.Fatalf("put: %v", err)
	}

	w := postRefresh(t, r, tokens.RefreshToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on first rotation, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Data security.Tokens `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.AccessToken == "" || body.Data.RefreshToken == "" {
		t.Fatalf("expected a fresh token pair, got %+v", body.Data)
	}
	if body.Data.RefreshToken == tokens.RefreshToken {
		t.Fatalf("expected a new refresh token after rotation")
	}

	// the rotated pair must itself be usable
	w = postRefresh(t, r, body.Data.RefreshToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for the rotated token, got %d", w.Code)
	}
}

func TestRefresh_ReuseRejected(t *testing.T) {
	jwt := security.NewJWTManager("test-secret", time.Minute, time.Hour)
	refreshStore := newFakeRefreshStore()
	r := newRefreshRouter(jwt, refreshStore)

	adminID := uuid.New()
	tokens, claims, err := jwt.Issue("admin", adminID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := refreshStore.Put(context.Background(), adminID.String(), claims.JTI); err != nil {
		t.Fatalf("put: %v", err)
	}

	if w := postRefresh(t, r, tokens.RefreshToken); w.Code != http.StatusOK {
		t.Fatalf("expected 200 on first use, got %d", w.Code)
	}
	// same token again: the jti was consumed, so rotation must fail
	if w := postRefresh(t, r, tokens.RefreshToken); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on reuse, got %d", w.Code)
	}
}

func TestRefresh_UnknownToken(t *testing.T) {
	jwt := security.NewJWTManager("test-secret", time.Minute, time.Hour)
	r := newRefreshRouter(jwt, newFakeRefreshStore())

	// signed but never stored (e.g. revoked)
	tokens, _, err := jwt.Issue("admin", uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if w := postRefresh(t, r, tokens.RefreshToken); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown jti, got %d", w.Code)
	}

	if w := postRefresh(t, r, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestRefresh_MissingToken(t *testing.T) {
	jwt := security.NewJWTManager("test-secret", time.Minute, time.Hour)
	r := newRefreshRouter(jwt, newFakeRefreshStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without refresh_token, got %d", w.Code)
	}
}
