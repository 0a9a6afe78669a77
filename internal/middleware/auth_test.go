package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"campuscast/internal/session"
)

func gateRouter(t *testing.T, sessions *session.Store, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	gate := NewGate(sessions)
	r.GET("/gated", gate.RequireRole(role), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": user.Name, "role": user.Role})
	})
	return r
}

func loggedIn(t *testing.T, sessions *session.Store, rec session.Record) string {
	t.Helper()
	if err := sessions.Save(context.Background(), "test-key", rec); err != nil {
		t.Fatalf("saving session: %v", err)
	}
	token, err := GenerateToken("test-key")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

func TestGateAllowsMatchingRole(t *testing.T) {
	sessions := session.NewStore(session.NewMemoryKV())
	r := gateRouter(t, sessions, "voter")
	token := loggedIn(t, sessions, session.Record{UserID: 1, Name: "Anika", Role: "voter"})

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestGateRejectsMismatchedRole(t *testing.T) {
	sessions := session.NewStore(session.NewMemoryKV())
	r := gateRouter(t, sessions, "voter")
	token := loggedIn(t, sessions, session.Record{UserID: 2, Name: "Guest", Role: "public"})

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if body := w.Body.String(); !containsLoginPath(body) {
		t.Errorf("response %q missing login redirect hint", body)
	}
}

func TestGateRejectsMissingSession(t *testing.T) {
	sessions := session.NewStore(session.NewMemoryKV())
	r := gateRouter(t, sessions, "voter")

	// Valid token, but nothing in the session store behind it.
	token, err := GenerateToken("orphan-key")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestGateRejectsNoToken(t *testing.T) {
	sessions := session.NewStore(session.NewMemoryKV())
	r := gateRouter(t, sessions, "voter")

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body := w.Body.String(); !containsLoginPath(body) {
		t.Errorf("response %q missing login redirect hint", body)
	}
}

func TestGateRejectsGarbageToken(t *testing.T) {
	sessions := session.NewStore(session.NewMemoryKV())
	r := gateRouter(t, sessions, "voter")

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func containsLoginPath(body string) bool {
	return strings.Contains(body, LoginPath)
}
