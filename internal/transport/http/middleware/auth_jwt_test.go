package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskhub/internal/core/auth"
)

func newGuardedEngine(j *auth.JWTer, requireRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AuthJWT(j, requireRole), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no claims injected"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "role": claims.Role})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return body["error"]
}

func TestAuthJWTMissingToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "i", TTL: time.Hour}
	w := doGet(t, newGuardedEngine(j, ""), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if errOf(t, w) != "Missing token" {
		t.Errorf("error = %q, want Missing token", errOf(t, w))
	}
}

func TestAuthJWTInvalidToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "i", TTL: time.Hour}
	w := doGet(t, newGuardedEngine(j, ""), "garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if errOf(t, w) != "Invalid token" {
		t.Errorf("error = %q, want Invalid token", errOf(t, w))
	}
}

func TestAuthJWTExpiredToken(t *testing.T) {
	expired := &auth.JWTer{Secret: []byte("s"), Issuer: "i", TTL: -time.Minute}
	tok, err := expired.Issue("u-1", "a@b.co", "A", "user")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	live := &auth.JWTer{Secret: []byte("s"), Issuer: "i", TTL: time.Hour}
	w := doGet(t, newGuardedEngine(live, ""), tok)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if errOf(t, w) != "Token expired" {
		t.Errorf("error = %q, want Token expired", errOf(t, w))
	}
}

func TestAuthJWTRoleGate(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "i", TTL: time.Hour}
	userTok, _ := j.Issue("u-1", "user@x.com", "U", "user")
	adminTok, _ := j.Issue("u-2", "root@x.com", "R", "admin")

	r := newGuardedEngine(j, "admin")

	if w := doGet(t, r, userTok); w.Code != http.StatusForbidden {
		t.Errorf("user token on admin route = %d, want 403", w.Code)
	}
	if w := doGet(t, r, adminTok); w.Code != http.StatusOK {
		t.Errorf("admin token on admin route = %d, want 200", w.Code)
	}
}

func TestAuthJWTInjectsClaims(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "i", TTL: time.Hour}
	tok, _ := j.Issue("u-1", "ann@x.com", "Ann", "user")

	w := doGet(t, newGuardedEngine(j, ""), tok)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["email"] != "ann@x.com" || body["role"] != "user" {
		t.Errorf("injected claims = %v", body)
	}
}
