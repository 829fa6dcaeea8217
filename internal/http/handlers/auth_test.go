package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "cartrans-backend/internal/config"
	"cartrans-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func authTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	Configure(intconfig.Env{
		AdminLogin:    "admin",
		AdminPassword: "admin123",
		JWTSecret:     "test-secret",
	}, intconfig.DefaultPricing())

	r := gin.New()
	r.POST("/api/auth/admin/login", AdminLogin)
	r.GET("/api/admin/ping", middleware.AdminRequired([]byte("test-secret")), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLoginIssuesToken(t *testing.T) {
	r := authTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/admin/login", `{"login":"admin","password":"admin123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token in response")
	}

	// The issued token must open the guarded routes.
	w = doJSON(r, http.MethodGet, "/api/admin/ping", "", resp.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("guarded route status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	r := authTestRouter(t)

	cases := []string{
		`{"login":"admin","password":"wrong"}`,
		`{"login":"root","password":"admin123"}`,
		`{"login":"","password":""}`,
	}
	for _, body := range cases {
		w := doJSON(r, http.MethodPost, "/api/auth/admin/login", body, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("body %s: status = %d, want 401", body, w.Code)
		}
	}
}

func TestAdminGuardRejectsMissingOrGarbageToken(t *testing.T) {
	r := authTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/admin/ping", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/admin/ping", "", "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestAdminGuardRejectsWrongSignature(t *testing.T) {
	r := authTestRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w := doJSON(r, http.MethodGet, "/api/admin/ping", "", signed)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("forged token: status = %d, want 401", w.Code)
	}
}

func TestAdminGuardRejectsNonAdminRole(t *testing.T) {
	r := authTestRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "someone",
		"role": "viewer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w := doJSON(r, http.MethodGet, "/api/admin/ping", "", signed)
	if w.Code != http.StatusForbidden {
		t.Errorf("viewer token: status = %d, want 403", w.Code)
	}
}

func TestAdminGuardRejectsExpiredToken(t *testing.T) {
	r := authTestRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	w := doJSON(r, http.MethodGet, "/api/admin/ping", "", signed)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}
