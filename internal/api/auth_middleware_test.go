package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weddingbook/internal/auth"
	"weddingbook/internal/config"
	"weddingbook/internal/entity"

	"github.com/gin-gonic/gin"
)

func newTestHandler(t *testing.T) *HTTPHandler {
	t.Helper()

	cfg := config.Config{
		JWTSecret:            "test-secret-0123456789",
		JWTIssuer:            "wedding-book",
		JWTExpirationMinutes: 60,
	}
	handler, err := NewHTTPHandler(cfg, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewHTTPHandler() error = %v", err)
	}
	return handler
}

func issueToken(t *testing.T, isAdmin bool) string {
	t.Helper()

	manager, err := auth.NewManager("test-secret-0123456789", "wedding-book", time.Hour)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	token, _, err := manager.GenerateToken(&entity.DbUser{
		ID:       42,
		Email:    "admin@example.com",
		IsAdmin:  isAdmin,
		Nickname: "tester",
	})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func newProtectedRouter(handler *HTTPHandler, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	middlewares := []gin.HandlerFunc{handler.AuthMiddleware()}
	if adminOnly {
		middlewares = append(middlewares, handler.RequireAdmin())
	}
	group := r.Group("/whoami", middlewares...)
	group.GET("", func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"uid": user.ID, "role": user.Role})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	handler := newTestHandler(t)
	r := newProtectedRouter(handler, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	handler := newTestHandler(t)
	r := newProtectedRouter(handler, false)

	tests := []struct {
		name   string
		header string
	}{
		{"no scheme", issueToken(t, false)},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", tt.header)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	handler := newTestHandler(t)
	r := newProtectedRouter(handler, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, false))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestRequireAdminRoleFromClaim(t *testing.T) {
	handler := newTestHandler(t)
	r := newProtectedRouter(handler, true)

	// 普通用户 403
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, false))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("user token status = %d, want %d", w.Code, http.StatusForbidden)
	}

	// 管理员放行
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, true))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin token status = %d, want %d", w.Code, http.StatusOK)
	}
}
