package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cart-it/internal/authz"
	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/constants"
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if generated == "" {
		t.Fatalf("generated request id should not be empty")
	}
	if resp := strings.TrimSpace(generated); resp == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func newTestAuthService() *service.AuthService {
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: "middleware-secret", ExpireHours: 1}}
	return service.NewAuthService(cfg, nil, nil, nil, nil, nil)
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMiddleware(newTestAuthService()))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestJWTAuthMiddlewareRejectsForeignSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	other := service.NewAuthService(&config.Config{JWT: config.JWTConfig{SecretKey: "other-secret", ExpireHours: 1}}, nil, nil, nil, nil, nil)
	token, _, err := other.GenerateJWT(service.Principal{Role: constants.RoleCustomer, ID: 7, Email: "x@example.com"})
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	r := gin.New()
	r.Use(JWTAuthMiddleware(newTestAuthService()))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
}

func TestJWTAuthMiddlewareSetsPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authService := newTestAuthService()
	token, _, err := authService.GenerateJWT(service.Principal{Role: constants.RoleSeller, ID: 42, Email: "shop@example.com"})
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	r := gin.New()
	r.Use(JWTAuthMiddleware(authService))
	r.GET("/seller/me", func(c *gin.Context) {
		id, _ := handlershared.GetPrincipalID(c)
		c.JSON(http.StatusOK, gin.H{"role": handlershared.GetPrincipalRole(c), "id": id})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/seller/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Role string `json:"role"`
		ID   uint   `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Role != constants.RoleSeller || resp.ID != 42 {
		t.Fatalf("principal want seller/42 got %s/%d", resp.Role, resp.ID)
	}
}

func TestRoleRBACMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:router_rbac?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	authzService, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("init authz failed: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap roles failed: %v", err)
	}

	cases := []struct {
		role string
		path string
		want int
	}{
		{role: constants.RoleAdministrator, path: "/api/v1/admin/orders/:id", want: http.StatusOK},
		{role: constants.RoleSeller, path: "/api/v1/admin/orders/:id", want: http.StatusForbidden},
		{role: constants.RoleSeller, path: "/api/v1/seller/products/:id", want: http.StatusOK},
		{role: constants.RoleCustomer, path: "/api/v1/seller/products/:id", want: http.StatusForbidden},
		{role: constants.RoleCustomer, path: "/api/v1/orders/:id", want: http.StatusOK},
		{role: constants.RoleAdministrator, path: "/api/v1/orders/:id", want: http.StatusForbidden},
	}
	for _, tc := range cases {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(handlershared.ContextKeyRole, tc.role)
			c.Next()
		})
		r.Use(RoleRBACMiddleware(authzService))
		r.GET(tc.path, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, strings.Replace(tc.path, ":id", "1", 1), nil)
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s %s want %d got %d", tc.role, tc.path, tc.want, w.Code)
		}
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware(), RecoveryMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status want 500 got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Fatalf("panic value leaked into response: %s", w.Body.String())
	}
}
