package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/testutil/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	return gin.New()
}

func newTestAuthService() *mocks.MockAuthService {
	auth := mocks.NewMockAuthService()
	auth.AuthenticateFunc = func(ctx context.Context, token string) (*security.AdminClaims, error) {
		switch token {
		case "admin-token":
			return &security.AdminClaims{Username: "admin", Role: security.RoleAdmin}, nil
		case "viewer-token":
			return &security.AdminClaims{Username: "viewer", Role: "viewer"}, nil
		default:
			return nil, service.ErrInvalidToken
		}
	}
	return auth
}

// RequestID Tests
func TestRequestID(t *testing.T) {
	router := newTestRouter()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates new request ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		if w.Code != http.StatusOK {
			t.Errorf("Status = %v, want %v", w.Code, http.StatusOK)
		}
		headerID := w.Header().Get(RequestIDHeader)
		if headerID == "" {
			t.Error("RequestID header not set")
		}
		if w.Body.String() != headerID {
			t.Errorf("Body = %v, header = %v", w.Body.String(), headerID)
		}
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "custom-request-id")
		router.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "custom-request-id" {
			t.Errorf("RequestID = %v, want custom-request-id", got)
		}
	})

	t.Run("replaces oversized or unprintable IDs", func(t *testing.T) {
		for _, bad := range []string{strings.Repeat("x", 200), "has space", "tab\tid"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(RequestIDHeader, bad)
			router.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == bad || got == "" {
				t.Errorf("RequestID = %q, want a generated id", got)
			}
		}
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GetRequestID(c); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
	c.Set(RequestIDKey, 42)
	if got := GetRequestID(c); got != "" {
		t.Errorf("GetRequestID() with non-string = %q, want empty", got)
	}
}

// Auth Tests
func TestAuthMiddleware_Authenticate(t *testing.T) {
	m := NewAuthMiddleware(newTestAuthService())
	router := newTestRouter()
	router.GET("/protected", m.Authenticate(), func(c *gin.Context) {
		claims := security.GetClaims(c)
		c.String(http.StatusOK, claims.Username)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "invalid authorization header format"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "invalid authorization header format"},
		{"rejected token", "Bearer nope", http.StatusUnauthorized, "invalid or expired token"},
		{"valid token", "Bearer admin-token", http.StatusOK, "admin"},
		{"scheme is case insensitive", "bearer admin-token", http.StatusOK, "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %v, want %v", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("Body = %v, want to contain %v", w.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") == "" {
				t.Error("WWW-Authenticate header not set")
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	m := NewAuthMiddleware(newTestAuthService())
	router := newTestRouter()
	router.GET("/maybe", m.OptionalAuth(), func(c *gin.Context) {
		if claims := security.GetClaims(c); claims != nil {
			c.String(http.StatusOK, claims.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	cases := map[string]string{
		"":                   "anonymous",
		"Bearer nope":        "anonymous",
		"Bearer admin-token": "admin",
	}
	for header, want := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)
		if w.Body.String() != want {
			t.Errorf("header %q: Body = %v, want %v", header, w.Body.String(), want)
		}
	}
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	m := NewAuthMiddleware(newTestAuthService())
	router := newTestRouter()
	router.PUT("/admin", append(m.Admin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})...)
	router.PUT("/no-auth", m.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{"admin passes", "/admin", "admin-token", http.StatusNoContent},
		{"non admin forbidden", "/admin", "viewer-token", http.StatusForbidden},
		{"anonymous unauthorized", "/admin", "", http.StatusUnauthorized},
		{"no claims in context", "/no-auth", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("Status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

// Recovery Tests
func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	router := newTestRouter()
	router.Use(RequestID(), Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status = %v, want %v", w.Code, http.StatusInternalServerError)
	}

	var body response.ApiResponse[any]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Success {
		t.Error("Success = true, want false")
	}
	details, _ := body.Errors.(map[string]any)
	if details["code"] != "INTERNAL_ERROR" {
		t.Errorf("Errors = %v, want code INTERNAL_ERROR", body.Errors)
	}

	if logs.Len() != 1 {
		t.Fatalf("logged %d entries, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["request_id"] == "" {
		t.Error("panic log is missing the request id")
	}
}

// CORS Tests
func TestCORS(t *testing.T) {
	router := newTestRouter()
	router.Use(CORS(CORSConfigFrom(config.CORSConfig{AllowedOrigins: []string{"https://refermegroup.com"}})))
	router.GET("/content/home", func(c *gin.Context) {
		c.Header("ETag", `"3"`)
		c.Status(http.StatusOK)
	})

	t.Run("allowed origin is reflected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/content/home", nil)
		req.Header.Set("Origin", "https://refermegroup.com")
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://refermegroup.com" {
			t.Errorf("Allow-Origin = %v", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Allow-Credentials = %v, want true", got)
		}
		if got := w.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(got, "ETag") {
			t.Errorf("Expose-Headers = %v, want ETag", got)
		}
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/content/home", nil)
		req.Header.Set("Origin", "https://evil.example")
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %v, want empty", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/content/home", nil)
		req.Header.Set("Origin", "https://refermegroup.com")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %v, want %v", w.Code, http.StatusNoContent)
		}
		if got := w.Header().Get("Access-Control-Max-Age"); got != "43200" {
			t.Errorf("Max-Age = %v, want 43200", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "If-Match") {
			t.Errorf("Allow-Headers = %v, want If-Match", got)
		}
	})
}

func TestCORS_Wildcard(t *testing.T) {
	cfg := CORSConfigFrom(config.CORSConfig{})
	if cfg.AllowCredentials {
		t.Error("credentials must not be allowed with a wildcard origin")
	}

	router := newTestRouter()
	router.Use(CORS(cfg))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %v, want *", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Allow-Credentials = %v, want empty", got)
	}
}

// Logger Tests
func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewAuthMiddleware(newTestAuthService())

	router := newTestRouter()
	router.Use(RequestID(), Logger(zap.New(core)))
	router.GET("/api/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.PUT("/api/v1/content/:domain", append(m.Admin(), func(c *gin.Context) { c.Status(http.StatusOK) })...)
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	send := func(method, path, token string) {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
	send(http.MethodGet, "/api/v1/health", "")
	send(http.MethodPut, "/api/v1/content/home", "admin-token")
	send(http.MethodPut, "/api/v1/content/home", "")
	send(http.MethodGet, "/boom", "")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("logged %d entries, want 4", len(entries))
	}

	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, want := range wantLevels {
		if entries[i].Level != want {
			t.Errorf("entry %d level = %v, want %v", i, entries[i].Level, want)
		}
	}
	if got := entries[1].ContextMap()["admin"]; got != "admin" {
		t.Errorf("admin field = %v, want admin", got)
	}
	if _, ok := entries[2].ContextMap()["admin"]; ok {
		t.Error("anonymous request should not log an admin")
	}
	if entries[0].ContextMap()["request_id"] == "" {
		t.Error("request_id not logged")
	}
}

func TestFormatMaxAge(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.MaxAge = 90 * time.Second
	router := newTestRouter()
	router.Use(CORS(cfg))
	router.OPTIONS("/x", func(c *gin.Context) {})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
	if got := w.Header().Get("Access-Control-Max-Age"); got != "90" {
		t.Errorf("Max-Age = %v, want 90", got)
	}
}
