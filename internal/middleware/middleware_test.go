package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/auth"
	"github.com/popeskul/whatsapp-assistant/internal/middleware"
)

const testSecret = "test-secret-key-that-is-long-enough-for-hs256"

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())
		if requestID == "" {
			t.Error("Expected request ID in context")
		}

		// Check if request ID is in response header
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("Expected request ID in response header")
		}
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
}

func TestRequestID_PreservesIncomingHeader(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-123", middleware.GetRequestID(r.Context()))
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_ReplacesInvalidHeader(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "bad id\nwith newline")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	got := w.Header().Get(middleware.RequestIDHeader)
	assert.NotEqual(t, "bad id\nwith newline", got)
	assert.Len(t, got, 36)
}

func TestLogger_RecordsStatus(t *testing.T) {
	handler := middleware.Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	preflight := func(origin string) *http.Request {
		req := httptest.NewRequest(http.MethodOptions, "/admin/users", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		return req
	}

	t.Run("wildcard preflight", func(t *testing.T) {
		handler := middleware.CORS(middleware.DefaultCORSConfig())(next)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, preflight("http://localhost:3000"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("listed origin is echoed", func(t *testing.T) {
		handler := middleware.CORS(middleware.NewCORSConfig([]string{"http://localhost:8000"}))(next)

		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		req.Header.Set("Origin", "http://localhost:8000")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:8000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, middleware.RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		handler := middleware.CORS(middleware.NewCORSConfig([]string{"http://localhost:8000"}))(next)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, preflight("http://evil.example"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("same-origin request untouched", func(t *testing.T) {
		handler := middleware.CORS(middleware.DefaultCORSConfig())(next)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecovery(t *testing.T) {
	logger := zap.NewNop()

	handler := middleware.Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	// Should not panic
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500 after panic, got %d", w.Code)
	}

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, middleware.ErrorCodeInternal, body.Error)
}

func TestTimeout(t *testing.T) {
	t.Run("fast handler passes through", func(t *testing.T) {
		handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "yes")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("done"))
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "yes", w.Header().Get("X-Test"))
		assert.Equal(t, "done", w.Body.String())
	})

	t.Run("slow handler times out", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		handler := middleware.Timeout(20*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
			_, _ = w.Write([]byte("late"))
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		assert.Equal(t, http.StatusRequestTimeout, w.Code)
		assert.NotContains(t, w.Body.String(), "late")
	})
}

func TestAuth(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, 30*time.Minute)
	validToken, _, err := tokens.Issue("admin")
	require.NoError(t, err)

	newHandler := func() http.Handler {
		return middleware.Auth(tokens, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(middleware.GetAdminSubject(r.Context())))
		}))
	}

	protected := func(header string) *http.Request {
		req := httptest.NewRequest("GET", "/admin/stats", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		ctx := context.WithValue(req.Context(), api.BearerAuthScopes, []string{})
		return req.WithContext(ctx)
	}

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
		wantBody   string
	}{
		{
			name:       "public route without token",
			req:        httptest.NewRequest("GET", "/health", nil),
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid token",
			req:        protected("Bearer " + validToken),
			wantStatus: http.StatusOK,
			wantBody:   "admin",
		},
		{
			name:       "missing header",
			req:        protected(""),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			req:        protected("Basic " + validToken),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			req:        protected("Bearer not-a-jwt"),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newHandler().ServeHTTP(w, tt.req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

				var body api.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, middleware.ErrorCodeUnauthorized, body.Error)
				assert.Equal(t, middleware.ErrorMessageUnauthorized, body.Message)
				return
			}
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestChain_NoTimeoutPaths(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(80 * time.Millisecond)
		_, _ = w.Write([]byte("ok"))
	})

	handler := middleware.Chain(&middleware.Config{
		Logger:         zap.NewNop(),
		RequestTimeout: 20 * time.Millisecond,
		NoTimeoutPaths: []string{"/webhook/whatsapp"},
	})(slow)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	assert.Equal(t, http.StatusRequestTimeout, w.Code)
}
