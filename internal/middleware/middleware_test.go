package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"voice-task-tracker/internal/middleware"
	"voice-task-tracker/pkg/log"
)

func newEngine(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newEngine(mw, mw.RequestID(), mw.AccessLog())

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middleware.HeaderRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantCode   int
	}{
		{"any origin", nil, "http://app.local", http.MethodGet, "*", http.StatusOK},
		{"listed origin", []string{"http://app.local"}, "http://app.local", http.MethodGet, "http://app.local", http.StatusOK},
		{"unlisted origin", []string{"http://app.local"}, "http://evil.local", http.MethodGet, "", http.StatusOK},
		{"preflight", nil, "http://app.local", http.MethodOptions, "*", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := middleware.New(log.NewNop(), middleware.Config{AllowedOrigins: tt.allowed})
			r := newEngine(mw, mw.CORS())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("blocks after burst", func(t *testing.T) {
		// 10 per minute gives a burst of one request.
		mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 10})
		r := newEngine(mw, mw.RateLimit())

		codes := make([]int, 0, 3)
		for range 3 {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "other clients keep their own bucket")
	})

	t.Run("disabled", func(t *testing.T) {
		mw := middleware.New(log.NewNop(), middleware.Config{})
		r := newEngine(mw, mw.RateLimit())

		for range 5 {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
