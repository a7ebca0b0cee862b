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
	"github.com/saradorri/pokerbankroll/internal/config"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		Path      string `json:"path"`
		Method    string `json:"method"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newRouter(h *ErrorHandler) *gin.Engine {
	r := gin.New()
	r.Use(h.RequestIDMiddleware())
	r.Use(h.ErrorHandlerMiddleware())
	return r
}

func TestRequestIDMiddleware(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())
	r := newRouter(h)
	r.GET("/id", func(c *gin.Context) {
		fromCtx := logger.RequestIDFrom(c.Request.Context())
		c.String(http.StatusOK, GetRequestID(c)+"|"+fromCtx)
	})

	t.Run("propagates incoming header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123|abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("generates missing id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

		assert.Len(t, w.Header().Get("X-Request-ID"), 32)
	})

	for name, id := range map[string]string{
		"regenerates overlong id":  strings.Repeat("a", 65),
		"regenerates malformed id": "bad id\r\nInjected: 1",
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/id", nil)
			req.Header.Set("X-Request-ID", id)
			r.ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			assert.Len(t, got, 32)
			assert.NotEqual(t, id, got)
			assert.Equal(t, got+"|"+got, w.Body.String())
		})
	}
}

func TestErrorHandlerMiddleware_RecoversPanic(t *testing.T) {
	r := newRouter(NewErrorHandler(logger.NewNop()))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, domain.ErrCodeInternal, body.Error.Code)
	assert.Equal(t, "req-1", body.Error.RequestID)
	assert.Equal(t, "/boom", body.Error.Path)
	assert.Equal(t, http.MethodGet, body.Error.Method)
}

func TestTimeoutMiddleware(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())

	t.Run("sets a deadline", func(t *testing.T) {
		r := newRouter(h)
		r.Use(h.TimeoutMiddleware(time.Minute))
		r.GET("/deadline", func(c *gin.Context) {
			_, ok := c.Request.Context().Deadline()
			c.JSON(http.StatusOK, gin.H{"deadline": ok})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deadline", nil))
		assert.JSONEq(t, `{"deadline": true}`, w.Body.String())
	})

	t.Run("expired request without response", func(t *testing.T) {
		r := newRouter(h)
		r.Use(h.TimeoutMiddleware(time.Millisecond))
		r.GET("/slow", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusRequestTimeout, w.Code)
		assert.Equal(t, domain.ErrCodeTimeout, decodeError(t, w).Error.Code)
	})
}

func TestJWTMiddleware(t *testing.T) {
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	token, err := jwtSvc.GenerateToken(7, "player1")
	require.NoError(t, err)

	r := newRouter(NewErrorHandler(logger.NewNop()))
	r.GET("/me", JWTMiddleware(jwtSvc), func(c *gin.Context) {
		actor, ok := GetActor(c)
		require.True(t, ok)
		ctxUser := logger.UserIDFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": actor.UserID, "username": actor.Username, "ctx": ctxUser})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", http.StatusUnauthorized, domain.ErrCodeTokenMissing},
		{"not bearer", "Basic abc", http.StatusUnauthorized, domain.ErrCodeTokenInvalid},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized, domain.ErrCodeTokenInvalid},
		{"valid token", "Bearer " + token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
				return
			}
			assert.JSONEq(t, `{"id": 7, "username": "player1", "ctx": 7}`, w.Body.String())
		})
	}
}

func TestGetActor_Unauthenticated(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())

	_, ok := GetActor(c)
	assert.False(t, ok)
}

func TestRespondError_PlainError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", nil)

	RespondError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, c.IsAborted())
	assert.Equal(t, domain.ErrCodeInternal, decodeError(t, w).Error.Code)
}

func TestLoggerMiddleware(t *testing.T) {
	log, logs := logger.NewObserved(zapcore.InfoLevel)
	h := NewErrorHandler(logger.NewNop())
	r := gin.New()
	r.Use(h.RequestIDMiddleware(), LoggerMiddleware(log))
	r.GET("/tournaments/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tournaments/42", nil)
	req.Header.Set("X-Request-ID", "req-9")
	r.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/tournaments/:id", fields["path"])
	assert.Equal(t, int64(http.StatusNoContent), fields["status"])
	assert.Equal(t, "req-9", fields["request_id"])
}
