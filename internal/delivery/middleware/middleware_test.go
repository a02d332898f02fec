package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lawyerup/config"
	deliverycontext "lawyerup/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, buf *strings.Builder, debug bool) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/ok", func(c echo.Context) error {
		assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nope")
	})

	return e
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectEq bool
	}{
		{name: "caller id kept", header: "abc-123", expectEq: true},
		{name: "generated when absent", header: "", expectEq: false},
		{name: "replaced when too long", header: strings.Repeat("a", maxRequestIDLength+1), expectEq: false},
		{name: "replaced when it contains spaces", header: "a b", expectEq: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			e := newTestEcho(t, &buf, false)

			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			if tt.expectEq {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("debug off logs only failures", func(t *testing.T) {
		var buf strings.Builder
		e := newTestEcho(t, &buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Empty(t, buf.String())

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), `"status":404`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"request_id"`)
	})

	t.Run("debug on logs every request", func(t *testing.T) {
		var buf strings.Builder
		e := newTestEcho(t, &buf, true)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Contains(t, buf.String(), `"route":"/ok"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})
}
