package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		handler    echo.HandlerFunc
		wantStatus int
		wantLog    []string
	}{
		{
			name:   "no panic",
			method: http.MethodGet,
			path:   "/api/v1/vehicles",
			handler: func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "string panic",
			method: http.MethodGet,
			path:   "/api/v1/vehicles/gen-1",
			handler: func(_ echo.Context) error {
				panic("nil vehicle")
			},
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"panic recovered", "nil vehicle", "path=/api/v1/vehicles/gen-1"},
		},
		{
			name:   "non-string panic",
			method: http.MethodPost,
			path:   "/api/v1/finance/calculate",
			handler: func(_ echo.Context) error {
				panic(42)
			},
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"error=42", "method=POST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := Recovery(logger)(tt.handler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if len(tt.wantLog) == 0 {
				assert.Empty(t, buf.String(), "no panic should produce no log output")
				return
			}
			assert.Contains(t, rec.Body.String(), "internal server error")
			for _, s := range tt.wantLog {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())

	handler := Recovery(slog.New(slog.DiscardHandler))(func(_ echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = handler(c) })
}
