package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID returns the request ID assigned by RequestLog, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

// RequestLog returns Echo middleware that logs each request with structured
// fields. A request ID is taken from X-Request-ID or generated, and echoed
// back on the response.
//
// Successful probe requests are logged once per middleware instance so a
// steady stream of healthy probes stays out of the log. Probe failures are
// always logged at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var probesSeen sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)
			if err != nil {
				c.Error(err)
				err = nil
			}

			path := c.Request().URL.Path
			status := c.Response().Status
			_, probe := probePaths[path]

			level := levelFor(status)
			if probe {
				if isSuccess(status) {
					if _, seen := probesSeen.LoadOrStore(path, true); seen {
						return err
					}
				} else {
					level = slog.LevelWarn
				}
			}

			log.LogAttrs(context.WithoutCancel(c.Request().Context()), level, "request",
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("request_id", reqID),
			)

			return err
		}
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
