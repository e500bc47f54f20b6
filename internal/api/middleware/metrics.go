// Package middleware provides Echo middleware for the dealer catalog API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
)

// probePaths are excluded from request histograms. Probes only move their
// up/down gauge.
var probePaths = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// by route template, so /api/v1/vehicles/:id stays a single series.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)
			if path == "/metrics" {
				return next(c)
			}
			if gauge, ok := probePaths[path]; ok {
				err := next(c)
				gauge.Set(boolGauge(isSuccess(c.Response().Status)))
				return err
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let Echo's error handler fill in the status before recording.
				c.Error(err)
				err = nil
			}

			labels := []string{c.Request().Method, path, strconv.Itoa(c.Response().Status)}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			return err
		}
	}
}

func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func boolGauge(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
