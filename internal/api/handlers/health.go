package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the hosted store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	catalog SnapshotProvider
	store   Pinger
}

// NewHealthHandler creates a new HealthHandler. s may be nil when no hosted
// store is configured.
func NewHealthHandler(c SnapshotProvider, s Pinger) *HealthHandler {
	return &HealthHandler{catalog: c, store: s}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 once a catalog has been applied. Store reachability is
// reported in the body but does not fail readiness.
func (h *HealthHandler) Readyz(c echo.Context) error {
	snap := h.catalog.Snapshot()
	if snap == nil || snap.Generation == 0 {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"reason": "catalog not loaded",
		})
	}

	body := map[string]string{"status": "ready", "source": snap.Source}
	if h.store != nil {
		body["store"] = "ok"
		if err := h.store.Ping(c.Request().Context()); err != nil {
			body["store"] = "unreachable"
		}
	}
	return c.JSON(http.StatusOK, body)
}
