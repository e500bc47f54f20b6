package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dealer-catalog/internal/catalog"
)

// CatalogHandler reports on and refreshes the applied catalog.
type CatalogHandler struct {
	catalog Refresher
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(c Refresher) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// CatalogStatus describes the applied catalog.
type CatalogStatus struct {
	Source     string    `json:"source"     doc:"Tier the vehicles were loaded from"`
	Generation uint64    `json:"generation" doc:"Load generation of the applied catalog"`
	Vehicles   int       `json:"vehicles"`
	Rentals    int       `json:"rentals"`
	LoadedAt   time.Time `json:"loadedAt"`
	Sources    []string  `json:"sources"    doc:"Configured tiers in fallback order"`
}

// CatalogStatusOutput is the catalog status response.
type CatalogStatusOutput struct {
	Body CatalogStatus
}

// RefreshOutput is the response of a manual refresh.
type RefreshOutput struct {
	Body struct {
		CatalogStatus
		Applied bool `json:"applied" doc:"False when a newer load finished first"`
	}
}

// Status returns the applied catalog's metadata.
func (h *CatalogHandler) Status(_ context.Context, _ *struct{}) (*CatalogStatusOutput, error) {
	return &CatalogStatusOutput{Body: h.status(h.catalog.Snapshot())}, nil
}

// Refresh reloads the catalog from its sources.
func (h *CatalogHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	snap, applied := h.catalog.Refresh(ctx)

	resp := &RefreshOutput{}
	resp.Body.CatalogStatus = h.status(snap)
	resp.Body.Applied = applied
	return resp, nil
}

func (h *CatalogHandler) status(snap *catalog.Snapshot) CatalogStatus {
	return CatalogStatus{
		Source:     snap.Source,
		Generation: snap.Generation,
		Vehicles:   len(snap.Vehicles),
		Rentals:    len(snap.Rentals),
		LoadedAt:   snap.LoadedAt,
		Sources:    h.catalog.Sources(),
	}
}

// RegisterCatalogStatusRoute registers the public catalog status endpoint.
func RegisterCatalogStatusRoute(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "catalog-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/status",
		Summary:     "Catalog status",
		Description: "Returns the source, generation and size of the applied catalog.",
		Tags:        []string{"catalog"},
	}, h.Status)
}

// RegisterCatalogRoutes registers the catalog status and the admin refresh
// endpoints.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler, admin huma.Middlewares) {
	RegisterCatalogStatusRoute(api, h)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-catalog",
		Method:      http.MethodPost,
		Path:        "/api/v1/catalog/refresh",
		Summary:     "Refresh the catalog",
		Description: "Reloads vehicles and rentals through the source tiers and applies the result " +
			"unless a newer load finished first.",
		Tags:        []string{"admin"},
		Middlewares: admin,
	}, h.Refresh)
}
