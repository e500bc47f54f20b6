// Package handlers implements the HTTP operations of the dealer catalog API.
package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/dealer-catalog/internal/catalog"
	"github.com/donaldgifford/dealer-catalog/pkg/locale"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// SnapshotProvider exposes the currently applied catalog.
type SnapshotProvider interface {
	Snapshot() *catalog.Snapshot
}

// Refresher reloads the catalog.
type Refresher interface {
	SnapshotProvider
	Refresh(ctx context.Context) (*catalog.Snapshot, bool)
	Sources() []string
}

// LocaleInput selects the display language. The query parameter wins over
// the Accept-Language header.
type LocaleInput struct {
	Locale         string `query:"locale"          doc:"Display language (de, fr, en)"`
	AcceptLanguage string `header:"Accept-Language" doc:"Fallback language negotiation"`
}

// Resolve returns the negotiated locale.
func (in *LocaleInput) Resolve() domain.Locale {
	return locale.Negotiate(in.AcceptLanguage, in.Locale)
}

// FromEcho adapts Echo middleware to a Huma operation middleware. It only
// works on APIs served by the humaecho adapter.
func FromEcho(m echo.MiddlewareFunc) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		ec := humaecho.Unwrap(ctx)
		err := m(func(echo.Context) error {
			next(ctx)
			return nil
		})(ec)
		if err != nil {
			ec.Error(err)
		}
	}
}
