package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dealer-catalog/internal/settings"
	"github.com/donaldgifford/dealer-catalog/internal/store"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// SettingsService reads and writes back-office settings.
type SettingsService interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
	Banner(ctx context.Context) (domain.Banner, error)
}

// SettingsHandler serves the settings store and the landing page banner.
type SettingsHandler struct {
	settings SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: s}
}

// --- Input/Output types ---

// GetSettingInput selects a setting.
type GetSettingInput struct {
	Key string `query:"key" required:"true" doc:"Setting key" pattern:"^[a-z0-9][a-z0-9_.-]{0,63}$"`
}

// SettingBody is a setting key with its opaque JSON value.
type SettingBody struct {
	Key   string `json:"key"   doc:"Setting key" pattern:"^[a-z0-9][a-z0-9_.-]{0,63}$"`
	Value any    `json:"value" doc:"Arbitrary JSON value"`
}

// SettingOutput is a single setting.
type SettingOutput struct {
	Body SettingBody
}

// PutSettingInput stores a setting.
type PutSettingInput struct {
	Body SettingBody
}

// BannerOutput is the banner projected into one language.
type BannerOutput struct {
	Body struct {
		Enabled  bool          `json:"enabled"`
		ImageURL string        `json:"imageUrl,omitempty"`
		LinkURL  string        `json:"linkUrl,omitempty"`
		Text     string        `json:"text"`
		Locale   domain.Locale `json:"locale"`
	}
}

// --- Handlers ---

// GetSetting returns one setting.
func (h *SettingsHandler) GetSetting(ctx context.Context, input *GetSettingInput) (*SettingOutput, error) {
	raw, err := h.settings.Get(ctx, input.Key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, huma.Error404NotFound("setting not found")
	case errors.Is(err, settings.ErrInvalidKey):
		return nil, huma.Error400BadRequest(err.Error())
	case err != nil:
		return nil, huma.Error500InternalServerError("reading setting: " + err.Error())
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, huma.Error500InternalServerError("decoding setting: " + err.Error())
	}
	return &SettingOutput{Body: SettingBody{Key: input.Key, Value: value}}, nil
}

// PutSetting stores one setting.
func (h *SettingsHandler) PutSetting(ctx context.Context, input *PutSettingInput) (*SettingOutput, error) {
	raw, err := json.Marshal(input.Body.Value)
	if err != nil {
		return nil, huma.Error400BadRequest("encoding value: " + err.Error())
	}

	err = h.settings.Put(ctx, input.Body.Key, raw)
	switch {
	case errors.Is(err, settings.ErrInvalidKey):
		return nil, huma.Error400BadRequest(err.Error())
	case errors.Is(err, settings.ErrNoStore):
		return nil, huma.Error503ServiceUnavailable(err.Error())
	case err != nil:
		return nil, huma.Error500InternalServerError("storing setting: " + err.Error())
	}
	return &SettingOutput{Body: input.Body}, nil
}

// GetBanner returns the landing page banner.
func (h *SettingsHandler) GetBanner(ctx context.Context, input *LocaleInput) (*BannerOutput, error) {
	b, err := h.settings.Banner(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading banner: " + err.Error())
	}

	loc := input.Resolve()
	text := b.Text.Get(loc)
	if text.IsEmpty() {
		text = b.Text.Get(domain.DefaultLocale)
	}

	resp := &BannerOutput{}
	resp.Body.Enabled = b.Enabled
	resp.Body.ImageURL = b.ImageURL
	resp.Body.LinkURL = b.LinkURL
	resp.Body.Text = text.String()
	resp.Body.Locale = loc
	return resp, nil
}

// RegisterBannerRoutes registers the public banner endpoint.
func RegisterBannerRoutes(api huma.API, h *SettingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-banner",
		Method:      http.MethodGet,
		Path:        "/api/v1/banner",
		Summary:     "Landing page banner",
		Description: "Returns the promotional banner with its text in the requested language.",
		Tags:        []string{"settings"},
	}, h.GetBanner)
}

// RegisterSettingsRoutes registers the back-office settings endpoints.
func RegisterSettingsRoutes(api huma.API, h *SettingsHandler, admin huma.Middlewares) {
	huma.Register(api, huma.Operation{
		OperationID: "get-setting",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings",
		Summary:     "Get a setting",
		Tags:        []string{"admin"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
		Middlewares: admin,
	}, h.GetSetting)

	huma.Register(api, huma.Operation{
		OperationID: "put-setting",
		Method:      http.MethodPost,
		Path:        "/api/v1/settings",
		Summary:     "Store a setting",
		Description: "Replaces the value of a setting. Values are opaque JSON.",
		Tags:        []string{"admin"},
		Errors:      []int{http.StatusBadRequest, http.StatusServiceUnavailable},
		Middlewares: admin,
	}, h.PutSetting)
}
