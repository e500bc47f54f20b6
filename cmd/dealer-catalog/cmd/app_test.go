package cmd

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-catalog/internal/catalog"
	"github.com/donaldgifford/dealer-catalog/internal/config"
	"github.com/donaldgifford/dealer-catalog/pkg/logger"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

const snapshotFixture = `[
  {"id": "a1", "title": "YAMAHA MT-09A 35kW", "price": "CHF 4&#39;990.-", "year": "08.2013",
   "mileage": "12'000 km", "type": "Naked bike", "location": "8004 Zürich"},
  {"id": "c1", "title": "AUDI A4 Avant", "price": 15900, "year": 2019, "mileage": 64000,
   "type": "Kombi", "fuel": "Diesel"},
  "not a row"
]`

func newTestApp(t *testing.T, token string) *app {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vehicles.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotFixture), 0o600))

	cfg := config.Default()
	cfg.Catalog.SnapshotPath = path
	cfg.Admin.Token = token
	cfg.Dealer.Phone = "+41 44 123 45 67"

	a, err := newApp(context.Background(), cfg, logger.NewWithWriter(io.Discard, "error", "text"))
	require.NoError(t, err)
	t.Cleanup(a.close)
	return a
}

func serve(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestApp_Routes(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, "tok")
	e, _ := a.newRouter()

	rec := serve(e, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "not ready before the first load")

	snap, applied := a.catalog.Refresh(context.Background())
	require.True(t, applied)
	assert.Equal(t, "snapshot_file", snap.Source)
	require.Len(t, snap.Vehicles, 2)

	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
		wantBody   []string
	}{
		{name: "healthz", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK},
		{
			name:       "readyz",
			method:     http.MethodGet,
			target:     "/readyz",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"source":"snapshot_file"`},
		},
		{
			name:       "bikes by default",
			method:     http.MethodGet,
			target:     "/api/v1/vehicles",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"id":"a1"`, `"price":4990`, `"year":2013`, `"brand":"YAMAHA"`, `"model":"MT-09A 35kW"`},
		},
		{
			name:       "cars",
			method:     http.MethodGet,
			target:     "/api/v1/vehicles?category=car&locale=fr",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"id":"c1"`, `"locale":"fr"`, `"total":1`},
		},
		{
			name:       "contact links",
			method:     http.MethodGet,
			target:     "/api/v1/vehicles/c1/contact",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"tel":"tel:+41441234567"`, `https://wa.me/41441234567?text=`},
		},
		{
			name:       "finance from vehicle",
			method:     http.MethodGet,
			target:     "/api/v1/finance?vehicle_id=c1&rate=0&term_months=10",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"monthlyPayment":1590`},
		},
		{
			name:       "banner without store",
			method:     http.MethodGet,
			target:     "/api/v1/banner",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"enabled":false`},
		},
		{
			name:       "refresh needs token",
			method:     http.MethodPost,
			target:     "/api/v1/catalog/refresh",
			token:      "wrong",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "refresh with token",
			method:     http.MethodPost,
			target:     "/api/v1/catalog/refresh",
			token:      "tok",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"applied":true`},
		},
		{
			name:       "unset setting",
			method:     http.MethodGet,
			target:     "/api/v1/settings?key=hero",
			token:      "tok",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "rental admin routes need a store",
			method:     http.MethodGet,
			target:     "/api/v1/admin/rentals",
			token:      "tok",
			wantStatus: http.StatusNotFound,
		},
		{name: "openapi document", method: http.MethodGet, target: "/openapi.json", wantStatus: http.StatusOK},
		{name: "swagger ui", method: http.MethodGet, target: "/swagger/index.html", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, tt.token)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			for _, s := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestApp_AdminDisabledWithoutToken(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, "")
	e, _ := a.newRouter()

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/v1/catalog/status", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodPost, "/api/v1/catalog/refresh", "x").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodPost, "/api/v1/settings", "x").Code)
}

func TestApp_DocumentOnlyRegistersEverything(t *testing.T) {
	t.Parallel()

	a := newTestApp(t, "")
	a.documentOnly = true
	_, api := a.newRouter()

	doc, err := json.Marshal(api.OpenAPI())
	require.NoError(t, err)
	for _, p := range []string{"/api/v1/admin/rentals", "/api/v1/catalog/refresh", "/api/v1/settings"} {
		assert.Contains(t, string(doc), `"`+p+`"`)
	}
}

func TestApp_NotifiesFallbackToWebhook(t *testing.T) {
	t.Parallel()

	embeds := make(chan string, 4)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Embeds []struct {
				Title string `json:"title"`
			} `json:"embeds"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		for _, e := range body.Embeds {
			embeds <- e.Title
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()

	cfg := config.Default()
	cfg.Notify.DiscordWebhookURL = hook.URL

	a, err := newApp(context.Background(), cfg, logger.NewWithWriter(io.Discard, "error", "text"))
	require.NoError(t, err)
	t.Cleanup(a.close)

	snap, _ := a.catalog.Refresh(context.Background())
	assert.Equal(t, catalog.SourceFallback, snap.Source)

	require.Len(t, embeds, 1)
	assert.Equal(t, "Catalog degraded", <-embeds)
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	got, err := parseCategory("car")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryCar, got)

	got, err = parseCategory("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseCategory("boat")
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DEALER_TEST_TOKEN=from-dotenv\n"), 0o600))

	t.Setenv("DEALER_TEST_TOKEN", "")
	require.NoError(t, os.Unsetenv("DEALER_TEST_TOKEN"))

	require.NoError(t, loadEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("DEALER_TEST_TOKEN"))

	require.NoError(t, loadEnv(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, loadEnv(""))
}
