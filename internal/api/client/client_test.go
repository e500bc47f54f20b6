package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-catalog/pkg/locale"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.CatalogStatus(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found","status":404,"detail":"vehicle not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetVehicle(context.Background(), "gen-404")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, err.Error(), "API error (HTTP 404)")
}

func TestClient_ListVehicles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []Option
		params    *VehicleParams
		wantQuery string
	}{
		{
			name:      "no params",
			wantQuery: "",
		},
		{
			name:      "filters and locale",
			opts:      []Option{WithLocale("fr")},
			params:    &VehicleParams{Category: "car", Brand: "VW", MaxPrice: 20000, Sort: "price_asc", Page: 2},
			wantQuery: "brand=VW&category=car&locale=fr&max_price=20000&page=2&sort=price_asc",
		},
		{
			name:      "state replaces filters",
			params:    &VehicleParams{State: "abc", Brand: "VW"},
			wantQuery: "state=abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/vehicles", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(VehiclesResponse{
					Items: []locale.LocalizedVehicle{{ID: "gen-3", Title: "VW Golf"}},
					Total: 1, Page: 1, PageSize: 6, TotalPages: 1, State: "tok",
				})
			}))
			defer srv.Close()

			resp, err := New(srv.URL, tt.opts...).ListVehicles(context.Background(), tt.params)
			require.NoError(t, err)
			require.Len(t, resp.Items, 1)
			assert.Equal(t, "gen-3", resp.Items[0].ID)
			assert.Equal(t, "tok", resp.State)
		})
	}
}

func TestClient_AdminToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/catalog/refresh", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"source":"store","generation":7,"vehicles":12,"rentals":3,"applied":true}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).RefreshCatalog(context.Background())
	require.Error(t, err)

	res, err := New(srv.URL, WithToken("s3cret")).RefreshCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, uint64(7), res.Generation)
	assert.Equal(t, 12, res.Vehicles)
}

func TestClient_RequestRental(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rentals/car-1/request", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("locale"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"from": "2099-07-01", "to": "2099-07-03", "customer": "Ada"}, body)

		_, _ = w.Write([]byte(`{"tel":"tel:+41441234567","whatsapp":"https://wa.me/41441234567?text=Hello","message":"Hello"}`))
	}))
	defer srv.Close()

	links, err := New(srv.URL, WithLocale("en")).
		RequestRental(context.Background(), "car-1", "2099-07-01", "2099-07-03", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "tel:+41441234567", links.Tel)
	assert.Equal(t, "Hello", links.Message)
}

func TestClient_Settings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/settings", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "featured_vehicles", r.URL.Query().Get("key"))
			_, _ = w.Write([]byte(`{"key":"featured_vehicles","value":["gen-1","gen-3"]}`))
		case http.MethodPost:
			var body struct {
				Key   string          `json:"key"`
				Value json.RawMessage `json:"value"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "hero", body.Key)
			assert.JSONEq(t, `{"on":true}`, string(body.Value))
			_, _ = w.Write([]byte(`{"key":"hero","value":{"on":true}}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("t"))

	got, err := c.GetSetting(context.Background(), "featured_vehicles")
	require.NoError(t, err)
	assert.JSONEq(t, `["gen-1","gen-3"]`, string(got))

	require.NoError(t, c.PutSetting(context.Background(), "hero", json.RawMessage(`{"on":true}`)))
}

func TestClient_Finance(t *testing.T) {
	t.Parallel()

	rate := 0.0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/finance", r.URL.Path)
		assert.Equal(t, "price=12000&rate=0&term_months=40", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"monthlyPayment":300,"termMonths":40,"annualRatePct":0}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Finance(context.Background(), &FinanceParams{Price: 12000, TermMonths: 40, Rate: &rate})
	require.NoError(t, err)
	assert.InDelta(t, 300.0, res.MonthlyPayment, 0.001)
	assert.Equal(t, 40, res.TermMonths)
}
