package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-catalog/internal/api/handlers"
	"github.com/donaldgifford/dealer-catalog/internal/catalog"
	"github.com/donaldgifford/dealer-catalog/internal/store/mocks"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(&fakeCatalog{}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Healthz(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	unloaded := catalog.NewSnapshot(nil, nil, "", time.Time{}, 0)

	tests := []struct {
		name       string
		snap       *catalog.Snapshot
		withStore  bool
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "503 before the first catalog load",
			snap:       unloaded,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","reason":"catalog not loaded"}`,
		},
		{
			name:       "503 without any snapshot",
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","reason":"catalog not loaded"}`,
		},
		{
			name:       "200 without hosted store",
			snap:       newFakeCatalog().snap,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","source":"store"}`,
		},
		{
			name:       "200 with reachable store",
			snap:       newFakeCatalog().snap,
			withStore:  true,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","source":"store","store":"ok"}`,
		},
		{
			name:       "200 when store is unreachable",
			snap:       newFakeCatalog().snap,
			withStore:  true,
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","source":"store","store":"unreachable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var pinger handlers.Pinger
			if tt.withStore {
				ms := mocks.NewMockStore(t)
				ms.EXPECT().Ping(mock.Anything).Return(tt.pingErr).Once()
				pinger = ms
			}
			h := handlers.NewHealthHandler(&fakeCatalog{snap: tt.snap}, pinger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.Readyz(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
