package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-catalog/internal/catalog"
	"github.com/donaldgifford/dealer-catalog/internal/store"
	storeMocks "github.com/donaldgifford/dealer-catalog/internal/store/mocks"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

const snapshotURL = "https://cdn.example.test/vehicles.json"

const snapshotBody = `[
	{"id": "v1", "title": "KTM 390 Duke", "price": "CHF 5'490.-", "year": 2023},
	"not an object",
	{"id": "v2", "title": "AUDI A3 Sportback", "price": 27900, "type": "Limousine"}
]`

func TestSnapshotSource_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		responder httpmock.Responder
		wantIDs   []string
		wantErr   string
	}{
		{
			name:      "decodes objects and skips other elements",
			responder: httpmock.NewStringResponder(http.StatusOK, snapshotBody),
			wantIDs:   []string{"v1", "v2"},
		},
		{
			name:      "server error",
			responder: httpmock.NewStringResponder(http.StatusInternalServerError, "oops"),
			wantErr:   "unexpected status 500",
		},
		{
			name:      "not an array",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"vehicles": []}`),
			wantErr:   "decoding record array",
		},
		{
			name:      "transport error",
			responder: httpmock.NewErrorResponder(errors.New("dial tcp: no route to host")),
			wantErr:   "no route to host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := httpmock.NewMockTransport()
			transport.RegisterResponder(http.MethodGet, snapshotURL, tt.responder)

			src := catalog.NewURLSnapshotSource(snapshotURL, time.Second,
				catalog.WithHTTPClient(&http.Client{Transport: transport}),
				catalog.WithSnapshotLogger(quietLogger()),
			)
			assert.Equal(t, catalog.SourceSnapshotURL, src.Name())

			records, err := src.Fetch(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			ids := make([]string, len(records))
			for i := range records {
				ids[i] = records[i].ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, 1, transport.GetTotalCallCount())
		})
	}
}

func TestSnapshotSource_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "vehicles.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotBody), 0o644))

	src := catalog.NewFileSnapshotSource(path, catalog.WithSnapshotLogger(quietLogger()))
	assert.Equal(t, catalog.SourceSnapshotFile, src.Name())

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Limousine", records[1].BodyType)

	_, err = catalog.NewFileSnapshotSource(filepath.Join(dir, "missing.json")).Fetch(context.Background())
	require.Error(t, err)
}

func TestStoreSource(t *testing.T) {
	t.Parallel()

	t.Run("vehicles", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			ListRawVehicles(mock.Anything, 500).
			Return([]domain.RawVehicleRecord{{ID: "a"}, {ID: "b"}}, nil).
			Once()

		src := catalog.NewStoreSource(ms, 500)
		assert.Equal(t, catalog.SourceStore, src.Name())

		got, err := src.Fetch(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("vehicles error is wrapped", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			ListRawVehicles(mock.Anything, 10).
			Return(nil, errors.New("db error")).
			Once()

		_, err := catalog.NewStoreSource(ms, 10).Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing raw vehicles")
	})

	t.Run("rentals", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			ListRentalCars(mock.Anything, &store.RentalQuery{Limit: 500}).
			Return([]domain.RentalCar{{ID: "r1"}}, 1, nil).
			Once()

		got, err := catalog.NewStoreSource(ms, 500).FetchRentals(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
