//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/dealer-catalog/internal/store"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("dealer_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, store.WithPoolSize(4))
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func rawVehicle(id string, updated time.Time) *domain.RawVehicleRecord {
	return &domain.RawVehicleRecord{
		ID:        id,
		Title:     "YAMAHA MT-09 SP",
		Brand:     "YAMAHA",
		Price:     domain.FlexString("CHF 12'990.-"),
		Year:      domain.FlexNumber(2022),
		Mileage:   domain.FlexString("8 500 km"),
		Images:    []string{"https://cdn.example.com/mt09.jpg"},
		UpdatedAt: &updated,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_RawVehicles(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.UpsertRawVehicle(ctx, rawVehicle("old", base)))
	require.NoError(t, s.UpsertRawVehicle(ctx, rawVehicle("new", base.Add(time.Hour))))
	require.NoError(t, s.UpsertRawVehicle(ctx, rawVehicle("mid", base.Add(30*time.Minute))))

	t.Run("newest first with limit", func(t *testing.T) {
		got, err := s.ListRawVehicles(ctx, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "new", got[0].ID)
		assert.Equal(t, "mid", got[1].ID)
	})

	t.Run("payload round trips", func(t *testing.T) {
		got, err := s.ListRawVehicles(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "CHF 12'990.-", got[0].Price.String())
		n, ok := got[0].Year.Int()
		require.True(t, ok)
		assert.Equal(t, 2022, n)
		assert.Equal(t, []string{"https://cdn.example.com/mt09.jpg"}, got[0].Images)
	})

	t.Run("upsert replaces payload", func(t *testing.T) {
		r := rawVehicle("old", base.Add(2*time.Hour))
		r.Title = "YAMAHA MT-09 SP (reduziert)"
		require.NoError(t, s.UpsertRawVehicle(ctx, r))

		got, err := s.ListRawVehicles(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "old", got[0].ID)
		assert.Equal(t, "YAMAHA MT-09 SP (reduziert)", got[0].Title)

		n, err := s.CountVehicles(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("missing id gets a uuid", func(t *testing.T) {
		r := rawVehicle("", base)
		require.NoError(t, s.UpsertRawVehicle(ctx, r))
		assert.Len(t, r.ID, 36)
		require.NoError(t, s.DeleteVehicle(ctx, r.ID))
	})

	t.Run("delete unknown", func(t *testing.T) {
		require.ErrorIs(t, s.DeleteVehicle(ctx, "nope"), store.ErrNotFound)
	})
}

func TestPostgresStore_Settings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	_, err := s.GetSetting(ctx, "featured_vehicles")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.PutSetting(ctx, "featured_vehicles", json.RawMessage(`["a","b"]`)))
	require.NoError(t, s.PutSetting(ctx, "featured_vehicles", json.RawMessage(`["c"]`)))

	got, err := s.GetSetting(ctx, "featured_vehicles")
	require.NoError(t, err)
	assert.JSONEq(t, `["c"]`, string(got.Value))
	assert.False(t, got.UpdatedAt.IsZero())

	require.Error(t, s.PutSetting(ctx, "banner", json.RawMessage(`{broken`)))
}

func TestPostgresStore_RentalCars(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	car := &domain.RentalCar{
		Name:        "VW Multivan",
		Brand:       "VW",
		Model:       "Multivan",
		Category:    "Van",
		Seats:       7,
		PricePerDay: 180,
		Deposit:     1000,
		Available:   true,
		Multilingual: domain.Multilingual{
			domain.FieldDescription: {
				DE: domain.TextString("Familienbus"),
				FR: domain.TextString("Minibus familial"),
				EN: domain.TextString("Family van"),
			},
		},
	}
	require.NoError(t, s.CreateRentalCar(ctx, car))
	require.NotEmpty(t, car.ID)
	assert.False(t, car.CreatedAt.IsZero())

	hidden := &domain.RentalCar{Name: "Fiat 500", Category: "Kleinwagen", Seats: 4, PricePerDay: 60}
	require.NoError(t, s.CreateRentalCar(ctx, hidden))

	t.Run("get", func(t *testing.T) {
		got, err := s.GetRentalCar(ctx, car.ID)
		require.NoError(t, err)
		assert.Equal(t, "VW Multivan", got.Name)
		assert.Empty(t, got.Images)
		assert.Equal(t, "Minibus familial", got.Multilingual[domain.FieldDescription].FR.Str)
	})

	t.Run("get malformed id", func(t *testing.T) {
		_, err := s.GetRentalCar(ctx, "not-a-uuid")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list available only", func(t *testing.T) {
		got, total, err := s.ListRentalCars(ctx, &store.RentalQuery{AvailableOnly: true})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, car.ID, got[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		hidden.Available = true
		hidden.PricePerDay = 55
		require.NoError(t, s.UpdateRentalCar(ctx, hidden))

		got, total, err := s.ListRentalCars(ctx, &store.RentalQuery{AvailableOnly: true, OrderBy: "price"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, "Fiat 500", got[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteRentalCar(ctx, hidden.ID))
		require.ErrorIs(t, s.DeleteRentalCar(ctx, hidden.ID), store.ErrNotFound)
		require.ErrorIs(t, s.UpdateRentalCar(ctx, hidden), store.ErrNotFound)
	})
}
