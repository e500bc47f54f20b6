// Package store defines the datastore abstraction for dealer-catalog.
// Loaders, settings and handlers depend on the Store interface, never on
// concrete implementations, so they can be tested against mocks.
package store

import (
	"context"
	"encoding/json"
	"errors"

	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// ErrNotFound is returned when a keyed lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store defines all data access operations for dealer-catalog.
type Store interface {
	// Vehicles. Rows are opaque raw records; normalization happens in the
	// catalog loader.
	ListRawVehicles(ctx context.Context, limit int) ([]domain.RawVehicleRecord, error)
	UpsertRawVehicle(ctx context.Context, r *domain.RawVehicleRecord) error
	DeleteVehicle(ctx context.Context, id string) error
	CountVehicles(ctx context.Context) (int, error)

	// Settings
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)
	PutSetting(ctx context.Context, key string, value json.RawMessage) error

	// Rental fleet
	ListRentalCars(ctx context.Context, q *RentalQuery) ([]domain.RentalCar, int, error)
	GetRentalCar(ctx context.Context, id string) (*domain.RentalCar, error)
	CreateRentalCar(ctx context.Context, c *domain.RentalCar) error
	UpdateRentalCar(ctx context.Context, c *domain.RentalCar) error
	DeleteRentalCar(ctx context.Context, id string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
