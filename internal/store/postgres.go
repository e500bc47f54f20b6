package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Option configures a PostgresStore.
type Option func(*pgxpool.Config)

// WithPoolSize caps the number of pooled connections. Values below 1 keep
// the default.
func WithPoolSize(n int) Option {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(min(n, 1<<15)) //nolint:gosec // bounded above
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...Option) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListRawVehicles returns up to limit raw rows, most recently updated first.
// Rows whose payload is not a JSON object are skipped.
func (s *PostgresStore) ListRawVehicles(ctx context.Context, limit int) ([]domain.RawVehicleRecord, error) {
	rows, err := s.pool.Query(ctx, queryListRawVehicles, limit)
	if err != nil {
		return nil, fmt.Errorf("querying vehicles: %w", err)
	}
	defer rows.Close()

	var records []domain.RawVehicleRecord
	for rows.Next() {
		var (
			id        string
			data      []byte
			updatedAt time.Time
		)
		if err := rows.Scan(&id, &data, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		var r domain.RawVehicleRecord
		if err := json.Unmarshal(data, &r); err != nil {
			continue
		}
		if r.ID == "" {
			r.ID = id
		}
		if r.UpdatedAt == nil {
			r.UpdatedAt = &updatedAt
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// UpsertRawVehicle inserts or replaces a raw row keyed by its id. Records
// without an id are assigned a random UUID.
func (s *PostgresStore) UpsertRawVehicle(ctx context.Context, r *domain.RawVehicleRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling vehicle %s: %w", r.ID, err)
	}

	args := pgx.NamedArgs{
		"id":         r.ID,
		"data":       data,
		"updated_at": r.UpdatedAt,
	}

	var updatedAt time.Time
	if err := s.pool.QueryRow(ctx, queryUpsertRawVehicle, args).Scan(&updatedAt); err != nil {
		return fmt.Errorf("upserting vehicle %s: %w", r.ID, err)
	}
	r.UpdatedAt = &updatedAt
	return nil
}

// DeleteVehicle removes a raw row by id.
func (s *PostgresStore) DeleteVehicle(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteVehicle, id)
	if err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountVehicles returns the number of stored raw rows.
func (s *PostgresStore) CountVehicles(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountVehicles).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting vehicles: %w", err)
	}
	return n, nil
}

// GetSetting returns the setting stored under key.
func (s *PostgresStore) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	var (
		st    domain.Setting
		value []byte
	)
	err := s.pool.QueryRow(ctx, queryGetSetting, key).Scan(&st.Key, &value, &st.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting setting %q: %w", key, err)
	}
	st.Value = json.RawMessage(value)
	return &st, nil
}

// PutSetting stores value under key, replacing any previous value.
func (s *PostgresStore) PutSetting(ctx context.Context, key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("setting %q: value is not valid JSON", key)
	}
	if _, err := s.pool.Exec(ctx, queryPutSetting, key, []byte(value)); err != nil {
		return fmt.Errorf("putting setting %q: %w", key, err)
	}
	return nil
}

// ListRentalCars returns rental cars matching q together with the total
// number of matches ignoring limit and offset.
func (s *PostgresStore) ListRentalCars(
	ctx context.Context,
	q *RentalQuery,
) ([]domain.RentalCar, int, error) {
	if q == nil {
		q = &RentalQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting rental cars: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying rental cars: %w", err)
	}
	defer rows.Close()

	var cars []domain.RentalCar
	for rows.Next() {
		var c domain.RentalCar
		if err := scanRentalCar(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("scanning rental car: %w", err)
		}
		cars = append(cars, c)
	}

	return cars, total, rows.Err()
}

// GetRentalCar retrieves a rental car by its UUID. Ids that are not UUIDs
// cannot exist and report ErrNotFound.
func (s *PostgresStore) GetRentalCar(ctx context.Context, id string) (*domain.RentalCar, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	c := &domain.RentalCar{}
	err := scanRentalCar(s.pool.QueryRow(ctx, queryGetRentalCar, id), c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting rental car: %w", err)
	}
	return c, nil
}

// CreateRentalCar inserts a rental car, assigning a UUID when the id is empty.
func (s *PostgresStore) CreateRentalCar(ctx context.Context, c *domain.RentalCar) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	args, err := rentalArgs(c)
	if err != nil {
		return err
	}
	if err := s.pool.QueryRow(ctx, queryCreateRentalCar, args).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("creating rental car: %w", err)
	}
	return nil
}

// UpdateRentalCar replaces every mutable column of an existing rental car.
func (s *PostgresStore) UpdateRentalCar(ctx context.Context, c *domain.RentalCar) error {
	if _, err := uuid.Parse(c.ID); err != nil {
		return ErrNotFound
	}
	args, err := rentalArgs(c)
	if err != nil {
		return err
	}
	err = s.pool.QueryRow(ctx, queryUpdateRentalCar, args).Scan(&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating rental car: %w", err)
	}
	return nil
}

// DeleteRentalCar removes a rental car by its UUID.
func (s *PostgresStore) DeleteRentalCar(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	tag, err := s.pool.Exec(ctx, queryDeleteRentalCar, id)
	if err != nil {
		return fmt.Errorf("deleting rental car: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func rentalArgs(c *domain.RentalCar) (pgx.NamedArgs, error) {
	ml := c.Multilingual
	if ml == nil {
		ml = domain.Multilingual{}
	}
	mlJSON, err := json.Marshal(ml)
	if err != nil {
		return nil, fmt.Errorf("marshaling rental multilingual: %w", err)
	}

	return pgx.NamedArgs{
		"id":            c.ID,
		"name":          c.Name,
		"brand":         c.Brand,
		"model":         c.Model,
		"category":      c.Category,
		"seats":         c.Seats,
		"transmission":  c.Transmission,
		"fuel":          c.Fuel,
		"price_per_day": c.PricePerDay,
		"deposit":       c.Deposit,
		"images":        nonNil(c.Images),
		"features":      nonNil(c.Features),
		"description":   c.Description,
		"available":     c.Available,
		"multilingual":  mlJSON,
	}, nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanRentalCar(row scannable, c *domain.RentalCar) error {
	var mlJSON []byte
	if err := row.Scan(
		&c.ID, &c.Name, &c.Brand, &c.Model, &c.Category, &c.Seats,
		&c.Transmission, &c.Fuel, &c.PricePerDay, &c.Deposit, &c.Images, &c.Features, &c.Description,
		&c.Available, &mlJSON, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return err
	}
	if len(mlJSON) > 0 {
		if err := json.Unmarshal(mlJSON, &c.Multilingual); err != nil {
			return fmt.Errorf("unmarshaling rental multilingual: %w", err)
		}
	}
	return nil
}

func nonNil(l []string) []string {
	if l == nil {
		return []string{}
	}
	return l
}
