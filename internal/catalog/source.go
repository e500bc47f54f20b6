// Package catalog loads the vehicle catalog from its tiered sources and holds
// the applied snapshot that request handlers read from.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
	"github.com/donaldgifford/dealer-catalog/internal/store"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// Source names used in logs, metrics and Snapshot.Source.
const (
	SourceStore        = "store"
	SourceSnapshotURL  = "snapshot_url"
	SourceSnapshotFile = "snapshot_file"
	SourceFallback     = "fallback"
)

// maxSnapshotBytes bounds how much of a snapshot response is read.
const maxSnapshotBytes = 32 << 20

// Source yields raw vehicle rows in catalog order.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.RawVehicleRecord, error)
}

// RentalSource yields the rental fleet.
type RentalSource interface {
	FetchRentals(ctx context.Context) ([]domain.RentalCar, error)
}

// StoreSource reads raw rows from the hosted store, newest first.
type StoreSource struct {
	store store.Store
	limit int
}

// NewStoreSource creates a StoreSource returning at most limit rows.
func NewStoreSource(s store.Store, limit int) *StoreSource {
	return &StoreSource{store: s, limit: limit}
}

// Name implements Source.
func (*StoreSource) Name() string { return SourceStore }

// Fetch implements Source.
func (s *StoreSource) Fetch(ctx context.Context) ([]domain.RawVehicleRecord, error) {
	records, err := s.store.ListRawVehicles(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("listing raw vehicles: %w", err)
	}
	return records, nil
}

// FetchRentals implements RentalSource with every stored rental car.
func (s *StoreSource) FetchRentals(ctx context.Context) ([]domain.RentalCar, error) {
	cars, _, err := s.store.ListRentalCars(ctx, &store.RentalQuery{Limit: s.limit})
	if err != nil {
		return nil, fmt.Errorf("listing rental cars: %w", err)
	}
	return cars, nil
}

// SnapshotSource reads a static JSON array of raw rows, either over HTTP or
// from a local file. Array elements that are not objects are skipped.
type SnapshotSource struct {
	url    string
	path   string
	client *http.Client
	log    *slog.Logger
}

// SnapshotOption configures a SnapshotSource.
type SnapshotOption func(*SnapshotSource)

// WithHTTPClient sets the client used for URL snapshots.
func WithHTTPClient(c *http.Client) SnapshotOption {
	return func(s *SnapshotSource) {
		s.client = c
	}
}

// WithSnapshotLogger sets the logger used to report skipped elements.
func WithSnapshotLogger(l *slog.Logger) SnapshotOption {
	return func(s *SnapshotSource) {
		s.log = l
	}
}

// NewURLSnapshotSource creates a SnapshotSource fetching url.
func NewURLSnapshotSource(url string, timeout time.Duration, opts ...SnapshotOption) *SnapshotSource {
	s := &SnapshotSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFileSnapshotSource creates a SnapshotSource reading path.
func NewFileSnapshotSource(path string, opts ...SnapshotOption) *SnapshotSource {
	s := &SnapshotSource{path: path, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Source.
func (s *SnapshotSource) Name() string {
	if s.url != "" {
		return SourceSnapshotURL
	}
	return SourceSnapshotFile
}

// Fetch implements Source.
func (s *SnapshotSource) Fetch(ctx context.Context) ([]domain.RawVehicleRecord, error) {
	var (
		data []byte
		err  error
	)
	if s.url != "" {
		data, err = s.download(ctx)
	} else {
		data, err = os.ReadFile(s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	records, skipped, err := domain.DecodeRawRecords(data)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		metrics.CatalogRecordsSkippedTotal.Add(float64(skipped))
		s.log.Warn("snapshot elements skipped", "source", s.Name(), "skipped", skipped)
	}
	return records, nil
}

func (s *SnapshotSource) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(data) > maxSnapshotBytes {
		return nil, errors.New("snapshot exceeds size limit")
	}
	return data, nil
}
