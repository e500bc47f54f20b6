package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
	"github.com/donaldgifford/dealer-catalog/internal/notify"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// Snapshot is one applied catalog. It is never modified after it is
// published; a refresh replaces it wholesale.
type Snapshot struct {
	Vehicles   []domain.Vehicle
	Rentals    []domain.RentalCar
	Source     string
	LoadedAt   time.Time
	Generation uint64

	byID map[string]int
}

// NewSnapshot indexes vehicles by id. The first occurrence of a duplicate
// id wins.
func NewSnapshot(
	vehicles []domain.Vehicle,
	rentals []domain.RentalCar,
	source string,
	loadedAt time.Time,
	gen uint64,
) *Snapshot {
	s := &Snapshot{
		Vehicles:   vehicles,
		Rentals:    rentals,
		Source:     source,
		LoadedAt:   loadedAt,
		Generation: gen,
		byID:       make(map[string]int, len(vehicles)),
	}
	for i := range vehicles {
		if _, ok := s.byID[vehicles[i].ID]; !ok {
			s.byID[vehicles[i].ID] = i
		}
	}
	return s
}

// Vehicle returns the vehicle with the given id.
func (s *Snapshot) Vehicle(id string) (domain.Vehicle, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Vehicle{}, false
	}
	return s.Vehicles[i], true
}

// VehiclesByID returns the vehicles for ids in the requested order,
// skipping unknown ids.
func (s *Snapshot) VehiclesByID(ids []string) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.Vehicle(id); ok {
			out = append(out, v)
		}
	}
	return out
}

// Rental returns the rental car with the given id.
func (s *Snapshot) Rental(id string) (domain.RentalCar, bool) {
	for i := range s.Rentals {
		if s.Rentals[i].ID == id {
			return s.Rentals[i], true
		}
	}
	return domain.RentalCar{}, false
}

// Catalog holds the applied Snapshot and refreshes it from a Loader.
// Concurrent refreshes are allowed; a completed load is applied only when
// it was started after the load currently applied.
type Catalog struct {
	loader  *Loader
	rentals RentalSource
	notify  notify.Notifier
	log     *slog.Logger
	now     func() time.Time

	current atomic.Pointer[Snapshot]
	issued  atomic.Uint64
	applyMu sync.Mutex

	refreshes metric.Int64Counter
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRentals sets the rental fleet source. Without one the catalog carries
// no rentals.
func WithRentals(r RentalSource) Option {
	return func(c *Catalog) {
		c.rentals = r
	}
}

// WithCatalogLogger sets the catalog logger.
func WithCatalogLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		c.log = l
	}
}

// WithNotifier reports when the catalog falls back to the bundled inventory
// and when a real source serves again.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Catalog) {
		c.notify = n
	}
}

// WithClock sets the clock used for Snapshot.LoadedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// New creates a Catalog. Until the first Refresh completes it serves an
// empty generation-0 snapshot.
func New(loader *Loader, opts ...Option) *Catalog {
	c := &Catalog{
		loader: loader,
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	counter, err := otel.Meter(tracerName).Int64Counter(
		"catalog.refreshes",
		metric.WithDescription("Catalog refreshes by outcome."),
	)
	if err != nil {
		c.log.Warn("creating refresh counter", "error", err)
	}
	c.refreshes = counter

	c.current.Store(NewSnapshot(nil, nil, "", time.Time{}, 0))
	return c
}

// Snapshot returns the currently applied snapshot.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Vehicle looks up a vehicle in the applied snapshot.
func (c *Catalog) Vehicle(id string) (domain.Vehicle, bool) {
	return c.Snapshot().Vehicle(id)
}

// Vehicles looks up ids in the applied snapshot, preserving their order.
func (c *Catalog) Vehicles(ids []string) []domain.Vehicle {
	return c.Snapshot().VehiclesByID(ids)
}

// Sources lists the loader tiers in the order they are tried.
func (c *Catalog) Sources() []string {
	return c.loader.Sources()
}

// Refresh loads vehicles and rentals concurrently and applies the result
// unless a newer refresh has already been applied. It returns the snapshot
// in effect afterwards and whether this call's result was applied.
func (c *Catalog) Refresh(ctx context.Context) (*Snapshot, bool) {
	gen := c.issued.Add(1)

	var (
		res     Result
		rentals []domain.RentalCar
		g       errgroup.Group
	)
	g.Go(func() error {
		res = c.loader.Load(ctx)
		return nil
	})
	if c.rentals != nil {
		g.Go(func() error {
			var err error
			rentals, err = c.rentals.FetchRentals(ctx)
			if err != nil {
				return fmt.Errorf("fetching rental fleet: %w", err)
			}
			return nil
		})
	}
	// The loader never fails, so Wait reports only the rental fleet.
	rentalsErr := g.Wait()

	snap, applied, change := c.apply(ctx, gen, res, rentals, rentalsErr)
	if change != nil && c.notify != nil {
		if err := c.notify.NotifyCatalog(ctx, change); err != nil {
			c.log.Warn("sending catalog notification", "degraded", change.Degraded, "error", err)
		}
	}
	return snap, applied
}

func (c *Catalog) apply(
	ctx context.Context,
	gen uint64,
	res Result,
	rentals []domain.RentalCar,
	rentalsErr error,
) (*Snapshot, bool, *notify.CatalogPayload) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	cur := c.current.Load()
	if gen <= cur.Generation {
		metrics.CatalogStaleDiscardsTotal.Inc()
		c.count(ctx, "stale")
		c.log.Info("discarding stale catalog load",
			"generation", gen,
			"applied_generation", cur.Generation,
		)
		return cur, false, nil
	}

	switch {
	case c.rentals == nil:
		rentals = nil
	case rentalsErr != nil:
		c.log.Warn("rental fleet refresh failed, keeping previous fleet", "error", rentalsErr)
		rentals = cur.Rentals
	}

	snap := NewSnapshot(res.Vehicles, rentals, res.Source, c.now(), gen)
	c.current.Store(snap)
	c.count(ctx, res.Source)
	recordSnapshot(snap)
	return snap, true, healthChange(cur, snap)
}

// healthChange returns a notification payload when next moves onto or off
// the fallback tier. The very first load only reports a fallback.
func healthChange(prev, next *Snapshot) *notify.CatalogPayload {
	wasDegraded := prev.Generation > 0 && prev.Source == SourceFallback
	degraded := next.Source == SourceFallback
	if degraded == wasDegraded {
		return nil
	}
	return &notify.CatalogPayload{
		Degraded:   degraded,
		Source:     next.Source,
		Vehicles:   len(next.Vehicles),
		Generation: next.Generation,
		LoadedAt:   next.LoadedAt,
	}
}

func (c *Catalog) count(ctx context.Context, outcome string) {
	if c.refreshes == nil {
		return
	}
	c.refreshes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func recordSnapshot(s *Snapshot) {
	counts := map[domain.Category]int{domain.CategoryBike: 0, domain.CategoryCar: 0}
	for i := range s.Vehicles {
		counts[s.Vehicles[i].Category]++
	}
	for cat, n := range counts {
		metrics.CatalogVehicles.WithLabelValues(string(cat)).Set(float64(n))
	}
	metrics.CatalogRentals.Set(float64(len(s.Rentals)))
	metrics.CatalogGeneration.Set(float64(s.Generation))
	metrics.CatalogLastRefreshTimestamp.Set(float64(s.LoadedAt.Unix()))
}
