package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
	"github.com/donaldgifford/dealer-catalog/pkg/normalize"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

const tracerName = "github.com/donaldgifford/dealer-catalog/internal/catalog"

// Tier outcomes recorded in metrics.CatalogLoadsTotal.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeEmpty   = "empty"
)

// Result is one completed catalog load.
type Result struct {
	Vehicles []domain.Vehicle
	Source   string
}

// Loader walks its sources in order and normalizes the first non-empty
// result. Load never fails: when every source is exhausted the built-in
// fallback list is served.
type Loader struct {
	sources     []Source
	fallback    []domain.RawVehicleRecord
	transformer *normalize.Transformer
	log         *slog.Logger
	tracer      trace.Tracer
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the loader logger.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		ld.log = l
	}
}

// WithFallback replaces the built-in fallback rows. An empty list keeps the
// built-in rows.
func WithFallback(records []domain.RawVehicleRecord) LoaderOption {
	return func(ld *Loader) {
		if len(records) > 0 {
			ld.fallback = records
		}
	}
}

// WithTracerProvider sets the provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) LoaderOption {
	return func(ld *Loader) {
		ld.tracer = tp.Tracer(tracerName)
	}
}

// NewLoader creates a Loader over sources, tried in the given order. Nil
// sources are ignored so unconfigured tiers can be passed through as-is.
func NewLoader(t *normalize.Transformer, sources []Source, opts ...LoaderOption) *Loader {
	l := &Loader{
		fallback:    FallbackRecords(),
		transformer: t,
		log:         slog.Default(),
		tracer:      otel.Tracer(tracerName),
	}
	for _, s := range sources {
		if s != nil {
			l.sources = append(l.sources, s)
		}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Sources returns the names of the configured tiers in order.
func (l *Loader) Sources() []string {
	names := make([]string, 0, len(l.sources)+1)
	for _, s := range l.sources {
		names = append(names, s.Name())
	}
	return append(names, SourceFallback)
}

// Load fetches from the first source that yields at least one row and
// returns the normalized vehicles in source order.
func (l *Loader) Load(ctx context.Context) Result {
	ctx, span := l.tracer.Start(ctx, "catalog.Load")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.CatalogLoadDuration.Observe(time.Since(start).Seconds())
	}()

	for _, src := range l.sources {
		name := src.Name()
		records, err := l.fetch(ctx, src)
		switch {
		case err != nil:
			metrics.CatalogLoadsTotal.WithLabelValues(name, outcomeError).Inc()
			span.AddEvent("source failed", trace.WithAttributes(
				attribute.String("catalog.source", name),
				attribute.String("error", err.Error()),
			))
			l.log.Warn("catalog source failed", "source", name, "error", err)
			continue
		case len(records) == 0:
			metrics.CatalogLoadsTotal.WithLabelValues(name, outcomeEmpty).Inc()
			span.AddEvent("source empty", trace.WithAttributes(attribute.String("catalog.source", name)))
			l.log.Warn("catalog source returned no rows", "source", name)
			continue
		}

		vehicles := l.transformer.TransformAll(records)
		metrics.CatalogLoadsTotal.WithLabelValues(name, outcomeSuccess).Inc()
		span.SetAttributes(
			attribute.String("catalog.source", name),
			attribute.Int("catalog.vehicles", len(vehicles)),
		)
		l.log.Info("catalog loaded",
			"source", name,
			"vehicles", len(vehicles),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return Result{Vehicles: vehicles, Source: name}
	}

	vehicles := l.transformer.TransformAll(l.fallback)
	metrics.CatalogLoadsTotal.WithLabelValues(SourceFallback, outcomeSuccess).Inc()
	span.SetAttributes(
		attribute.String("catalog.source", SourceFallback),
		attribute.Int("catalog.vehicles", len(vehicles)),
	)
	span.SetStatus(codes.Error, "all catalog sources failed")
	l.log.Error("all catalog sources failed, serving fallback list",
		"tried", len(l.sources),
		"vehicles", len(vehicles),
	)
	return Result{Vehicles: vehicles, Source: SourceFallback}
}

// fetch calls src.Fetch, turning a panic into an error so one broken tier
// cannot take the loader down.
func (l *Loader) fetch(ctx context.Context, src Source) (records []domain.RawVehicleRecord, err error) {
	ctx, span := l.tracer.Start(ctx, "catalog.Fetch", trace.WithAttributes(
		attribute.String("catalog.source", src.Name()),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("source %s panicked: %v", src.Name(), r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	records, err = src.Fetch(ctx)
	span.SetAttributes(attribute.Int("catalog.records", len(records)))
	return records, err
}
