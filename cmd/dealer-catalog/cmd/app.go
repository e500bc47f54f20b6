package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/dealer-catalog/api/openapi"
	"github.com/donaldgifford/dealer-catalog/internal/api/handlers"
	"github.com/donaldgifford/dealer-catalog/internal/api/middleware"
	"github.com/donaldgifford/dealer-catalog/internal/catalog"
	"github.com/donaldgifford/dealer-catalog/internal/config"
	"github.com/donaldgifford/dealer-catalog/internal/contact"
	"github.com/donaldgifford/dealer-catalog/internal/notify"
	"github.com/donaldgifford/dealer-catalog/internal/settings"
	"github.com/donaldgifford/dealer-catalog/internal/store"
	"github.com/donaldgifford/dealer-catalog/pkg/finance"
	"github.com/donaldgifford/dealer-catalog/pkg/normalize"
)

// app holds the long-lived components shared by the commands.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	store    store.Store
	pg       *store.PostgresStore
	catalog  *catalog.Catalog
	settings *settings.Service
	links    *contact.Builder
	notifier notify.Notifier

	// documentOnly registers every route regardless of configuration. The
	// router is only used to render the OpenAPI document.
	documentOnly bool
}

// newApp wires the components described by cfg. The hosted store is only
// opened when database.host is set; call close when done.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	if cfg.Database.Configured() {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		a.pg = pg
		a.store = pg
	} else {
		log.Info("no database configured, serving from snapshot sources")
	}

	links, err := contact.NewBuilder(contact.Dealer{
		Name:     cfg.Dealer.Name,
		Phone:    cfg.Dealer.Phone,
		WhatsApp: cfg.Dealer.WhatsAppNumber,
	}, cfg.Contact.Templates, cfg.Contact.RentalTemplates)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("building contact templates: %w", err)
	}
	a.links = links

	a.notifier = a.newNotifier()
	a.settings = settings.New(a.store, cfg.Settings.CacheSize, cfg.Settings.CacheTTL)
	a.catalog = a.newCatalog()
	return a, nil
}

func (a *app) close() {
	if a.pg != nil {
		a.pg.Close()
	}
}

func (a *app) newNotifier() notify.Notifier {
	u := a.cfg.Notify.DiscordWebhookURL
	if u == "" {
		return notify.NewNoOpNotifier(a.log)
	}
	return notify.NewDiscordNotifier(u, notify.WithHTTPClient(&http.Client{
		Timeout:   a.cfg.Notify.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}))
}

// sources lists the configured vehicle tiers in fallback order.
func (a *app) sources() []catalog.Source {
	var srcs []catalog.Source
	if a.store != nil {
		srcs = append(srcs, catalog.NewStoreSource(a.store, a.cfg.Catalog.MaxRecords))
	}
	if u := a.cfg.Catalog.SnapshotURL; u != "" {
		hc := &http.Client{
			Timeout:   a.cfg.Catalog.RequestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
		srcs = append(srcs, catalog.NewURLSnapshotSource(u, a.cfg.Catalog.RequestTimeout,
			catalog.WithHTTPClient(hc),
			catalog.WithSnapshotLogger(a.log),
		))
	}
	if p := a.cfg.Catalog.SnapshotPath; p != "" {
		srcs = append(srcs, catalog.NewFileSnapshotSource(p, catalog.WithSnapshotLogger(a.log)))
	}
	return srcs
}

func (a *app) transformer() *normalize.Transformer {
	p := a.cfg.Policy
	return normalize.NewTransformer(normalize.Policy{
		NewYearWindow: p.NewYearWindow,
		NewMaxMileage: p.NewMaxMileage,
		PriceMin:      p.PriceMin,
		PriceMax:      p.PriceMax,
		MileageMax:    p.MileageMax,
		HomeCity:      a.cfg.Dealer.HomeCity,
	})
}

func (a *app) newCatalog() *catalog.Catalog {
	loader := catalog.NewLoader(a.transformer(), a.sources(), catalog.WithLogger(a.log))

	opts := []catalog.Option{catalog.WithCatalogLogger(a.log), catalog.WithNotifier(a.notifier)}
	if a.store != nil {
		opts = append(opts, catalog.WithRentals(catalog.NewStoreSource(a.store, a.cfg.Catalog.MaxRecords)))
	}
	return catalog.New(loader, opts...)
}

// newRouter builds the Echo instance with every route registered.
func (a *app) newRouter() (*echo.Echo, huma.API) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(a.log))
	e.Use(middleware.RequestLog(a.log))
	e.Use(middleware.Tracing(nil))
	e.Use(middleware.Metrics())

	var pinger handlers.Pinger
	if a.store != nil {
		pinger = a.store
	}
	health := handlers.NewHealthHandler(a.catalog, pinger)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	humaCfg := huma.DefaultConfig("Dealer Catalog API", Version)
	humaCfg.Info.Description = "Multilingual vehicle catalog, rental fleet, financing and contact links."
	api := humaecho.New(e, humaCfg)

	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		PerSecond:  a.cfg.RateLimit.PerSecond,
		Burst:      a.cfg.RateLimit.Burst,
		MaxClients: a.cfg.RateLimit.MaxClients,
		ClientTTL:  a.cfg.RateLimit.ClientTTL,
	})
	limited := huma.Middlewares{handlers.FromEcho(middleware.RateLimit(limiter))}
	admin := huma.Middlewares{handlers.FromEcho(middleware.AdminAuth(a.cfg.Admin.Token))}

	handlers.RegisterVehicleRoutes(api, handlers.NewVehiclesHandler(a.catalog, a.settings, a.links, a.cfg.Catalog.PageSize))

	rentals := handlers.NewRentalsHandler(a.catalog, a.store, a.links).WithNotifier(a.notifier, a.log)
	handlers.RegisterRentalRoutes(api, rentals, limited)

	handlers.RegisterFinanceRoutes(api, handlers.NewFinanceHandler(
		finance.NewCalculator(a.cfg.Finance.DefaultRatePct, a.cfg.Finance.DefaultTermMonths, a.cfg.Finance.MaxTermMonths),
		a.catalog,
	))

	settingsHandler := handlers.NewSettingsHandler(a.settings)
	handlers.RegisterBannerRoutes(api, settingsHandler)

	catalogHandler := handlers.NewCatalogHandler(a.catalog)
	if a.cfg.Admin.Token == "" && !a.documentOnly {
		a.log.Warn("admin.token not set, admin routes disabled")
		handlers.RegisterCatalogStatusRoute(api, catalogHandler)
		return e, api
	}

	handlers.RegisterSettingsRoutes(api, settingsHandler, admin)
	handlers.RegisterCatalogRoutes(api, catalogHandler, admin)
	if a.store != nil || a.documentOnly {
		handlers.RegisterRentalAdminRoutes(api, rentals, admin)
	}
	return e, api
}
