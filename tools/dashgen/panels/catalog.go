package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VehiclesByCategory returns a timeseries panel showing the size of the
// served catalog per category plus the rental fleet.
func VehiclesByCategory() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Size").
		Description("Vehicles in the applied catalog by category, and rental cars").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(fmt.Sprintf(`dealer_catalog_vehicles{job=%q}`, Job), "{{category}}", "A")).
		WithTarget(PromQuery(fmt.Sprintf(`dealer_catalog_rentals{job=%q}`, Job), "rentals", "B")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("last", "min")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SourceOutcomes returns a timeseries panel showing loader tier attempts by
// source and outcome.
func SourceOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Source Attempts").
		Description("Catalog source attempts per second by source and outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(dealer_catalog_loads_total{job=%q}[5m])) by (source, outcome)`, Job),
			"{{source}} {{outcome}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// LoadDuration returns a timeseries panel showing p50 and p95 full catalog
// load durations.
func LoadDuration() *timeseries.PanelBuilder {
	q := func(p float64) string {
		return fmt.Sprintf(
			`histogram_quantile(%.2f, sum(rate(dealer_catalog_load_duration_seconds_bucket{job=%q}[15m])) by (le))`,
			p, Job,
		)
	}
	return timeseries.NewPanelBuilder().
		Title("Load Duration").
		Description("Full catalog load duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(q(0.50), "p50", "A")).
		WithTarget(PromQuery(q(0.95), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FallbackServed returns a stat panel that turns red when the bundled
// fallback catalog was applied in the last hour.
func FallbackServed() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Fallback Loads (1h)").
		Description("Loads that ended on the bundled fallback catalog").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(dealer_catalog_loads_total{job=%q,source="fallback",outcome="success"}[1h]))`, Job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenBelow(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// SkippedRecords returns a stat panel showing snapshot elements dropped
// because they were not objects.
func SkippedRecords() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Skipped Rows (24h)").
		Description("Snapshot array elements skipped while decoding").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`increase(dealer_catalog_records_skipped_total{job=%q}[24h])`, Job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 50)).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}
