package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ContactLinks returns a timeseries panel showing contact link sets built,
// by kind and locale.
func ContactLinks() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Contact Links").
		Description("Phone and WhatsApp link sets built per second by kind and locale").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`dealer:contact_links:rate5m`, "{{kind}} {{locale}}", "A")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FinanceCalculations returns a timeseries panel showing financing
// calculations by outcome.
func FinanceCalculations() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Finance Calculations").
		Description("Financing calculations per second by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(dealer_finance_calculations_total{job=%q}[5m])) by (outcome)`, Job),
			"{{outcome}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SettingsCacheHitRatio returns a gauge panel showing the share of settings
// reads served from the cache.
func SettingsCacheHitRatio() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Settings Cache Hit %").
		Description("Settings reads served from the in-process cache").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`dealer:settings_cache_hit_ratio:rate5m * 100`, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsRedGreen(50)).
		ColorScheme(ColorSchemeThresholds())
}
