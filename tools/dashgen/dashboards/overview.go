// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/dealer-catalog/tools/dashgen/panels"
)

// BuildOverview constructs the Dealer Catalog Overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Dealer Catalog Overview").
		Uid("dealer-overview").
		Tags([]string{"dealer", "dealer-catalog"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CatalogAgeStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.VehiclesByCategory()).
		WithPanel(panels.SourceOutcomes()).
		WithPanel(panels.LoadDuration()).
		WithPanel(panels.FallbackServed()).
		WithPanel(panels.SkippedRecords()))

	b.WithRow(dashboard.NewRowBuilder("Customers").
		WithPanel(panels.ContactLinks()).
		WithPanel(panels.FinanceCalculations()).
		WithPanel(panels.SettingsCacheHitRatio()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
