package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, RateLimitedTotal)
	assert.NotNil(t, CatalogLoadsTotal)
	assert.NotNil(t, CatalogLoadDuration)
	assert.NotNil(t, CatalogVehicles)
	assert.NotNil(t, CatalogRentals)
	assert.NotNil(t, CatalogGeneration)
	assert.NotNil(t, CatalogStaleDiscardsTotal)
	assert.NotNil(t, CatalogRecordsSkippedTotal)
	assert.NotNil(t, CatalogLastRefreshTimestamp)
	assert.NotNil(t, SettingsCacheHitsTotal)
	assert.NotNil(t, SettingsCacheMissesTotal)
	assert.NotNil(t, ContactLinksTotal)
	assert.NotNil(t, FinanceCalculationsTotal)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, NotificationFailuresTotal)
}

func TestMetricsGathered(t *testing.T) {
	t.Parallel()

	CatalogLoadsTotal.WithLabelValues("snapshot", "success").Add(0)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["dealer_catalog_loads_total"])
	assert.True(t, names["dealer_catalog_generation"])
}
