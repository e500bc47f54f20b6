package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/dealer-catalog/tools/dashgen/dashboards"
	"github.com/donaldgifford/dealer-catalog/tools/dashgen/rules"
	"github.com/donaldgifford/dealer-catalog/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "dealer-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Dealer Catalog Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 4)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 16, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "dealer-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "dealer-recording", group.Name)

	expectedRecords := []string{
		"dealer:http_requests:rate5m",
		"dealer:http_errors:rate5m",
		"dealer:catalog_load_errors:rate5m",
		"dealer:contact_links:rate5m",
		"dealer:settings_cache_hit_ratio:rate5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "%s missing from KnownMetrics", rule.Record)
	}

	res := validate.Rules(cr, KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "dealer-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "dealer-alerts", group.Name)

	expectedAlerts := []string{
		"DealerCatalogDown",
		"DealerReadinessDown",
		"DealerHighErrorRate",
		"DealerCatalogStale",
		"DealerSourceErrors",
		"DealerServingFallback",
		"DealerNotificationFailures",
		"DealerRateLimiting",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	res := validate.Rules(cr, KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)
}

func TestRuleHelpers(t *testing.T) {
	t.Parallel()

	all := append(rules.RecordingRules().Rules(), rules.AlertRules().Rules()...)
	require.Len(t, all, 13)

	severities := map[rules.Severity]int{}
	for _, r := range all {
		assert.NotEmpty(t, r.Name())
		if r.Alert != "" {
			assert.Equal(t, r.Alert, r.Name())
			severities[r.Severity()]++
			continue
		}
		assert.Equal(t, r.Record, r.Name())
		assert.Empty(t, r.Severity())
	}
	assert.Equal(t, map[rules.Severity]int{
		rules.SeverityCritical: 3,
		rules.SeverityWarning:  4,
		rules.SeverityInfo:     1,
	}, severities)

	for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
		assert.Equal(t, "system-rules-prometheus", cr.Metadata.Labels["prometheus"])
	}
}

func TestValidateRules_Findings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    rules.Rule
		wantErr string
	}{
		{
			name:    "unparseable expression",
			rule:    rules.Rule{Alert: "Broken", Expr: `sum(rate(dealer_http_requests_total[5m]`},
			wantErr: "parsing",
		},
		{
			name:    "unknown metric",
			rule:    rules.Rule{Alert: "Typo", Expr: `dealer_readyz_upp == 0`},
			wantErr: `unknown metric "dealer_readyz_upp"`,
		},
		{
			name:    "record and alert both set",
			rule:    rules.Rule{Record: "x:y", Alert: "Both", Expr: `up`},
			wantErr: "exactly one of record or alert",
		},
		{
			name:    "alert without severity",
			rule:    rules.Rule{Alert: "Quiet", Expr: `dealer_readyz_up == 0`},
			wantErr: `alert "Quiet": missing severity label`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{
				Groups: []rules.RuleGroup{{Name: "g", Rules: []rules.Rule{tt.rule}}},
			}}
			res := validate.Rules(pr, KnownMetrics)
			require.False(t, res.Ok())
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, run(Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}, false))

	data, err := os.ReadFile(filepath.Join(dir, dashboardPath))
	require.NoError(t, err)
	var dash map[string]any
	require.NoError(t, json.Unmarshal(data, &dash))
	assert.Equal(t, "dealer-overview", dash["uid"])

	for _, p := range []string{recordingPath, alertsPath} {
		data, err := os.ReadFile(filepath.Join(dir, p))
		require.NoError(t, err)
		assert.Contains(t, string(data), generatedHeader)
		assert.Contains(t, string(data), "kind: PrometheusRule")
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, run(Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
