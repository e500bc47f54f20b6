// Package rules builds the dealer-catalog recording and alert rules as
// Prometheus Operator PrometheusRule resources.
package rules

const (
	apiVersion = "monitoring.coreos.com/v1"
	kind       = "PrometheusRule"

	// selectorLabel is the label the Prometheus instance selects rule
	// resources by.
	selectorLabel = "prometheus"
	selectorValue = "system-rules-prometheus"
)

// Severity is the routing label attached to every alert.
type Severity string

// Alert severities understood by the dealership's Alertmanager routes.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// PrometheusRule is the custom resource written to disk.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata holds the resource name and selector labels.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named set of rules evaluated together.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is either a recording rule (Record set) or an alert (Alert set).
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// Name returns the recorded series or the alert name.
func (r Rule) Name() string {
	if r.Alert != "" {
		return r.Alert
	}
	return r.Record
}

// Severity returns the alert's severity label, empty for recording rules.
func (r Rule) Severity() Severity {
	return Severity(r.Labels["severity"])
}

// Rules returns every rule of every group in order.
func (p PrometheusRule) Rules() []Rule {
	var out []Rule
	for _, g := range p.Spec.Groups {
		out = append(out, g.Rules...)
	}
	return out
}

// newPrometheusRule wraps rules in a single-group resource picked up by the
// cluster's rule selector.
func newPrometheusRule(name, group string, rules []Rule) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: map[string]string{selectorLabel: selectorValue},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{{Name: group, Rules: rules}},
		},
	}
}

// record builds a recording rule.
func record(name, expr string) Rule {
	return Rule{Record: name, Expr: expr}
}

// alert builds an alert with a summary and description annotation.
func alert(name, expr, pending string, sev Severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    pending,
		Labels: map[string]string{"severity": string(sev)},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
