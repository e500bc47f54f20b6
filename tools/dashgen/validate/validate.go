// Package validate checks generated dashboards and rule files: every
// PromQL expression must parse and reference only known metric names.
package validate

import (
	"fmt"
	"sort"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/dealer-catalog/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus target of every panel, including
// panels nested in rows.
func Dashboard(d dashboard.Dashboard, known map[string]bool) *Result {
	r := &Result{}
	for i, p := range d.Panels {
		switch {
		case p.Panel != nil:
			checkPanel(r, *p.Panel, known)
		case p.RowPanel != nil:
			if len(p.RowPanel.Panels) == 0 {
				r.warnf("row %d has no panels", i)
			}
			for _, inner := range p.RowPanel.Panels {
				checkPanel(r, inner, known)
			}
		}
	}
	return r
}

func checkPanel(r *Result, p dashboard.Panel, known map[string]bool) {
	title := "<untitled>"
	if p.Title != nil && *p.Title != "" {
		title = *p.Title
	} else {
		r.warnf("panel without title")
	}

	if len(p.Targets) == 0 {
		r.errorf("panel %q: no targets", title)
	}

	for _, t := range p.Targets {
		q, ok := t.(*prometheus.Dataquery)
		if !ok {
			r.warnf("panel %q: non-prometheus target %T", title, t)
			continue
		}
		checkExpr(r, "panel "+title, q.Expr, known)
	}
}

// Rules validates a PrometheusRule. Names recorded earlier in the same file
// count as known for later rules.
func Rules(pr rules.PrometheusRule, known map[string]bool) *Result {
	r := &Result{}
	names := make(map[string]bool, len(known))
	for k, v := range known {
		names[k] = v
	}

	for _, g := range pr.Spec.Groups {
		if len(g.Rules) == 0 {
			r.warnf("group %q has no rules", g.Name)
		}
		for _, rule := range g.Rules {
			label := rule.Name()
			if (rule.Record == "") == (rule.Alert == "") {
				r.errorf("rule %q: exactly one of record or alert must be set", label)
			}
			checkExpr(r, "rule "+label, rule.Expr, names)
			if rule.Alert != "" && rule.Severity() == "" {
				r.errorf("alert %q: missing severity label", label)
			}
			if rule.Record != "" {
				names[rule.Record] = true
			}
		}
	}
	return r
}

func checkExpr(r *Result, where, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.errorf("%s: parsing %q: %v", where, expr, err)
		return
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" && !known[vs.Name] {
			unknown = append(unknown, vs.Name)
		}
		return nil
	})
	sort.Strings(unknown)
	for _, name := range unknown {
		r.errorf("%s: unknown metric %q", where, name)
	}
}
