package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/dealer-catalog/tools/dashgen/dashboards"
	"github.com/donaldgifford/dealer-catalog/tools/dashgen/rules"
	"github.com/donaldgifford/dealer-catalog/tools/dashgen/validate"
)

const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

// Output paths relative to Config.OutputDir.
var (
	dashboardPath = filepath.Join("grafana", "data", "dealer-overview.json")
	recordingPath = filepath.Join("prometheus", "dealer-recording-rules.yaml")
	alertsPath    = filepath.Join("prometheus", "dealer-alerts.yaml")
)

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	files, err := generate(cfg)
	if err != nil {
		return err
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, f := range files {
		path := filepath.Join(cfg.OutputDir, f.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, f.data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

func generate(cfg Config) ([]artifact, error) {
	var files []artifact

	if cfg.DashboardEnabled {
		data, err := dashboardJSON()
		if err != nil {
			return nil, err
		}
		files = append(files, artifact{path: dashboardPath, data: data})
	}

	if cfg.RulesEnabled {
		for _, rf := range []struct {
			path string
			rule rules.PrometheusRule
		}{
			{recordingPath, rules.RecordingRules()},
			{alertsPath, rules.AlertRules()},
		} {
			data, err := ruleYAML(rf.rule)
			if err != nil {
				return nil, err
			}
			files = append(files, artifact{path: rf.path, data: data})
		}
	}
	return files, nil
}

func dashboardJSON() ([]byte, error) {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return nil, fmt.Errorf("building dashboard: %w", err)
	}
	if res := validate.Dashboard(dash, KnownMetrics); !res.Ok() {
		return nil, fmt.Errorf("dashboard: %w", joinFindings(res.Errors))
	}
	data, err := json.MarshalIndent(dash, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding dashboard: %w", err)
	}
	return append(data, '\n'), nil
}

func ruleYAML(pr rules.PrometheusRule) ([]byte, error) {
	if res := validate.Rules(pr, KnownMetrics); !res.Ok() {
		return nil, fmt.Errorf("%s: %w", pr.Metadata.Name, joinFindings(res.Errors))
	}
	data, err := yaml.Marshal(pr)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", pr.Metadata.Name, err)
	}
	return append([]byte(generatedHeader), data...), nil
}

func joinFindings(findings []string) error {
	errs := make([]error, 0, len(findings))
	for _, f := range findings {
		errs = append(errs, errors.New(f))
	}
	return errors.Join(errs...)
}
