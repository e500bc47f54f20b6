// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Dealer    DealerConfig    `yaml:"dealer"`
	Policy    PolicyConfig    `yaml:"policy"`
	Contact   ContactConfig   `yaml:"contact"`
	Finance   FinanceConfig   `yaml:"finance"`
	Admin     AdminConfig     `yaml:"admin"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Settings  SettingsConfig  `yaml:"settings"`
	Notify    NotifyConfig    `yaml:"notify"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings. An empty host means
// no hosted store is configured.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// Configured reports whether a database host is set.
func (d *DatabaseConfig) Configured() bool {
	return d.Host != ""
}

// CatalogConfig defines catalog loading settings.
type CatalogConfig struct {
	MaxRecords      int           `yaml:"max_records"`
	SnapshotURL     string        `yaml:"snapshot_url"`
	SnapshotPath    string        `yaml:"snapshot_path"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	PageSize        int           `yaml:"page_size"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

// DealerConfig identifies the dealership.
type DealerConfig struct {
	Name           string `yaml:"name"`
	HomeCity       string `yaml:"home_city"`
	Phone          string `yaml:"phone"`
	WhatsAppNumber string `yaml:"whatsapp_number"`
}

// PolicyConfig defines normalization thresholds.
type PolicyConfig struct {
	NewYearWindow int `yaml:"new_year_window"`
	NewMaxMileage int `yaml:"new_max_mileage"`
	PriceMin      int `yaml:"price_min"`
	PriceMax      int `yaml:"price_max"`
	MileageMax    int `yaml:"mileage_max"`
}

// ContactConfig holds per-locale message templates for outbound links.
type ContactConfig struct {
	Templates       map[string]string `yaml:"templates"`
	RentalTemplates map[string]string `yaml:"rental_templates"`
}

// FinanceConfig defines financing calculator defaults.
type FinanceConfig struct {
	DefaultRatePct    float64 `yaml:"default_rate_pct"`
	DefaultTermMonths int     `yaml:"default_term_months"`
	MaxTermMonths     int     `yaml:"max_term_months"`
}

// AdminConfig guards the back-office routes. An empty token disables them.
type AdminConfig struct {
	Token string `yaml:"token"`
}

// RateLimitConfig defines per-client limits on public write routes.
type RateLimitConfig struct {
	PerSecond  float64       `yaml:"per_second"`
	Burst      int           `yaml:"burst"`
	MaxClients int           `yaml:"max_clients"`
	ClientTTL  time.Duration `yaml:"client_ttl"`
}

// SettingsConfig defines the settings read cache.
type SettingsConfig struct {
	CacheSize int           `yaml:"cache_size"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

// NotifyConfig defines back-office notifications. An empty webhook URL
// disables delivery.
type NotifyConfig struct {
	DiscordWebhookURL string        `yaml:"discord_webhook_url"`
	Timeout           time.Duration `yaml:"timeout"`
}

// TelemetryConfig defines OpenTelemetry export. An empty endpoint disables
// export.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	Insecure     *bool  `yaml:"insecure"`
}

// IsInsecure reports whether the exporter connects without TLS.
func (t *TelemetryConfig) IsInsecure() bool {
	return t.Insecure == nil || *t.Insecure
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config content, applying environment substitution,
// defaults and validation.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied and no
// external sources.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCatalogDefaults(&cfg.Catalog)
	applyDealerDefaults(&cfg.Dealer)
	applyPolicyDefaults(&cfg.Policy)
	applyFinanceDefaults(&cfg.Finance)
	applyRateLimitDefaults(&cfg.RateLimit)
	applySettingsDefaults(&cfg.Settings)
	applyNotifyDefaults(&cfg.Notify)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.MaxRecords == 0 {
		c.MaxRecords = 500
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 10 * time.Minute
	}
	if c.PageSize == 0 {
		c.PageSize = 6
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 15 * time.Second
	}
}

func applyDealerDefaults(d *DealerConfig) {
	if d.HomeCity == "" {
		d.HomeCity = "Zürich"
	}
}

func applyPolicyDefaults(p *PolicyConfig) {
	if p.NewYearWindow == 0 {
		p.NewYearWindow = 1
	}
	if p.NewMaxMileage == 0 {
		p.NewMaxMileage = 100
	}
	if p.PriceMin == 0 {
		p.PriceMin = 100
	}
	if p.PriceMax == 0 {
		p.PriceMax = 999_999
	}
	if p.MileageMax == 0 {
		p.MileageMax = 999_999
	}
}

func applyFinanceDefaults(f *FinanceConfig) {
	if f.DefaultRatePct == 0 {
		f.DefaultRatePct = 3.9
	}
	if f.DefaultTermMonths == 0 {
		f.DefaultTermMonths = 48
	}
	if f.MaxTermMonths == 0 {
		f.MaxTermMonths = 96
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.MaxClients == 0 {
		r.MaxClients = 10_000
	}
	if r.ClientTTL == 0 {
		r.ClientTTL = 10 * time.Minute
	}
}

func applySettingsDefaults(s *SettingsConfig) {
	if s.CacheSize == 0 {
		s.CacheSize = 128
	}
	if s.CacheTTL == 0 {
		s.CacheTTL = time.Minute
	}
}

func applyNotifyDefaults(n *NotifyConfig) {
	if n.Timeout == 0 {
		n.Timeout = 5 * time.Second
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "dealer-catalog"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

var supportedLocales = map[string]bool{"de": true, "fr": true, "en": true}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Configured() {
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when database.host is set"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when database.host is set"))
		}
	}

	if cfg.Policy.PriceMin >= cfg.Policy.PriceMax {
		errs = append(errs, fmt.Errorf(
			"policy.price_min (%d) must be below policy.price_max (%d)",
			cfg.Policy.PriceMin, cfg.Policy.PriceMax,
		))
	}
	if cfg.Policy.NewYearWindow < 0 {
		errs = append(errs, fmt.Errorf("policy.new_year_window must not be negative"))
	}
	if cfg.Catalog.PageSize < 1 {
		errs = append(errs, fmt.Errorf("catalog.page_size must be at least 1"))
	}
	if cfg.Catalog.MaxRecords < 1 {
		errs = append(errs, fmt.Errorf("catalog.max_records must be at least 1"))
	}
	if cfg.RateLimit.PerSecond <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.per_second must be positive"))
	}
	if cfg.Finance.DefaultTermMonths > cfg.Finance.MaxTermMonths {
		errs = append(errs, fmt.Errorf("finance.default_term_months exceeds finance.max_term_months"))
	}

	if u := cfg.Notify.DiscordWebhookURL; u != "" {
		if parsed, err := url.Parse(u); err != nil || (parsed.Scheme != "https" && parsed.Scheme != "http") {
			errs = append(errs, fmt.Errorf("notify.discord_webhook_url must be an http(s) URL"))
		}
	}

	errs = append(errs, validateTemplates("contact.templates", cfg.Contact.Templates)...)
	errs = append(errs, validateTemplates("contact.rental_templates", cfg.Contact.RentalTemplates)...)

	return errors.Join(errs...)
}

func validateTemplates(section string, templates map[string]string) []error {
	var errs []error
	for loc, text := range templates {
		if !supportedLocales[loc] {
			errs = append(errs, fmt.Errorf("%s: unsupported locale %q", section, loc))
			continue
		}
		if _, err := template.New(loc).Parse(text); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", section, loc, err))
		}
	}
	return errs
}
