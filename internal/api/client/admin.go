package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

// CatalogStatus describes the catalog applied by the server.
type CatalogStatus struct {
	Source     string    `json:"source"`
	Generation uint64    `json:"generation"`
	Vehicles   int       `json:"vehicles"`
	Rentals    int       `json:"rentals"`
	LoadedAt   time.Time `json:"loadedAt"`
	Sources    []string  `json:"sources"`
}

// RefreshResult is the outcome of a manual catalog refresh.
type RefreshResult struct {
	CatalogStatus
	Applied bool `json:"applied"`
}

// CatalogStatus returns the applied catalog's metadata.
func (c *Client) CatalogStatus(ctx context.Context) (*CatalogStatus, error) {
	var s CatalogStatus
	if err := c.get(ctx, "/api/v1/catalog/status", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// RefreshCatalog reloads the catalog. Requires an admin token.
func (c *Client) RefreshCatalog(ctx context.Context) (*RefreshResult, error) {
	var r RefreshResult
	if err := c.post(ctx, "/api/v1/catalog/refresh", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetSetting returns the raw JSON value of a setting. Requires an admin
// token.
func (c *Client) GetSetting(ctx context.Context, key string) (json.RawMessage, error) {
	var resp struct {
		Value json.RawMessage `json:"value"`
	}
	if err := c.get(ctx, "/api/v1/settings", url.Values{"key": {key}}, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// PutSetting stores value under key. Requires an admin token.
func (c *Client) PutSetting(ctx context.Context, key string, value json.RawMessage) error {
	body := map[string]any{"key": key, "value": value}
	return c.post(ctx, "/api/v1/settings", body, nil)
}

// FinanceParams describes a financing request. Rate is sent only when set.
type FinanceParams struct {
	Price       float64
	VehicleID   string
	DownPayment float64
	TermMonths  int
	Rate        *float64
	ResidualPct float64
}

// FinanceResult is a computed financing plan.
type FinanceResult struct {
	FinancedAmount float64 `json:"financedAmount"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	ResidualValue  float64 `json:"residualValue"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
	TermMonths     int     `json:"termMonths"`
	AnnualRatePct  float64 `json:"annualRatePct"`
}

// Finance computes a financing plan.
func (c *Client) Finance(ctx context.Context, p *FinanceParams) (*FinanceResult, error) {
	q := url.Values{}
	if p.Price > 0 {
		q.Set("price", strconv.FormatFloat(p.Price, 'f', -1, 64))
	}
	setString(q, "vehicle_id", p.VehicleID)
	if p.DownPayment > 0 {
		q.Set("down_payment", strconv.FormatFloat(p.DownPayment, 'f', -1, 64))
	}
	setInt(q, "term_months", p.TermMonths)
	if p.Rate != nil {
		q.Set("rate", strconv.FormatFloat(*p.Rate, 'f', -1, 64))
	}
	if p.ResidualPct > 0 {
		q.Set("residual_pct", strconv.FormatFloat(p.ResidualPct, 'f', -1, 64))
	}

	var r FinanceResult
	if err := c.get(ctx, "/api/v1/finance", q, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
