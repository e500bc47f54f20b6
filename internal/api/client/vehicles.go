package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/donaldgifford/dealer-catalog/internal/contact"
	"github.com/donaldgifford/dealer-catalog/pkg/filter"
	"github.com/donaldgifford/dealer-catalog/pkg/locale"
)

// VehiclesResponse is one page of the filtered catalog.
type VehiclesResponse struct {
	Items      []locale.LocalizedVehicle `json:"items"`
	Total      int                       `json:"total"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"pageSize"`
	TotalPages int                       `json:"totalPages"`
	Locale     string                    `json:"locale"`
	State      string                    `json:"state"`
	Source     string                    `json:"source"`
}

// FacetsResponse holds brand and model counts.
type FacetsResponse struct {
	Brands []filter.Count `json:"brands"`
	Models []filter.Count `json:"models"`
}

// VehicleParams defines the vehicle filter query. A non-empty State
// replaces every other field.
type VehicleParams struct {
	Category     string
	Brand        string
	Model        string
	MaxMileage   int
	MinPrice     int
	MaxPrice     int
	MinYear      int
	MaxYear      int
	Fuel         string
	Transmission string
	Sort         string
	Page         int
	PageSize     int
	State        string
}

func (p *VehicleParams) values() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.State != "" {
		q.Set("state", p.State)
		return q
	}
	setString(q, "category", p.Category)
	setString(q, "brand", p.Brand)
	setString(q, "model", p.Model)
	setInt(q, "max_mileage", p.MaxMileage)
	setInt(q, "min_price", p.MinPrice)
	setInt(q, "max_price", p.MaxPrice)
	setInt(q, "min_year", p.MinYear)
	setInt(q, "max_year", p.MaxYear)
	setString(q, "fuel", p.Fuel)
	setString(q, "transmission", p.Transmission)
	setString(q, "sort", p.Sort)
	setInt(q, "page", p.Page)
	setInt(q, "page_size", p.PageSize)
	return q
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

// ListVehicles returns one page of vehicles matching params.
func (c *Client) ListVehicles(ctx context.Context, params *VehicleParams) (*VehiclesResponse, error) {
	var resp VehiclesResponse
	if err := c.get(ctx, "/api/v1/vehicles", c.localized(params.values()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Facets returns brand and model counts for params.
func (c *Client) Facets(ctx context.Context, params *VehicleParams) (*FacetsResponse, error) {
	var resp FacetsResponse
	if err := c.get(ctx, "/api/v1/vehicles/facets", params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FeaturedVehicles returns the featured vehicles in display order.
func (c *Client) FeaturedVehicles(ctx context.Context) ([]locale.LocalizedVehicle, error) {
	var resp struct {
		Items []locale.LocalizedVehicle `json:"items"`
	}
	if err := c.get(ctx, "/api/v1/vehicles/featured", c.localized(nil), &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetVehicle returns a single vehicle by id.
func (c *Client) GetVehicle(ctx context.Context, id string) (*locale.LocalizedVehicle, error) {
	var v locale.LocalizedVehicle
	path := fmt.Sprintf("/api/v1/vehicles/%s", url.PathEscape(id))
	if err := c.get(ctx, path, c.localized(nil), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// VehicleContact returns the phone and messaging links for a vehicle.
func (c *Client) VehicleContact(ctx context.Context, id string) (*contact.Links, error) {
	var l contact.Links
	path := fmt.Sprintf("/api/v1/vehicles/%s/contact", url.PathEscape(id))
	if err := c.get(ctx, path, c.localized(nil), &l); err != nil {
		return nil, err
	}
	return &l, nil
}
