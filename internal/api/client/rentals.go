package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/donaldgifford/dealer-catalog/internal/contact"
	"github.com/donaldgifford/dealer-catalog/pkg/locale"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// RentalParams filters the public rental list.
type RentalParams struct {
	AvailableOnly bool
	Category      string
	MinSeats      int
}

// ListRentals returns the localized rental fleet.
func (c *Client) ListRentals(ctx context.Context, params *RentalParams) ([]locale.LocalizedRental, error) {
	q := url.Values{}
	if params != nil {
		if params.AvailableOnly {
			q.Set("available", "true")
		}
		setString(q, "category", params.Category)
		setInt(q, "min_seats", params.MinSeats)
	}

	var resp struct {
		Items []locale.LocalizedRental `json:"items"`
	}
	if err := c.get(ctx, "/api/v1/rentals", c.localized(q), &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// RequestRental builds the contact links for a rental request. Dates use
// the YYYY-MM-DD layout.
func (c *Client) RequestRental(ctx context.Context, id, from, to, customer string) (*contact.Links, error) {
	body := map[string]string{"from": from, "to": to}
	if customer != "" {
		body["customer"] = customer
	}

	path := withQuery(fmt.Sprintf("/api/v1/rentals/%s/request", url.PathEscape(id)), c.localized(nil))
	var l contact.Links
	if err := c.post(ctx, path, body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// AdminRentalsResponse is one page of stored rental cars.
type AdminRentalsResponse struct {
	Items  []domain.RentalCar `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// AdminListRentals pages through the stored fleet. Requires an admin token.
func (c *Client) AdminListRentals(ctx context.Context, limit, offset int) (*AdminRentalsResponse, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	var resp AdminRentalsResponse
	if err := c.get(ctx, "/api/v1/admin/rentals", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RentalCarInput is the editable part of a rental car.
type RentalCarInput struct {
	Name         string              `json:"name"`
	Brand        string              `json:"brand,omitempty"`
	Model        string              `json:"model,omitempty"`
	Category     string              `json:"category,omitempty"`
	Seats        int                 `json:"seats,omitempty"`
	Transmission string              `json:"transmission,omitempty"`
	Fuel         string              `json:"fuel,omitempty"`
	PricePerDay  int                 `json:"pricePerDay"`
	Deposit      int                 `json:"deposit,omitempty"`
	Images       []string            `json:"images,omitempty"`
	Features     []string            `json:"features,omitempty"`
	Description  string              `json:"description,omitempty"`
	Available    bool                `json:"available"`
	Multilingual domain.Multilingual `json:"multilingual,omitempty"`
}

// CreateRental stores a new rental car. Requires an admin token.
func (c *Client) CreateRental(ctx context.Context, car *RentalCarInput) (*domain.RentalCar, error) {
	var created domain.RentalCar
	if err := c.post(ctx, "/api/v1/rentals", car, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRental replaces a stored rental car. Requires an admin token.
func (c *Client) UpdateRental(ctx context.Context, id string, car *RentalCarInput) (*domain.RentalCar, error) {
	var updated domain.RentalCar
	if err := c.put(ctx, fmt.Sprintf("/api/v1/rentals/%s", url.PathEscape(id)), car, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRental removes a stored rental car. Requires an admin token.
func (c *Client) DeleteRental(ctx context.Context, id string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/rentals/%s", url.PathEscape(id)))
}
