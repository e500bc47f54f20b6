// Package filter computes the visible slice of the catalog for a filter state:
// predicate evaluation, per-value counts, sorting and pagination.
package filter

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// ErrInvalidSnapshot is returned by Restore for malformed tokens.
var ErrInvalidSnapshot = errors.New("invalid filter snapshot")

// Sentinel filter values.
const (
	All       = "all"
	BrandNew  = "new"
	BrandUsed = "used"
)

// DefaultPageSize is the number of vehicles per page.
const DefaultPageSize = 6

// MaxPageSize bounds the page size of any state.
const MaxPageSize = 100

// Sort orders the filtered result. The zero value keeps source order.
type Sort string

// Sort options.
const (
	SortNone       Sort = ""
	SortPriceAsc   Sort = "price_asc"
	SortPriceDesc  Sort = "price_desc"
	SortYearDesc   Sort = "year_desc"
	SortMileageAsc Sort = "mileage_asc"
)

// ParseSort validates a sort option. Empty input yields SortNone.
func ParseSort(s string) (Sort, error) {
	switch v := Sort(strings.TrimSpace(s)); v {
	case SortNone, SortPriceAsc, SortPriceDesc, SortYearDesc, SortMileageAsc:
		return v, nil
	default:
		return SortNone, fmt.Errorf("unknown sort %q", s)
	}
}

// Advanced holds the optional range and enum constraints. Nil bounds and
// empty strings impose no constraint.
type Advanced struct {
	MaxMileage   *int   `json:"maxMileage,omitempty"`
	MinPrice     *int   `json:"minPrice,omitempty"`
	MaxPrice     *int   `json:"maxPrice,omitempty"`
	MinYear      *int   `json:"minYear,omitempty"`
	MaxYear      *int   `json:"maxYear,omitempty"`
	FuelType     string `json:"fuelType,omitempty"`
	Transmission string `json:"transmission,omitempty"`
}

// State is an immutable filter selection. Use the With methods to derive new
// states; they apply the reset rules between dependent filters.
type State struct {
	Category domain.Category `json:"category"`
	Brand    string          `json:"brandFilter"`
	Model    string          `json:"modelFilter"`
	Advanced Advanced        `json:"advanced"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
	Sort     Sort            `json:"sort,omitempty"`
}

// NewState returns the initial state for category.
func NewState(category domain.Category, pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)
	return State{
		Category: category,
		Brand:    All,
		Model:    All,
		Page:     1,
		PageSize: pageSize,
	}
}

// WithCategory switches category, resetting brand, model and page.
func (s State) WithCategory(c domain.Category) State {
	if c == s.Category {
		return s
	}
	s.Category = c
	s.Brand = All
	s.Model = All
	s.Page = 1
	return s
}

// WithBrand selects a brand or condition filter, resetting model and page.
func (s State) WithBrand(brand string) State {
	s.Brand = orAll(brand)
	s.Model = All
	s.Page = 1
	return s
}

// WithModel selects a model within the current brand and resets the page.
func (s State) WithModel(model string) State {
	s.Model = orAll(model)
	s.Page = 1
	return s
}

// WithAdvanced replaces the advanced constraints and resets the page.
func (s State) WithAdvanced(a Advanced) State {
	s.Advanced = a
	s.Page = 1
	return s
}

// WithSort changes the ordering and resets the page.
func (s State) WithSort(o Sort) State {
	s.Sort = o
	s.Page = 1
	return s
}

// WithPage moves to page p. Pages below 1 become 1; the upper bound is not
// checked.
func (s State) WithPage(p int) State {
	s.Page = max(p, 1)
	return s
}

func orAll(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return All
	}
	return v
}

// Snapshot serializes the state into a URL-safe token.
func (s State) Snapshot() string {
	b, _ := json.Marshal(s) //nolint:errchkjson // plain strings and ints only
	return base64.RawURLEncoding.EncodeToString(b)
}

// Restore decodes a Snapshot token. The full tuple, page included, is taken
// as-is without the reset rules.
func Restore(token string) (State, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return State{}, fmt.Errorf("decoding token: %w", errors.Join(ErrInvalidSnapshot, err))
	}

	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		return State{}, fmt.Errorf("decoding state: %w", errors.Join(ErrInvalidSnapshot, err))
	}
	if err := s.validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

func (s State) validate() error {
	var errs []error
	if s.Category != domain.CategoryBike && s.Category != domain.CategoryCar {
		errs = append(errs, fmt.Errorf("category %q", s.Category))
	}
	if s.Page < 1 {
		errs = append(errs, fmt.Errorf("page %d", s.Page))
	}
	if s.PageSize < 1 || s.PageSize > MaxPageSize {
		errs = append(errs, fmt.Errorf("page size %d", s.PageSize))
	}
	if _, err := ParseSort(string(s.Sort)); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, errors.Join(errs...))
	}
	return nil
}
