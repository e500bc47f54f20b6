package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dealer-catalog/internal/contact"
	"github.com/donaldgifford/dealer-catalog/pkg/filter"
	"github.com/donaldgifford/dealer-catalog/pkg/locale"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// FeaturedProvider returns the ids of the vehicles to feature.
type FeaturedProvider interface {
	FeaturedIDs(ctx context.Context) ([]string, error)
}

// LinkBuilder renders contact links.
type LinkBuilder interface {
	Links(v *domain.Vehicle, loc domain.Locale) (contact.Links, error)
	RentalLinks(car *domain.RentalCar, req contact.RentalRequest, loc domain.Locale) (contact.Links, error)
}

// VehiclesHandler serves the public vehicle catalog.
type VehiclesHandler struct {
	catalog  SnapshotProvider
	featured FeaturedProvider
	links    LinkBuilder
	pageSize int
}

// NewVehiclesHandler creates a new VehiclesHandler.
func NewVehiclesHandler(c SnapshotProvider, f FeaturedProvider, l LinkBuilder, pageSize int) *VehiclesHandler {
	if pageSize < 1 {
		pageSize = filter.DefaultPageSize
	}
	return &VehiclesHandler{catalog: c, featured: f, links: l, pageSize: pageSize}
}

// --- Input/Output types ---

// VehicleFilterInput selects a filter state. A non-empty state token is
// restored as a whole and the individual filter parameters are ignored.
type VehicleFilterInput struct {
	LocaleInput
	Category     string `query:"category"      doc:"Vehicle category"               enum:"bike,car,"`
	Brand        string `query:"brand"         doc:"Brand, or all, new, used"`
	Model        string `query:"model"         doc:"Model within the brand"`
	MaxMileage   int    `query:"max_mileage"   doc:"Maximum mileage in km"          minimum:"0"`
	MinPrice     int    `query:"min_price"     doc:"Minimum price in CHF"           minimum:"0"`
	MaxPrice     int    `query:"max_price"     doc:"Maximum price in CHF"           minimum:"0"`
	MinYear      int    `query:"min_year"      doc:"Earliest model year"            minimum:"0"`
	MaxYear      int    `query:"max_year"      doc:"Latest model year"              minimum:"0"`
	Fuel         string `query:"fuel"          doc:"Fuel type"`
	Transmission string `query:"transmission"  doc:"Transmission"`
	Sort         string `query:"sort"          doc:"Sort order"                     enum:"price_asc,price_desc,year_desc,mileage_asc,"`
	Page         int    `query:"page"          doc:"Page number, starting at 1"     minimum:"0"`
	PageSize     int    `query:"page_size"     doc:"Vehicles per page"              minimum:"0" maximum:"100"`
	State        string `query:"state"         doc:"Filter state token from a previous response"`
}

// ListVehiclesOutput is one page of the filtered catalog.
type ListVehiclesOutput struct {
	Body struct {
		Items      []locale.LocalizedVehicle `json:"items"`
		Total      int                       `json:"total"`
		Page       int                       `json:"page"`
		PageSize   int                       `json:"pageSize"`
		TotalPages int                       `json:"totalPages"`
		Locale     domain.Locale             `json:"locale"`
		State      string                    `json:"state"                doc:"Token restoring this exact filter state"`
		Source     string                    `json:"source"`
	}
}

// FacetsOutput holds live brand and model counts for a filter state.
type FacetsOutput struct {
	Body struct {
		Brands []filter.Count `json:"brands"`
		Models []filter.Count `json:"models"`
	}
}

// VehicleInput identifies one vehicle.
type VehicleInput struct {
	LocaleInput
	ID string `path:"id" doc:"Vehicle id"`
}

// VehicleOutput is a single localized vehicle.
type VehicleOutput struct {
	Body locale.LocalizedVehicle
}

// FeaturedOutput lists the featured vehicles in their configured order.
type FeaturedOutput struct {
	Body struct {
		Items []locale.LocalizedVehicle `json:"items"`
	}
}

// ContactOutput is the set of contact links for a vehicle.
type ContactOutput struct {
	Body contact.Links
}

// --- Handlers ---

// ListVehicles returns one page of vehicles matching the filter state.
func (h *VehiclesHandler) ListVehicles(_ context.Context, input *VehicleFilterInput) (*ListVehiclesOutput, error) {
	state, err := h.state(input)
	if err != nil {
		return nil, err
	}

	snap := h.catalog.Snapshot()
	res := filter.Apply(snap.Vehicles, state)
	loc := input.Resolve()

	resp := &ListVehiclesOutput{}
	resp.Body.Items = locale.ProjectVehicles(res.Items, loc)
	resp.Body.Total = res.Total
	resp.Body.Page = res.Page
	resp.Body.PageSize = res.PageSize
	resp.Body.TotalPages = res.TotalPages
	resp.Body.Locale = loc
	resp.Body.State = state.Snapshot()
	resp.Body.Source = snap.Source
	return resp, nil
}

// Facets returns the live brand and model counts for the filter state.
func (h *VehiclesHandler) Facets(_ context.Context, input *VehicleFilterInput) (*FacetsOutput, error) {
	state, err := h.state(input)
	if err != nil {
		return nil, err
	}

	vehicles := h.catalog.Snapshot().Vehicles
	resp := &FacetsOutput{}
	resp.Body.Brands = filter.BrandCounts(vehicles, state)
	resp.Body.Models = filter.ModelCounts(vehicles, state)
	return resp, nil
}

// GetVehicle returns a single vehicle.
func (h *VehiclesHandler) GetVehicle(_ context.Context, input *VehicleInput) (*VehicleOutput, error) {
	v, ok := h.catalog.Snapshot().Vehicle(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("vehicle not found")
	}
	return &VehicleOutput{Body: locale.ProjectVehicle(&v, input.Resolve())}, nil
}

// Featured returns the featured vehicles. Ids no longer in the catalog are
// skipped.
func (h *VehiclesHandler) Featured(ctx context.Context, input *LocaleInput) (*FeaturedOutput, error) {
	ids, err := h.featured.FeaturedIDs(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading featured vehicles: " + err.Error())
	}

	resp := &FeaturedOutput{}
	resp.Body.Items = locale.ProjectVehicles(h.catalog.Snapshot().VehiclesByID(ids), input.Resolve())
	return resp, nil
}

// Contact returns the phone and WhatsApp links for a vehicle enquiry.
func (h *VehiclesHandler) Contact(_ context.Context, input *VehicleInput) (*ContactOutput, error) {
	v, ok := h.catalog.Snapshot().Vehicle(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("vehicle not found")
	}

	links, err := h.links.Links(&v, input.Resolve())
	if err != nil {
		return nil, huma.Error500InternalServerError("building contact links: " + err.Error())
	}
	return &ContactOutput{Body: links}, nil
}

func (h *VehiclesHandler) state(input *VehicleFilterInput) (filter.State, error) {
	if input.State != "" {
		state, err := filter.Restore(input.State)
		if err != nil {
			return filter.State{}, huma.Error400BadRequest("invalid state token", err)
		}
		return state, nil
	}

	category := domain.CategoryBike
	if input.Category != "" {
		category = domain.Category(input.Category)
	}
	sort, err := filter.ParseSort(input.Sort)
	if err != nil {
		return filter.State{}, huma.Error400BadRequest(err.Error())
	}

	pageSize := h.pageSize
	if input.PageSize > 0 {
		pageSize = input.PageSize
	}

	state := filter.NewState(category, pageSize).
		WithBrand(input.Brand).
		WithModel(input.Model).
		WithAdvanced(filter.Advanced{
			MaxMileage:   positive(input.MaxMileage),
			MinPrice:     positive(input.MinPrice),
			MaxPrice:     positive(input.MaxPrice),
			MinYear:      positive(input.MinYear),
			MaxYear:      positive(input.MaxYear),
			FuelType:     input.Fuel,
			Transmission: input.Transmission,
		}).
		WithSort(sort)
	if input.Page > 0 {
		state = state.WithPage(input.Page)
	}
	return state, nil
}

func positive(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}

// RegisterVehicleRoutes registers the vehicle catalog endpoints with the Huma API.
func RegisterVehicleRoutes(api huma.API, h *VehiclesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-vehicles",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles",
		Summary:     "List vehicles",
		Description: "Returns one page of the catalog for a category with brand, model and advanced filters.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusBadRequest},
	}, h.ListVehicles)

	huma.Register(api, huma.Operation{
		OperationID: "vehicle-facets",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/facets",
		Summary:     "Brand and model counts",
		Description: "Returns how many vehicles each brand and model filter value would select.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Facets)

	huma.Register(api, huma.Operation{
		OperationID: "featured-vehicles",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/featured",
		Summary:     "Featured vehicles",
		Description: "Returns the vehicles selected in the back office, in their configured order.",
		Tags:        []string{"vehicles"},
	}, h.Featured)

	huma.Register(api, huma.Operation{
		OperationID: "get-vehicle",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/{id}",
		Summary:     "Get a vehicle",
		Description: "Returns a single vehicle projected into the requested language.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetVehicle)

	huma.Register(api, huma.Operation{
		OperationID: "vehicle-contact",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/{id}/contact",
		Summary:     "Vehicle contact links",
		Description: "Returns tel: and WhatsApp links with a pre-filled enquiry message.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusNotFound},
	}, h.Contact)
}
