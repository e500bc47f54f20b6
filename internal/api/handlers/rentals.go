package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dealer-catalog/internal/contact"
	"github.com/donaldgifford/dealer-catalog/internal/notify"
	"github.com/donaldgifford/dealer-catalog/internal/store"
	"github.com/donaldgifford/dealer-catalog/pkg/locale"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// RentalsHandler serves the rental fleet. Public reads come from the applied
// catalog; back-office writes go to the store and refresh the catalog.
type RentalsHandler struct {
	catalog Refresher
	store   store.Store
	links   LinkBuilder
	notify  notify.Notifier
	log     *slog.Logger
	now     func() time.Time
}

// NewRentalsHandler creates a new RentalsHandler. s may be nil, in which
// case only the public routes are usable.
func NewRentalsHandler(c Refresher, s store.Store, l LinkBuilder) *RentalsHandler {
	return &RentalsHandler{catalog: c, store: s, links: l, log: slog.Default(), now: time.Now}
}

// WithNotifier forwards accepted rental requests to n. A failed delivery is
// logged and does not fail the request.
func (h *RentalsHandler) WithNotifier(n notify.Notifier, log *slog.Logger) *RentalsHandler {
	h.notify = n
	if log != nil {
		h.log = log
	}
	return h
}

// --- Input/Output types ---

// ListRentalsInput filters the public rental list.
type ListRentalsInput struct {
	LocaleInput
	Available bool   `query:"available" doc:"Only cars currently available"`
	Category  string `query:"category"  doc:"Category label, e.g. Kompakt"`
	MinSeats  int    `query:"min_seats" doc:"Minimum number of seats"       minimum:"0"`
}

// ListRentalsOutput lists localized rental cars.
type ListRentalsOutput struct {
	Body struct {
		Items  []locale.LocalizedRental `json:"items"`
		Locale domain.Locale            `json:"locale"`
	}
}

// RentalInput identifies one rental car.
type RentalInput struct {
	LocaleInput
	ID string `path:"id" doc:"Rental car id"`
}

// RentalOutput is a single localized rental car.
type RentalOutput struct {
	Body locale.LocalizedRental
}

// RentalRequestInput is a customer's rental request.
type RentalRequestInput struct {
	LocaleInput
	ID   string `path:"id" doc:"Rental car id"`
	Body struct {
		From     string `json:"from"               doc:"First rental day (YYYY-MM-DD)" format:"date"`
		To       string `json:"to"                 doc:"Last rental day (YYYY-MM-DD)"  format:"date"`
		Customer string `json:"customer,omitempty" doc:"Customer name for the message" maxLength:"120"`
	}
}

// AdminListRentalsInput pages through the stored fleet.
type AdminListRentalsInput struct {
	AvailableOnly  bool   `query:"available"         doc:"Only available cars"`
	Category       string `query:"category"          doc:"Category label"`
	MaxPricePerDay int    `query:"max_price_per_day" doc:"Maximum daily price in CHF"         minimum:"0"`
	MinSeats       int    `query:"min_seats"         doc:"Minimum number of seats"            minimum:"0"`
	Limit          int    `query:"limit"             doc:"Number of results (default 50)"     minimum:"0" maximum:"500"`
	Offset         int    `query:"offset"            doc:"Pagination offset"                  minimum:"0"`
	OrderBy        string `query:"order_by"          doc:"Sort field"                         enum:"name,price,updated_at,"`
}

// AdminListRentalsOutput is one page of stored rental cars.
type AdminListRentalsOutput struct {
	Body struct {
		Items  []domain.RentalCar `json:"items"`
		Total  int                `json:"total"`
		Limit  int                `json:"limit"`
		Offset int                `json:"offset"`
	}
}

// RentalCarBody is the editable part of a rental car.
type RentalCarBody struct {
	Name         string         `json:"name"                   minLength:"1"`
	Brand        string         `json:"brand,omitempty"`
	Model        string         `json:"model,omitempty"`
	Category     string         `json:"category,omitempty"`
	Seats        int            `json:"seats,omitempty"        minimum:"0"`
	Transmission string         `json:"transmission,omitempty"`
	Fuel         string         `json:"fuel,omitempty"`
	PricePerDay  int            `json:"pricePerDay"            minimum:"0"`
	Deposit      int            `json:"deposit,omitempty"      minimum:"0"`
	Images       []string       `json:"images,omitempty"`
	Features     []string       `json:"features,omitempty"`
	Description  string         `json:"description,omitempty"`
	Available    bool           `json:"available"`
	Multilingual map[string]any `json:"multilingual,omitempty" doc:"Per-field translations: {field: {de, fr, en}}"`
}

// CreateRentalInput creates a rental car.
type CreateRentalInput struct {
	Body RentalCarBody
}

// UpdateRentalInput replaces a rental car.
type UpdateRentalInput struct {
	ID   string `path:"id" doc:"Rental car id"`
	Body RentalCarBody
}

// DeleteRentalInput deletes a rental car.
type DeleteRentalInput struct {
	ID string `path:"id" doc:"Rental car id"`
}

// AdminRentalOutput is a stored rental car.
type AdminRentalOutput struct {
	Body domain.RentalCar
}

// --- Public handlers ---

// ListRentals returns the rental fleet of the applied catalog.
func (h *RentalsHandler) ListRentals(_ context.Context, input *ListRentalsInput) (*ListRentalsOutput, error) {
	loc := input.Resolve()

	resp := &ListRentalsOutput{}
	resp.Body.Locale = loc
	resp.Body.Items = []locale.LocalizedRental{}
	for _, car := range h.catalog.Snapshot().Rentals {
		if input.Available && !car.Available {
			continue
		}
		if input.Category != "" && !strings.EqualFold(car.Category, input.Category) {
			continue
		}
		if car.Seats < input.MinSeats {
			continue
		}
		resp.Body.Items = append(resp.Body.Items, locale.ProjectRentalCar(&car, loc))
	}
	return resp, nil
}

// GetRental returns a single rental car.
func (h *RentalsHandler) GetRental(_ context.Context, input *RentalInput) (*RentalOutput, error) {
	car, ok := h.catalog.Snapshot().Rental(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("rental car not found")
	}
	return &RentalOutput{Body: locale.ProjectRentalCar(&car, input.Resolve())}, nil
}

// RequestRental validates a rental request and returns the contact links
// carrying it.
func (h *RentalsHandler) RequestRental(ctx context.Context, input *RentalRequestInput) (*ContactOutput, error) {
	car, ok := h.catalog.Snapshot().Rental(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("rental car not found")
	}
	if !car.Available {
		return nil, huma.Error409Conflict("rental car is not available")
	}

	req, err := h.parseRequest(input)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	loc := input.Resolve()
	links, err := h.links.RentalLinks(&car, req, loc)
	if err != nil {
		if errors.Is(err, contact.ErrInvalidRequest) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("building contact links: " + err.Error())
	}

	if h.notify != nil {
		h.sendRentalNotification(ctx, &car, req, loc, links.WhatsApp)
	}
	return &ContactOutput{Body: links}, nil
}

func (h *RentalsHandler) sendRentalNotification(
	ctx context.Context,
	car *domain.RentalCar,
	req contact.RentalRequest,
	loc domain.Locale,
	whatsApp string,
) {
	p := &notify.RentalRequestPayload{
		CarID:       car.ID,
		CarName:     car.Name,
		From:        req.From,
		To:          req.To,
		Customer:    req.Customer,
		Locale:      string(loc),
		PricePerDay: car.PricePerDay,
		WhatsAppURL: whatsApp,
	}
	if len(car.Images) > 0 {
		p.ImageURL = car.Images[0]
	}
	if err := h.notify.NotifyRentalRequest(ctx, p); err != nil {
		h.log.Warn("sending rental notification", "car", car.ID, "error", err)
	}
}

func (h *RentalsHandler) parseRequest(input *RentalRequestInput) (contact.RentalRequest, error) {
	from, err := time.Parse(time.DateOnly, input.Body.From)
	if err != nil {
		return contact.RentalRequest{}, errors.New("from must be a YYYY-MM-DD date")
	}
	to, err := time.Parse(time.DateOnly, input.Body.To)
	if err != nil {
		return contact.RentalRequest{}, errors.New("to must be a YYYY-MM-DD date")
	}
	y, m, d := h.now().Date()
	if from.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return contact.RentalRequest{}, errors.New("from must not be in the past")
	}
	return contact.RentalRequest{From: from, To: to, Customer: input.Body.Customer}, nil
}

// --- Admin handlers ---

// AdminListRentals pages through the stored rental fleet.
func (h *RentalsHandler) AdminListRentals(
	ctx context.Context,
	input *AdminListRentalsInput,
) (*AdminListRentalsOutput, error) {
	q := &store.RentalQuery{
		AvailableOnly: input.AvailableOnly,
		Limit:         input.Limit,
		Offset:        input.Offset,
		OrderBy:       input.OrderBy,
	}
	if input.Category != "" {
		q.Category = &input.Category
	}
	if input.MaxPricePerDay != 0 {
		q.MaxPricePerDay = &input.MaxPricePerDay
	}
	if input.MinSeats != 0 {
		q.MinSeats = &input.MinSeats
	}

	cars, total, err := h.store.ListRentalCars(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("rental query failed: " + err.Error())
	}
	if cars == nil {
		cars = []domain.RentalCar{}
	}

	resp := &AdminListRentalsOutput{}
	resp.Body.Items = cars
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// CreateRental adds a rental car.
func (h *RentalsHandler) CreateRental(ctx context.Context, input *CreateRentalInput) (*AdminRentalOutput, error) {
	car, err := input.Body.toDomain()
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if err := h.store.CreateRentalCar(ctx, car); err != nil {
		return nil, huma.Error500InternalServerError("creating rental car: " + err.Error())
	}
	h.catalog.Refresh(ctx)
	return &AdminRentalOutput{Body: *car}, nil
}

// UpdateRental replaces a rental car.
func (h *RentalsHandler) UpdateRental(ctx context.Context, input *UpdateRentalInput) (*AdminRentalOutput, error) {
	car, err := input.Body.toDomain()
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	car.ID = input.ID
	if err := h.store.UpdateRentalCar(ctx, car); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("rental car not found")
		}
		return nil, huma.Error500InternalServerError("updating rental car: " + err.Error())
	}
	h.catalog.Refresh(ctx)
	return &AdminRentalOutput{Body: *car}, nil
}

// DeleteRental removes a rental car.
func (h *RentalsHandler) DeleteRental(ctx context.Context, input *DeleteRentalInput) (*struct{}, error) {
	if err := h.store.DeleteRentalCar(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("rental car not found")
		}
		return nil, huma.Error500InternalServerError("deleting rental car: " + err.Error())
	}
	h.catalog.Refresh(ctx)
	return nil, nil
}

func (b *RentalCarBody) toDomain() (*domain.RentalCar, error) {
	car := &domain.RentalCar{
		Name:         strings.TrimSpace(b.Name),
		Brand:        b.Brand,
		Model:        b.Model,
		Category:     b.Category,
		Seats:        b.Seats,
		Transmission: b.Transmission,
		Fuel:         b.Fuel,
		PricePerDay:  b.PricePerDay,
		Deposit:      b.Deposit,
		Images:       b.Images,
		Features:     b.Features,
		Description:  b.Description,
		Available:    b.Available,
	}
	if car.Name == "" {
		return nil, errors.New("name is required")
	}
	if len(b.Multilingual) > 0 {
		data, err := json.Marshal(b.Multilingual)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &car.Multilingual); err != nil {
			return nil, errors.New("multilingual must map fields to {de, fr, en} values")
		}
	}
	return car, nil
}

// RegisterRentalRoutes registers the public rental endpoints. limited is
// applied to the request route.
func RegisterRentalRoutes(api huma.API, h *RentalsHandler, limited huma.Middlewares) {
	huma.Register(api, huma.Operation{
		OperationID: "list-rentals",
		Method:      http.MethodGet,
		Path:        "/api/v1/rentals",
		Summary:     "List rental cars",
		Description: "Returns the rental fleet projected into the requested language.",
		Tags:        []string{"rentals"},
	}, h.ListRentals)

	huma.Register(api, huma.Operation{
		OperationID: "get-rental",
		Method:      http.MethodGet,
		Path:        "/api/v1/rentals/{id}",
		Summary:     "Get a rental car",
		Tags:        []string{"rentals"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetRental)

	huma.Register(api, huma.Operation{
		OperationID: "request-rental",
		Method:      http.MethodPost,
		Path:        "/api/v1/rentals/{id}/request",
		Summary:     "Request a rental",
		Description: "Validates the rental period and returns contact links carrying the request.",
		Tags:        []string{"rentals"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusTooManyRequests},
		Middlewares: limited,
	}, h.RequestRental)
}

// RegisterRentalAdminRoutes registers the rental back-office endpoints.
func RegisterRentalAdminRoutes(api huma.API, h *RentalsHandler, admin huma.Middlewares) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-list-rentals",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/rentals",
		Summary:     "List stored rental cars",
		Tags:        []string{"admin"},
		Middlewares: admin,
	}, h.AdminListRentals)

	huma.Register(api, huma.Operation{
		OperationID:   "create-rental",
		Method:        http.MethodPost,
		Path:          "/api/v1/rentals",
		Summary:       "Create a rental car",
		Tags:          []string{"admin"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
		Middlewares:   admin,
	}, h.CreateRental)

	huma.Register(api, huma.Operation{
		OperationID: "update-rental",
		Method:      http.MethodPut,
		Path:        "/api/v1/rentals/{id}",
		Summary:     "Replace a rental car",
		Tags:        []string{"admin"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
		Middlewares: admin,
	}, h.UpdateRental)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-rental",
		Method:        http.MethodDelete,
		Path:          "/api/v1/rentals/{id}",
		Summary:       "Delete a rental car",
		Tags:          []string{"admin"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
		Middlewares:   admin,
	}, h.DeleteRental)
}
