package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dealer-catalog/internal/metrics"
	"github.com/donaldgifford/dealer-catalog/pkg/finance"
)

// FinanceHandler serves the financing calculator.
type FinanceHandler struct {
	calc    *finance.Calculator
	catalog SnapshotProvider
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(calc *finance.Calculator, c SnapshotProvider) *FinanceHandler {
	return &FinanceHandler{calc: calc, catalog: c}
}

// FinanceInput describes a financing request. Either price or vehicle_id
// must be given; an explicit price wins.
type FinanceInput struct {
	Price       float64 `query:"price"        doc:"Vehicle price in CHF"                          minimum:"0"`
	VehicleID   string  `query:"vehicle_id"   doc:"Take the price from this catalog vehicle"`
	DownPayment float64 `query:"down_payment" doc:"Down payment in CHF"                           minimum:"0"`
	TermMonths  int     `query:"term_months"  doc:"Term in months (default from configuration)"   minimum:"0"`
	Rate        string  `query:"rate"         doc:"Annual interest rate in percent (default from configuration)"`
	ResidualPct float64 `query:"residual_pct" doc:"Balloon residual as percent of the price"      minimum:"0" maximum:"80"`
}

// FinanceOutput is a computed financing plan.
type FinanceOutput struct {
	Body finance.Result
}

// Calculate computes a financing plan.
func (h *FinanceHandler) Calculate(_ context.Context, input *FinanceInput) (*FinanceOutput, error) {
	in := finance.Input{
		Price:       input.Price,
		DownPayment: input.DownPayment,
		TermMonths:  input.TermMonths,
		ResidualPct: input.ResidualPct,
	}

	if in.Price == 0 && input.VehicleID != "" {
		v, ok := h.catalog.Snapshot().Vehicle(input.VehicleID)
		if !ok {
			return nil, huma.Error404NotFound("vehicle not found")
		}
		in.Price = float64(v.Price)
	}

	if input.Rate != "" {
		rate, err := strconv.ParseFloat(input.Rate, 64)
		if err != nil {
			return nil, huma.Error400BadRequest("rate must be a number")
		}
		in.AnnualRatePct = &rate
	}

	res, err := h.calc.Calculate(in)
	if err != nil {
		metrics.FinanceCalculationsTotal.WithLabelValues("invalid").Inc()
		if errors.Is(err, finance.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError(err.Error())
	}
	metrics.FinanceCalculationsTotal.WithLabelValues("ok").Inc()
	return &FinanceOutput{Body: res}, nil
}

// RegisterFinanceRoutes registers the financing calculator with the Huma API.
func RegisterFinanceRoutes(api huma.API, h *FinanceHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "calculate-finance",
		Method:      http.MethodGet,
		Path:        "/api/v1/finance",
		Summary:     "Calculate financing",
		Description: "Computes the monthly payment of an annuity loan with optional balloon residual, " +
			"rounded to 0.05 CHF.",
		Tags:   []string{"finance"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Calculate)
}
