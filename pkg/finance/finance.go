// Package finance implements the vehicle financing calculator.
package finance

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for inputs that cannot describe a loan.
var ErrInvalidInput = errors.New("invalid financing input")

// Defaults used when a Calculator field is zero.
const (
	DefaultRatePct    = 3.9
	DefaultTermMonths = 48
	DefaultMaxTerm    = 96
	MaxResidualPct    = 80.0
	roundingIncrement = 0.05
)

// Input describes a financing request. Amounts are in CHF.
type Input struct {
	Price       float64 `json:"price"`
	DownPayment float64 `json:"downPayment"`
	// TermMonths falls back to the calculator default when zero and
	// AnnualRatePct when nil.
	TermMonths    int      `json:"termMonths"`
	AnnualRatePct *float64 `json:"annualRatePct,omitempty"`
	// ResidualPct is the balloon payment due at the end, as a share of Price.
	ResidualPct float64 `json:"residualPct"`
}

// Result is a computed financing plan. Money values are rounded to 0.05 CHF.
type Result struct {
	FinancedAmount float64 `json:"financedAmount"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	ResidualValue  float64 `json:"residualValue"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
	TermMonths     int     `json:"termMonths"`
	AnnualRatePct  float64 `json:"annualRatePct"`
}

// Calculator holds dealership financing defaults.
type Calculator struct {
	RatePct       float64
	TermMonths    int
	MaxTermMonths int
}

// NewCalculator creates a Calculator; zero arguments select the defaults.
func NewCalculator(ratePct float64, termMonths, maxTermMonths int) *Calculator {
	c := &Calculator{RatePct: ratePct, TermMonths: termMonths, MaxTermMonths: maxTermMonths}
	if c.RatePct <= 0 {
		c.RatePct = DefaultRatePct
	}
	if c.TermMonths <= 0 {
		c.TermMonths = DefaultTermMonths
	}
	if c.MaxTermMonths <= 0 {
		c.MaxTermMonths = DefaultMaxTerm
	}
	return c
}

// Calculate computes an annuity plan with an optional balloon residual.
func (c *Calculator) Calculate(in Input) (Result, error) {
	if in.TermMonths == 0 {
		in.TermMonths = c.TermMonths
	}
	rate := c.RatePct
	if in.AnnualRatePct != nil {
		rate = *in.AnnualRatePct
	}
	if err := c.validate(in, rate); err != nil {
		return Result{}, err
	}

	principal := in.Price - in.DownPayment
	residual := in.Price * in.ResidualPct / 100
	n := float64(in.TermMonths)
	r := rate / 100 / 12

	var payment float64
	if r == 0 {
		payment = (principal - residual) / n
	} else {
		growth := math.Pow(1+r, n)
		payment = (principal - residual/growth) * r / (1 - 1/growth)
	}
	payment = roundCHF(payment)

	paid := payment*n + residual
	return Result{
		FinancedAmount: roundCHF(principal),
		MonthlyPayment: payment,
		ResidualValue:  roundCHF(residual),
		TotalInterest:  roundCHF(math.Max(paid-principal, 0)),
		TotalCost:      roundCHF(in.DownPayment + paid),
		TermMonths:     in.TermMonths,
		AnnualRatePct:  rate,
	}, nil
}

func (c *Calculator) validate(in Input, rate float64) error {
	var errs []error
	if in.Price <= 0 {
		errs = append(errs, fmt.Errorf("price must be positive, got %.2f", in.Price))
	}
	if in.DownPayment < 0 {
		errs = append(errs, fmt.Errorf("down payment must not be negative, got %.2f", in.DownPayment))
	}
	if in.Price > 0 && in.DownPayment >= in.Price {
		errs = append(errs, errors.New("down payment must be below the price"))
	}
	if in.TermMonths < 1 || in.TermMonths > c.MaxTermMonths {
		errs = append(errs, fmt.Errorf("term must be within 1..%d months, got %d", c.MaxTermMonths, in.TermMonths))
	}
	if rate < 0 || rate > 100 {
		errs = append(errs, fmt.Errorf("rate must be within 0..100%%, got %.2f", rate))
	}
	if in.ResidualPct < 0 || in.ResidualPct > MaxResidualPct {
		errs = append(errs, fmt.Errorf("residual must be within 0..%.0f%%, got %.2f", MaxResidualPct, in.ResidualPct))
	}
	if len(errs) == 0 && in.Price*in.ResidualPct/100 >= in.Price-in.DownPayment {
		errs = append(errs, errors.New("residual must be below the financed amount"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// roundCHF rounds to the nearest 0.05 CHF. The second rounding removes the
// binary fraction left by the multiplication.
func roundCHF(v float64) float64 {
	return math.Round(math.Round(v/roundingIncrement)*roundingIncrement*100) / 100
}
