// Package normalize maps raw vehicle rows onto the normalized catalog model.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/donaldgifford/dealer-catalog/pkg/extract"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// Policy holds the thresholds the transformer applies.
type Policy struct {
	// NewYearWindow is how many years back a vehicle still counts as a
	// current model year. 1 means this year and last year.
	NewYearWindow int
	// NewMaxMileage is the exclusive mileage limit for a new vehicle.
	NewMaxMileage int
	PriceMin      int
	PriceMax      int
	MileageMax    int
	// HomeCity replaces missing or placeholder locations.
	HomeCity string
}

// DefaultPolicy returns the dealership defaults.
func DefaultPolicy() Policy {
	return Policy{
		NewYearWindow: 1,
		NewMaxMileage: 100,
		PriceMin:      extract.DefaultPriceMin,
		PriceMax:      extract.DefaultPriceMax,
		MileageMax:    extract.DefaultMileageMax,
		HomeCity:      "Zürich",
	}
}

// Transformer turns RawVehicleRecords into Vehicles. It is safe for
// concurrent use.
type Transformer struct {
	policy Policy
	now    func() time.Time
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithClock overrides the time source used for year defaults and
// condition derivation.
func WithClock(now func() time.Time) Option {
	return func(t *Transformer) {
		t.now = now
	}
}

// NewTransformer creates a Transformer applying policy.
func NewTransformer(policy Policy, opts ...Option) *Transformer {
	t := &Transformer{
		policy: policy,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Policy returns the thresholds in effect.
func (t *Transformer) Policy() Policy {
	return t.policy
}

// Transform normalizes a single record. It never fails: malformed fields
// degrade to defaults.
func (t *Transformer) Transform(raw *domain.RawVehicleRecord) domain.Vehicle {
	return t.transform(raw, t.now())
}

// TransformAll normalizes records preserving their order. Records without an
// id are assigned "gen-<index>".
func (t *Transformer) TransformAll(raws []domain.RawVehicleRecord) []domain.Vehicle {
	now := t.now()
	out := make([]domain.Vehicle, len(raws))
	for i := range raws {
		out[i] = t.transform(&raws[i], now)
		if out[i].ID == "" {
			out[i].ID = fmt.Sprintf("gen-%d", i)
		}
	}
	return out
}

func (t *Transformer) transform(raw *domain.RawVehicleRecord, now time.Time) domain.Vehicle {
	title := cleanLine(raw.Title)
	brand, model := t.resolveBrandModel(raw, title)
	if title == "" {
		title = strings.TrimSpace(brand + " " + model)
	}

	year := t.resolveYear(raw, now)
	mileage := t.resolveMileage(raw)
	price := t.resolvePrice(raw)
	bodyLabel := extract.BodyTypeLabel(raw.BodyType)
	category := t.Category(raw.BodyType)

	v := domain.Vehicle{
		ID:           strings.TrimSpace(raw.ID),
		Title:        title,
		Brand:        brand,
		Model:        model,
		Year:         year,
		Price:        price,
		Mileage:      mileage,
		Fuel:         extract.NormalizeFuel(raw.Fuel),
		Transmission: extract.NormalizeTransmission(raw.Transmission),
		Power:        extract.ExtractPower(raw.Power),
		BodyType:     bodyLabel,
		Color:        cleanLine(raw.Color),
		Images:       cleanList(raw.Images, strings.TrimSpace),
		Description:  extract.CleanDescription(description(raw)),
		Features:     cleanList(raw.Features, cleanLine),
		Location:     extract.CleanLocation(raw.Location, t.policy.HomeCity),
		Condition:    t.Condition(year, mileage, now),
		Category:     category,
		CO2Emission:  cleanLine(raw.CO2Emission),
		Consumption:  cleanLine(raw.Consumption),
		Displacement: cleanLine(raw.Displacement),
		UpdatedAt:    raw.UpdatedAt,
	}

	v.Doors, v.Seats = doorsAndSeats(raw, category, bodyLabel)
	v.Warranty, v.WarrantyText, v.WarrantyMonths = warranty(raw)

	v.VehicleAge = max(now.Year()-year, 0)
	if price > 0 {
		v.PricePerYear = price / max(v.VehicleAge, 1)
	}

	v.Multilingual = buildMultilingual(raw, &v)
	return v
}

func (t *Transformer) resolveBrandModel(raw *domain.RawVehicleRecord, title string) (string, string) {
	var brand string
	if strings.TrimSpace(raw.Brand) != "" {
		brand = extract.CanonicalBrand(raw.Brand)
	} else {
		brand = extract.CanonicalBrand(extract.ExtractBrand(title))
	}

	model := cleanLine(raw.Model)
	if model == "" {
		model = extract.ExtractModel(title, brand)
	}
	return brand, model
}

func (t *Transformer) resolveYear(raw *domain.RawVehicleRecord, now time.Time) int {
	if n, ok := raw.Year.Int(); ok {
		if extract.PlausibleYear(n, now) {
			return n
		}
		return now.Year()
	}
	if strings.TrimSpace(raw.Year.Raw) != "" {
		return extract.ExtractYear(raw.Year.Raw, now)
	}
	return extract.ExtractYear(raw.FirstRegistration, now)
}

func (t *Transformer) resolveMileage(raw *domain.RawVehicleRecord) int {
	if n, ok := raw.Mileage.Int(); ok {
		return extract.BoundedOrZero(n, 0, t.policy.MileageMax)
	}
	return extract.ExtractMileageWithin(raw.Mileage.Raw, t.policy.MileageMax)
}

func (t *Transformer) resolvePrice(raw *domain.RawVehicleRecord) int {
	if n, ok := raw.Price.Int(); ok {
		return extract.BoundedOrZero(n, t.policy.PriceMin, t.policy.PriceMax)
	}
	return extract.ExtractPriceWithin(raw.Price.Raw, t.policy.PriceMin, t.policy.PriceMax)
}

// Condition classifies a vehicle as new when its year falls within the
// current model-year window and its mileage is below the new-vehicle limit.
func (t *Transformer) Condition(year, mileage int, now time.Time) domain.Condition {
	if year >= now.Year()-t.policy.NewYearWindow && mileage < t.policy.NewMaxMileage {
		return domain.ConditionNew
	}
	return domain.ConditionUsed
}

// Category derives the bike/car split from the body type alone. A brand
// never makes a record a car, so records without a car body type, including
// car-only brands with a missing type, stay bikes.
func (t *Transformer) Category(bodyType string) domain.Category {
	if extract.IsCarBodyType(bodyType) {
		return domain.CategoryCar
	}
	return domain.CategoryBike
}

func description(raw *domain.RawVehicleRecord) string {
	if strings.TrimSpace(raw.Description) != "" {
		return raw.Description
	}
	return raw.Fahrzeugbeschreibung
}

func doorsAndSeats(raw *domain.RawVehicleRecord, category domain.Category, label string) (*int, *int) {
	var doors, seats *int
	if n, ok := positive(raw.Doors); ok {
		doors = &n
	}
	if n, ok := positive(raw.Seats); ok {
		seats = &n
	}
	if category != domain.CategoryCar {
		return doors, seats
	}

	d, s := extract.DoorsAndSeats(label)
	if doors == nil && d > 0 {
		doors = &d
	}
	if seats == nil && s > 0 {
		seats = &s
	}
	return doors, seats
}

func positive(f domain.FlexValue) (int, bool) {
	n, ok := f.Int()
	if !ok {
		n = extract.ExtractMileage(f.Raw)
	}
	return n, n > 0 && n < 100
}

var warrantyNegations = []string{"nein", "keine", "ohne", "no", "non", "aucune", "none"}

func warranty(raw *domain.RawVehicleRecord) (bool, string, *int) {
	text := cleanLine(raw.Warranty)

	var months *int
	if n, ok := raw.WarrantyMonths.Int(); ok && n > 0 {
		months = &n
	} else if n := extract.ExtractMileage(raw.WarrantyMonths.Raw); n > 0 {
		months = &n
	}

	if months != nil {
		return true, text, months
	}
	key := extract.Fold(text)
	if key == "" {
		return false, "", nil
	}
	for _, neg := range warrantyNegations {
		if key == neg || strings.HasPrefix(key, neg+" ") {
			return false, text, nil
		}
	}
	return true, text, nil
}

// cleanLine cleans a single-line value and collapses inner whitespace.
func cleanLine(s string) string {
	return strings.Join(strings.Fields(extract.CleanDescription(s)), " ")
}

func cleanList(in []string, clean func(string) string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = clean(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
