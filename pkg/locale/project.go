package locale

import (
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// fielder is implemented by records that expose untranslated field values.
type fielder interface {
	Field(name string) domain.Text
}

// Project returns the value of field in loc. It falls back to the German
// translation, then to the untranslated top-level value. The result is
// never nil: list fields yield an empty list at worst.
func Project(v *domain.Vehicle, field string, loc domain.Locale) domain.Text {
	return project(v, v.Multilingual, field, loc)
}

// ProjectRental is Project for rental cars.
func ProjectRental(r *domain.RentalCar, field string, loc domain.Locale) domain.Text {
	return project(r, r.Multilingual, field, loc)
}

func project(rec fielder, bundle domain.Multilingual, field string, loc domain.Locale) domain.Text {
	base := rec.Field(field)

	if tr, ok := bundle[field]; ok {
		if t := tr.Get(loc); !t.IsEmpty() {
			return t
		}
		if t := tr.DE; !t.IsEmpty() {
			return t
		}
	}
	if base.IsList && base.List == nil {
		return domain.TextList(nil)
	}
	return base
}

// LocalizedVehicle is a Vehicle with every translatable field resolved for
// one locale. It is the shape served to catalog clients.
type LocalizedVehicle struct {
	ID           string           `json:"id"`
	Locale       domain.Locale    `json:"locale"`
	Title        string           `json:"title"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int              `json:"year"`
	Price        int              `json:"price"`
	Mileage      int              `json:"mileage"`
	Fuel         string           `json:"fuel"`
	Transmission string           `json:"transmission"`
	Power        string           `json:"power"`
	BodyType     string           `json:"bodyType"`
	Color        string           `json:"color"`
	Images       []string         `json:"images"`
	Description  string           `json:"description"`
	Features     []string         `json:"features"`
	Location     string           `json:"location"`
	Condition    domain.Condition `json:"condition"`
	Category     domain.Category  `json:"category"`

	CO2Emission    string `json:"co2Emission,omitempty"`
	Consumption    string `json:"consumption,omitempty"`
	Displacement   string `json:"displacement,omitempty"`
	Doors          *int   `json:"doors,omitempty"`
	Seats          *int   `json:"seats,omitempty"`
	Warranty       bool   `json:"warranty"`
	WarrantyText   string `json:"warrantyText,omitempty"`
	WarrantyMonths *int   `json:"warrantyMonths,omitempty"`
	VehicleAge     int    `json:"vehicleAge"`
	PricePerYear   int    `json:"pricePerYear"`
}

// ProjectVehicle flattens v for loc.
func ProjectVehicle(v *domain.Vehicle, loc domain.Locale) LocalizedVehicle {
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return LocalizedVehicle{
		ID:             v.ID,
		Locale:         loc,
		Title:          Project(v, domain.FieldTitle, loc).String(),
		Brand:          v.Brand,
		Model:          v.Model,
		Year:           v.Year,
		Price:          v.Price,
		Mileage:        v.Mileage,
		Fuel:           Project(v, domain.FieldFuel, loc).String(),
		Transmission:   Project(v, domain.FieldTransmission, loc).String(),
		Power:          v.Power,
		BodyType:       Project(v, domain.FieldBodyType, loc).String(),
		Color:          Project(v, domain.FieldColor, loc).String(),
		Images:         images,
		Description:    Project(v, domain.FieldDescription, loc).String(),
		Features:       asList(Project(v, domain.FieldFeatures, loc)),
		Location:       Project(v, domain.FieldLocation, loc).String(),
		Condition:      v.Condition,
		Category:       v.Category,
		CO2Emission:    v.CO2Emission,
		Consumption:    v.Consumption,
		Displacement:   v.Displacement,
		Doors:          v.Doors,
		Seats:          v.Seats,
		Warranty:       v.Warranty,
		WarrantyText:   v.WarrantyText,
		WarrantyMonths: v.WarrantyMonths,
		VehicleAge:     v.VehicleAge,
		PricePerYear:   v.PricePerYear,
	}
}

// ProjectVehicles applies ProjectVehicle to every element, keeping order.
func ProjectVehicles(vs []domain.Vehicle, loc domain.Locale) []LocalizedVehicle {
	out := make([]LocalizedVehicle, len(vs))
	for i := range vs {
		out[i] = ProjectVehicle(&vs[i], loc)
	}
	return out
}

// LocalizedRental is a RentalCar resolved for one locale.
type LocalizedRental struct {
	ID           string        `json:"id"`
	Locale       domain.Locale `json:"locale"`
	Name         string        `json:"name"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Category     string        `json:"category"`
	Seats        int           `json:"seats"`
	Transmission string        `json:"transmission"`
	Fuel         string        `json:"fuel"`
	PricePerDay  int           `json:"pricePerDay"`
	Deposit      int           `json:"deposit"`
	Images       []string      `json:"images"`
	Features     []string      `json:"features"`
	Description  string        `json:"description"`
	Available    bool          `json:"available"`
}

// ProjectRentalCar flattens r for loc.
func ProjectRentalCar(r *domain.RentalCar, loc domain.Locale) LocalizedRental {
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return LocalizedRental{
		ID:           r.ID,
		Locale:       loc,
		Name:         ProjectRental(r, "name", loc).String(),
		Brand:        r.Brand,
		Model:        r.Model,
		Category:     ProjectRental(r, "category", loc).String(),
		Seats:        r.Seats,
		Transmission: ProjectRental(r, domain.FieldTransmission, loc).String(),
		Fuel:         ProjectRental(r, domain.FieldFuel, loc).String(),
		PricePerDay:  r.PricePerDay,
		Deposit:      r.Deposit,
		Images:       images,
		Features:     asList(ProjectRental(r, domain.FieldFeatures, loc)),
		Description:  ProjectRental(r, domain.FieldDescription, loc).String(),
		Available:    r.Available,
	}
}

func asList(t domain.Text) []string {
	if t.IsList {
		if t.List == nil {
			return []string{}
		}
		return t.List
	}
	if t.Str == "" {
		return []string{}
	}
	return []string{t.Str}
}
