// Package domain defines the core business types for the dealer catalog.
package domain

import (
	"encoding/json"
	"time"
)

// Locale is a catalog display language.
type Locale string

// Locale constants. German is the reference language of the catalog.
const (
	LocaleDE Locale = "de"
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleDE
)

// Locales lists every supported locale, default first.
var Locales = []Locale{LocaleDE, LocaleFR, LocaleEN}

// Category is the bike/car split of the catalog.
type Category string

// Category constants.
const (
	CategoryBike Category = "bike"
	CategoryCar  Category = "car"
)

// Condition is the new/used classification derived from year and mileage.
type Condition string

// Condition constants.
const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Vehicle is a normalized catalog entry. It is read-only once produced by the
// transformer; a reload replaces the whole catalog.
type Vehicle struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        int       `json:"price"`
	Mileage      int       `json:"mileage"`
	Fuel         string    `json:"fuel"`
	Transmission string    `json:"transmission"`
	Power        string    `json:"power"`
	BodyType     string    `json:"bodyType"`
	Color        string    `json:"color"`
	Images       []string  `json:"images"`
	Description  string    `json:"description"`
	Features     []string  `json:"features"`
	Location     string    `json:"location"`
	Condition    Condition `json:"condition"`
	Category     Category  `json:"category"`

	// Optional extras.
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

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	Multilingual Multilingual `json:"multilingual"`
}

// Translatable vehicle field names, as used in Multilingual bundles.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldFeatures     = "features"
	FieldLocation     = "location"
	FieldBodyType     = "bodyType"
	FieldFuel         = "fuel"
	FieldTransmission = "transmission"
	FieldColor        = "color"
)

// TranslatableFields lists the fields every normalized vehicle carries a full
// translation triple for.
var TranslatableFields = []string{
	FieldTitle,
	FieldDescription,
	FieldFeatures,
	FieldLocation,
	FieldBodyType,
	FieldFuel,
	FieldTransmission,
	FieldColor,
}

// Field returns the untranslated top-level value of a translatable field.
// Unknown names yield an empty Text.
func (v *Vehicle) Field(name string) Text {
	switch name {
	case FieldTitle:
		return TextString(v.Title)
	case FieldDescription:
		return TextString(v.Description)
	case FieldFeatures:
		return TextList(v.Features)
	case FieldLocation:
		return TextString(v.Location)
	case FieldBodyType:
		return TextString(v.BodyType)
	case FieldFuel:
		return TextString(v.Fuel)
	case FieldTransmission:
		return TextString(v.Transmission)
	case FieldColor:
		return TextString(v.Color)
	case "brand":
		return TextString(v.Brand)
	case "model":
		return TextString(v.Model)
	case "power":
		return TextString(v.Power)
	default:
		return Text{}
	}
}

// RentalCar is a vehicle of the rental fleet managed from the back office.
type RentalCar struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Category     string       `json:"category"`
	Seats        int          `json:"seats"`
	Transmission string       `json:"transmission"`
	Fuel         string       `json:"fuel"`
	PricePerDay  int          `json:"pricePerDay"`
	Deposit      int          `json:"deposit"`
	Images       []string     `json:"images"`
	Features     []string     `json:"features"`
	Description  string       `json:"description"`
	Available    bool         `json:"available"`
	Multilingual Multilingual `json:"multilingual,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Field returns the untranslated top-level value of a rental car field.
func (r *RentalCar) Field(name string) Text {
	switch name {
	case "name", FieldTitle:
		return TextString(r.Name)
	case FieldDescription:
		return TextString(r.Description)
	case FieldFeatures:
		return TextList(r.Features)
	case FieldFuel:
		return TextString(r.Fuel)
	case FieldTransmission:
		return TextString(r.Transmission)
	case "category":
		return TextString(r.Category)
	default:
		return Text{}
	}
}

// Banner is the promotional banner shown on the landing page.
type Banner struct {
	Enabled  bool        `json:"enabled"`
	ImageURL string      `json:"imageUrl,omitempty"`
	LinkURL  string      `json:"linkUrl,omitempty"`
	Text     Translation `json:"text"`
}

// Setting is an opaque key/value entry of the back-office settings store.
type Setting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
