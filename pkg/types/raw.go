package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FlexValue is a scalar that upstream rows deliver either as a JSON number or
// as a decorated string ("CHF 4'990.-", "12 500 km"). The literal text is
// kept; Number is set only when the JSON value was numeric.
type FlexValue struct {
	Raw    string
	Number *float64
}

// FlexNumber builds a numeric FlexValue.
func FlexNumber(f float64) FlexValue {
	return FlexValue{Raw: strconv.FormatFloat(f, 'f', -1, 64), Number: &f}
}

// FlexString builds a string FlexValue.
func FlexString(s string) FlexValue {
	return FlexValue{Raw: s}
}

// String returns the literal text.
func (f FlexValue) String() string {
	return f.Raw
}

// IsZero reports whether no value was supplied.
func (f FlexValue) IsZero() bool {
	return f.Number == nil && strings.TrimSpace(f.Raw) == ""
}

// Int returns the value as an integer when it arrived as a finite JSON number.
func (f FlexValue) Int() (int, bool) {
	if f.Number == nil || math.IsNaN(*f.Number) || math.IsInf(*f.Number, 0) {
		return 0, false
	}
	return int(math.Round(*f.Number)), true
}

// MarshalJSON writes numbers as numbers and everything else as strings.
func (f FlexValue) MarshalJSON() ([]byte, error) {
	if f.Number != nil {
		return json.Marshal(*f.Number)
	}
	if f.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(f.Raw)
}

// UnmarshalJSON never fails on scalar input; objects and arrays are kept as
// their literal text so the extractors can degrade them to defaults.
func (f *FlexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = FlexValue{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding flex string: %w", err)
		}
		f.Raw = s
	case 't', 'f':
		f.Raw = string(data)
	case '{', '[':
		f.Raw = string(data)
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			f.Raw = string(data)
			return nil //nolint:nilerr // unparseable literal degrades to text
		}
		f.Number = &n
		f.Raw = string(data)
	}
	return nil
}

// RawVehicleRecord is an unvalidated vehicle row as stored or fetched. The
// shape is not controlled by this service. Multilingual is nil for legacy
// flat records and set when the row carries a translation bundle.
type RawVehicleRecord struct {
	ID                   string
	Title                string
	Brand                string
	Model                string
	Price                FlexValue
	Year                 FlexValue
	Mileage              FlexValue
	FirstRegistration    string
	Fuel                 string
	Transmission         string
	Power                string
	BodyType             string
	Color                string
	Images               []string
	Description          string
	Fahrzeugbeschreibung string
	Features             []string
	Location             string
	CO2Emission          string
	Consumption          string
	Displacement         string
	Doors                FlexValue
	Seats                FlexValue
	Warranty             string
	WarrantyMonths       FlexValue
	UpdatedAt            *time.Time
	Multilingual         *Multilingual
}

// HasMultilingual reports whether the record carries a translation bundle.
func (r *RawVehicleRecord) HasMultilingual() bool {
	return r.Multilingual != nil && len(*r.Multilingual) > 0
}

// rawWire mirrors the upstream JSON keys. Several fields have historical
// aliases ("type" vs "body_type", "km" vs "mileage").
type rawWire struct {
	ID                   FlexValue       `json:"id"`
	Title                FlexValue       `json:"title"`
	Brand                FlexValue       `json:"brand"`
	Model                FlexValue       `json:"model"`
	Price                FlexValue       `json:"price"`
	Year                 FlexValue       `json:"year"`
	Mileage              FlexValue       `json:"mileage"`
	KM                   FlexValue       `json:"km"`
	FirstRegistration    FlexValue       `json:"first_registration"`
	Fuel                 FlexValue       `json:"fuel"`
	Transmission         FlexValue       `json:"transmission"`
	Power                FlexValue       `json:"power"`
	Type                 FlexValue       `json:"type"`
	BodyType             FlexValue       `json:"body_type"`
	Color                FlexValue       `json:"color"`
	Images               json.RawMessage `json:"images"`
	Description          FlexValue       `json:"description"`
	Fahrzeugbeschreibung FlexValue       `json:"fahrzeugbeschreibung"`
	Features             json.RawMessage `json:"features"`
	Location             FlexValue       `json:"location"`
	CO2Emission          FlexValue       `json:"co2_emission"`
	Consumption          FlexValue       `json:"consumption"`
	Displacement         FlexValue       `json:"displacement"`
	Doors                FlexValue       `json:"doors"`
	Seats                FlexValue       `json:"seats"`
	Warranty             FlexValue       `json:"warranty"`
	WarrantyMonths       FlexValue       `json:"warranty_months"`
	UpdatedAt            FlexValue       `json:"updated_at"`
	Multilingual         json.RawMessage `json:"multilingual"`
}

// UnmarshalJSON decodes a raw row leniently: malformed sub-values degrade to
// zero values instead of failing the whole record.
func (r *RawVehicleRecord) UnmarshalJSON(data []byte) error {
	var w rawWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding raw vehicle: %w", err)
	}

	*r = RawVehicleRecord{
		ID:                   w.ID.Raw,
		Title:                w.Title.Raw,
		Brand:                w.Brand.Raw,
		Model:                w.Model.Raw,
		Price:                w.Price,
		Year:                 w.Year,
		Mileage:              w.Mileage,
		FirstRegistration:    w.FirstRegistration.Raw,
		Fuel:                 w.Fuel.Raw,
		Transmission:         w.Transmission.Raw,
		Power:                w.Power.Raw,
		BodyType:             w.BodyType.Raw,
		Color:                w.Color.Raw,
		Description:          w.Description.Raw,
		Fahrzeugbeschreibung: w.Fahrzeugbeschreibung.Raw,
		Location:             w.Location.Raw,
		CO2Emission:          w.CO2Emission.Raw,
		Consumption:          w.Consumption.Raw,
		Displacement:         w.Displacement.Raw,
		Doors:                w.Doors,
		Seats:                w.Seats,
		Warranty:             w.Warranty.Raw,
		WarrantyMonths:       w.WarrantyMonths,
	}
	if r.Mileage.IsZero() {
		r.Mileage = w.KM
	}
	if r.BodyType == "" {
		r.BodyType = w.Type.Raw
	}
	r.Images = decodeStringList(w.Images)
	r.Features = decodeStringList(w.Features)
	r.UpdatedAt = parseTimestamp(w.UpdatedAt.Raw)

	if len(w.Multilingual) > 0 {
		var m Multilingual
		if err := json.Unmarshal(w.Multilingual, &m); err == nil && len(m) > 0 {
			r.Multilingual = &m
		}
	}
	return nil
}

// MarshalJSON writes the record back in its upstream key layout.
func (r RawVehicleRecord) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"id":                   r.ID,
		"title":                r.Title,
		"brand":                r.Brand,
		"model":                r.Model,
		"price":                r.Price,
		"year":                 r.Year,
		"mileage":              r.Mileage,
		"first_registration":   r.FirstRegistration,
		"fuel":                 r.Fuel,
		"transmission":         r.Transmission,
		"power":                r.Power,
		"body_type":            r.BodyType,
		"color":                r.Color,
		"images":               nonNil(r.Images),
		"description":          r.Description,
		"fahrzeugbeschreibung": r.Fahrzeugbeschreibung,
		"features":             nonNil(r.Features),
		"location":             r.Location,
		"co2_emission":         r.CO2Emission,
		"consumption":          r.Consumption,
		"displacement":         r.Displacement,
		"doors":                r.Doors,
		"seats":                r.Seats,
		"warranty":             r.Warranty,
		"warranty_months":      r.WarrantyMonths,
	}
	if r.UpdatedAt != nil {
		out["updated_at"] = r.UpdatedAt.Format(time.RFC3339)
	}
	if r.Multilingual != nil {
		out["multilingual"] = *r.Multilingual
	}
	return json.Marshal(out)
}

// DecodeRawRecords decodes a JSON array of raw rows. Elements that are not
// objects are skipped and counted rather than failing the whole batch.
func DecodeRawRecords(data []byte) ([]RawVehicleRecord, int, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, 0, fmt.Errorf("decoding record array: %w", err)
	}

	records := make([]RawVehicleRecord, 0, len(elems))
	skipped := 0
	for _, e := range elems {
		var r RawVehicleRecord
		if err := json.Unmarshal(e, &r); err != nil {
			skipped++
			continue
		}
		records = append(records, r)
	}
	return records, skipped, nil
}

// decodeStringList accepts an array of strings, a JSON-encoded string holding
// such an array, a comma/newline separated string, or null.
func decodeStringList(data json.RawMessage) []string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "[") {
			return decodeStringList(json.RawMessage(s))
		}
		return splitList(s)
	}

	var t Text
	if err := json.Unmarshal(data, &t); err != nil || !t.IsList {
		return nil
	}
	out := make([]string, 0, len(t.List))
	for _, s := range t.List {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func nonNil(l []string) []string {
	if l == nil {
		return []string{}
	}
	return l
}
