package catalog

import (
	"time"

	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// FallbackRecords returns the built-in rows served when every configured
// source fails. The list is never empty.
func FallbackRecords() []domain.RawVehicleRecord {
	updated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.RawVehicleRecord{
		{
			ID:           "fallback-1",
			Title:        "YAMAHA MT-07",
			Brand:        "YAMAHA",
			Model:        "MT-07",
			Price:        domain.FlexNumber(6990),
			Year:         domain.FlexNumber(2021),
			Mileage:      domain.FlexNumber(12500),
			Fuel:         "Benzin",
			Transmission: "Manuell",
			Power:        "54 kW",
			BodyType:     "Naked Bike",
			Color:        "Schwarz",
			Description:  "Gepflegte MT-07 aus zweiter Hand, frisch ab Service.",
			UpdatedAt:    &updated,
		},
		{
			ID:           "fallback-2",
			Title:        "VW Golf 1.5 TSI Life",
			Brand:        "VW",
			Model:        "Golf 1.5 TSI Life",
			Price:        domain.FlexNumber(21900),
			Year:         domain.FlexNumber(2022),
			Mileage:      domain.FlexNumber(28000),
			Fuel:         "Benzin",
			Transmission: "Automatik",
			Power:        "110 kW",
			BodyType:     "Limousine",
			Color:        "Grau",
			Description:  "Ab MFK, Garantie bis 2026.",
			UpdatedAt:    &updated,
		},
	}
}
