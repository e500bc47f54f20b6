package extract

import (
	"strings"
)

// Normalized fuel labels.
const (
	FuelPetrol   = "Benzin"
	FuelDiesel   = "Diesel"
	FuelElectric = "Elektro"
	FuelHybrid   = "Hybrid"
	FuelGas      = "Gas"
)

// Normalized transmission labels.
const (
	TransmissionManual    = "Manuell"
	TransmissionAutomatic = "Automatik"
	TransmissionSemiAuto  = "Halbautomatik"
)

// fuelMap maps folded upstream fuel strings to normalized labels.
var fuelMap = map[string]string{
	// identity
	"benzin":  FuelPetrol,
	"diesel":  FuelDiesel,
	"elektro": FuelElectric,
	"hybrid":  FuelHybrid,
	"gas":     FuelGas,
	// German / French / English variants
	"bleifrei":           FuelPetrol,
	"benzin bleifrei":    FuelPetrol,
	"petrol":             FuelPetrol,
	"gasoline":           FuelPetrol,
	"essence":            FuelPetrol,
	"super":              FuelPetrol,
	"gasoil":             FuelDiesel,
	"electric":           FuelElectric,
	"elektrisch":         FuelElectric,
	"electrique":         FuelElectric,
	"ev":                 FuelElectric,
	"hybride":            FuelHybrid,
	"plug-in-hybrid":     FuelHybrid,
	"plug-in hybrid":     FuelHybrid,
	"hybrid (benzin)":    FuelHybrid,
	"hybrid (diesel)":    FuelHybrid,
	"mild-hybrid":        FuelHybrid,
	"erdgas":             FuelGas,
	"cng":                FuelGas,
	"lpg":                FuelGas,
	"gaz":                FuelGas,
	"erdgas (cng)":       FuelGas,
	"autogas (lpg)":      FuelGas,
	"benzin/erdgas":      FuelGas,
	"benzin / elektro":   FuelHybrid,
	"benzin/elektro":     FuelHybrid,
	"diesel/elektro":     FuelHybrid,
	"diesel / elektro":   FuelHybrid,
	"essence/electrique": FuelHybrid,
}

// fuelKeywords is consulted in order when no exact mapping exists.
var fuelKeywords = []struct {
	keyword string
	label   string
}{
	{"hybrid", FuelHybrid},
	{"elektr", FuelElectric},
	{"electr", FuelElectric},
	{"diesel", FuelDiesel},
	{"erdgas", FuelGas},
	{"benzin", FuelPetrol},
	{"essence", FuelPetrol},
	{"petrol", FuelPetrol},
}

// transmissionKeywords is consulted in order; "halbautomat" must precede
// "automat".
var transmissionKeywords = []struct {
	keyword string
	label   string
}{
	{"halbautomat", TransmissionSemiAuto},
	{"semi-auto", TransmissionSemiAuto},
	{"semi auto", TransmissionSemiAuto},
	{"sequentiel", TransmissionSemiAuto},
	{"sequenziell", TransmissionSemiAuto},
	{"automat", TransmissionAutomatic},
	{"automatique", TransmissionAutomatic},
	{"dct", TransmissionAutomatic},
	{"dsg", TransmissionAutomatic},
	{"cvt", TransmissionAutomatic},
	{"stufenlos", TransmissionAutomatic},
	{"schalt", TransmissionManual},
	{"manuel", TransmissionManual},
	{"manual", TransmissionManual},
	{"hand", TransmissionManual},
	{"gang", TransmissionManual},
	{"vitesses", TransmissionManual},
}

// NormalizeFuel maps a raw fuel string to a normalized label. Empty input
// yields FuelPetrol, the dominant fuel of the catalog. Unrecognized values
// are passed through trimmed.
func NormalizeFuel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || isUnknown(trimmed) {
		return FuelPetrol
	}

	key := Fold(trimmed)
	if label, ok := fuelMap[key]; ok {
		return label
	}
	for _, k := range fuelKeywords {
		if strings.Contains(key, k.keyword) {
			return k.label
		}
	}
	return trimmed
}

// NormalizeTransmission maps a raw transmission string to a normalized label.
// Empty input yields TransmissionManual. Unrecognized values are passed
// through trimmed.
func NormalizeTransmission(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || isUnknown(trimmed) {
		return TransmissionManual
	}

	key := Fold(trimmed)
	for _, k := range transmissionKeywords {
		if strings.Contains(key, k.keyword) {
			return k.label
		}
	}
	return trimmed
}
