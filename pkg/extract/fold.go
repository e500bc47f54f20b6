package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Fold returns a comparison key for s: trimmed, case-folded, and with
// combining marks removed so "Coupé" and "COUPE" compare equal.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return folder.String(stripped)
}

// unknownSentinels are placeholder values scrapers emit for missing data.
var unknownSentinels = []string{
	"unbekannt",
	"unknown",
	"inconnu",
	"sconosciuto",
	"n/a",
	"k.a.",
	"-",
}

func isUnknown(s string) bool {
	key := Fold(s)
	if key == "" {
		return false
	}
	for _, sentinel := range unknownSentinels {
		if key == sentinel {
			return true
		}
	}
	return false
}

func containsUnknown(s string) bool {
	key := Fold(s)
	for _, sentinel := range unknownSentinels {
		if len(sentinel) > 3 && strings.Contains(key, sentinel) {
			return true
		}
	}
	return isUnknown(s)
}
