// Package extract turns single messy upstream fields into clean typed values.
// Every extractor is total: invalid input degrades to a safe default (0, the
// current year, or a sentinel label) and never returns an error.
package extract

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Default plausibility bounds.
const (
	DefaultPriceMin   = 100
	DefaultPriceMax   = 999_999
	DefaultMileageMax = 999_999

	MinYear = 1900

	// UnknownBrand labels records whose brand cannot be determined.
	UnknownBrand = "DIVERSE"
)

// maxDigits guards strconv.Atoi against overflow on absurd inputs.
const maxDigits = 12

// decimalTail matches a trailing decimal part such as ".-", ".50" or ",00".
var decimalTail = regexp.MustCompile(`[.,](?:-+|\d{1,2})\s*$`)

// ExtractPrice parses a decorated price ("CHF 4'990.-") into whole francs.
// Results outside [DefaultPriceMin, DefaultPriceMax] yield 0.
func ExtractPrice(raw string) int {
	return ExtractPriceWithin(raw, DefaultPriceMin, DefaultPriceMax)
}

// ExtractPriceWithin is ExtractPrice with explicit bounds.
func ExtractPriceWithin(raw string, minPrice, maxPrice int) int {
	return boundedOrZero(parseDigits(stripDecimals(raw)), minPrice, maxPrice)
}

// ExtractMileage parses a decorated mileage ("12'500 km") into kilometers.
// Results outside [0, DefaultMileageMax] yield 0.
func ExtractMileage(raw string) int {
	return ExtractMileageWithin(raw, DefaultMileageMax)
}

// ExtractMileageWithin is ExtractMileage with an explicit upper bound.
func ExtractMileageWithin(raw string, maxMileage int) int {
	return boundedOrZero(parseDigits(stripDecimals(raw)), 0, maxMileage)
}

// BoundedOrZero returns n when it lies within [lo, hi] and 0 otherwise. It is
// used for values that already arrived as clean numbers.
func BoundedOrZero(n, lo, hi int) int {
	return boundedOrZero(n, lo, hi)
}

func boundedOrZero(n, lo, hi int) int {
	if n < lo || n > hi {
		return 0
	}
	return n
}

func stripDecimals(raw string) string {
	s := html.UnescapeString(strings.TrimSpace(raw))
	return decimalTail.ReplaceAllString(s, "")
}

// parseDigits keeps only ASCII digits and parses them. No digits, or more
// digits than any plausible value has, yield 0.
func parseDigits(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" || len(digits) > maxDigits {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// Year patterns, tried in order. Multi-part dates come before the bare year
// so a day or month run is never read as the year.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}\.(\d{4})\b`),          // MM.YYYY
	regexp.MustCompile(`\b\d{1,2}/(\d{4})\b`),           // M/YYYY, MM/YYYY
	regexp.MustCompile(`\b(\d{4})-\d{2}-\d{2}\b`),       // YYYY-MM-DD
	regexp.MustCompile(`(?:^|[^\d])(\d{4})(?:$|[^\d])`), // bare YYYY
}

// newMarkers flag a brand-new vehicle in a year or registration field.
var newMarkers = []string{"neu", "new", "neuf", "nuovo"}

// ExtractYear parses a model year or first-registration string. A "new"
// marker resolves to the current year; otherwise the first plausible year in
// [MinYear, currentYear+1] wins, defaulting to the current year.
func ExtractYear(raw string, now time.Time) int {
	current := now.Year()
	s := strings.TrimSpace(raw)
	if s == "" {
		return current
	}

	folded := Fold(s)
	for _, marker := range newMarkers {
		if strings.Contains(folded, marker) {
			return current
		}
	}

	for _, re := range yearPatterns {
		for _, m := range re.FindAllStringSubmatch(s, -1) {
			y, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if PlausibleYear(y, now) {
				return y
			}
		}
	}
	return current
}

// PlausibleYear reports whether y lies within [MinYear, currentYear+1].
func PlausibleYear(y int, now time.Time) bool {
	return y >= MinYear && y <= now.Year()+1
}

// KnownBrands is checked in order against titles; multi-word and hyphenated
// names come before any brand they contain.
var KnownBrands = []string{
	"HARLEY-DAVIDSON",
	"MOTO GUZZI",
	"MV AGUSTA",
	"ROYAL ENFIELD",
	"MERCEDES-BENZ",
	"LAND ROVER",
	"ALFA ROMEO",
	"AUDI",
	"APRILIA",
	"BENELLI",
	"BMW",
	"CFMOTO",
	"DUCATI",
	"FIAT",
	"FORD",
	"HONDA",
	"HUSQVARNA",
	"HYUNDAI",
	"INDIAN",
	"KAWASAKI",
	"KIA",
	"KTM",
	"KYMCO",
	"MAZDA",
	"MERCEDES",
	"MINI",
	"NISSAN",
	"OPEL",
	"PEUGEOT",
	"PIAGGIO",
	"PORSCHE",
	"RENAULT",
	"SEAT",
	"SKODA",
	"SUZUKI",
	"SYM",
	"TESLA",
	"TOYOTA",
	"TRIUMPH",
	"VESPA",
	"VOLKSWAGEN",
	"VOLVO",
	"VW",
	"YAMAHA",
}

// ExtractBrand finds the first known brand contained in title, compared
// case-insensitively. A brand standing as a whole word wins over one glued to
// other text, so "Seat Leon" is not read through a longer run-together match.
// Without a match it falls back to the first title token, or to UnknownBrand
// when that token is a placeholder.
func ExtractBrand(title string) string {
	folded := Fold(title)
	if folded == "" {
		return UnknownBrand
	}

	for _, brand := range KnownBrands {
		if containsWord(folded, Fold(brand)) {
			return brand
		}
	}
	for _, brand := range KnownBrands {
		if strings.Contains(folded, Fold(brand)) {
			return brand
		}
	}

	fields := strings.Fields(title)
	if len(fields) == 0 || isUnknown(fields[0]) {
		return UnknownBrand
	}
	return fields[0]
}

// CanonicalBrand returns the known-list spelling of brand, or brand trimmed
// and upper-cased when it is not on the list. Placeholders yield UnknownBrand.
func CanonicalBrand(brand string) string {
	key := Fold(brand)
	if key == "" || isUnknown(key) {
		return UnknownBrand
	}
	for _, known := range KnownBrands {
		if Fold(known) == key {
			return known
		}
	}
	return strings.ToUpper(strings.Join(strings.Fields(brand), " "))
}

// containsWord reports whether word occurs in s bounded by non-alphanumerics.
func containsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for offset := 0; offset < len(s); {
		idx := strings.Index(s[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)
		if boundary(s, start-1) && boundary(s, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func boundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return (c < 'a' || c > 'z') && (c < '0' || c > '9') && c < 0x80
}

// ExtractModel returns the part of title following the brand tokens. When the
// brand does not appear as a token run, the brand text is removed from the
// title instead.
func ExtractModel(title, brand string) string {
	tokens := strings.Fields(title)
	brandTokens := strings.Fields(brand)

	if len(brandTokens) > 0 {
		for i := 0; i+len(brandTokens) <= len(tokens); i++ {
			if tokensMatch(tokens[i:i+len(brandTokens)], brandTokens) {
				return strings.Join(tokens[i+len(brandTokens):], " ")
			}
		}
	}

	if len(tokens) > 0 && isUnknown(tokens[0]) {
		return strings.Join(tokens[1:], " ")
	}
	return strings.Join(strings.Fields(removeFold(title, brand)), " ")
}

func tokensMatch(tokens, want []string) bool {
	for i := range want {
		if Fold(tokens[i]) != Fold(want[i]) {
			return false
		}
	}
	return true
}

// removeFold removes the first case-insensitive occurrence of sub from s.
func removeFold(s, sub string) string {
	if sub == "" {
		return s
	}
	idx := strings.Index(strings.ToLower(s), strings.ToLower(sub))
	if idx < 0 || len(strings.ToLower(s)) != len(s) {
		return s
	}
	return s[:idx] + s[idx+len(sub):]
}

var (
	kwPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*kw\b`)
	psPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:ps|cv|hp|ch|bhp)\b`)
)

const psPerKW = 1.35962

// ExtractPower renders a power figure as "<kW> kW (<PS> PS)". Either unit may
// be supplied; the other is derived. Text without a figure is returned trimmed.
func ExtractPower(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || isUnknown(s) {
		return ""
	}

	if m := kwPattern.FindStringSubmatch(s); m != nil {
		if kw, ok := parseFloat(m[1]); ok && kw > 0 {
			return formatPower(kw, kw*psPerKW)
		}
	}
	if m := psPattern.FindStringSubmatch(s); m != nil {
		if ps, ok := parseFloat(m[1]); ok && ps > 0 {
			return formatPower(ps/psPerKW, ps)
		}
	}
	return s
}

func formatPower(kw, ps float64) string {
	return strconv.Itoa(int(kw+0.5)) + " kW (" + strconv.Itoa(int(ps+0.5)) + " PS)"
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
