package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// Regional tags used for number formatting. The dealership sells in
// Switzerland, so grouping follows the Swiss conventions of each language.
var regional = map[domain.Locale]language.Tag{
	domain.LocaleDE: language.MustParse("de-CH"),
	domain.LocaleFR: language.MustParse("fr-CH"),
	domain.LocaleEN: language.MustParse("en-CH"),
}

// Tag returns the regional language tag for loc.
func Tag(loc domain.Locale) language.Tag {
	if t, ok := regional[loc]; ok {
		return t
	}
	return regional[domain.DefaultLocale]
}

// FormatNumber renders n with the locale's digit grouping.
func FormatNumber(n int, loc domain.Locale) string {
	return message.NewPrinter(Tag(loc)).Sprintf("%d", n)
}

// FormatPrice renders a whole-franc amount the way Swiss listings show it,
// e.g. "CHF 12’990.-".
func FormatPrice(chf int, loc domain.Locale) string {
	return "CHF " + FormatNumber(chf, loc) + ".-"
}
