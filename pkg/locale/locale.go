// Package locale resolves display languages and projects translated values
// out of multilingual bundles.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// ErrUnsupported is returned by Parse for languages the catalog does not carry.
var ErrUnsupported = errors.New("unsupported locale")

// supported is ordered so the default comes first; the matcher falls back to
// the first entry.
var supported = []language.Tag{
	language.German,
	language.French,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Parse resolves s ("de", "fr-CH", "EN") to a supported locale.
func Parse(s string) (domain.Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("parsing locale: %w", ErrUnsupported)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parsing locale %q: %w", s, ErrUnsupported)
	}
	base, _ := tag.Base()
	for _, loc := range domain.Locales {
		if base.String() == string(loc) {
			return loc, nil
		}
	}
	return "", fmt.Errorf("locale %q: %w", s, ErrUnsupported)
}

// Negotiate picks the display locale. An explicit query value wins, then the
// Accept-Language header, then the default locale.
func Negotiate(acceptLanguage, query string) domain.Locale {
	if loc, err := Parse(query); err == nil {
		return loc
	}
	if strings.TrimSpace(acceptLanguage) == "" {
		return domain.DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return domain.DefaultLocale
	}
	return domain.Locales[idx]
}
