package extract

import (
	"html"
	"regexp"
	"strings"
)

// escapeReplacer undoes the escaping layers scrapers leave in free text.
// Double-escaped sequences are listed before their single-escaped forms so
// no stray backslash survives.
var escapeReplacer = strings.NewReplacer(
	`\\n`, "\n",
	`\\"`, `"`,
	`\\t`, "\t",
	`\\r`, "",
	`\n`, "\n",
	`\"`, `"`,
	`\t`, "\t",
	`\r`, "",
	`\u0026`, "&",
	`\\`, `\`,
)

var (
	brTag      = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlTag    = regexp.MustCompile(`<[^>]*>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// CleanDescription strips escape artifacts and HTML from a listing text. The
// cleaning is repeated until the text stops changing, so applying it to its
// own output is a no-op. Every pass that changes the text consumes an escape,
// tag or entity, so the loop terminates.
func CleanDescription(text string) string {
	s := text
	for {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func cleanOnce(s string) string {
	s = escapeReplacer.Replace(s)
	s = brTag.ReplaceAllString(s, "\n")
	s = htmlTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\r", "")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// postalPrefix matches a leading Swiss, German or Austrian postal code.
var postalPrefix = regexp.MustCompile(`^(?:(?:CH|D|A)-)?\d{4,5}\s+`)

// CleanLocation reduces an address to its city. Empty or placeholder input
// yields home.
func CleanLocation(text, home string) string {
	s := strings.TrimSpace(html.UnescapeString(text))
	if s == "" || containsUnknown(s) {
		return home
	}

	if idx := strings.LastIndex(s, ","); idx >= 0 {
		if last := strings.TrimSpace(s[idx+1:]); last != "" {
			s = last
		}
	}

	if city := strings.TrimSpace(postalPrefix.ReplaceAllString(s, "")); city != "" {
		return city
	}
	return s
}
