package normalize

import (
	"github.com/donaldgifford/dealer-catalog/pkg/extract"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// buildMultilingual returns a bundle holding a full de/fr/en triple for every
// translatable field. Raw translations are kept; gaps are filled from the
// German value and then from the normalized top-level value.
func buildMultilingual(raw *domain.RawVehicleRecord, v *domain.Vehicle) domain.Multilingual {
	out := make(domain.Multilingual, len(domain.TranslatableFields))

	if raw.HasMultilingual() {
		for field, tr := range *raw.Multilingual {
			out[field] = complete(cleanTranslation(field, tr), v.Field(field))
		}
	}

	for _, field := range domain.TranslatableFields {
		if _, ok := out[field]; ok {
			continue
		}
		out[field] = domain.Uniform(v.Field(field))
	}
	return out
}

// complete fills empty locales from German, then from base. Without either,
// the first non-empty translation stands in for German.
func complete(tr domain.Translation, base domain.Text) domain.Translation {
	if tr.DE.IsEmpty() {
		tr.DE = base
	}
	if tr.DE.IsEmpty() {
		for _, loc := range domain.Locales {
			if t := tr.Get(loc); !t.IsEmpty() {
				tr.DE = t
				break
			}
		}
	}
	for _, loc := range domain.Locales {
		if tr.Get(loc).IsEmpty() {
			tr.Set(loc, tr.DE)
		}
	}
	return tr
}

func cleanTranslation(field string, tr domain.Translation) domain.Translation {
	for _, loc := range domain.Locales {
		tr.Set(loc, cleanText(field, tr.Get(loc)))
	}
	return tr
}

func cleanText(field string, t domain.Text) domain.Text {
	if t.IsList {
		return domain.TextList(cleanList(t.List, cleanLine))
	}
	if field == domain.FieldDescription {
		return domain.TextString(extract.CleanDescription(t.Str))
	}
	return domain.TextString(cleanLine(t.Str))
}
