package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a translatable value. It holds either a single string or an
// ordered list of strings (feature lists).
type Text struct {
	Str    string
	List   []string
	IsList bool
}

// TextString wraps a scalar string.
func TextString(s string) Text {
	return Text{Str: s}
}

// TextList wraps a list of strings. A nil list becomes an empty list so JSON
// output is always an array.
func TextList(l []string) Text {
	if l == nil {
		l = []string{}
	}
	return Text{List: l, IsList: true}
}

// IsEmpty reports whether the value carries no visible content.
func (t Text) IsEmpty() bool {
	if t.IsList {
		for _, s := range t.List {
			if s != "" {
				return false
			}
		}
		return true
	}
	return t.Str == ""
}

// String returns the scalar form; lists are joined with ", ".
func (t Text) String() string {
	if !t.IsList {
		return t.Str
	}
	var b bytes.Buffer
	for i, s := range t.List {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
	}
	return b.String()
}

// MarshalJSON encodes a list as an array and a scalar as a string.
func (t Text) MarshalJSON() ([]byte, error) {
	if t.IsList {
		l := t.List
		if l == nil {
			l = []string{}
		}
		return json.Marshal(l)
	}
	return json.Marshal(t.Str)
}

// UnmarshalJSON accepts a string, an array of strings, or null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Text{}
		return nil
	}
	if data[0] == '[' {
		var l []any
		if err := json.Unmarshal(data, &l); err != nil {
			return fmt.Errorf("decoding text list: %w", err)
		}
		out := make([]string, 0, len(l))
		for _, item := range l {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		*t = TextList(out)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Numbers and booleans are kept in their literal form.
		*t = TextString(string(data))
		return nil //nolint:nilerr // non-string scalars degrade to their literal text
	}
	*t = TextString(s)
	return nil
}

// Translation is the de/fr/en triple of one translatable field.
type Translation struct {
	DE Text `json:"de"`
	FR Text `json:"fr"`
	EN Text `json:"en"`
}

// Get returns the value for loc. Unsupported locales return the German value.
func (t Translation) Get(loc Locale) Text {
	switch loc {
	case LocaleFR:
		return t.FR
	case LocaleEN:
		return t.EN
	default:
		return t.DE
	}
}

// Set stores v for loc. Unsupported locales write the German value.
func (t *Translation) Set(loc Locale, v Text) {
	switch loc {
	case LocaleFR:
		t.FR = v
	case LocaleEN:
		t.EN = v
	default:
		t.DE = v
	}
}

// Complete reports whether all three locales carry content.
func (t Translation) Complete() bool {
	return !t.DE.IsEmpty() && !t.FR.IsEmpty() && !t.EN.IsEmpty()
}

// Uniform returns a translation repeating v in every locale.
func Uniform(v Text) Translation {
	return Translation{DE: v, FR: v, EN: v}
}

// Multilingual maps a field name to its translation triple.
type Multilingual map[string]Translation

// UnmarshalJSON accepts a JSON object or a JSON-encoded string containing
// one, which is how some upstream rows store the bundle.
func (m *Multilingual) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return fmt.Errorf("decoding multilingual string: %w", err)
		}
		if inner == "" {
			*m = nil
			return nil
		}
		data = []byte(inner)
	}
	raw := map[string]Translation{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding multilingual bundle: %w", err)
	}
	*m = raw
	return nil
}
