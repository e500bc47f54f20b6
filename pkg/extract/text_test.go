package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/dealer-catalog/pkg/extract"
)

func TestCleanDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "Top Zustand", want: "Top Zustand"},
		{name: "single escaped newline", in: `Zeile 1\nZeile 2`, want: "Zeile 1\nZeile 2"},
		{name: "double escaped newline", in: `Zeile 1\\nZeile 2`, want: "Zeile 1\nZeile 2"},
		{name: "escaped quotes", in: `Modell \"Street\"`, want: `Modell "Street"`},
		{name: "double escaped quote", in: `Modell \\"Street\\"`, want: `Modell "Street"`},
		{name: "carriage return dropped", in: `a\r\nb`, want: "a\nb"},
		{name: "unicode ampersand", in: `Service \u0026 MFK`, want: "Service & MFK"},
		{name: "br to newline", in: "eins<br>zwei<BR/>drei", want: "eins\nzwei\ndrei"},
		{name: "tags stripped", in: "<p><b>Neu</b> eingetroffen</p>", want: "Neu eingetroffen"},
		{name: "entities decoded", in: "Preis &amp; Leistung", want: "Preis & Leistung"},
		{name: "collapsed backslashes", in: `C:\\Pfad`, want: `C:\Pfad`},
		{name: "whitespace trimmed", in: "  \n hallo \n ", want: "hallo"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.CleanDescription(tt.in))
		})
	}
}

func TestCleanDescription_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`\\\\n`,
		`\\\n`,
		`&amp;lt;br&amp;gt;`,
		`<<b>>x<</b>>`,
		`\\u0026amp;`,
		"a\\\\\\\"b",
		"<br>\n\n\n\n<br>",
		`ends with \`,
		"&" + strings.Repeat("amp;", 20) + "lt;b&gt;x",
		strings.Repeat(`\`, 1<<18) + "n",
		strings.Repeat("&amp;", 40) + "quot;",
	}

	for _, in := range inputs {
		once := extract.CleanDescription(in)
		assert.Equal(t, once, extract.CleanDescription(once), "input %q", in)
	}
}

func TestCleanDescription_DeeplyNested(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "twenty entity layers", in: "&" + strings.Repeat("amp;", 20) + "lt;b&gt;x", want: "x"},
		{name: "many escaped backslashes", in: strings.Repeat(`\`, 1<<18) + "n", want: `\`},
		{name: "layered quote entity", in: "Modell " + "&" + strings.Repeat("amp;", 30) + "quot;Street", want: `Modell "Street`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.CleanDescription(tt.in))
		})
	}
}

func TestCleanLocation(t *testing.T) {
	t.Parallel()

	const home = "Zürich"

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "full address", in: "Bahnhofstrasse 1, 8001 Zürich", want: "Zürich"},
		{name: "country prefixed postal code", in: "Hauptstrasse 5, CH-3000 Bern", want: "Bern"},
		{name: "postal code only prefix", in: "6003 Luzern", want: "Luzern"},
		{name: "city only", in: "Winterthur", want: "Winterthur"},
		{name: "empty", in: "", want: home},
		{name: "placeholder", in: "Standort unbekannt", want: home},
		{name: "trailing comma keeps text", in: "Basel,", want: "Basel,"},
		{name: "postal code alone kept", in: "8400", want: "8400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.CleanLocation(tt.in, home))
		})
	}
}

func TestBodyType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantCar   bool
		wantLabel string
	}{
		{name: "naked bike", raw: "Naked bike", wantCar: false, wantLabel: "Naked Bike"},
		{name: "kombi", raw: "Kombi", wantCar: true, wantLabel: "Kombi"},
		{name: "accented suv", raw: "SUV / Geländewagen", wantCar: true, wantLabel: "SUV / Geländewagen"},
		{name: "coupe with accent", raw: "Coupé", wantCar: true, wantLabel: "Coupé"},
		{name: "crossover is not motocross", raw: "Crossover", wantCar: true, wantLabel: "SUV / Geländewagen"},
		{name: "motocross", raw: "Motocross", wantCar: false, wantLabel: "Motocross"},
		{name: "scooter", raw: "Scooter", wantCar: false, wantLabel: "Roller"},
		{name: "unknown", raw: "Spaceship", wantCar: false, wantLabel: extract.DefaultBodyLabel},
		{name: "empty", raw: "", wantCar: false, wantLabel: extract.DefaultBodyLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCar, extract.IsCarBodyType(tt.raw))
			assert.Equal(t, tt.wantLabel, extract.BodyTypeLabel(tt.raw))
		})
	}
}

func TestDoorsAndSeats(t *testing.T) {
	t.Parallel()

	doors, seats := extract.DoorsAndSeats("Kombi")
	assert.Equal(t, 5, doors)
	assert.Equal(t, 5, seats)

	doors, seats = extract.DoorsAndSeats("Naked Bike")
	assert.Zero(t, doors)
	assert.Equal(t, 2, seats)
}
