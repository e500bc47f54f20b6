package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-catalog/pkg/locale"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    domain.Locale
		wantErr bool
	}{
		{name: "german", in: "de", want: domain.LocaleDE},
		{name: "swiss french", in: "fr-CH", want: domain.LocaleFR},
		{name: "upper case", in: "EN", want: domain.LocaleEN},
		{name: "italian unsupported", in: "it", wantErr: true},
		{name: "garbage", in: "??", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := locale.Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, locale.ErrUnsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		accept string
		query  string
		want   domain.Locale
	}{
		{name: "query wins", accept: "fr-CH,fr;q=0.9", query: "en", want: domain.LocaleEN},
		{name: "header", accept: "fr-CH,fr;q=0.9,en;q=0.8", want: domain.LocaleFR},
		{name: "header weights", accept: "it;q=1.0,en;q=0.5", want: domain.LocaleEN},
		{name: "unsupported header", accept: "ja", want: domain.LocaleDE},
		{name: "invalid query falls to header", accept: "en-GB", query: "xx-invalid-$$", want: domain.LocaleEN},
		{name: "nothing", want: domain.LocaleDE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, locale.Negotiate(tt.accept, tt.query))
		})
	}
}

func vehicleFixture() domain.Vehicle {
	return domain.Vehicle{
		ID:          "v1",
		Title:       "YAMAHA MT-09",
		Description: "Basis",
		Features:    []string{"ABS"},
		Location:    "Zürich",
		Multilingual: domain.Multilingual{
			domain.FieldTitle: {
				DE: domain.TextString("YAMAHA MT-09"),
				FR: domain.TextString("YAMAHA MT-09 (FR)"),
				EN: domain.TextString(""),
			},
			domain.FieldDescription: {
				DE: domain.TextString(""),
				FR: domain.TextString("Description"),
				EN: domain.TextString(""),
			},
			domain.FieldFeatures: {
				DE: domain.TextList([]string{"ABS", "TCS"}),
				FR: domain.TextList(nil),
				EN: domain.TextList([]string{"ABS", "traction control"}),
			},
		},
	}
}

func TestProject(t *testing.T) {
	t.Parallel()

	v := vehicleFixture()

	tests := []struct {
		name  string
		field string
		loc   domain.Locale
		want  domain.Text
	}{
		{name: "requested locale", field: domain.FieldTitle, loc: domain.LocaleFR, want: domain.TextString("YAMAHA MT-09 (FR)")},
		{name: "empty falls back to de", field: domain.FieldTitle, loc: domain.LocaleEN, want: domain.TextString("YAMAHA MT-09")},
		{name: "empty de falls back to base", field: domain.FieldDescription, loc: domain.LocaleEN, want: domain.TextString("Basis")},
		{name: "list in locale", field: domain.FieldFeatures, loc: domain.LocaleEN, want: domain.TextList([]string{"ABS", "traction control"})},
		{name: "empty list falls back to de", field: domain.FieldFeatures, loc: domain.LocaleFR, want: domain.TextList([]string{"ABS", "TCS"})},
		{name: "field without bundle uses base", field: domain.FieldLocation, loc: domain.LocaleFR, want: domain.TextString("Zürich")},
		{name: "unknown field is empty", field: "nope", loc: domain.LocaleFR, want: domain.Text{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, locale.Project(&v, tt.field, tt.loc))
		})
	}
}

func TestProject_NeverEmptyWhenBaseSet(t *testing.T) {
	t.Parallel()

	v := vehicleFixture()
	for _, field := range domain.TranslatableFields {
		for _, loc := range domain.Locales {
			if v.Field(field).IsEmpty() {
				continue
			}
			assert.False(t, locale.Project(&v, field, loc).IsEmpty(), "%s/%s", field, loc)
		}
	}
}

func TestProjectVehicle(t *testing.T) {
	t.Parallel()

	v := vehicleFixture()
	lv := locale.ProjectVehicle(&v, domain.LocaleFR)

	assert.Equal(t, domain.LocaleFR, lv.Locale)
	assert.Equal(t, "YAMAHA MT-09 (FR)", lv.Title)
	assert.Equal(t, "Description", lv.Description)
	assert.Equal(t, []string{"ABS", "TCS"}, lv.Features)
	assert.NotNil(t, lv.Images)
	assert.Empty(t, lv.Color)
}

func TestProjectRentalCar(t *testing.T) {
	t.Parallel()

	r := domain.RentalCar{
		ID:   "r1",
		Name: "VW Golf",
		Multilingual: domain.Multilingual{
			"name": {DE: domain.TextString("VW Golf"), FR: domain.TextString("VW Golf (location)")},
		},
	}

	lr := locale.ProjectRentalCar(&r, domain.LocaleFR)
	assert.Equal(t, "VW Golf (location)", lr.Name)
	assert.Empty(t, lr.Features)
	assert.NotNil(t, lr.Features)

	lr = locale.ProjectRentalCar(&r, domain.LocaleEN)
	assert.Equal(t, "VW Golf", lr.Name)
}
