package filter_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-catalog/pkg/filter"
	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

func intPtr(n int) *int { return &n }

func vehicle(id, brand, model string, cat domain.Category, cond domain.Condition, price, year, km int) domain.Vehicle {
	return domain.Vehicle{
		ID:           id,
		Brand:        brand,
		Model:        model,
		Category:     cat,
		Condition:    cond,
		Price:        price,
		Year:         year,
		Mileage:      km,
		Fuel:         "Benzin",
		Transmission: "Manuell",
	}
}

func catalogFixture() []domain.Vehicle {
	return []domain.Vehicle{
		vehicle("b1", "YAMAHA", "MT-09", domain.CategoryBike, domain.ConditionUsed, 8900, 2019, 12000),
		vehicle("b2", "YAMAHA", "Tracer 9", domain.CategoryBike, domain.ConditionNew, 15900, 2025, 0),
		vehicle("b3", "KTM", "390 Duke", domain.CategoryBike, domain.ConditionUsed, 4990, 2016, 22000),
		vehicle("b4", "BMW", "R 1250 GS", domain.CategoryBike, domain.ConditionUsed, 17500, 2021, 30000),
		vehicle("b5", "YAMAHA", "MT-09", domain.CategoryBike, domain.ConditionNew, 11200, 2024, 10),
		vehicle("c1", "AUDI", "A4", domain.CategoryCar, domain.ConditionUsed, 21900, 2018, 88000),
		vehicle("c2", "BMW", "320d", domain.CategoryCar, domain.ConditionUsed, 18500, 2017, 120000),
	}
}

func ids(vs []domain.Vehicle) []string {
	out := make([]string, len(vs))
	for i := range vs {
		out[i] = vs[i].ID
	}
	return out
}

func TestApply_Predicates(t *testing.T) {
	t.Parallel()

	cat := catalogFixture()
	bikes := filter.NewState(domain.CategoryBike, 6)

	tests := []struct {
		name  string
		state filter.State
		want  []string
	}{
		{name: "category only", state: bikes, want: []string{"b1", "b2", "b3", "b4", "b5"}},
		{name: "cars", state: bikes.WithCategory(domain.CategoryCar), want: []string{"c1", "c2"}},
		{name: "brand", state: bikes.WithBrand("yamaha"), want: []string{"b1", "b2", "b5"}},
		{name: "new", state: bikes.WithBrand(filter.BrandNew), want: []string{"b2", "b5"}},
		{name: "used", state: bikes.WithBrand(filter.BrandUsed), want: []string{"b1", "b3", "b4"}},
		{name: "brand and model", state: bikes.WithBrand("YAMAHA").WithModel("MT-09"), want: []string{"b1", "b5"}},
		{name: "model from other brand matches nothing", state: bikes.WithBrand("KTM").WithModel("MT-09"), want: []string{}},
		{
			name:  "price range",
			state: bikes.WithAdvanced(filter.Advanced{MinPrice: intPtr(5000), MaxPrice: intPtr(12000)}),
			want:  []string{"b1", "b5"},
		},
		{
			name:  "year and mileage",
			state: bikes.WithAdvanced(filter.Advanced{MinYear: intPtr(2020), MaxMileage: intPtr(100)}),
			want:  []string{"b2", "b5"},
		},
		{
			name:  "fuel mismatch",
			state: bikes.WithAdvanced(filter.Advanced{FuelType: "Elektro"}),
			want:  []string{},
		},
		{
			name:  "transmission case-insensitive",
			state: bikes.WithAdvanced(filter.Advanced{Transmission: "manuell"}),
			want:  []string{"b1", "b2", "b3", "b4", "b5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := filter.Apply(cat, tt.state)
			assert.Equal(t, tt.want, ids(res.Items))
			assert.Equal(t, len(tt.want), res.Total)
		})
	}
}

func TestApply_SevenCarsPageSizeSix(t *testing.T) {
	t.Parallel()

	var cat []domain.Vehicle
	for i := 1; i <= 7; i++ {
		cat = append(cat, vehicle(fmt.Sprintf("c%d", i), "AUDI", "A3", domain.CategoryCar, domain.ConditionUsed, 10000+i, 2018, 50000))
	}

	s := filter.NewState(domain.CategoryCar, 6)
	page1 := filter.Apply(cat, s)
	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5", "c6"}, ids(page1.Items))
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 7, page1.Total)

	page2 := filter.Apply(cat, s.WithPage(2))
	assert.Equal(t, []string{"c7"}, ids(page2.Items))

	page3 := filter.Apply(cat, s.WithPage(3))
	assert.Empty(t, page3.Items)
	assert.Equal(t, 3, page3.Page)
}

func TestApply_PaginationCompleteness(t *testing.T) {
	t.Parallel()

	cat := catalogFixture()
	for _, size := range []int{1, 2, 3, 4, 6, 10} {
		s := filter.NewState(domain.CategoryBike, size)
		first := filter.Apply(cat, s)

		var seen []string
		for p := 1; p <= first.TotalPages; p++ {
			seen = append(seen, ids(filter.Apply(cat, s.WithPage(p)).Items)...)
		}
		assert.Equal(t, ids(filter.Filter(cat, s)), seen, "page size %d", size)
	}
}

func TestApply_HugePageAndPageSize(t *testing.T) {
	t.Parallel()

	var cat []domain.Vehicle
	for i := 1; i <= 7; i++ {
		cat = append(cat, vehicle(fmt.Sprintf("b%d", i), "KTM", "390 Duke", domain.CategoryBike, domain.ConditionUsed, 4000+i, 2016, 20000))
	}
	base := filter.NewState(domain.CategoryBike, 6)

	tests := []struct {
		name           string
		state          filter.State
		wantItems      int
		wantTotalPages int
		wantPageSize   int
	}{
		{name: "max int page", state: base.WithPage(math.MaxInt), wantItems: 0, wantTotalPages: 2, wantPageSize: 6},
		{name: "page just past overflow", state: base.WithPage(math.MaxInt/6 + 2), wantItems: 0, wantTotalPages: 2, wantPageSize: 6},
		{name: "max int page size is capped", state: filter.State{Category: domain.CategoryBike, Brand: filter.All, Model: filter.All, Page: 1, PageSize: math.MaxInt}, wantItems: 7, wantTotalPages: 1, wantPageSize: filter.MaxPageSize},
		{name: "max int page and page size", state: filter.State{Category: domain.CategoryBike, Brand: filter.All, Model: filter.All, Page: math.MaxInt, PageSize: math.MaxInt}, wantItems: 0, wantTotalPages: 1, wantPageSize: filter.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got filter.Result
			require.NotPanics(t, func() { got = filter.Apply(cat, tt.state) })
			assert.Len(t, got.Items, tt.wantItems)
			assert.Equal(t, 7, got.Total)
			assert.Equal(t, tt.wantTotalPages, got.TotalPages)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestApply_Monotonicity(t *testing.T) {
	t.Parallel()

	cat := catalogFixture()
	base := filter.NewState(domain.CategoryBike, 6)
	constraints := []filter.Advanced{
		{MaxMileage: intPtr(15000)},
		{MinPrice: intPtr(9000)},
		{MaxPrice: intPtr(16000)},
		{MinYear: intPtr(2019)},
		{MaxYear: intPtr(2024)},
		{FuelType: "Benzin"},
		{Transmission: "Automatik"},
	}

	var acc filter.Advanced
	prev := filter.CountMatches(cat, base)
	for _, c := range constraints {
		merge(&acc, c)
		n := filter.CountMatches(cat, base.WithAdvanced(acc))
		assert.LessOrEqual(t, n, prev)
		prev = n
	}
}

func merge(dst *filter.Advanced, src filter.Advanced) {
	if src.MaxMileage != nil {
		dst.MaxMileage = src.MaxMileage
	}
	if src.MinPrice != nil {
		dst.MinPrice = src.MinPrice
	}
	if src.MaxPrice != nil {
		dst.MaxPrice = src.MaxPrice
	}
	if src.MinYear != nil {
		dst.MinYear = src.MinYear
	}
	if src.MaxYear != nil {
		dst.MaxYear = src.MaxYear
	}
	if src.FuelType != "" {
		dst.FuelType = src.FuelType
	}
	if src.Transmission != "" {
		dst.Transmission = src.Transmission
	}
}

func TestApply_Sort(t *testing.T) {
	t.Parallel()

	cat := catalogFixture()
	s := filter.NewState(domain.CategoryBike, 10)

	assert.Equal(t, []string{"b3", "b1", "b5", "b2", "b4"}, ids(filter.Apply(cat, s.WithSort(filter.SortPriceAsc)).Items))
	assert.Equal(t, []string{"b4", "b2", "b5", "b1", "b3"}, ids(filter.Apply(cat, s.WithSort(filter.SortPriceDesc)).Items))
	assert.Equal(t, []string{"b2", "b5", "b4", "b1", "b3"}, ids(filter.Apply(cat, s.WithSort(filter.SortYearDesc)).Items))
	assert.Equal(t, []string{"b2", "b5", "b1", "b3", "b4"}, ids(filter.Apply(cat, s.WithSort(filter.SortMileageAsc)).Items))

	// Sorting never reorders the input.
	assert.Equal(t, "b1", cat[0].ID)
}

func TestBrandCounts(t *testing.T) {
	t.Parallel()

	cat := catalogFixture()
	s := filter.NewState(domain.CategoryBike, 6).WithBrand("YAMAHA").WithModel("Tracer 9")

	got := filter.BrandCounts(cat, s)
	assert.Equal(t, []filter.Count{
		{Value: filter.All, Count: 5},
		{Value: filter.BrandNew, Count: 2},
		{Value: filter.BrandUsed, Count: 3},
		{Value: "BMW", Count: 1},
		{Value: "KTM", Count: 1},
		{Value: "YAMAHA", Count: 3},
	}, got)

	// Counts follow the advanced filters.
	cheap := s.WithAdvanced(filter.Advanced{MaxPrice: intPtr(10000)})
	got = filter.BrandCounts(cat, cheap)
	assert.Equal(t, filter.Count{Value: filter.All, Count: 2}, got[0])
	assert.Equal(t, filter.Count{Value: "BMW", Count: 0}, got[3])
}

func TestModelCounts(t *testing.T) {
	t.Parallel()

	cat := catalogFixture()
	s := filter.NewState(domain.CategoryBike, 6).WithBrand("YAMAHA")

	assert.Equal(t, []filter.Count{
		{Value: filter.All, Count: 3},
		{Value: "MT-09", Count: 2},
		{Value: "Tracer 9", Count: 1},
	}, filter.ModelCounts(cat, s))
}

func TestFacets(t *testing.T) {
	t.Parallel()

	cat := catalogFixture()
	assert.Equal(t, []string{"AUDI", "BMW"}, filter.Brands(cat, domain.CategoryCar))
	assert.Equal(t, []string{"390 Duke", "MT-09", "R 1250 GS", "Tracer 9"}, filter.Models(cat, domain.CategoryBike, filter.All))
	assert.Equal(t, []string{"MT-09", "Tracer 9"}, filter.Models(cat, domain.CategoryBike, filter.BrandNew))
	require.Empty(t, filter.Models(cat, domain.CategoryCar, "KTM"))
}
