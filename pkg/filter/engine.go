package filter

import (
	"cmp"
	"slices"
	"strings"

	domain "github.com/donaldgifford/dealer-catalog/pkg/types"
)

// Result is one page of the filtered catalog.
type Result struct {
	Items      []domain.Vehicle `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// Count is a candidate filter value with the number of vehicles it would
// select, all other filters held fixed.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Matches reports whether v passes every predicate of s.
func Matches(v *domain.Vehicle, s State) bool {
	return matchCategory(v, s.Category) &&
		matchBrand(v, s.Brand) &&
		matchModel(v, s.Model) &&
		matchAdvanced(v, &s.Advanced)
}

func matchCategory(v *domain.Vehicle, c domain.Category) bool {
	return c == "" || v.Category == c
}

func matchBrand(v *domain.Vehicle, brand string) bool {
	switch brand {
	case "", All:
		return true
	case BrandNew:
		return v.Condition == domain.ConditionNew
	case BrandUsed:
		return v.Condition == domain.ConditionUsed
	default:
		return strings.EqualFold(v.Brand, brand)
	}
}

func matchModel(v *domain.Vehicle, model string) bool {
	if model == "" || model == All {
		return true
	}
	return strings.EqualFold(v.Model, model)
}

func matchAdvanced(v *domain.Vehicle, a *Advanced) bool {
	if a.MaxMileage != nil && v.Mileage > *a.MaxMileage {
		return false
	}
	if a.MinPrice != nil && v.Price < *a.MinPrice {
		return false
	}
	if a.MaxPrice != nil && v.Price > *a.MaxPrice {
		return false
	}
	if a.MinYear != nil && v.Year < *a.MinYear {
		return false
	}
	if a.MaxYear != nil && v.Year > *a.MaxYear {
		return false
	}
	if !matchEnum(v.Fuel, a.FuelType) {
		return false
	}
	return matchEnum(v.Transmission, a.Transmission)
}

func matchEnum(value, want string) bool {
	if want == "" || want == All {
		return true
	}
	return strings.EqualFold(value, want)
}

// Filter returns the vehicles matching s in source order, or in the order
// requested by s.Sort.
func Filter(vehicles []domain.Vehicle, s State) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		if Matches(&vehicles[i], s) {
			out = append(out, vehicles[i])
		}
	}
	sortVehicles(out, s.Sort)
	return out
}

// Apply filters vehicles and slices out the page of s. A page past the end
// yields no items; callers reset to page 1 when the predicate changes.
func Apply(vehicles []domain.Vehicle, s State) Result {
	pageSize := s.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)
	page := max(s.Page, 1)

	filtered := Filter(vehicles, s)
	totalPages := len(filtered) / pageSize
	if len(filtered)%pageSize != 0 {
		totalPages++
	}
	res := Result{
		Items:      []domain.Vehicle{},
		Total:      len(filtered),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	// Compared before multiplying so huge pages cannot overflow.
	if page-1 >= totalPages {
		return res
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(filtered))
	res.Items = filtered[start:end]
	return res
}

// CountMatches returns how many vehicles match s, ignoring pagination.
func CountMatches(vehicles []domain.Vehicle, s State) int {
	n := 0
	for i := range vehicles {
		if Matches(&vehicles[i], s) {
			n++
		}
	}
	return n
}

// BrandCounts returns live counts for "all", "new", "used" and every brand
// of the selected category, brands sorted by name. The model filter is held
// at "all" since a model only exists under its brand.
func BrandCounts(vehicles []domain.Vehicle, s State) []Count {
	base := s
	base.Model = All

	values := append([]string{All, BrandNew, BrandUsed}, Brands(vehicles, s.Category)...)
	out := make([]Count, 0, len(values))
	for _, value := range values {
		probe := base
		probe.Brand = value
		out = append(out, Count{Value: value, Count: CountMatches(vehicles, probe)})
	}
	return out
}

// ModelCounts returns live counts for "all" and every model under the
// selected brand.
func ModelCounts(vehicles []domain.Vehicle, s State) []Count {
	values := append([]string{All}, Models(vehicles, s.Category, s.Brand)...)
	out := make([]Count, 0, len(values))
	for _, value := range values {
		probe := s
		probe.Model = value
		out = append(out, Count{Value: value, Count: CountMatches(vehicles, probe)})
	}
	return out
}

// Brands lists the distinct brands of category in name order.
func Brands(vehicles []domain.Vehicle, category domain.Category) []string {
	return distinct(vehicles, func(v *domain.Vehicle) (string, bool) {
		return v.Brand, matchCategory(v, category)
	})
}

// Models lists the distinct models of brand within category in name order.
// A sentinel brand ("all", "new", "used") selects models across brands,
// limited to the matching condition.
func Models(vehicles []domain.Vehicle, category domain.Category, brand string) []string {
	return distinct(vehicles, func(v *domain.Vehicle) (string, bool) {
		return v.Model, matchCategory(v, category) && matchBrand(v, brand)
	})
}

func distinct(vehicles []domain.Vehicle, pick func(*domain.Vehicle) (string, bool)) []string {
	seen := make(map[string]bool)
	out := []string{}
	for i := range vehicles {
		value, ok := pick(&vehicles[i])
		if !ok || value == "" {
			continue
		}
		key := strings.ToLower(value)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, value)
	}
	slices.SortFunc(out, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}

func sortVehicles(vs []domain.Vehicle, o Sort) {
	var compare func(a, b *domain.Vehicle) int
	switch o {
	case SortPriceAsc:
		compare = func(a, b *domain.Vehicle) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		compare = func(a, b *domain.Vehicle) int { return cmp.Compare(b.Price, a.Price) }
	case SortYearDesc:
		compare = func(a, b *domain.Vehicle) int { return cmp.Compare(b.Year, a.Year) }
	case SortMileageAsc:
		compare = func(a, b *domain.Vehicle) int { return cmp.Compare(a.Mileage, b.Mileage) }
	default:
		return
	}
	slices.SortStableFunc(vs, func(a, b domain.Vehicle) int { return compare(&a, &b) })
}
