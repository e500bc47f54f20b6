package extract

import "strings"

// DefaultBodyLabel is shown for body types not in the label table.
const DefaultBodyLabel = "Motorrad"

// carBodyTypes are folded fragments identifying a car body type.
var carBodyTypes = []string{
	"limousine",
	"kombi",
	"break",
	"estate",
	"wagon",
	"suv",
	"gelandewagen",
	"4x4",
	"cabrio",
	"cabriolet",
	"convertible",
	"roadster",
	"coupe",
	"kleinwagen",
	"compact",
	"hatchback",
	"van",
	"minivan",
	"monospace",
	"bus",
	"pick-up",
	"pickup",
	"sedan",
	"berline",
	"crossover",
}

// IsCarBodyType reports whether bodyType names a car body.
func IsCarBodyType(bodyType string) bool {
	key := Fold(bodyType)
	if key == "" {
		return false
	}
	for _, t := range carBodyTypes {
		if containsWord(key, t) {
			return true
		}
	}
	return false
}

// bodyLabels maps folded upstream body types to display labels. Entries are
// matched by containment in order, so specific types precede generic ones.
var bodyLabels = []struct {
	fragment string
	label    string
}{
	// motorcycles
	{"naked", "Naked Bike"},
	{"supersport", "Supersportler"},
	{"sport", "Sportler"},
	{"tour", "Tourer"},
	{"enduro", "Enduro"},
	{"adventure", "Enduro"},
	{"crossover", "SUV / Geländewagen"},
	{"cross", "Motocross"},
	{"supermoto", "Supermoto"},
	{"chopper", "Chopper/Cruiser"},
	{"cruiser", "Chopper/Cruiser"},
	{"custom", "Chopper/Cruiser"},
	{"roller", "Roller"},
	{"scooter", "Roller"},
	{"retro", "Retro/Classic"},
	{"classic", "Retro/Classic"},
	{"trike", "Trike"},
	{"quad", "Quad"},
	// cars
	{"limousine", "Limousine"},
	{"sedan", "Limousine"},
	{"berline", "Limousine"},
	{"kombi", "Kombi"},
	{"break", "Kombi"},
	{"estate", "Kombi"},
	{"wagon", "Kombi"},
	{"suv", "SUV / Geländewagen"},
	{"gelandewagen", "SUV / Geländewagen"},
	{"4x4", "SUV / Geländewagen"},
	{"cabrio", "Cabriolet"},
	{"convertible", "Cabriolet"},
	{"roadster", "Cabriolet"},
	{"coupe", "Coupé"},
	{"kleinwagen", "Kleinwagen"},
	{"compact", "Kleinwagen"},
	{"hatchback", "Kleinwagen"},
	{"minivan", "Van / Minibus"},
	{"monospace", "Van / Minibus"},
	{"van", "Van / Minibus"},
	{"bus", "Van / Minibus"},
	{"pick", "Pick-up"},
}

// BodyTypeLabel maps a raw body type to its display label.
func BodyTypeLabel(bodyType string) string {
	key := Fold(bodyType)
	if key == "" || isUnknown(key) {
		return DefaultBodyLabel
	}
	for _, l := range bodyLabels {
		if strings.Contains(key, l.fragment) {
			return l.label
		}
	}
	return DefaultBodyLabel
}

// DoorsAndSeats derives typical door and seat counts from a body label. Zero
// means the count does not apply.
func DoorsAndSeats(label string) (doors, seats int) {
	switch label {
	case "Coupé", "Cabriolet":
		return 2, 4
	case "Kleinwagen":
		return 3, 4
	case "Van / Minibus":
		return 5, 7
	case "Pick-up":
		return 4, 5
	case "Limousine", "Kombi", "SUV / Geländewagen":
		return 5, 5
	default:
		return 0, 2
	}
}
