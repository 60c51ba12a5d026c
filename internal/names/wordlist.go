package names

import "math/rand"

// League and team adjectives, loosely weather/size/sound themed.
var adjectives = []string{
	"Crimson", "Thundering", "Golden", "Roaring", "Silent",
	"Howling", "Amber", "Frozen", "Blazing", "Mighty",
	"Rapid", "Iron", "Stormy", "Gilded", "Raging",
	"Silver", "Wandering", "Colossal", "Humble", "Radiant",
}

// Team mascots, mixing birds, cats and apex predators.
var mascots = []string{
	"Falcons", "Lions", "Wolves", "Eagles", "Panthers",
	"Sharks", "Tigers", "Ravens", "Cobras", "Bulls",
	"Hawks", "Jaguars", "Vipers", "Bears", "Foxes",
	"Herons", "Leopards", "Stallions", "Otters", "Condors",
}

var givenNames = []string{
	"Rowan", "Marcus", "Theron", "Mateo", "Diego",
	"Kofi", "Jabari", "Kwame", "Kenji", "Hiroshi",
	"Arjun", "Ravi", "Vikram", "Nasir", "Khalil",
	"Omar", "Rashid", "Tariq", "Rafael", "Alejandro",
	"Miguel", "Andre", "Leo", "Sam", "Jordan",
	"Elias", "Nico", "Dario", "Felix", "Iker",
	"Luca", "Emil", "Jonas", "Abel", "Santiago",
}

var familyNames = []string{
	"Blackwood", "Ashford", "Silverwood", "Greymoor", "Fairchild",
	"Okonkwo", "Diallo", "Mensah", "Kone", "Traore",
	"Tanaka", "Chen", "Sharma", "Nguyen", "Kim",
	"Nakamura", "Patel", "Yamamoto", "Singh", "Li",
	"Hakim", "Khoury", "Karimi", "Mansouri", "Abbasi",
	"Reyes", "Mendoza", "Castillo", "Vargas", "Delgado",
	"Moreno", "Fuentes", "Navarro", "Santos", "Vega",
}

// WordlistSupplier composes names from fixed word lists using an injected
// random source.
type WordlistSupplier struct {
	rng *rand.Rand
}

// NewWordlistSupplier builds a supplier drawing from the package word lists.
func NewWordlistSupplier(rng *rand.Rand) *WordlistSupplier {
	return &WordlistSupplier{rng: rng}
}

// Next returns a candidate name styled for the scope.
func (s *WordlistSupplier) Next(scope Scope) string {
	switch scope {
	case ScopeLeague:
		return s.pick(adjectives) + " League"
	case ScopeTeam:
		return s.pick(adjectives) + " " + s.pick(mascots) + " FC"
	default:
		return s.pick(givenNames) + " " + s.pick(familyNames)
	}
}

func (s *WordlistSupplier) pick(list []string) string {
	return list[s.rng.Intn(len(list))]
}
