package match

// Tables holds the immutable domain-knowledge lookups shared by the
// scorers: relatedness graphs for partial credit, the enumerated value
// spaces used by the select-all equivalence rule, and keyword lists
// for free-text fallbacks. Built once via DefaultTables and passed by
// reference; never mutated.
type Tables struct {
	// GeoAdjacency maps a geographic feature to features considered
	// close enough for half credit.
	GeoAdjacency map[string][]string

	// VegetationAdjacency is the same idea over vegetation types.
	VegetationAdjacency map[string][]string

	// AllGeoFeatures and AllVegetationTypes are the full enumerated
	// value spaces; selecting every value is equivalent to selecting
	// none.
	AllGeoFeatures     []string
	AllVegetationTypes []string

	// CoastalKeywords are substrings scanned in free-text region names
	// when a coastal preference has no structured data to match.
	CoastalKeywords []string

	// Subdivisions maps first-level administrative subdivisions that
	// count as a full country-tier match to their owning country. The
	// country qualifies the match so a subdivision name shared with a
	// foreign region cannot claim the full tier.
	Subdivisions map[string]string

	// VisaFreeKeywords and ResidencyKeywords mark favorable phrases in
	// free-text visa requirement fields.
	VisaFreeKeywords  []string
	ResidencyKeywords []string

	subdivisions map[string]string
}

// Weights is the category weight table. Values are percentages and
// must sum to 100.
type Weights struct {
	Region  int `toml:"region" json:"region"`
	Climate int `toml:"climate" json:"climate"`
	Culture int `toml:"culture" json:"culture"`
	Hobbies int `toml:"hobbies" json:"hobbies"`
	Admin   int `toml:"administration" json:"administration"`
	Cost    int `toml:"cost" json:"cost"`
}

// Sum returns the total of all six weights.
func (w Weights) Sum() int {
	return w.Region + w.Climate + w.Culture + w.Hobbies + w.Admin + w.Cost
}

// DefaultWeights returns the canonical category weight table.
func DefaultWeights() Weights {
	return Weights{
		Region:  20,
		Climate: 15,
		Culture: 15,
		Hobbies: 10,
		Admin:   20,
		Cost:    20,
	}
}

// DefaultTables returns the canonical relatedness and enumeration
// tables.
func DefaultTables() *Tables {
	t := &Tables{
		GeoAdjacency: map[string][]string{
			"coastal":  {"island", "lake", "river"},
			"island":   {"coastal"},
			"lake":     {"coastal", "river"},
			"river":    {"lake", "coastal"},
			"mountain": {"valley", "forest"},
			"valley":   {"mountain", "river"},
			"forest":   {"mountain", "valley"},
			"plains":   {"valley"},
			"desert":   {},
		},
		VegetationAdjacency: map[string][]string{
			"mediterranean": {"subtropical"},
			"subtropical":   {"mediterranean", "tropical"},
			"tropical":      {"subtropical"},
			"forest":        {"grassland"},
			"grassland":     {"forest"},
			"desert":        {},
		},
		AllGeoFeatures: []string{
			"coastal", "mountain", "island", "lake", "river",
			"valley", "forest", "plains", "desert",
		},
		AllVegetationTypes: []string{
			"tropical", "subtropical", "mediterranean",
			"forest", "grassland", "desert",
		},
		CoastalKeywords: []string{
			"coast", "coastal", "ocean", "beach", "sea", "gulf", "bay",
			"mediterranean", "atlantic", "pacific", "caribbean",
			"adriatic", "aegean", "baltic",
		},
		Subdivisions: usSubdivisions(),
		VisaFreeKeywords: []string{
			"visa-free", "visa free", "no visa required", "visa on arrival",
			"90 days", "180 days",
		},
		ResidencyKeywords: []string{
			"residency", "residence permit", "golden visa",
			"retirement visa", "pensionado",
		},
	}
	t.subdivisions = make(map[string]string, len(t.Subdivisions))
	for name, country := range t.Subdivisions {
		t.subdivisions[norm(name)] = country
	}
	return t
}

// subdivisionCountry returns the owning country of a known first-level
// administrative subdivision.
func (t *Tables) subdivisionCountry(v string) (string, bool) {
	country, ok := t.subdivisions[norm(v)]
	return country, ok
}

// related reports whether a and b are adjacent in the given
// relatedness table, in either direction.
func related(table map[string][]string, a, b string) bool {
	an, bn := norm(a), norm(b)
	for _, r := range table[an] {
		if r == bn {
			return true
		}
	}
	for _, r := range table[bn] {
		if r == an {
			return true
		}
	}
	return false
}

// anyRelated reports whether any preferred value is adjacent to any
// candidate value.
func anyRelated(table map[string][]string, preferred, candidate []string) bool {
	for _, p := range preferred {
		for _, c := range candidate {
			if related(table, p, c) {
				return true
			}
		}
	}
	return false
}

var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California",
	"Colorado", "Connecticut", "Delaware", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas",
	"Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts",
	"Michigan", "Minnesota", "Mississippi", "Missouri", "Montana",
	"Nebraska", "Nevada", "New Hampshire", "New Jersey", "New Mexico",
	"New York", "North Carolina", "North Dakota", "Ohio", "Oklahoma",
	"Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

func usSubdivisions() map[string]string {
	subs := make(map[string]string, len(usStates))
	for _, s := range usStates {
		subs[s] = "United States"
	}
	return subs
}
