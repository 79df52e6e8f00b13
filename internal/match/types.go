package match

// PreferenceProfile holds one requester's relocation preferences,
// partitioned into six independent slices. A nil slice means the
// requester expressed no preference in that category and receives
// full credit for it.
type PreferenceProfile struct {
	Region  *RegionPreferences  `json:"region,omitempty"`
	Climate *ClimatePreferences `json:"climate,omitempty"`
	Culture *CulturePreferences `json:"culture,omitempty"`
	Hobbies *HobbyPreferences   `json:"hobbies,omitempty"`
	Admin   *AdminPreferences   `json:"administration,omitempty"`
	Cost    *CostPreferences    `json:"cost,omitempty"`
}

// RegionPreferences describes where the requester wants to live.
// All sets are case-insensitive; order is irrelevant.
type RegionPreferences struct {
	Countries          []string `json:"countries,omitempty"`
	Regions            []string `json:"regions,omitempty"`
	Provinces          []string `json:"provinces,omitempty"`
	GeographicFeatures []string `json:"geographic_features,omitempty"`
	VegetationTypes    []string `json:"vegetation_types,omitempty"`
}

// ClimatePreferences describes acceptable climate categoricals.
// Seasonal is a single value; empty or "Optional" means no preference.
type ClimatePreferences struct {
	Summer        []string `json:"summer_preference,omitempty"`
	Winter        []string `json:"winter_preference,omitempty"`
	Humidity      []string `json:"humidity,omitempty"`
	Sunshine      []string `json:"sunshine,omitempty"`
	Precipitation []string `json:"precipitation,omitempty"`
	Seasonal      string   `json:"seasonal_preference,omitempty"`
}

// CulturePreferences describes lifestyle and language preferences.
// Languages is the set of languages the requester already speaks.
// Importance ratings run 1-5; zero means unrated.
type CulturePreferences struct {
	PaceOfLife        []string `json:"pace_of_life,omitempty"`
	SocialAtmosphere  []string `json:"social_atmosphere,omitempty"`
	ExpatCommunity    []string `json:"expat_community_size,omitempty"`
	Languages         []string `json:"language_comfort,omitempty"`
	DiningImportance  int      `json:"dining_importance,omitempty"`
	EventsImportance  int      `json:"events_importance,omitempty"`
	MuseumsImportance int      `json:"museums_importance,omitempty"`
}

// HobbyPreferences lists the activities the requester wants available.
// TravelFrequency is one of "rare", "occasional", "frequent".
type HobbyPreferences struct {
	Activities      []string `json:"activities,omitempty"`
	Interests       []string `json:"interests,omitempty"`
	CustomHobbies   []string `json:"custom_hobbies,omitempty"`
	TravelFrequency string   `json:"travel_frequency,omitempty"`
}

// AdminPreferences describes healthcare, safety and visa requirements.
// Citizenship affects visa-free-travel lookups.
type AdminPreferences struct {
	HealthcareQuality []string `json:"healthcare_quality,omitempty"`
	SafetyImportance  []string `json:"safety_importance,omitempty"`
	VisaPreference    []string `json:"visa_preference,omitempty"`
	Citizenship       string   `json:"citizenship,omitempty"`
}

// CostPreferences holds monthly budget figures in USD. Zero means the
// requester did not state a figure.
type CostPreferences struct {
	MonthlyBudget    float64 `json:"total_monthly_budget,omitempty"`
	MaxRent          float64 `json:"max_monthly_rent,omitempty"`
	MaxHomePrice     float64 `json:"max_home_price,omitempty"`
	HealthcareBudget float64 `json:"monthly_healthcare_budget,omitempty"`
}

// Candidate is the flat attribute bag for one location, already
// materialized by a provider. Pointer fields are nullable: nil means
// the source has no data, which is scored as zero credit rather than
// treated as an error. Hobbies is the resolved set of hobby names
// available at the location (universal hobbies plus its own
// associations).
type Candidate struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Region  string `json:"region,omitempty"`

	Regions            []string `json:"regions,omitempty"`
	GeoRegion          string   `json:"geo_region,omitempty"`
	GeographicFeatures []string `json:"geographic_features,omitempty"`
	VegetationTypes    []string `json:"vegetation_types,omitempty"`

	SummerClimate     string `json:"summer_climate,omitempty"`
	WinterClimate     string `json:"winter_climate,omitempty"`
	Humidity          string `json:"humidity,omitempty"`
	Sunshine          string `json:"sunshine,omitempty"`
	Precipitation     string `json:"precipitation,omitempty"`
	SeasonalVariation string `json:"seasonal_variation,omitempty"`

	PaceOfLife         string `json:"pace_of_life,omitempty"`
	SocialAtmosphere   string `json:"social_atmosphere,omitempty"`
	ExpatCommunity     string `json:"expat_community,omitempty"`
	PrimaryLanguage    string `json:"primary_language,omitempty"`
	EnglishProficiency string `json:"english_proficiency,omitempty"`
	DiningRating       int    `json:"dining_rating,omitempty"`
	EventsRating       int    `json:"events_rating,omitempty"`
	MuseumsRating      int    `json:"museums_rating,omitempty"`

	HealthcareScore  *float64 `json:"healthcare_score,omitempty"`
	SafetyScore      *float64 `json:"safety_score,omitempty"`
	GovernmentRating *float64 `json:"government_rating,omitempty"`
	StabilityRating  *float64 `json:"stability_rating,omitempty"`
	VisaRequirements string   `json:"visa_requirements,omitempty"`
	RetirementVisa   bool     `json:"retirement_visa,omitempty"`

	CostOfLiving      *float64 `json:"cost_of_living,omitempty"`
	RentOneBed        *float64 `json:"rent_1bed,omitempty"`
	HealthcareCost    *float64 `json:"healthcare_cost,omitempty"`
	AirportDistanceKm *float64 `json:"airport_distance_km,omitempty"`

	Hobbies []string `json:"hobbies,omitempty"`
}

// Factor is one line of the human-readable audit trail explaining how
// a category score was assembled.
type Factor struct {
	Label  string  `json:"label"`
	Points float64 `json:"points"`
}

// CategoryResult is the outcome of one category scorer. Score is the
// normalized 0-100 value, derived as round(RawScore/MaxScore*100).
type CategoryResult struct {
	Score    int      `json:"score"`
	Factors  []Factor `json:"factors"`
	RawScore float64  `json:"raw_score"`
	MaxScore float64  `json:"max_score"`
}

// MatchResult combines the six category results into one weighted
// overall score. It is derived purely from its inputs and never
// persisted by the engine.
type MatchResult struct {
	Overall    int                       `json:"overall"`
	Categories map[string]CategoryResult `json:"categories"`
}

// Category names used as keys in MatchResult.Categories.
const (
	CategoryRegion  = "region"
	CategoryClimate = "climate"
	CategoryCulture = "culture"
	CategoryHobbies = "hobbies"
	CategoryAdmin   = "administration"
	CategoryCost    = "cost"
)

// CategoryNames lists the six categories in display order.
var CategoryNames = []string{
	CategoryRegion,
	CategoryClimate,
	CategoryCulture,
	CategoryHobbies,
	CategoryAdmin,
	CategoryCost,
}
