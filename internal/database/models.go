package database

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/townmatch/townmatch/internal/match"
)

// HobbyCategory classifies entries in the hobby catalog
type HobbyCategory string

const (
	HobbyActivity HobbyCategory = "activity"
	HobbyInterest HobbyCategory = "interest"
	HobbyCustom   HobbyCategory = "custom"
)

// Town is one stored candidate location. List-valued attributes are
// kept as comma-separated columns and split on read; pointer fields
// are nullable in the store.
type Town struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Region    *string `json:"region,omitempty"`
	GeoRegion *string `json:"geo_region,omitempty"`

	Regions            *string `json:"regions,omitempty"`
	GeographicFeatures *string `json:"geographic_features,omitempty"`
	VegetationTypes    *string `json:"vegetation_types,omitempty"`

	SummerClimate     *string `json:"summer_climate,omitempty"`
	WinterClimate     *string `json:"winter_climate,omitempty"`
	Humidity          *string `json:"humidity,omitempty"`
	Sunshine          *string `json:"sunshine,omitempty"`
	Precipitation     *string `json:"precipitation,omitempty"`
	SeasonalVariation *string `json:"seasonal_variation,omitempty"`

	PaceOfLife         *string `json:"pace_of_life,omitempty"`
	SocialAtmosphere   *string `json:"social_atmosphere,omitempty"`
	ExpatCommunity     *string `json:"expat_community,omitempty"`
	PrimaryLanguage    *string `json:"primary_language,omitempty"`
	EnglishProficiency *string `json:"english_proficiency,omitempty"`
	DiningRating       int     `json:"dining_rating"`
	EventsRating       int     `json:"events_rating"`
	MuseumsRating      int     `json:"museums_rating"`

	HealthcareScore  *float64 `json:"healthcare_score,omitempty"`
	SafetyScore      *float64 `json:"safety_score,omitempty"`
	GovernmentRating *float64 `json:"government_rating,omitempty"`
	StabilityRating  *float64 `json:"stability_rating,omitempty"`
	VisaRequirements *string  `json:"visa_requirements,omitempty"`
	RetirementVisa   bool     `json:"retirement_visa"`

	CostOfLiving      *float64 `json:"cost_of_living,omitempty"`
	RentOneBed        *float64 `json:"rent_1bed,omitempty"`
	HealthcareCost    *float64 `json:"healthcare_cost,omitempty"`
	AirportDistanceKm *float64 `json:"airport_distance_km,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Candidate converts a stored town into the flat scoring structure.
// hobbies is the resolved set of available hobby names for the town
// (universal plus its own associations).
func (t *Town) Candidate(hobbies []string) *match.Candidate {
	return &match.Candidate{
		Name:               t.Name,
		Country:            t.Country,
		Region:             strValue(t.Region),
		Regions:            splitList(t.Regions),
		GeoRegion:          strValue(t.GeoRegion),
		GeographicFeatures: splitList(t.GeographicFeatures),
		VegetationTypes:    splitList(t.VegetationTypes),
		SummerClimate:      strValue(t.SummerClimate),
		WinterClimate:      strValue(t.WinterClimate),
		Humidity:           strValue(t.Humidity),
		Sunshine:           strValue(t.Sunshine),
		Precipitation:      strValue(t.Precipitation),
		SeasonalVariation:  strValue(t.SeasonalVariation),
		PaceOfLife:         strValue(t.PaceOfLife),
		SocialAtmosphere:   strValue(t.SocialAtmosphere),
		ExpatCommunity:     strValue(t.ExpatCommunity),
		PrimaryLanguage:    strValue(t.PrimaryLanguage),
		EnglishProficiency: strValue(t.EnglishProficiency),
		DiningRating:       t.DiningRating,
		EventsRating:       t.EventsRating,
		MuseumsRating:      t.MuseumsRating,
		HealthcareScore:    t.HealthcareScore,
		SafetyScore:        t.SafetyScore,
		GovernmentRating:   t.GovernmentRating,
		StabilityRating:    t.StabilityRating,
		VisaRequirements:   strValue(t.VisaRequirements),
		RetirementVisa:     t.RetirementVisa,
		CostOfLiving:       t.CostOfLiving,
		RentOneBed:         t.RentOneBed,
		HealthcareCost:     t.HealthcareCost,
		AirportDistanceKm:  t.AirportDistanceKm,
		Hobbies:            hobbies,
	}
}

// Hobby is one entry in the hobby catalog. Universal hobbies are
// available everywhere and need no town association.
type Hobby struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Category  HobbyCategory `json:"category"`
	Universal bool          `json:"universal"`
}

// Profile is a stored, named preference profile. Preferences holds
// the six-slice structure serialized as JSON.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Data      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Preferences decodes the stored profile data.
func (p *Profile) Preferences() (*match.PreferenceProfile, error) {
	var prefs match.PreferenceProfile
	if err := json.Unmarshal([]byte(p.Data), &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// ListOptions contains options for listing towns
type ListOptions struct {
	Country *string
	Limit   int
	Offset  int
}

// splitList splits a comma-separated column into trimmed values.
func splitList(s *string) []string {
	if s == nil || *s == "" {
		return nil
	}
	parts := strings.Split(*s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullFloat64 is a helper to convert *float64 to sql.NullFloat64
func NullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// Float64Ptr converts sql.NullFloat64 to *float64
func Float64Ptr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}
