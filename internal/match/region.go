package match

import "strings"

// Point budgets for the region category. The three tiers sum to a
// 90-point raw scale which is then normalized to 0-100.
const (
	regionCountryPoints    = 40.0
	regionRegionOnlyPoints = 30.0
	regionGeoPoints        = 30.0
	regionGeoPartial       = 15.0
	regionVegPoints        = 20.0
	regionVegPartial       = 10.0
	regionMaxPoints        = 90.0
)

// scoreRegion allocates 40 points to country/administrative-region
// match, 30 to geography and 20 to vegetation. A profile with no
// region preferences at all short-circuits to 100.
func (e *Engine) scoreRegion(p *RegionPreferences, c *Candidate) CategoryResult {
	if p == nil || regionPrefsEmpty(p) {
		return CategoryResult{
			Score:    100,
			Factors:  []Factor{{Label: "Open to any location", Points: regionMaxPoints}},
			RawScore: regionMaxPoints,
			MaxScore: regionMaxPoints,
		}
	}

	var raw float64
	var factors []Factor

	raw += e.scoreCountryTier(p, c, &factors)
	raw += e.scoreGeographyTier(p, c, &factors)
	raw += e.scoreVegetationTier(p, c, &factors)

	return finalize(raw, regionMaxPoints, factors)
}

func regionPrefsEmpty(p *RegionPreferences) bool {
	return len(p.Countries) == 0 &&
		len(p.Regions) == 0 &&
		len(p.Provinces) == 0 &&
		len(p.GeographicFeatures) == 0 &&
		len(p.VegetationTypes) == 0
}

// scoreCountryTier awards the 40-point country/region budget. A
// country match always wins over a region match; checking stops at the
// first tier that succeeds.
func (e *Engine) scoreCountryTier(p *RegionPreferences, c *Candidate, factors *[]Factor) float64 {
	countries := newSet(p.Countries)
	regions := newSet(p.Regions, p.Provinces)

	if countries.empty() && regions.empty() {
		*factors = append(*factors, Factor{Label: "Open to any country", Points: regionCountryPoints})
		return regionCountryPoints
	}

	if countries.has(c.Country) {
		*factors = append(*factors, Factor{Label: "Country match", Points: regionCountryPoints})
		return regionCountryPoints
	}

	// A named first-level subdivision counts the same as a country
	// match when it is exactly the candidate's administrative region
	// and the candidate sits in the subdivision's country.
	for _, v := range append(append([]string{}, p.Regions...), p.Provinces...) {
		country, known := e.tables.subdivisionCountry(v)
		if known && equalFold(v, c.Region) && equalFold(country, c.Country) {
			*factors = append(*factors, Factor{Label: "Administrative region match", Points: regionCountryPoints})
			return regionCountryPoints
		}
	}

	if regionNameMatches(regions, c) {
		*factors = append(*factors, Factor{Label: "Region match only", Points: regionRegionOnlyPoints})
		return regionRegionOnlyPoints
	}

	*factors = append(*factors, Factor{Label: "No country or region match", Points: 0})
	return 0
}

// regionNameMatches checks preferred region values against the
// candidate's explicit region tags and the comma-separated tokens of
// its descriptive region string.
func regionNameMatches(regions set, c *Candidate) bool {
	if regions.empty() {
		return false
	}
	if regions.has(c.Region) {
		return true
	}
	for _, tag := range c.Regions {
		if regions.has(tag) {
			return true
		}
	}
	for _, token := range strings.Split(c.GeoRegion, ",") {
		if regions.has(token) {
			return true
		}
	}
	return false
}

func (e *Engine) scoreGeographyTier(p *RegionPreferences, c *Candidate, factors *[]Factor) float64 {
	prefs := newSet(p.GeographicFeatures)

	if prefs.empty() || prefs.containsAll(e.tables.AllGeoFeatures) {
		*factors = append(*factors, Factor{Label: "Open to any geography", Points: regionGeoPoints})
		return regionGeoPoints
	}

	have := newSet(c.GeographicFeatures)

	if prefs.intersects(have) {
		*factors = append(*factors, Factor{Label: "Geographic features match", Points: regionGeoPoints})
		return regionGeoPoints
	}

	// Text heuristic: with no structured data, a coastal preference
	// can still match on coastal keywords in the region names. The
	// factor label keeps this distinct from structured matches.
	if have.empty() {
		if prefs.has("coastal") && e.coastalTextMatch(c) {
			*factors = append(*factors, Factor{Label: "Coastal indicators found in region name", Points: regionGeoPoints})
			return regionGeoPoints
		}
		*factors = append(*factors, Factor{Label: "Geography data unavailable", Points: 0})
		return 0
	}

	if anyRelated(e.tables.GeoAdjacency, p.GeographicFeatures, c.GeographicFeatures) {
		*factors = append(*factors, Factor{Label: "Related geographic features (partial match)", Points: regionGeoPartial})
		return regionGeoPartial
	}

	*factors = append(*factors, Factor{Label: "No geographic feature match", Points: 0})
	return 0
}

// coastalTextMatch scans the candidate's free-text region fields for
// coastal keyword substrings.
func (e *Engine) coastalTextMatch(c *Candidate) bool {
	texts := append([]string{c.Region, c.GeoRegion}, c.Regions...)
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, kw := range e.tables.CoastalKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) scoreVegetationTier(p *RegionPreferences, c *Candidate, factors *[]Factor) float64 {
	prefs := newSet(p.VegetationTypes)

	if prefs.empty() || prefs.containsAll(e.tables.AllVegetationTypes) {
		*factors = append(*factors, Factor{Label: "Open to any vegetation", Points: regionVegPoints})
		return regionVegPoints
	}

	have := newSet(c.VegetationTypes)
	if have.empty() {
		*factors = append(*factors, Factor{Label: "Vegetation data unavailable", Points: 0})
		return 0
	}

	if prefs.intersects(have) {
		*factors = append(*factors, Factor{Label: "Vegetation type match", Points: regionVegPoints})
		return regionVegPoints
	}

	if anyRelated(e.tables.VegetationAdjacency, p.VegetationTypes, c.VegetationTypes) {
		*factors = append(*factors, Factor{Label: "Related vegetation types (partial match)", Points: regionVegPartial})
		return regionVegPartial
	}

	*factors = append(*factors, Factor{Label: "No vegetation type match", Points: 0})
	return 0
}
