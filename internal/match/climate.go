package match

// Climate sub-factor budgets. The five base factors sum to 100; a
// concrete seasonal preference extends both raw and max by 15 so
// normalization stays consistent.
const (
	climateSummerPoints   = 25.0
	climateWinterPoints   = 25.0
	climateHumidityPoints = 20.0
	climateSunshinePoints = 20.0
	climatePrecipPoints   = 10.0
	climateSeasonalPoints = 15.0
	climateBaseMax        = 100.0
)

// seasonalOptional is the seasonal-preference value meaning "no
// preference"; an empty string means the same.
const seasonalOptional = "optional"

// scoreClimate matches the five climate categoricals by strict set
// membership. There is no adjacency table here: climate values are
// discrete. Missing candidate data where a preference exists scores
// zero for that sub-factor.
func (e *Engine) scoreClimate(p *ClimatePreferences, c *Candidate) CategoryResult {
	if p == nil {
		return fullCredit("Open to any climate", climateBaseMax)
	}

	var raw float64
	var factors []Factor
	max := climateBaseMax

	raw += matchCategorical(&factors, "Summer climate", p.Summer, c.SummerClimate, climateSummerPoints)
	raw += matchCategorical(&factors, "Winter climate", p.Winter, c.WinterClimate, climateWinterPoints)
	raw += matchCategorical(&factors, "Humidity", p.Humidity, c.Humidity, climateHumidityPoints)
	raw += matchCategorical(&factors, "Sunshine", p.Sunshine, c.Sunshine, climateSunshinePoints)
	raw += matchCategorical(&factors, "Precipitation", p.Precipitation, c.Precipitation, climatePrecipPoints)

	if seasonal := norm(p.Seasonal); seasonal != "" && seasonal != seasonalOptional {
		max += climateSeasonalPoints
		raw += matchCategorical(&factors, "Seasonal variation", []string{p.Seasonal}, c.SeasonalVariation, climateSeasonalPoints)
	}

	return finalize(raw, max, factors)
}

// matchCategorical applies the shared sub-factor rule: no preference
// means full credit, a preferred value present on the candidate means
// full credit, anything else (including missing candidate data) means
// zero.
func matchCategorical(factors *[]Factor, label string, preferred []string, actual string, points float64) float64 {
	prefs := newSet(preferred)
	if prefs.empty() {
		*factors = append(*factors, Factor{Label: label + ": no preference", Points: points})
		return points
	}
	if actual == "" {
		*factors = append(*factors, Factor{Label: label + ": data unavailable", Points: 0})
		return 0
	}
	if prefs.has(actual) {
		*factors = append(*factors, Factor{Label: label + " match", Points: points})
		return points
	}
	*factors = append(*factors, Factor{Label: label + ": no match", Points: 0})
	return 0
}
