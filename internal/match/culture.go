package match

// Culture sub-factor budgets, summing to 100.
const (
	culturePacePoints     = 20.0
	cultureSocialPoints   = 20.0
	cultureLanguagePoints = 20.0
	cultureExpatPoints    = 10.0
	cultureDiningPoints   = 10.0
	cultureEventsPoints   = 10.0
	cultureMuseumsPoints  = 10.0
	cultureMaxPoints      = 100.0
)

// englishProficiencyPoints maps a candidate's English-proficiency
// categorical to language sub-factor credit when the requester is
// comfortable with English but the primary language is not one they
// speak.
var englishProficiencyPoints = map[string]float64{
	"native":   20,
	"high":     15,
	"moderate": 10,
	"low":      5,
}

// scoreCulture matches pace of life, social atmosphere, expat
// community size, language comfort and the three cultural-importance
// ratings.
func (e *Engine) scoreCulture(p *CulturePreferences, c *Candidate) CategoryResult {
	if p == nil {
		return fullCredit("Open to any culture", cultureMaxPoints)
	}

	var raw float64
	var factors []Factor

	raw += matchCategorical(&factors, "Pace of life", p.PaceOfLife, c.PaceOfLife, culturePacePoints)
	raw += matchCategorical(&factors, "Social atmosphere", p.SocialAtmosphere, c.SocialAtmosphere, cultureSocialPoints)
	raw += matchCategorical(&factors, "Expat community", p.ExpatCommunity, c.ExpatCommunity, cultureExpatPoints)
	raw += scoreLanguage(&factors, p, c)
	raw += scoreImportance(&factors, "Dining", p.DiningImportance, c.DiningRating, cultureDiningPoints)
	raw += scoreImportance(&factors, "Events", p.EventsImportance, c.EventsRating, cultureEventsPoints)
	raw += scoreImportance(&factors, "Museums", p.MuseumsImportance, c.MuseumsRating, cultureMuseumsPoints)

	return finalize(raw, cultureMaxPoints, factors)
}

// scoreLanguage awards full credit when the candidate's primary
// language is one the requester speaks. When it is not but the
// requester speaks English, credit falls back to the candidate's
// general English-proficiency level.
func scoreLanguage(factors *[]Factor, p *CulturePreferences, c *Candidate) float64 {
	spoken := newSet(p.Languages)
	if spoken.empty() {
		*factors = append(*factors, Factor{Label: "Language: no preference", Points: cultureLanguagePoints})
		return cultureLanguagePoints
	}

	if c.PrimaryLanguage != "" && spoken.has(c.PrimaryLanguage) {
		*factors = append(*factors, Factor{Label: "Primary language spoken", Points: cultureLanguagePoints})
		return cultureLanguagePoints
	}

	if spoken.has("english") {
		if pts, ok := englishProficiencyPoints[norm(c.EnglishProficiency)]; ok {
			*factors = append(*factors, Factor{Label: "English proficiency: " + norm(c.EnglishProficiency), Points: pts})
			return pts
		}
	}

	*factors = append(*factors, Factor{Label: "Language barrier", Points: 0})
	return 0
}

// scoreImportance compares a 1-5 importance rating against the
// candidate's 1-5 rating for the same aspect. Credit falls off with
// the absolute difference; a zero preference means unrated and gets
// full credit.
func scoreImportance(factors *[]Factor, label string, pref, actual int, points float64) float64 {
	if pref == 0 {
		*factors = append(*factors, Factor{Label: label + ": no preference", Points: points})
		return points
	}
	if actual == 0 {
		*factors = append(*factors, Factor{Label: label + ": data unavailable", Points: 0})
		return 0
	}

	diff := pref - actual
	if diff < 0 {
		diff = -diff
	}

	var pts float64
	switch diff {
	case 0:
		pts = points
	case 1:
		pts = points * 0.7
	case 2:
		pts = points * 0.4
	default:
		pts = 0
	}

	*factors = append(*factors, Factor{Label: label + " rating", Points: pts})
	return pts
}
