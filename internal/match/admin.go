package match

import "strings"

// Administration sub-factor budgets, summing to 100.
const (
	adminHealthcarePoints = 30.0
	adminSafetyPoints     = 25.0
	adminGovernmentPoints = 15.0
	adminVisaPoints       = 20.0
	adminStabilityPoints  = 10.0
	adminMaxPoints        = 100.0
)

// Visa sub-scores inside the 20-point visa budget.
const (
	visaFreePoints       = 20.0
	visaResidencyPoints  = 12.0
	visaRetirementPoints = 8.0
)

// qualityThresholds maps a preference level to the minimum 0-10
// rating that satisfies it outright. Ratings within two points below
// the cutoff earn half credit.
var qualityThresholds = map[string]float64{
	"excellent":  9,
	"good":       7,
	"functional": 5,
	"basic":      3,
}

// scoreAdmin combines healthcare, safety, government efficiency,
// visa/residency access and political stability. Every sub-factor
// degrades to zero on missing data rather than failing the category.
func (e *Engine) scoreAdmin(p *AdminPreferences, c *Candidate) CategoryResult {
	if p == nil || (len(p.HealthcareQuality) == 0 && len(p.SafetyImportance) == 0 && len(p.VisaPreference) == 0) {
		return fullCredit("Open to any administrative situation", adminMaxPoints)
	}

	var raw float64
	var factors []Factor

	raw += scoreQuality(&factors, "Healthcare", p.HealthcareQuality, c.HealthcareScore, adminHealthcarePoints)
	raw += scoreQuality(&factors, "Safety", p.SafetyImportance, c.SafetyScore, adminSafetyPoints)
	raw += scoreRating(&factors, "Government efficiency", c.GovernmentRating, adminGovernmentPoints)
	raw += e.scoreVisa(&factors, p, c)
	raw += scoreRating(&factors, "Political stability", c.StabilityRating, adminStabilityPoints)

	return finalize(raw, adminMaxPoints, factors)
}

// scoreQuality awards tiered credit for a 0-10 rating against the
// requester's preferred quality levels. The most lenient preferred
// level sets the cutoff.
func scoreQuality(factors *[]Factor, label string, preferred []string, rating *float64, points float64) float64 {
	prefs := newSet(preferred)
	if prefs.empty() {
		*factors = append(*factors, Factor{Label: label + ": no preference", Points: points})
		return points
	}
	if rating == nil {
		*factors = append(*factors, Factor{Label: label + ": data unavailable", Points: 0})
		return 0
	}

	cutoff := -1.0
	for level, min := range qualityThresholds {
		if prefs.has(level) && (cutoff < 0 || min < cutoff) {
			cutoff = min
		}
	}
	if cutoff < 0 {
		// Unrecognized preference values are treated as the strictest
		// tier rather than rejected.
		cutoff = qualityThresholds["excellent"]
	}

	switch {
	case *rating >= cutoff:
		*factors = append(*factors, Factor{Label: label + " meets preference", Points: points})
		return points
	case *rating >= cutoff-2:
		*factors = append(*factors, Factor{Label: label + " close to preference", Points: points / 2})
		return points / 2
	default:
		*factors = append(*factors, Factor{Label: label + " below preference", Points: 0})
		return 0
	}
}

// scoreRating awards tiered credit for a plain 0-10 rating with fixed
// cutoffs, used where the requester has no per-level preference.
func scoreRating(factors *[]Factor, label string, rating *float64, points float64) float64 {
	if rating == nil {
		*factors = append(*factors, Factor{Label: label + ": data unavailable", Points: 0})
		return 0
	}
	switch {
	case *rating >= 7:
		*factors = append(*factors, Factor{Label: label + " strong", Points: points})
		return points
	case *rating >= 5:
		*factors = append(*factors, Factor{Label: label + " adequate", Points: points / 2})
		return points / 2
	default:
		*factors = append(*factors, Factor{Label: label + " weak", Points: 0})
		return 0
	}
}

// scoreVisa matches the requester's citizenship against the
// candidate's free-text visa requirements. Favorable keywords earn a
// bounded sub-score; a retirement visa adds on top within the budget.
func (e *Engine) scoreVisa(factors *[]Factor, p *AdminPreferences, c *Candidate) float64 {
	if len(p.VisaPreference) == 0 {
		*factors = append(*factors, Factor{Label: "Visa: no preference", Points: adminVisaPoints})
		return adminVisaPoints
	}
	if c.VisaRequirements == "" && !c.RetirementVisa {
		*factors = append(*factors, Factor{Label: "Visa: data unavailable", Points: 0})
		return 0
	}

	text := strings.ToLower(c.VisaRequirements)
	var pts float64

	switch {
	case containsAny(text, e.tables.VisaFreeKeywords):
		pts = visaFreePoints
		*factors = append(*factors, Factor{Label: "Visa-free access", Points: visaFreePoints})
	case containsAny(text, e.tables.ResidencyKeywords):
		pts = visaResidencyPoints
		*factors = append(*factors, Factor{Label: "Residency path available", Points: visaResidencyPoints})
	}

	if c.RetirementVisa && pts < adminVisaPoints {
		add := visaRetirementPoints
		if pts+add > adminVisaPoints {
			add = adminVisaPoints - pts
		}
		pts += add
		*factors = append(*factors, Factor{Label: "Retirement visa available", Points: add})
	}

	if pts == 0 {
		*factors = append(*factors, Factor{Label: "No favorable visa terms", Points: 0})
	}
	return pts
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
