package match

import "fmt"

// Hobby sub-factor budgets: availability overlap is worth 90 points
// proportionally, travel access the remaining 10.
const (
	hobbyOverlapPoints = 90.0
	hobbyTravelPoints  = 10.0
	hobbyMaxPoints     = 100.0
)

// Airport distance cutoffs, in km, for the travel-access sub-factor.
const (
	airportFrequentKm   = 60.0
	airportOccasionalKm = 120.0
)

// scoreHobbies computes the fraction of requested hobbies available
// at the candidate. Candidate.Hobbies is already the union of
// universal hobbies and the location's own associations, resolved by
// the provider. Requesting nothing means open to anything.
func (e *Engine) scoreHobbies(p *HobbyPreferences, c *Candidate) CategoryResult {
	if p == nil || (len(p.Activities) == 0 && len(p.Interests) == 0 && len(p.CustomHobbies) == 0 && p.TravelFrequency == "") {
		return fullCredit("Open to any activities", hobbyMaxPoints)
	}

	var raw float64
	var factors []Factor

	wanted := newSet(p.Activities, p.Interests, p.CustomHobbies)
	if wanted.empty() {
		raw += hobbyOverlapPoints
		factors = append(factors, Factor{Label: "Open to any activities", Points: hobbyOverlapPoints})
	} else {
		available := newSet(c.Hobbies)
		matched := 0
		for h := range wanted {
			if available.has(h) {
				matched++
			}
		}
		pts := hobbyOverlapPoints * float64(matched) / float64(len(wanted))
		raw += pts
		factors = append(factors, Factor{
			Label:  fmt.Sprintf("%d/%d hobbies available", matched, len(wanted)),
			Points: pts,
		})
	}

	raw += scoreTravelAccess(&factors, p.TravelFrequency, c.AirportDistanceKm)

	return finalize(raw, hobbyMaxPoints, factors)
}

// scoreTravelAccess checks airport reach against how often the
// requester plans to travel. Frequent travelers need a closer
// airport; rare travelers get full credit regardless.
func scoreTravelAccess(factors *[]Factor, frequency string, airportKm *float64) float64 {
	switch norm(frequency) {
	case "":
		*factors = append(*factors, Factor{Label: "Travel: no preference", Points: hobbyTravelPoints})
		return hobbyTravelPoints
	case "rare":
		*factors = append(*factors, Factor{Label: "Rare travel needs", Points: hobbyTravelPoints})
		return hobbyTravelPoints
	}

	if airportKm == nil {
		*factors = append(*factors, Factor{Label: "Airport distance unavailable", Points: 0})
		return 0
	}

	cutoff := airportOccasionalKm
	if norm(frequency) == "frequent" {
		cutoff = airportFrequentKm
	}

	if *airportKm <= cutoff {
		*factors = append(*factors, Factor{Label: "Airport within reach", Points: hobbyTravelPoints})
		return hobbyTravelPoints
	}

	*factors = append(*factors, Factor{Label: "Airport too far for travel needs", Points: 0})
	return 0
}
