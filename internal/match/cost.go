package match

// Cost sub-factor budgets: the budget-to-cost ratio ladder is worth
// up to 70 points, rent fit up to 20 and healthcare budget fit 10.
const (
	costBudgetPoints     = 70.0
	costRentPoints       = 20.0
	costHealthcarePoints = 10.0
	costMaxPoints        = 100.0
)

// scoreCost compares declared budgets against the candidate's cost
// figures. Ratio thresholds map to a discrete ladder of awards;
// missing data on either side zeroes the sub-factor, never errors.
func (e *Engine) scoreCost(p *CostPreferences, c *Candidate) CategoryResult {
	if p == nil || (p.MonthlyBudget == 0 && p.MaxRent == 0 && p.HealthcareBudget == 0) {
		return fullCredit("Open to any budget situation", costMaxPoints)
	}

	var raw float64
	var factors []Factor

	raw += scoreBudgetRatio(&factors, p.MonthlyBudget, c.CostOfLiving)
	raw += scoreRentFit(&factors, p.MaxRent, c.RentOneBed)
	raw += scoreHealthcareBudget(&factors, p.HealthcareBudget, c.HealthcareCost)

	return finalize(raw, costMaxPoints, factors)
}

// scoreBudgetRatio awards ladder credit by the ratio of monthly
// budget to the candidate's cost of living.
func scoreBudgetRatio(factors *[]Factor, budget float64, costOfLiving *float64) float64 {
	if budget == 0 {
		*factors = append(*factors, Factor{Label: "Budget: no preference", Points: costBudgetPoints})
		return costBudgetPoints
	}
	if costOfLiving == nil || *costOfLiving <= 0 {
		*factors = append(*factors, Factor{Label: "Cost of living data unavailable", Points: 0})
		return 0
	}

	ratio := budget / *costOfLiving
	var pts float64
	var label string
	switch {
	case ratio >= 2.0:
		pts, label = 70, "Budget comfortably exceeds cost of living"
	case ratio >= 1.5:
		pts, label = 60, "Budget well above cost of living"
	case ratio >= 1.2:
		pts, label = 50, "Budget above cost of living"
	case ratio >= 1.0:
		pts, label = 40, "Budget covers cost of living"
	case ratio >= 0.8:
		pts, label = 25, "Budget slightly below cost of living"
	default:
		pts, label = 5, "Budget well below cost of living"
	}

	*factors = append(*factors, Factor{Label: label, Points: pts})
	return pts
}

// scoreRentFit awards credit by the ratio of maximum rent to the
// candidate's one-bedroom rent.
func scoreRentFit(factors *[]Factor, maxRent float64, rent *float64) float64 {
	if maxRent == 0 {
		*factors = append(*factors, Factor{Label: "Rent: no preference", Points: costRentPoints})
		return costRentPoints
	}
	if rent == nil || *rent <= 0 {
		*factors = append(*factors, Factor{Label: "Rent data unavailable", Points: 0})
		return 0
	}

	ratio := maxRent / *rent
	switch {
	case ratio >= 1.2:
		*factors = append(*factors, Factor{Label: "Rent well within budget", Points: costRentPoints})
		return costRentPoints
	case ratio >= 1.0:
		*factors = append(*factors, Factor{Label: "Rent within budget", Points: costRentPoints / 2})
		return costRentPoints / 2
	default:
		*factors = append(*factors, Factor{Label: "Rent above budget", Points: 0})
		return 0
	}
}

func scoreHealthcareBudget(factors *[]Factor, budget float64, cost *float64) float64 {
	if budget == 0 {
		*factors = append(*factors, Factor{Label: "Healthcare budget: no preference", Points: costHealthcarePoints})
		return costHealthcarePoints
	}
	if cost == nil || *cost <= 0 {
		*factors = append(*factors, Factor{Label: "Healthcare cost data unavailable", Points: 0})
		return 0
	}
	if budget >= *cost {
		*factors = append(*factors, Factor{Label: "Healthcare within budget", Points: costHealthcarePoints})
		return costHealthcarePoints
	}
	*factors = append(*factors, Factor{Label: "Healthcare above budget", Points: 0})
	return 0
}
