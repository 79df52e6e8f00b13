package match

import "testing"

func TestCostScorer_OpenBudget(t *testing.T) {
	e := New()

	result := e.scoreCost(nil, &Candidate{Name: "Valencia"})
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100 for nil preferences", result.Score)
	}

	result = e.scoreCost(&CostPreferences{}, &Candidate{Name: "Valencia"})
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100 for zero budgets", result.Score)
	}
}

func TestCostScorer_BudgetLadder(t *testing.T) {
	tests := []struct {
		name   string
		budget float64
		cost   float64
		want   float64
	}{
		{name: "double the cost", budget: 4000, cost: 2000, want: 70},
		{name: "fifty percent headroom", budget: 3000, cost: 2000, want: 60},
		{name: "twenty percent headroom", budget: 2500, cost: 2000, want: 50},
		{name: "exactly covers", budget: 2000, cost: 2000, want: 40},
		{name: "slightly short", budget: 1700, cost: 2000, want: 25},
		{name: "well short", budget: 1000, cost: 2000, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var factors []Factor
			got := scoreBudgetRatio(&factors, tt.budget, &tt.cost)
			if got != tt.want {
				t.Errorf("scoreBudgetRatio(%v, %v) = %v, want %v", tt.budget, tt.cost, got, tt.want)
			}
		})
	}
}

func TestCostScorer_MissingCostData(t *testing.T) {
	e := New()

	// Budget stated but the town has no cost figures: sub-factors
	// score zero, the call does not fail.
	prefs := &CostPreferences{MonthlyBudget: 3000, MaxRent: 1200}
	town := &Candidate{Name: "Nowhere"}

	result := e.scoreCost(prefs, town)
	if result.Score != 10 {
		t.Errorf("Score = %d, want 10 (only the unset healthcare budget earns credit)", result.Score)
	}
}

func TestCostScorer_RentAndHealthcare(t *testing.T) {
	e := New()

	prefs := &CostPreferences{
		MonthlyBudget:    3000,
		MaxRent:          1200,
		HealthcareBudget: 200,
	}
	town := &Candidate{
		Name:           "Valencia",
		CostOfLiving:   float64Ptr(1500),
		RentOneBed:     float64Ptr(900),
		HealthcareCost: float64Ptr(150),
	}

	result := e.scoreCost(prefs, town)
	// 70 budget + 20 rent + 10 healthcare.
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}

	town.RentOneBed = float64Ptr(1150)
	result = e.scoreCost(prefs, town)
	// Rent ratio 1.04 earns half the rent budget.
	if result.Score != 90 {
		t.Errorf("Score = %d, want 90", result.Score)
	}
}
