package match

import (
	"reflect"
	"testing"
)

func demoProfile() *PreferenceProfile {
	return &PreferenceProfile{
		Region: &RegionPreferences{
			Countries:          []string{"Spain"},
			GeographicFeatures: []string{"coastal"},
			VegetationTypes:    []string{"mediterranean"},
		},
		Climate: &ClimatePreferences{
			Summer: []string{"hot"},
			Winter: []string{"mild"},
		},
		Hobbies: &HobbyPreferences{
			Activities: []string{"Swimming"},
		},
		Cost: &CostPreferences{MonthlyBudget: 3000},
	}
}

func demoTown() *Candidate {
	return &Candidate{
		Name:               "Valencia",
		Country:            "Spain",
		GeoRegion:          "Southern Europe,Mediterranean Coast",
		GeographicFeatures: []string{"coastal"},
		VegetationTypes:    []string{"mediterranean"},
		SummerClimate:      "hot",
		WinterClimate:      "mild",
		CostOfLiving:       float64Ptr(1500),
		Hobbies:            []string{"Swimming", "Sailing"},
	}
}

func TestEngine_NilInputs(t *testing.T) {
	e := New()

	if _, err := e.Score(nil, demoTown()); err == nil {
		t.Error("expected error for nil profile")
	}
	if _, err := e.Score(demoProfile(), nil); err == nil {
		t.Error("expected error for nil candidate")
	}
}

func TestEngine_OpenToAnything(t *testing.T) {
	e := New()

	result, err := e.Score(&PreferenceProfile{}, demoTown())
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if result.Overall != 100 {
		t.Errorf("Overall = %d, want 100 for an empty profile", result.Overall)
	}
	for name, cat := range result.Categories {
		if cat.Score != 100 {
			t.Errorf("%s score = %d, want 100", name, cat.Score)
		}
	}
}

func TestEngine_Idempotence(t *testing.T) {
	e := New()
	p, c := demoProfile(), demoTown()

	first, err := e.Score(p, c)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	second, err := e.Score(p, c)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestEngine_RangeAndInvariants(t *testing.T) {
	e := New()

	profiles := []*PreferenceProfile{
		{},
		demoProfile(),
		{
			Region: &RegionPreferences{Countries: []string{"Norway"}},
			Admin:  &AdminPreferences{HealthcareQuality: []string{"excellent"}},
			Cost:   &CostPreferences{MonthlyBudget: 500},
		},
	}
	towns := []*Candidate{
		demoTown(),
		{Name: "Empty Town"},
	}

	for _, p := range profiles {
		for _, c := range towns {
			result, err := e.Score(p, c)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if result.Overall < 0 || result.Overall > 100 {
				t.Errorf("Overall = %d, out of range", result.Overall)
			}
			for name, cat := range result.Categories {
				if cat.Score < 0 || cat.Score > 100 {
					t.Errorf("%s score = %d, out of range", name, cat.Score)
				}
				if cat.RawScore > cat.MaxScore {
					t.Errorf("%s raw %v exceeds max %v", name, cat.RawScore, cat.MaxScore)
				}
				want := int(cat.RawScore/cat.MaxScore*100 + 0.5)
				if cat.Score != want {
					t.Errorf("%s score %d does not round from %v/%v", name, cat.Score, cat.RawScore, cat.MaxScore)
				}
			}
		}
	}
}

func TestEngine_Monotonicity(t *testing.T) {
	e := New()
	town := demoTown()

	// Adding a value that matches the candidate can only raise or
	// hold the category score.
	tests := []struct {
		name     string
		category string
		without  *PreferenceProfile
		with     *PreferenceProfile
	}{
		{
			name:     "hobbies",
			category: CategoryHobbies,
			without: &PreferenceProfile{
				Hobbies: &HobbyPreferences{Activities: []string{"Downhill Skiing"}},
			},
			with: &PreferenceProfile{
				Hobbies: &HobbyPreferences{Activities: []string{"Downhill Skiing", "Swimming"}},
			},
		},
		{
			name:     "region",
			category: CategoryRegion,
			without: &PreferenceProfile{
				Region: &RegionPreferences{
					Countries:          []string{"Norway"},
					GeographicFeatures: []string{"mountain"},
				},
			},
			with: &PreferenceProfile{
				Region: &RegionPreferences{
					Countries:          []string{"Norway", "Spain"},
					GeographicFeatures: []string{"mountain", "coastal"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := e.Score(tt.without, town)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			improved, err := e.Score(tt.with, town)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}

			if improved.Categories[tt.category].Score < base.Categories[tt.category].Score {
				t.Errorf("%s score dropped from %d to %d after adding a matching value",
					tt.category, base.Categories[tt.category].Score, improved.Categories[tt.category].Score)
			}
		})
	}
}

func TestEngine_WeightedOverall(t *testing.T) {
	e := New()

	result, err := e.Score(demoProfile(), demoTown())
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	// Region 100, climate 100, culture 100, hobbies 100, admin 100,
	// cost: budget ratio 2.0 -> 70, rent and healthcare unset -> 30,
	// so cost is 100 as well.
	if result.Overall != 100 {
		t.Errorf("Overall = %d, want 100", result.Overall)
	}
}

func TestNewWithWeights(t *testing.T) {
	if _, err := NewWithWeights(Weights{Region: 50, Climate: 50}); err == nil {
		t.Error("expected error for weights not summing to 100")
	}

	w := Weights{Region: 50, Climate: 10, Culture: 10, Hobbies: 10, Admin: 10, Cost: 10}
	e, err := NewWithWeights(w)
	if err != nil {
		t.Fatalf("NewWithWeights failed: %v", err)
	}
	if e.Weights() != w {
		t.Errorf("Weights = %+v, want %+v", e.Weights(), w)
	}
}

func TestDefaultWeightsSumTo100(t *testing.T) {
	if got := DefaultWeights().Sum(); got != 100 {
		t.Errorf("DefaultWeights().Sum() = %d, want 100", got)
	}
}
