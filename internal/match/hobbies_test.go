package match

import "testing"

func float64Ptr(v float64) *float64 {
	return &v
}

func TestHobbiesScorer(t *testing.T) {
	e := New()

	town := &Candidate{
		Name:    "Valencia",
		Hobbies: []string{"Swimming", "Sailing", "Walking", "Cooking", "Museums"},
	}

	tests := []struct {
		name      string
		prefs     *HobbyPreferences
		wantScore int
	}{
		{
			name:      "nil preferences",
			prefs:     nil,
			wantScore: 100,
		},
		{
			name:      "empty preferences",
			prefs:     &HobbyPreferences{},
			wantScore: 100,
		},
		{
			name: "all hobbies available",
			prefs: &HobbyPreferences{
				Activities: []string{"swimming", "sailing"},
				Interests:  []string{"cooking"},
			},
			wantScore: 100,
		},
		{
			name: "half available",
			prefs: &HobbyPreferences{
				Activities: []string{"Swimming", "Downhill Skiing"},
			},
			wantScore: 55,
		},
		{
			name: "none available",
			prefs: &HobbyPreferences{
				Activities: []string{"Downhill Skiing", "Snowboarding"},
			},
			wantScore: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.scoreHobbies(tt.prefs, town)
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
		})
	}
}

func TestHobbiesScorer_TravelAccess(t *testing.T) {
	tests := []struct {
		name      string
		frequency string
		airportKm *float64
		want      float64
	}{
		{name: "no preference", frequency: "", airportKm: nil, want: 10},
		{name: "rare traveler ignores airports", frequency: "rare", airportKm: nil, want: 10},
		{name: "frequent with close airport", frequency: "frequent", airportKm: float64Ptr(20), want: 10},
		{name: "frequent with far airport", frequency: "frequent", airportKm: float64Ptr(150), want: 0},
		{name: "occasional with mid-range airport", frequency: "occasional", airportKm: float64Ptr(100), want: 10},
		{name: "frequent with missing data", frequency: "frequent", airportKm: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var factors []Factor
			got := scoreTravelAccess(&factors, tt.frequency, tt.airportKm)
			if got != tt.want {
				t.Errorf("travel points = %v, want %v", got, tt.want)
			}
		})
	}
}
