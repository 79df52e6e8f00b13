package match

import "testing"

func TestCultureScorer(t *testing.T) {
	e := New()

	town := &Candidate{
		Name:               "Valencia",
		PaceOfLife:         "relaxed",
		SocialAtmosphere:   "friendly",
		ExpatCommunity:     "large",
		PrimaryLanguage:    "Spanish",
		EnglishProficiency: "moderate",
		DiningRating:       4,
		EventsRating:       3,
		MuseumsRating:      4,
	}

	tests := []struct {
		name      string
		prefs     *CulturePreferences
		wantScore int
	}{
		{
			name:      "nil preferences",
			prefs:     nil,
			wantScore: 100,
		},
		{
			name: "everything matches",
			prefs: &CulturePreferences{
				PaceOfLife:       []string{"relaxed"},
				SocialAtmosphere: []string{"friendly"},
				ExpatCommunity:   []string{"large"},
				Languages:        []string{"Spanish"},
				DiningImportance: 4,
			},
			wantScore: 100,
		},
		{
			name: "pace mismatch drops 20",
			prefs: &CulturePreferences{
				PaceOfLife: []string{"fast"},
			},
			wantScore: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.scoreCulture(tt.prefs, town)
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
		})
	}
}

func TestCultureScorer_LanguageLadder(t *testing.T) {
	tests := []struct {
		name        string
		languages   []string
		primary     string
		proficiency string
		wantPoints  float64
	}{
		{
			name:       "primary language spoken",
			languages:  []string{"spanish"},
			primary:    "Spanish",
			wantPoints: 20,
		},
		{
			name:        "english fallback, high proficiency",
			languages:   []string{"English"},
			primary:     "Portuguese",
			proficiency: "high",
			wantPoints:  15,
		},
		{
			name:        "english fallback, low proficiency",
			languages:   []string{"English"},
			primary:     "Thai",
			proficiency: "low",
			wantPoints:  5,
		},
		{
			name:       "no common language",
			languages:  []string{"German"},
			primary:    "Thai",
			wantPoints: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			town := &Candidate{PrimaryLanguage: tt.primary, EnglishProficiency: tt.proficiency}
			prefs := &CulturePreferences{Languages: tt.languages}

			var factors []Factor
			got := scoreLanguage(&factors, prefs, town)
			if got != tt.wantPoints {
				t.Errorf("language points = %v, want %v", got, tt.wantPoints)
			}
		})
	}
}

func TestCultureScorer_ImportanceLadder(t *testing.T) {
	tests := []struct {
		name   string
		pref   int
		actual int
		want   float64
	}{
		{name: "exact", pref: 4, actual: 4, want: 10},
		{name: "off by one", pref: 4, actual: 3, want: 7},
		{name: "off by two", pref: 5, actual: 3, want: 4},
		{name: "off by three", pref: 5, actual: 2, want: 0},
		{name: "unrated preference", pref: 0, actual: 2, want: 10},
		{name: "missing data", pref: 3, actual: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var factors []Factor
			got := scoreImportance(&factors, "Dining", tt.pref, tt.actual, cultureDiningPoints)
			if got != tt.want {
				t.Errorf("scoreImportance(%d, %d) = %v, want %v", tt.pref, tt.actual, got, tt.want)
			}
		})
	}
}
