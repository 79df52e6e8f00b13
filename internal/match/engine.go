package match

import (
	"errors"
	"fmt"
	"math"
)

// Engine scores preference profiles against candidates. It is
// stateless beyond its immutable tables and weight configuration and
// is safe for concurrent use.
type Engine struct {
	tables  *Tables
	weights Weights
}

// New returns an Engine with the canonical tables and weights.
func New() *Engine {
	return &Engine{tables: DefaultTables(), weights: DefaultWeights()}
}

// NewWithWeights returns an Engine with a custom weight table. The
// weights must sum to 100.
func NewWithWeights(w Weights) (*Engine, error) {
	if w.Sum() != 100 {
		return nil, fmt.Errorf("category weights must sum to 100, got %d", w.Sum())
	}
	return &Engine{tables: DefaultTables(), weights: w}, nil
}

// Weights returns the engine's weight table.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Score is the sole entry point: it produces a MatchResult for one
// profile against one candidate. It is deterministic, never mutates
// its inputs, and fails only on nil arguments; malformed or missing
// field values degrade to zero credit instead.
func (e *Engine) Score(p *PreferenceProfile, c *Candidate) (*MatchResult, error) {
	if p == nil {
		return nil, errors.New("preference profile is nil")
	}
	if c == nil {
		return nil, errors.New("candidate is nil")
	}

	categories := map[string]CategoryResult{
		CategoryRegion:  e.scoreRegion(p.Region, c),
		CategoryClimate: e.scoreClimate(p.Climate, c),
		CategoryCulture: e.scoreCulture(p.Culture, c),
		CategoryHobbies: e.scoreHobbies(p.Hobbies, c),
		CategoryAdmin:   e.scoreAdmin(p.Admin, c),
		CategoryCost:    e.scoreCost(p.Cost, c),
	}

	weighted := float64(categories[CategoryRegion].Score)*float64(e.weights.Region) +
		float64(categories[CategoryClimate].Score)*float64(e.weights.Climate) +
		float64(categories[CategoryCulture].Score)*float64(e.weights.Culture) +
		float64(categories[CategoryHobbies].Score)*float64(e.weights.Hobbies) +
		float64(categories[CategoryAdmin].Score)*float64(e.weights.Admin) +
		float64(categories[CategoryCost].Score)*float64(e.weights.Cost)

	overall := int(math.Round(weighted / 100))
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}

	return &MatchResult{Overall: overall, Categories: categories}, nil
}

// finalize builds a CategoryResult from raw points, clamping raw into
// [0, max] before normalizing.
func finalize(raw, max float64, factors []Factor) CategoryResult {
	if raw < 0 {
		raw = 0
	}
	if raw > max {
		raw = max
	}
	return CategoryResult{
		Score:    int(math.Round(raw / max * 100)),
		Factors:  factors,
		RawScore: raw,
		MaxScore: max,
	}
}

// fullCredit is the short-circuit result for a category with no
// preferences at all.
func fullCredit(label string, max float64) CategoryResult {
	return CategoryResult{
		Score:    100,
		Factors:  []Factor{{Label: label, Points: max}},
		RawScore: max,
		MaxScore: max,
	}
}
