package advisor

import (
	"strings"

	"InvestAdvisor/internal/model"
)

// NoMatch is the recommendation returned when no rule fits the profile.
const NoMatch = "No exact match found for your profile. Consider consulting a financial advisor."

// ageWindow is the maximum distance in years between the user and a bucket.
const ageWindow = 5

// Recommendation is the outcome of matching a profile.
type Recommendation struct {
	Label   string
	Matched bool
	Regime  Regime
}

// Match returns the label of the first rule in the inflation regime that
// accepts the profile, or NoMatch.
func Match(inflation float64, p model.Profile) Recommendation {
	regime := RegimeFor(inflation)
	rec := matchIn(Rules(regime), p)
	rec.Regime = regime
	return rec
}

// matchIn tries rules in order; the first that accepts p wins.
func matchIn(rules []RuleEntry, p model.Profile) Recommendation {
	for _, e := range rules {
		if e.accepts(p) {
			return Recommendation{Label: e.Label, Matched: true}
		}
	}
	return Recommendation{Label: NoMatch}
}

func (e RuleEntry) accepts(p model.Profile) bool {
	diff := p.Age - e.Age
	if diff < 0 {
		diff = -diff
	}
	return diff <= ageWindow &&
		strings.EqualFold(string(p.Risk), string(e.Risk)) &&
		strings.EqualFold(string(p.Horizon), string(e.Horizon)) &&
		strings.Contains(strings.ToLower(p.Goal), e.Goal)
}
