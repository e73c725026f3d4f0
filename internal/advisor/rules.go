// Package advisor matches investor profiles to canned recommendations and
// computes the stock/fund allocation.
package advisor

import "InvestAdvisor/internal/model"

// Regime is an inflation band selecting which rule set applies.
type Regime string

const (
	RegimeHigh     Regime = "high"     // > 6%
	RegimeModerate Regime = "moderate" // 3% to 6% inclusive
	RegimeLow      Regime = "low"      // < 3%
)

// RegimeFor returns the regime for a year-over-year inflation percentage.
func RegimeFor(inflation float64) Regime {
	switch {
	case inflation > 6:
		return RegimeHigh
	case inflation >= 3:
		return RegimeModerate
	default:
		return RegimeLow
	}
}

// RuleEntry is one bucket of the rule table.
type RuleEntry struct {
	Age     int
	Risk    model.Risk
	Horizon model.Horizon
	Goal    string // must be contained in the user's goal
	Label   string
}

// Entries are tried in the declared order; the first match wins.
var ruleTable = map[Regime][]RuleEntry{
	RegimeHigh: {
		{25, model.RiskHigh, model.HorizonLong, "growth", "Gold ETF, Equity - Energy/Commodities, International ETFs"},
		{40, model.RiskMedium, model.HorizonMedium, "inflation hedge", "Inflation-Protected Bonds, REITs"},
		{55, model.RiskLow, model.HorizonShort, "regular income", "Short Duration Debt + Gold Savings Fund"},
		{65, model.RiskLow, model.HorizonMedium, "capital protection", "SCSS, PMVVY, Hybrid Funds (low equity)"},
	},
	RegimeModerate: {
		{30, model.RiskHigh, model.HorizonLong, "growth", "Flexi-cap Equity Funds, Global Tech Funds"},
		{45, model.RiskMedium, model.HorizonMedium, "hedge + growth", "Balanced Advantage Funds, Multi-Asset Allocation"},
		{60, model.RiskLow, model.HorizonShort, "income", "Short Duration Debt + Conservative Hybrid Fund"},
		{35, model.RiskHigh, model.HorizonMedium, "growth", "Thematic Funds (infra, consumption) + SIP in Equity"},
	},
	RegimeLow: {
		{28, model.RiskHigh, model.HorizonLong, "wealth building", "Mid-Cap & Small-Cap Equity Funds"},
		{50, model.RiskMedium, model.HorizonMedium, "hedge/deflation", "Long-Term G-Secs, PPF, Index Funds"},
		{65, model.RiskLow, model.HorizonShort, "preserve capital", "Liquid Funds, Bank FDs, Floating Rate Bonds"},
		{38, model.RiskMedium, model.HorizonLong, "growth", "Large & Mid Cap Funds, Tax Saver ELSS"},
	},
}

// Rules returns the ordered entries of a regime. The slice must not be modified.
func Rules(r Regime) []RuleEntry {
	return ruleTable[r]
}
