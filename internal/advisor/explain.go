package advisor

// FallbackExplanation is returned for labels without a canned explanation.
const FallbackExplanation = "Please consult a financial advisor for more details about this investment."

var explanations = map[string]string{
	"Gold ETF, Equity - Energy/Commodities, International ETFs": "These funds invest in gold and commodities or international stocks to protect your investment from inflation and grow wealth over time.",
	"Inflation-Protected Bonds, REITs":                          "These are government-backed bonds that adjust for inflation and real estate funds that provide stable income and inflation protection.",
	"Short Duration Debt + Gold Savings Fund":                   "These funds invest in short-term safe bonds and gold savings to offer regular income with low risk.",
	"SCSS, PMVVY, Hybrid Funds (low equity)":                    "Safe government savings schemes and funds with a mix of stocks and debt to protect capital with modest growth.",
	"Flexi-cap Equity Funds, Global Tech Funds":                 "Funds investing in companies of all sizes globally with focus on technology for strong growth potential.",
	"Balanced Advantage Funds, Multi-Asset Allocation":          "Funds that balance stocks and bonds automatically to manage risk and provide steady growth.",
	"Short Duration Debt + Conservative Hybrid Fund":            "Low-risk funds investing mostly in bonds and some stocks to preserve capital and generate income.",
	"Thematic Funds (infra, consumption) + SIP in Equity":       "Funds investing in specific sectors like infrastructure or consumer goods for targeted growth with regular investments.",
	"Mid-Cap & Small-Cap Equity Funds":                          "Funds that invest in medium and small companies with higher growth potential but more risk.",
	"Long-Term G-Secs, PPF, Index Funds":                        "Safe government securities, tax-saving accounts, and low-cost stock index funds for long-term stability.",
	"Liquid Funds, Bank FDs, Floating Rate Bonds":               "Very safe funds and fixed deposits that preserve capital and provide liquidity.",
	"Large & Mid Cap Funds, Tax Saver ELSS":                     "Funds investing in large and medium companies with tax-saving benefits and growth potential.",
}

// Explain returns the human-readable explanation for a recommendation label.
func Explain(label string) string {
	if e, ok := explanations[label]; ok {
		return e
	}
	return FallbackExplanation
}
