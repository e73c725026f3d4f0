package model

// Allocation is the rounded stock/fund split returned to clients.
type Allocation struct {
	StockPercent   float64 `json:"stock_percent"`
	FundPercent    float64 `json:"fund_percent"`
	StockAmount    float64 `json:"stock_amount"`
	FundAmount     float64 `json:"fund_amount"`
	PerStockAmount float64 `json:"per_stock_amount"`
}

// RecommendationResult is the assembled response of a recommendation request.
type RecommendationResult struct {
	Recommendation string      `json:"recommendation"`
	Explanation    string      `json:"recommendation_explanation"`
	TopStocks      []Performer `json:"top5_stocks"`
	Allocation     Allocation  `json:"allocation"`

	// Not serialised; kept for the audit trail and the CLI.
	ID        string        `json:"-"`
	Label     string        `json:"-"`
	Matched   bool          `json:"-"`
	Language  string        `json:"-"`
	Inflation InflationInfo `json:"-"`
	Profile   Profile       `json:"-"`
	Principal float64       `json:"-"`
}

// FAQEntry is one static question with its answer.
type FAQEntry struct {
	Question string
	Answer   string
}

// Language is a supported output language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
