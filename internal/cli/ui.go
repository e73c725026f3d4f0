package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"InvestAdvisor/internal/model"
	"InvestAdvisor/internal/recorder"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(1, 2).
			Width(80)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	recommendationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#10B981")).
				Bold(true)

	noMatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	gainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

func renderResult(res *model.RecommendationResult) string {
	var b strings.Builder

	recStyle := recommendationStyle
	if !res.Matched {
		recStyle = noMatchStyle
	}
	b.WriteString(titleStyle.Render("Recommendation") + "\n")
	b.WriteString(recStyle.Render(res.Recommendation) + "\n\n")
	b.WriteString(res.Explanation + "\n\n")

	if res.Inflation.SeriesID != "" {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Inflation (%s): %.2f%% YoY", res.Inflation.SeriesID, res.Inflation.YoYPercent)) + "\n\n")
	}

	b.WriteString(titleStyle.Render("Top stocks") + "\n")
	if len(res.TopStocks) == 0 {
		b.WriteString(labelStyle.Render("No market data available") + "\n")
	}
	for i, p := range res.TopStocks {
		style := gainStyle
		if p.ReturnPercent < 0 {
			style = lossStyle
		}
		b.WriteString(fmt.Sprintf("%d. %-16s %s\n", i+1, p.Ticker, style.Render(fmt.Sprintf("%+.2f%%", p.ReturnPercent))))
	}

	a := res.Allocation
	b.WriteString("\n" + titleStyle.Render("Allocation") + "\n")
	b.WriteString(fmt.Sprintf("Stocks: %.1f%%  %.2f\n", a.StockPercent, a.StockAmount))
	b.WriteString(fmt.Sprintf("Funds:  %.1f%%  %.2f\n", a.FundPercent, a.FundAmount))
	b.WriteString(fmt.Sprintf("Per stock: %.2f", a.PerStockAmount))

	return boxStyle.Render(b.String())
}

func renderLanguages(langs []model.Language) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Languages") + "\n")
	for i, l := range langs {
		b.WriteString(fmt.Sprintf("%2d. %s (%s)\n", i+1, l.Name, l.Code))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderQuestions(questions []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Frequently asked questions") + "\n")
	for i, q := range questions {
		b.WriteString(fmt.Sprintf("%2d. %s\n", i, q))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAnswer(question, answer string) string {
	return boxStyle.Render(recommendationStyle.Render(question) + "\n\n" + answer)
}

func renderHistory(recs []recorder.RecommendationRecord) string {
	if len(recs) == 0 {
		return labelStyle.Render("No recommendations recorded yet")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent recommendations") + "\n")
	for _, r := range recs {
		b.WriteString(fmt.Sprintf("%s  age=%d %s/%s %q  infl=%.2f%%  %s\n",
			r.ServedAt.Format("2006-01-02 15:04"), r.Age, r.Risk, r.Horizon, r.Goal, r.InflationYoY, r.Label))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
