package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"InvestAdvisor/internal/advisor"
	"InvestAdvisor/internal/model"
)

// FormatSnapshot formats a market snapshot into a Telegram message.
func FormatSnapshot(takenAt time.Time, inf model.InflationInfo, top []model.Performer) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>InvestAdvisor market snapshot</b> | %s\n\n", takenAt.Format("2006-01-02 15:04")))

	b.WriteString(fmt.Sprintf("Inflation (%s): %.2f%% YoY\n", inf.SeriesID, inf.YoYPercent))
	if !inf.LatestDate.IsZero() {
		b.WriteString(fmt.Sprintf("Latest index: %.3f (%s)\n", inf.LatestValue, inf.LatestDate.Format("2006-01")))
	}
	b.WriteString(fmt.Sprintf("Regime: %s\n\n", advisor.RegimeFor(inf.YoYPercent)))

	if len(top) == 0 {
		b.WriteString("No market data available.\n")
		return b.String()
	}
	b.WriteString("📈 <b>Top performers:</b>\n")
	for i, p := range top {
		b.WriteString(fmt.Sprintf("  %d. %s %+.2f%%\n", i+1, html.EscapeString(p.Ticker), p.ReturnPercent))
	}
	return b.String()
}

// FormatQuestions formats the numbered FAQ list.
func FormatQuestions(questions []string) string {
	var b strings.Builder
	b.WriteString("❓ <b>Frequently asked questions</b>\n\n")
	for i, q := range questions {
		b.WriteString(fmt.Sprintf("%d. %s\n", i, html.EscapeString(q)))
	}
	b.WriteString("\nReply /faq &lt;number&gt; for an answer.")
	return b.String()
}

// FormatAnswer formats a single FAQ answer.
func FormatAnswer(question, answer string) string {
	return fmt.Sprintf("<b>%s</b>\n\n%s", html.EscapeString(question), html.EscapeString(answer))
}

// FormatLanguages lists the supported languages with their menu numbers.
func FormatLanguages(langs []model.Language) string {
	var b strings.Builder
	b.WriteString("🌐 <b>Languages</b>\n\n")
	for i, l := range langs {
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, l.Name, l.Code))
	}
	return b.String()
}

// FormatHelp lists the bot commands.
func FormatHelp() string {
	return "Available commands:\n" +
		"• /snapshot: inflation and top performers now\n" +
		"• /faq: list questions\n" +
		"• /faq &lt;number&gt;: show an answer\n" +
		"• /languages: supported languages"
}
