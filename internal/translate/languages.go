package translate

import (
	"strconv"
	"strings"

	"InvestAdvisor/internal/model"
)

// Languages lists the output languages offered to users.
var Languages = []model.Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "Hindi"},
	{Code: "bn", Name: "Bengali"},
	{Code: "ta", Name: "Tamil"},
	{Code: "te", Name: "Telugu"},
	{Code: "ml", Name: "Malayalam"},
	{Code: "mr", Name: "Marathi"},
	{Code: "gu", Name: "Gujarati"},
	{Code: "kn", Name: "Kannada"},
	{Code: "pa", Name: "Punjabi"},
	{Code: "ur", Name: "Urdu"},
	{Code: "or", Name: "Odia"},
}

// ResolveLanguage accepts a 1-based menu number or a language code and
// returns the code. Anything unrecognised resolves to DefaultLanguage.
func ResolveLanguage(choice string) string {
	choice = strings.ToLower(strings.TrimSpace(choice))
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(Languages) {
			return Languages[n-1].Code
		}
		return DefaultLanguage
	}
	for _, l := range Languages {
		if l.Code == choice {
			return l.Code
		}
	}
	return DefaultLanguage
}
