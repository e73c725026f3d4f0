package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/shopspring/decimal"

	"InvestAdvisor/internal/advisor"
	"InvestAdvisor/internal/translate"
)

// PromptForProfile asks for every recommendation field.
func PromptForProfile() (advisor.RawRequest, error) {
	answers := struct {
		Age     string
		Risk    string
		Horizon string
		Goal    string
		Amount  string
	}{}

	questions := []*survey.Question{
		{
			Name:     "age",
			Prompt:   &survey.Input{Message: "Enter your age:"},
			Validate: validateAge,
		},
		{
			Name: "risk",
			Prompt: &survey.Select{
				Message: "Risk appetite:",
				Options: []string{"low", "medium", "high"},
				Default: "medium",
			},
		},
		{
			Name: "horizon",
			Prompt: &survey.Select{
				Message: "Investment horizon:",
				Options: []string{"short", "medium", "long"},
				Default: "medium",
			},
		},
		{
			Name: "goal",
			Prompt: &survey.Input{
				Message: "Investment goal:",
				Help:    "For example: growth, regular income, capital protection, inflation hedge",
			},
			Validate: survey.Required,
		},
		{
			Name:     "amount",
			Prompt:   &survey.Input{Message: "Amount to invest:"},
			Validate: validateAmount,
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return advisor.RawRequest{}, err
	}

	return advisor.RawRequest{
		Age:            strings.TrimSpace(answers.Age),
		Risk:           answers.Risk,
		Horizon:        answers.Horizon,
		Goal:           answers.Goal,
		InvestedAmount: strings.TrimSpace(answers.Amount),
	}, nil
}

// PromptForLanguage shows the numbered language menu and resolves the choice.
func PromptForLanguage() (string, error) {
	fmt.Println(renderLanguages(translate.Languages))

	var choice string
	prompt := &survey.Input{
		Message: "Choose a language (number or code):",
		Default: "1",
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return translate.ResolveLanguage(choice), nil
}

// PromptForQuestion asks which FAQ entry to show; -1 means quit.
func PromptForQuestion(questions []string) (int, error) {
	options := append(append([]string(nil), questions...), "Back")
	var idx int
	prompt := &survey.Select{
		Message:  "Pick a question:",
		Options:  options,
		PageSize: 10,
	}
	if err := survey.AskOne(prompt, &idx); err != nil {
		return -1, err
	}
	if idx == len(questions) {
		return -1, nil
	}
	return idx, nil
}

// PromptForMode asks what the interactive session should do next.
func PromptForMode() (string, error) {
	var mode string
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: []string{modeRecommend, modeFAQ, modeQuit},
	}
	if err := survey.AskOne(prompt, &mode); err != nil {
		return "", err
	}
	return mode, nil
}

const (
	modeRecommend = "Get an investment recommendation"
	modeFAQ       = "Browse frequently asked questions"
	modeQuit      = "Quit"
)

func validateAge(val interface{}) error {
	str, _ := val.(string)
	n, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || n <= 0 {
		return fmt.Errorf("age must be a positive whole number")
	}
	return nil
}

func validateAmount(val interface{}) error {
	str, _ := val.(string)
	d, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil || d.IsNegative() {
		return fmt.Errorf("amount must be a non-negative number")
	}
	return nil
}
