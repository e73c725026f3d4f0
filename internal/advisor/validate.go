package advisor

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"InvestAdvisor/internal/model"
)

// RawRequest is the recommendation request as decoded from JSON. Values are
// left untyped so that validation can report field-level errors.
type RawRequest struct {
	Age            any `json:"age"`
	Risk           any `json:"risk"`
	Horizon        any `json:"horizon"`
	Goal           any `json:"goal"`
	InvestedAmount any `json:"invested_amount"`
	Language       any `json:"language"`
}

// Input is a validated recommendation request.
type Input struct {
	Profile   model.Profile
	Principal decimal.Decimal
	Language  string // lowercased, empty when not given
}

// Validate checks every field of raw and builds the Input.
func Validate(raw RawRequest) (Input, error) {
	var in Input

	age, err := wholeNumber("age", raw.Age)
	if err != nil {
		return in, err
	}
	if age <= 0 {
		return in, &model.InputError{Field: "age", Reason: "must be positive"}
	}

	riskText, err := requiredString("risk", raw.Risk)
	if err != nil {
		return in, err
	}
	risk, ok := model.ParseRisk(riskText)
	if !ok {
		return in, &model.InputError{Field: "risk", Reason: "must be one of low, medium, high"}
	}

	horizonText, err := requiredString("horizon", raw.Horizon)
	if err != nil {
		return in, err
	}
	horizon, ok := model.ParseHorizon(horizonText)
	if !ok {
		return in, &model.InputError{Field: "horizon", Reason: "must be one of short, medium, long"}
	}

	goal, err := requiredString("goal", raw.Goal)
	if err != nil {
		return in, err
	}

	principal, err := number("invested_amount", raw.InvestedAmount)
	if err != nil {
		return in, err
	}
	if principal.IsNegative() {
		return in, &model.InputError{Field: "invested_amount", Reason: "must not be negative"}
	}

	var lang string
	if raw.Language != nil {
		s, ok := raw.Language.(string)
		if !ok {
			return in, &model.InputError{Field: "language", Reason: "must be a string"}
		}
		lang = strings.ToLower(strings.TrimSpace(s))
	}

	in.Profile = model.Profile{
		Age:     int(age),
		Risk:    risk,
		Horizon: horizon,
		Goal:    strings.ToLower(goal),
	}
	in.Principal = principal
	in.Language = lang
	return in, nil
}

func requiredString(field string, v any) (string, error) {
	if v == nil {
		return "", &model.InputError{Field: field, Reason: "is required"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &model.InputError{Field: field, Reason: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &model.InputError{Field: field, Reason: "must not be empty"}
	}
	return s, nil
}

// number accepts a JSON number or a numeric string.
func number(field string, v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, &model.InputError{Field: field, Reason: "is required"}
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, &model.InputError{Field: field, Reason: "must be a finite number"}
		}
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, &model.InputError{Field: field, Reason: "must be a number"}
		}
		return d, nil
	default:
		return decimal.Zero, &model.InputError{Field: field, Reason: "must be a number"}
	}
}

func wholeNumber(field string, v any) (int64, error) {
	if s, ok := v.(string); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return 0, &model.InputError{Field: field, Reason: "must be a whole number"}
		}
		return n, nil
	}
	d, err := number(field, v)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) || d.LessThan(decimal.NewFromInt(math.MinInt32)) {
		return 0, &model.InputError{Field: field, Reason: "must be a whole number"}
	}
	return d.IntPart(), nil
}
