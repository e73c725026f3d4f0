package model

import "strings"

// Risk is the user's risk appetite.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Horizon is the user's investment horizon.
type Horizon string

const (
	HorizonShort  Horizon = "short"
	HorizonMedium Horizon = "medium"
	HorizonLong   Horizon = "long"
)

// ParseRisk normalises s and reports whether it names a known risk level.
func ParseRisk(s string) (Risk, bool) {
	r := Risk(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return r, true
	}
	return r, false
}

// ParseHorizon normalises s and reports whether it names a known horizon.
func ParseHorizon(s string) (Horizon, bool) {
	h := Horizon(strings.ToLower(strings.TrimSpace(s)))
	switch h {
	case HorizonShort, HorizonMedium, HorizonLong:
		return h, true
	}
	return h, false
}

// Profile is the validated investor profile for one request.
type Profile struct {
	Age     int
	Risk    Risk
	Horizon Horizon
	Goal    string // lowercased free text
}
