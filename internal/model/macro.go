package model

import "time"

// Observation is a single point of a macroeconomic time series.
type Observation struct {
	Date  time.Time
	Value float64
}

// InflationInfo is the inflation reading used for one request.
type InflationInfo struct {
	SeriesID    string    `json:"series_id"`
	LatestValue float64   `json:"latest_value"`
	LatestDate  time.Time `json:"latest_date"`
	YoYPercent  float64   `json:"yoy_percent"` // rounded to 2 dp
}
