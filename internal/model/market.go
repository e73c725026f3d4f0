package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Performer is a symbol ranked by its return over the lookback window.
type Performer struct {
	Ticker        string  `json:"ticker"`
	ReturnPercent float64 `json:"return_percent"`
}
