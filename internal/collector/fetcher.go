package collector

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"InvestAdvisor/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns daily bars covering lookback (Yahoo range syntax, e.g. "3mo").
	FetchDailyBars(ctx context.Context, symbol, lookback string) ([]model.OHLCV, error)
	Name() string
}

// LookbackStart converts a range such as "5d", "2wk", "3mo" or "1y" into the
// start of the window ending at now.
func LookbackStart(now time.Time, lookback string) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(lookback))
	units := []struct {
		suffix string
		apply  func(n int) time.Time
	}{
		{"wk", func(n int) time.Time { return now.AddDate(0, 0, -7*n) }},
		{"mo", func(n int) time.Time { return now.AddDate(0, -n, 0) }},
		{"d", func(n int) time.Time { return now.AddDate(0, 0, -n) }},
		{"y", func(n int) time.Time { return now.AddDate(-n, 0, 0) }},
	}
	for _, u := range units {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(s, u.suffix))
		if err != nil || n <= 0 {
			return time.Time{}, fmt.Errorf("invalid lookback %q", lookback)
		}
		return u.apply(n), nil
	}
	return time.Time{}, fmt.Errorf("invalid lookback %q", lookback)
}
