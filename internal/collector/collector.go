package collector

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"InvestAdvisor/internal/calculator"
	"InvestAdvisor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Requested symbols are kept in Calls only when Record is set.
type MockFetcher struct {
	Price  float64
	Bars   map[string][]model.OHLCV
	Errs   map[string]error
	Record bool
	Calls  []string

	mu      sync.Mutex
	fetches int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol, _ string) ([]model.OHLCV, error) {
	m.mu.Lock()
	m.fetches++
	seed := m.fetches
	if m.Record {
		m.Calls = append(m.Calls, symbol)
	}
	m.mu.Unlock()

	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if m.Bars != nil {
		return m.Bars[symbol], nil
	}
	return generateMockBars(m.Price, 60, seed), nil
}

func generateMockBars(basePrice float64, count, seed int) []model.OHLCV {
	if basePrice == 0 {
		basePrice = 100
	}
	drift := float64(seed%7-3) * 0.001
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i)*drift)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// DefaultTopN is the number of performers returned when none is configured.
const DefaultTopN = 5

// DefaultLookback is the window over which returns are measured.
const DefaultLookback = "3mo"

// Collector fetches the instrument universe and ranks it by return.
type Collector struct {
	Fetcher  Fetcher
	Symbols  []string
	Lookback string
	TopN     int
	log      zerolog.Logger
}

// NewCollector creates a new Collector. Empty arguments fall back to the defaults.
func NewCollector(fetcher Fetcher, symbols []string, lookback string, topN int, log zerolog.Logger) *Collector {
	if len(symbols) == 0 {
		symbols = DefaultSymbols
	}
	if lookback == "" {
		lookback = DefaultLookback
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Collector{
		Fetcher:  fetcher,
		Symbols:  symbols,
		Lookback: lookback,
		TopN:     topN,
		log:      log.With().Str("component", "collector").Str("source", fetcher.Name()).Logger(),
	}
}

type symbolReturn struct {
	symbol string
	ret    decimal.Decimal
}

// TopPerformers fetches every symbol, drops those without data and returns
// the TopN by descending return. It fails only when no symbol could be fetched.
func (c *Collector) TopPerformers(ctx context.Context) ([]model.Performer, error) {
	returns := make([]symbolReturn, 0, len(c.Symbols))
	var failed int
	var lastErr error

	for _, sym := range c.Symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bars, err := c.Fetcher.FetchDailyBars(ctx, sym, c.Lookback)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failed++
			lastErr = err
			c.log.Warn().Err(err).Str("symbol", sym).Msg("Fetch failed, dropping symbol")
			continue
		}
		r, err := calculator.PercentReturn(bars)
		if err != nil {
			if !errors.Is(err, calculator.ErrNoData) {
				c.log.Warn().Err(err).Str("symbol", sym).Msg("Return calculation failed, dropping symbol")
			}
			continue
		}
		returns = append(returns, symbolReturn{symbol: sym, ret: r})
	}

	if len(c.Symbols) > 0 && failed == len(c.Symbols) {
		return nil, fmt.Errorf("all %d symbols failed: %w", failed, lastErr)
	}

	return rank(returns, c.TopN), nil
}

func rank(returns []symbolReturn, n int) []model.Performer {
	sort.SliceStable(returns, func(i, j int) bool {
		return returns[i].ret.GreaterThan(returns[j].ret)
	})
	if len(returns) > n {
		returns = returns[:n]
	}
	out := make([]model.Performer, len(returns))
	for i, r := range returns {
		out[i] = model.Performer{
			Ticker:        r.symbol,
			ReturnPercent: r.ret.Round(2).InexactFloat64(),
		}
	}
	return out
}
