package collector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestAdvisor/internal/model"
)

func closes(vals ...float64) []model.OHLCV {
	out := make([]model.OHLCV, len(vals))
	for i, v := range vals {
		out[i] = model.OHLCV{Time: time.Unix(int64(i)*86400, 0), Close: v}
	}
	return out
}

func TestCollector_TopPerformers_RanksDescending(t *testing.T) {
	m := &MockFetcher{Bars: map[string][]model.OHLCV{
		"A": closes(100, 110),    // 10
		"B": closes(100, 130),    // 30
		"C": closes(100, 95),     // -5
		"D": closes(100, 120.5),  // 20.5
		"E": closes(50, 51),      // 2
		"F": closes(10, 10.0123), // 0.123
		"G": nil,                 // no data, dropped
	}}
	c := NewCollector(m, []string{"A", "B", "C", "D", "E", "F", "G"}, "3mo", 5, zerolog.Nop())

	top, err := c.TopPerformers(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 5)

	assert.Equal(t, []model.Performer{
		{Ticker: "B", ReturnPercent: 30},
		{Ticker: "D", ReturnPercent: 20.5},
		{Ticker: "A", ReturnPercent: 10},
		{Ticker: "E", ReturnPercent: 2},
		{Ticker: "F", ReturnPercent: 0.12},
	}, top)
}

func TestCollector_TopPerformers_DropsFailedSymbols(t *testing.T) {
	m := &MockFetcher{
		Bars:   map[string][]model.OHLCV{"A": closes(100, 101)},
		Errs:   map[string]error{"B": errors.New("timeout")},
		Record: true,
	}
	c := NewCollector(m, []string{"A", "B"}, "", 0, zerolog.Nop())

	top, err := c.TopPerformers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Performer{{Ticker: "A", ReturnPercent: 1}}, top)
	assert.Equal(t, []string{"A", "B"}, m.Calls)
}

func TestCollector_TopPerformers_AllFailed(t *testing.T) {
	m := &MockFetcher{Errs: map[string]error{
		"A": errors.New("down"),
		"B": errors.New("down"),
	}}
	c := NewCollector(m, []string{"A", "B"}, "3mo", 5, zerolog.Nop())

	_, err := c.TopPerformers(context.Background())
	assert.Error(t, err)
}

func TestCollector_TopPerformers_NoUsableData(t *testing.T) {
	m := &MockFetcher{Bars: map[string][]model.OHLCV{"A": nil, "B": closes(0, 0)}}
	c := NewCollector(m, []string{"A", "B"}, "3mo", 5, zerolog.Nop())

	top, err := c.TopPerformers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestCollector_TopPerformers_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := &cancellingFetcher{MockFetcher: MockFetcher{Record: true}, cancelAfter: 2, cancel: cancel}
	c := NewCollector(m, []string{"A", "B", "C", "D", "E"}, "3mo", 5, zerolog.Nop())

	_, err := c.TopPerformers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"A", "B"}, m.Calls)
}

// cancellingFetcher cancels the request context after a fixed number of fetches.
type cancellingFetcher struct {
	MockFetcher
	cancelAfter int
	cancel      context.CancelFunc
}

func (f *cancellingFetcher) FetchDailyBars(ctx context.Context, symbol, lookback string) ([]model.OHLCV, error) {
	bars, err := f.MockFetcher.FetchDailyBars(ctx, symbol, lookback)
	if len(f.Calls) == f.cancelAfter {
		f.cancel()
	}
	return bars, err
}

func TestMockFetcher_RecordsOnlyWhenAsked(t *testing.T) {
	m := &MockFetcher{}
	for i := 0; i < 100; i++ {
		bars, err := m.FetchDailyBars(context.Background(), "TCS.NS", "3mo")
		require.NoError(t, err)
		require.NotEmpty(t, bars)
	}
	assert.Empty(t, m.Calls)

	m.Record = true
	_, _ = m.FetchDailyBars(context.Background(), "INFY.NS", "3mo")
	assert.Equal(t, []string{"INFY.NS"}, m.Calls)
}

func TestCollector_Defaults(t *testing.T) {
	c := NewCollector(&MockFetcher{}, nil, "", 0, zerolog.Nop())
	assert.Len(t, c.Symbols, 30)
	assert.Equal(t, DefaultLookback, c.Lookback)
	assert.Equal(t, DefaultTopN, c.TopN)
}

func TestLookbackStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"5d", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"2wk", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"3mo", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"1y", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := LookbackStart(now, tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "mo", "0d", "-1y", "3h"} {
		_, err := LookbackStart(now, bad)
		assert.Error(t, err, bad)
	}
}

func TestYahooFetcher_FetchDailyBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/TCS.NS", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "3mo", r.URL.Query().Get("range"))
		fmt.Fprint(w, `{"chart":{"result":[{"timestamp":[300,100,200],
			"indicators":{"quote":[{"open":[3,1,null],"high":[3,1,null],"low":[3,1,null],"close":[3.5,1.5,null],"volume":[10,20,null]}]}}],"error":null}}`)
	}))
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "")
	bars, err := f.FetchDailyBars(context.Background(), "TCS.NS", "3mo")
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 1.5, bars[0].Close)
	assert.Equal(t, 3.5, bars[1].Close)
	assert.Equal(t, "yahoo", f.Name())
}

func TestYahooFetcher_UnknownSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "")
	_, err := f.FetchDailyBars(context.Background(), "NOPE.NS", "3mo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delisted")
}

func TestYahooFetcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewYahooFetcher(srv.URL, "")
	_, err := f.FetchDailyBars(context.Background(), "TCS.NS", "3mo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
