package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"InvestAdvisor/internal/model"
)

// DefaultYahooBaseURL is the public Yahoo Finance chart host.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	client *resty.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(baseURL, proxyURL string) *YahooFetcher {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &YahooFetcher{client: client}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// chartResponse is the subset of the v8 chart payload used here. Null
// entries in the series decode to nil pointers.
type chartResponse struct {
	Chart struct {
		Result []chartSeries `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartSeries struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*float64 `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

// bars converts the series to OHLCV in time order. Days without a close
// (holidays, suspended trading) are skipped.
func (s chartSeries) bars() []model.OHLCV {
	if len(s.Indicators.Quote) == 0 {
		return nil
	}
	q := s.Indicators.Quote[0]
	out := make([]model.OHLCV, 0, len(s.Timestamp))
	for i, ts := range s.Timestamp {
		c := valueAt(q.Close, i)
		if c == nil {
			continue
		}
		out = append(out, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   deref(valueAt(q.Open, i)),
			High:   deref(valueAt(q.High, i)),
			Low:    deref(valueAt(q.Low, i)),
			Close:  *c,
			Volume: deref(valueAt(q.Volume, i)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

func valueAt(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func (f *YahooFetcher) FetchDailyBars(ctx context.Context, symbol, lookback string) ([]model.OHLCV, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    lookback,
		}).
		Get("/v8/finance/chart/" + url.PathEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	// Unknown symbols come back as 404 with a chart.error body, so decode
	// before looking at the status.
	var payload chartResponse
	decodeErr := json.Unmarshal(resp.Body(), &payload)
	switch {
	case decodeErr == nil && payload.Chart.Error != nil:
		return nil, fmt.Errorf("yahoo %s: %s", symbol, payload.Chart.Error.Description)
	case resp.StatusCode() != 200:
		return nil, fmt.Errorf("yahoo %s: status %d", symbol, resp.StatusCode())
	case decodeErr != nil:
		return nil, fmt.Errorf("yahoo decode %s: %w", symbol, decodeErr)
	case len(payload.Chart.Result) == 0:
		return nil, nil
	}
	return payload.Chart.Result[0].bars(), nil
}
