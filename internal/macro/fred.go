// Package macro fetches macroeconomic series and derives the inflation rate.
package macro

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"InvestAdvisor/internal/calculator"
	"InvestAdvisor/internal/model"
)

// DefaultBaseURL is the FRED REST endpoint.
const DefaultBaseURL = "https://api.stlouisfed.org/fred"

// DefaultSeriesID is the US CPI for all urban consumers, monthly.
const DefaultSeriesID = "CPIAUCSL"

// yoyMonths is the distance between the latest observation and its base.
const yoyMonths = 12

// InflationSource supplies the current inflation reading.
type InflationSource interface {
	LatestInflation(ctx context.Context) (*model.InflationInfo, error)
}

// FredClient reads series observations from the FRED API.
type FredClient struct {
	client   *resty.Client
	apiKey   string
	seriesID string
	log      zerolog.Logger
}

// NewFredClient creates a FRED client. An empty baseURL or seriesID selects the default.
func NewFredClient(baseURL, apiKey, seriesID string, log zerolog.Logger) *FredClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if seriesID == "" {
		seriesID = DefaultSeriesID
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(30 * time.Second)

	return &FredClient{
		client:   client,
		apiKey:   apiKey,
		seriesID: seriesID,
		log:      log.With().Str("client", "fred").Logger(),
	}
}

type fredObservations struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
	ErrorMessage string `json:"error_message"`
}

// FetchSeries returns the observations of a series in date order.
// Missing values (reported by FRED as ".") are dropped; YearOverYear picks
// its base by date, so a gap does not shift it.
func (c *FredClient) FetchSeries(ctx context.Context, seriesID string) ([]model.Observation, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"series_id":  seriesID,
			"api_key":    c.apiKey,
			"file_type":  "json",
			"sort_order": "asc",
		}).
		Get("/series/observations")
	if err != nil {
		return nil, fmt.Errorf("fetch series %s: %w", seriesID, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch series %s: status %d, body: %s", seriesID, resp.StatusCode(), resp.String())
	}

	var payload fredObservations
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("decode series %s: %w", seriesID, err)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("fred api error: %s", payload.ErrorMessage)
	}

	obs := make([]model.Observation, 0, len(payload.Observations))
	for _, o := range payload.Observations {
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		d, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			return nil, fmt.Errorf("parse observation date %q: %w", o.Date, err)
		}
		obs = append(obs, model.Observation{Date: d, Value: v})
	}
	c.log.Debug().Str("series", seriesID).Int("observations", len(obs)).Msg("Fetched series")
	return obs, nil
}

// LatestInflation returns the latest value and its year-over-year change.
func (c *FredClient) LatestInflation(ctx context.Context) (*model.InflationInfo, error) {
	obs, err := c.FetchSeries(ctx, c.seriesID)
	if err != nil {
		return nil, err
	}
	return InflationFromSeries(c.seriesID, obs)
}

// InflationFromSeries derives the inflation reading from a monthly index series.
func InflationFromSeries(seriesID string, obs []model.Observation) (*model.InflationInfo, error) {
	yoy, err := calculator.YearOverYear(obs, yoyMonths)
	if err != nil {
		return nil, fmt.Errorf("series %s: %w", seriesID, err)
	}
	latest := obs[len(obs)-1]
	return &model.InflationInfo{
		SeriesID:    seriesID,
		LatestValue: latest.Value,
		LatestDate:  latest.Date,
		YoYPercent:  yoy.Round(2).InexactFloat64(),
	}, nil
}
