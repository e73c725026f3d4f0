package advisor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestAdvisor/internal/model"
	"InvestAdvisor/internal/recorder"
	"InvestAdvisor/internal/translate"
)

type fakeInflation struct {
	yoy   float64
	err   error
	calls int
}

func (f *fakeInflation) LatestInflation(context.Context) (*model.InflationInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &model.InflationInfo{SeriesID: "CPIAUCSL", LatestValue: 310.3, LatestDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), YoYPercent: f.yoy}, nil
}

type fakeMarket struct {
	top   []model.Performer
	err   error
	calls int
}

func (f *fakeMarket) TopPerformers(context.Context) ([]model.Performer, error) {
	f.calls++
	return f.top, f.err
}

type memRecorder struct {
	recorder.NoopRecorder
	saved []*model.RecommendationResult
	err   error
}

func (m *memRecorder) RecordRecommendation(res *model.RecommendationResult) error {
	m.saved = append(m.saved, res)
	return m.err
}

func fivePerformers() []model.Performer {
	return []model.Performer{
		{Ticker: "TATAMOTORS.NS", ReturnPercent: 18.4},
		{Ticker: "ADANIENT.NS", ReturnPercent: 12.1},
		{Ticker: "INFY.NS", ReturnPercent: 9.75},
		{Ticker: "TCS.NS", ReturnPercent: 4.2},
		{Ticker: "ITC.NS", ReturnPercent: 1.03},
	}
}

// tagging prefixes the language code, failing for the listed texts.
func tagging(failOn ...string) translate.Func {
	return func(_ context.Context, text, lang string) (string, error) {
		for _, f := range failOn {
			if f == text {
				return "", fmt.Errorf("%w: backend unavailable", translate.ErrTranslation)
			}
		}
		return "[" + lang + "] " + text, nil
	}
}

func newTestService(infl *fakeInflation, mkt *fakeMarket, tr translate.Translator, rec recorder.Recorder) *Service {
	return NewService(infl, mkt, translate.NewService(tr, "en", zerolog.Nop()), rec, zerolog.Nop())
}

func growthRequest(lang any) RawRequest {
	return RawRequest{Age: 30.0, Risk: "high", Horizon: "long", Goal: "growth", InvestedAmount: 100000.0, Language: lang}
}

func TestRecommend_EndToEnd(t *testing.T) {
	infl := &fakeInflation{yoy: 7.2}
	mkt := &fakeMarket{top: fivePerformers()}
	rec := &memRecorder{}
	svc := newTestService(infl, mkt, tagging(), rec)

	res, err := svc.Recommend(context.Background(), growthRequest(nil))
	require.NoError(t, err)

	assert.Equal(t, "Gold ETF, Equity - Energy/Commodities, International ETFs", res.Recommendation)
	assert.Equal(t, Explain(res.Label), res.Explanation)
	assert.True(t, res.Matched)
	assert.Equal(t, "en", res.Language)
	assert.Len(t, res.TopStocks, 5)
	assert.Equal(t, model.Allocation{StockPercent: 70, FundPercent: 30, StockAmount: 70000, FundAmount: 30000, PerStockAmount: 14000}, res.Allocation)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 7.2, res.Inflation.YoYPercent)

	require.Len(t, rec.saved, 1)
	assert.Same(t, res, rec.saved[0])
}

func TestRecommend_NoMatchStillAllocates(t *testing.T) {
	svc := newTestService(&fakeInflation{yoy: 7}, &fakeMarket{top: fivePerformers()}, tagging(), nil)

	raw := RawRequest{Age: 99.0, Risk: "high", Horizon: "long", Goal: "growth", InvestedAmount: 1000.0}
	res, err := svc.Recommend(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, NoMatch, res.Recommendation)
	assert.Equal(t, FallbackExplanation, res.Explanation)
	assert.False(t, res.Matched)
	assert.Equal(t, 700.0, res.Allocation.StockAmount)
}

func TestRecommend_InvalidInputStopsPipeline(t *testing.T) {
	infl := &fakeInflation{yoy: 4}
	mkt := &fakeMarket{top: fivePerformers()}
	svc := newTestService(infl, mkt, tagging(), nil)

	_, err := svc.Recommend(context.Background(), RawRequest{Age: 30.0, Risk: "high"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Zero(t, infl.calls)
	assert.Zero(t, mkt.calls)
}

func TestRecommend_InflationFault(t *testing.T) {
	infl := &fakeInflation{err: errors.New("fred: 503")}
	mkt := &fakeMarket{top: fivePerformers()}
	svc := newTestService(infl, mkt, tagging(), nil)

	_, err := svc.Recommend(context.Background(), growthRequest(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCollaborator)
	assert.NotErrorIs(t, err, model.ErrInvalidInput)
	assert.Zero(t, mkt.calls)
}

func TestRecommend_MarketFault(t *testing.T) {
	svc := newTestService(&fakeInflation{yoy: 4}, &fakeMarket{err: errors.New("all symbols failed")}, tagging(), nil)

	_, err := svc.Recommend(context.Background(), growthRequest(nil))
	assert.ErrorIs(t, err, model.ErrCollaborator)
}

func TestRecommend_EmptyMarket(t *testing.T) {
	svc := newTestService(&fakeInflation{yoy: 4}, &fakeMarket{}, tagging(), nil)

	res, err := svc.Recommend(context.Background(), growthRequest(nil))
	require.NoError(t, err)
	assert.NotNil(t, res.TopStocks)
	assert.Empty(t, res.TopStocks)
	assert.Zero(t, res.Allocation.PerStockAmount)
}

func TestRecommend_TranslatesEachFieldIndependently(t *testing.T) {
	label := "Flexi-cap Equity Funds, Global Tech Funds"
	svc := newTestService(&fakeInflation{yoy: 4}, &fakeMarket{top: fivePerformers()}, tagging(Explain(label)), nil)

	res, err := svc.Recommend(context.Background(), growthRequest("HI"))
	require.NoError(t, err)

	assert.Equal(t, "[hi] "+label, res.Recommendation)
	assert.Equal(t, Explain(label), res.Explanation)
	assert.Equal(t, "hi", res.Language)
	assert.Equal(t, label, res.Label)
}

func TestRecommend_DefaultLanguageSkipsTranslator(t *testing.T) {
	called := false
	tr := translate.Func(func(context.Context, string, string) (string, error) {
		called = true
		return "", nil
	})
	svc := newTestService(&fakeInflation{yoy: 4}, &fakeMarket{top: fivePerformers()}, tr, nil)

	_, err := svc.Recommend(context.Background(), growthRequest("en"))
	require.NoError(t, err)
	assert.False(t, called)
}

func TestRecommend_RecorderFailureIsNotFatal(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full")}
	svc := newTestService(&fakeInflation{yoy: 2}, &fakeMarket{top: fivePerformers()}, tagging(), rec)

	res, err := svc.Recommend(context.Background(), growthRequest(nil))
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Len(t, rec.saved, 1)
}
