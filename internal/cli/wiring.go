package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"InvestAdvisor/internal/advisor"
	"InvestAdvisor/internal/collector"
	"InvestAdvisor/internal/config"
	"InvestAdvisor/internal/faq"
	"InvestAdvisor/internal/macro"
	"InvestAdvisor/internal/recorder"
	"InvestAdvisor/internal/translate"
)

// services are the collaborators built once per process and injected.
type services struct {
	inflation  macro.InflationSource
	market     *collector.Collector
	translator *translate.Service
	recorder   recorder.Recorder
	advisor    *advisor.Service
	faq        *faq.Store
}

func newTranslator(cfg *config.Config, log zerolog.Logger) *translate.Service {
	var tr translate.Translator = translate.Unconfigured{}
	if cfg.TranslationEnabled() {
		tr = translate.NewGoogleTranslator(cfg.Translate.BaseURL, cfg.Translate.ProjectID, cfg.Translate.AccessToken, log)
	} else {
		log.Warn().Msg("Translation backend not configured, responses stay in the default language")
	}
	return translate.NewService(tr, cfg.Translate.DefaultLanguage, log)
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.MarketData.Provider {
	case "financego":
		return collector.NewFinanceGoFetcher()
	case "mock":
		return &collector.MockFetcher{}
	}
	return collector.NewYahooFetcher(cfg.MarketData.BaseURL, cfg.MarketData.Proxy)
}

func newRecorder(cfg *config.Config, log zerolog.Logger) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
	if err != nil {
		log.Warn().Err(err).Msg("Init SQLite recorder failed, using noop")
		return recorder.NewNoopRecorder()
	}
	return sr
}

// newServices validates cfg and wires every collaborator.
func newServices(cfg *config.Config, log zerolog.Logger) (*services, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	fetcher := newFetcher(cfg)
	log.Info().Str("source", fetcher.Name()).Msg("Market data source selected")

	s := &services{
		inflation:  macro.NewFredClient(cfg.Fred.BaseURL, cfg.Fred.APIKey, cfg.Fred.SeriesID, log),
		market:     collector.NewCollector(fetcher, cfg.MarketData.Symbols, cfg.MarketData.Lookback, cfg.MarketData.TopN, log),
		translator: newTranslator(cfg, log),
		recorder:   newRecorder(cfg, log),
	}
	s.advisor = advisor.NewService(s.inflation, s.market, s.translator, s.recorder, log)
	s.faq = faq.NewStore(s.translator)
	return s, nil
}

func (s *services) Close() error {
	return s.recorder.Close()
}
