package advisor

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"InvestAdvisor/internal/macro"
	"InvestAdvisor/internal/model"
	"InvestAdvisor/internal/recorder"
	"InvestAdvisor/internal/translate"
)

// MarketSource supplies the current top-performing instruments.
type MarketSource interface {
	TopPerformers(ctx context.Context) ([]model.Performer, error)
}

// Service runs the recommendation pipeline for one request at a time.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	inflation  macro.InflationSource
	market     MarketSource
	translator *translate.Service
	recorder   recorder.Recorder
	log        zerolog.Logger
}

// NewService wires the pipeline to its collaborators. rec may be nil.
func NewService(inflation macro.InflationSource, market MarketSource, tr *translate.Service, rec recorder.Recorder, log zerolog.Logger) *Service {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Service{
		inflation:  inflation,
		market:     market,
		translator: tr,
		recorder:   rec,
		log:        log.With().Str("component", "advisor").Logger(),
	}
}

// Recommend validates raw and runs the pipeline:
// validate, fetch inflation, match, explain, fetch top instruments, allocate,
// translate, assemble. Validation errors satisfy errors.Is(err,
// model.ErrInvalidInput); collaborator failures satisfy
// errors.Is(err, model.ErrCollaborator). Translation never fails the request.
func (s *Service) Recommend(ctx context.Context, raw RawRequest) (*model.RecommendationResult, error) {
	in, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	return s.RecommendFor(ctx, in)
}

// RecommendFor runs the pipeline for an already validated Input.
func (s *Service) RecommendFor(ctx context.Context, in Input) (*model.RecommendationResult, error) {
	lang := s.translator.Normalize(in.Language)

	infl, err := s.inflation.LatestInflation(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Inflation fetch failed")
		return nil, model.CollaboratorError("inflation", err)
	}

	rec := Match(infl.YoYPercent, in.Profile)
	explanation := Explain(rec.Label)

	top, err := s.market.TopPerformers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Market data fetch failed")
		return nil, model.CollaboratorError("market data", err)
	}

	alloc, err := Allocate(in.Profile.Risk, in.Principal, len(top))
	if err != nil {
		return nil, err
	}

	fields := s.translator.Fields(ctx, lang, rec.Label, explanation)

	if top == nil {
		top = []model.Performer{}
	}
	result := &model.RecommendationResult{
		Recommendation: fields[0].Text,
		Explanation:    fields[1].Text,
		TopStocks:      top,
		Allocation:     alloc.Rounded(),
		ID:             uuid.NewString(),
		Label:          rec.Label,
		Matched:        rec.Matched,
		Language:       lang,
		Inflation:      *infl,
		Profile:        in.Profile,
		Principal:      in.Principal.InexactFloat64(),
	}

	s.log.Info().
		Str("id", result.ID).
		Float64("inflation_yoy", infl.YoYPercent).
		Str("regime", string(rec.Regime)).
		Bool("matched", rec.Matched).
		Int("instruments", len(top)).
		Str("lang", lang).
		Msg("Recommendation served")

	if err := s.recorder.RecordRecommendation(result); err != nil {
		s.log.Error().Err(err).Str("id", result.ID).Msg("Record recommendation failed")
	}
	return result, nil
}
