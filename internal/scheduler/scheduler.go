package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"InvestAdvisor/internal/advisor"
	"InvestAdvisor/internal/faq"
	"InvestAdvisor/internal/macro"
	"InvestAdvisor/internal/notifier"
	"InvestAdvisor/internal/recorder"
	"InvestAdvisor/internal/translate"
)

// Notifier delivers digest messages.
type Notifier interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler manages all cron tasks.
type Scheduler struct {
	cron      *cron.Cron
	inflation macro.InflationSource
	market    advisor.MarketSource
	faq       *faq.Store
	notifier  Notifier
	recorder  recorder.Recorder
	ctx       context.Context
	log       zerolog.Logger
}

// NewScheduler creates a new Scheduler. n may be nil when no digest is wanted.
func NewScheduler(ctx context.Context, infl macro.InflationSource, market advisor.MarketSource, store *faq.Store, n Notifier, rec recorder.Recorder, log zerolog.Logger) *Scheduler {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		inflation: infl,
		market:    market,
		faq:       store,
		notifier:  n,
		recorder:  rec,
		ctx:       ctx,
		log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the market snapshot job.
func (s *Scheduler) Register(snapshotCron string) error {
	if _, err := s.cron.AddFunc(snapshotCron, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("Scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("Scheduler stopped")
}

// RunSnapshotNow takes and records a snapshot immediately.
func (s *Scheduler) RunSnapshotNow() (*recorder.Snapshot, error) {
	s.log.Info().Msg("Running market snapshot")

	inf, err := s.inflation.LatestInflation(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("inflation: %w", err)
	}
	top, err := s.market.TopPerformers(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("top performers: %w", err)
	}

	snap := &recorder.Snapshot{
		ID:        uuid.NewString(),
		TakenAt:   time.Now(),
		Inflation: *inf,
		Top:       top,
	}
	if err := s.recorder.RecordSnapshot(snap); err != nil {
		s.log.Error().Err(err).Msg("Record snapshot failed")
	}
	return snap, nil
}

func (s *Scheduler) snapshotTask() {
	snap, err := s.RunSnapshotNow()
	if err != nil {
		s.log.Error().Err(err).Msg("Snapshot failed")
		s.trySend(fmt.Sprintf("❌ Market snapshot failed: %v", err))
		return
	}
	s.trySend(notifier.FormatSnapshot(snap.TakenAt, snap.Inflation, snap.Top))
}

// HandleCommand processes a bot command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}

	switch fields[0] {
	case "/snapshot":
		snap, err := s.RunSnapshotNow()
		if err != nil {
			s.log.Error().Err(err).Msg("Snapshot command failed")
			return fmt.Sprintf("❌ Market snapshot failed: %v", err)
		}
		return notifier.FormatSnapshot(snap.TakenAt, snap.Inflation, snap.Top)
	case "/faq":
		if s.faq == nil {
			return "FAQ is not available."
		}
		if len(fields) == 1 {
			return notifier.FormatQuestions(s.faq.Questions(s.ctx, translate.DefaultLanguage))
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return "Usage: /faq &lt;number&gt;"
		}
		answer, err := s.faq.Answer(s.ctx, translate.DefaultLanguage, faq.Selector{Index: idx})
		if err != nil {
			return fmt.Sprintf("No question %d. Send /faq for the list.", idx)
		}
		return notifier.FormatAnswer(s.faq.Entries()[idx].Question, answer)
	case "/languages":
		return notifier.FormatLanguages(translate.Languages)
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendWithRetry(s.ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("Send notification failed")
	}
}
