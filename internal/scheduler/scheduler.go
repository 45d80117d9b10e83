package scheduler

import (
	"context"
	"fmt"
	"time"

	"HexOracle/internal/divination"
	"HexOracle/internal/notifier"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler pushes a daily market reading for one symbol to Telegram.
type Scheduler struct {
	cron     *cron.Cron
	svc      *divination.Service
	notifier *notifier.Telegram
	symbol   string
	ctx      context.Context
	log      zerolog.Logger
}

// New creates a scheduler bound to ctx; in-flight tasks stop sending when
// ctx is done.
func New(ctx context.Context, svc *divination.Service, tn *notifier.Telegram, symbol string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		svc:      svc,
		notifier: tn,
		symbol:   symbol,
		ctx:      ctx,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the daily reading task under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.dailyReading); err != nil {
		return fmt.Errorf("register daily reading: %w", err)
	}
	return nil
}

// Start starts the cron loop.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Str("symbol", s.symbol).Msg("scheduler started")
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes the daily task immediately, for manual triggering.
func (s *Scheduler) RunNow() { s.dailyReading() }

func (s *Scheduler) dailyReading() {
	ctx, cancel := context.WithTimeout(s.ctx, 60*time.Second)
	defer cancel()

	res, err := s.svc.MarketReading(ctx, s.symbol, time.Now())
	if err != nil {
		s.log.Error().Err(err).Str("symbol", s.symbol).Msg("daily reading failed")
		s.trySend(ctx, fmt.Sprintf("❌ 每日卦象生成失败: %v", err))
		return
	}

	s.trySend(ctx, notifier.FormatReading(res))
}

func (s *Scheduler) trySend(ctx context.Context, text string) {
	if err := s.notifier.SendWithRetry(ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("telegram push failed")
	}
}
