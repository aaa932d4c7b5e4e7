package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/prospect-evaluator/internal/engine"
)

// RefresherService periodically invalidates and re-warms the engine's
// historical-population cache so long-lived processes pick up reference-store
// changes without a restart.
type RefresherService struct {
	engine   *engine.Engine
	logger   *logrus.Entry
	cron     *cron.Cron
	interval time.Duration

	mu        sync.Mutex
	isRunning bool
}

func NewRefresherService(eng *engine.Engine, logger *logrus.Logger, interval time.Duration) *RefresherService {
	return &RefresherService{
		engine:   eng,
		logger:   logger.WithField("component", "population_refresher"),
		cron:     cron.New(),
		interval: interval,
	}
}

// Start schedules the periodic refresh.
func (s *RefresherService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("refresher is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.interval.String())
	if _, err := s.cron.AddFunc(schedule, s.refresh); err != nil {
		return fmt.Errorf("failed to schedule population refresh: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("interval", s.interval.String()).Info("Population refresher started")
	return nil
}

// Stop halts the scheduled refreshes, waiting for an in-flight run.
func (s *RefresherService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Population refresher stopped")
}

// Refresh drops the cached population and warms it again immediately.
func (s *RefresherService) Refresh(ctx context.Context) error {
	s.engine.Invalidate()
	if err := s.engine.Warm(ctx); err != nil {
		return fmt.Errorf("failed to re-warm historical population: %w", err)
	}
	return nil
}

func (s *RefresherService) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.Refresh(ctx); err != nil {
		s.logger.WithError(err).Error("Scheduled population refresh failed")
		return
	}
	s.logger.Info("Historical population refreshed")
}
