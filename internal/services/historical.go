package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
	"github.com/jstittsworth/prospect-evaluator/pkg/database"
)

// HistoricalStore is the gorm-backed historical reference store. It
// implements engine.HistoricalSource. Reads go through a circuit breaker so
// a struggling database degrades evaluations to "no comparables" instead of
// stacking up slow queries.
type HistoricalStore struct {
	db      *database.DB
	logger  *logrus.Entry
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
}

func NewHistoricalStore(db *database.DB, logger *logrus.Logger, threshold int, timeout time.Duration) *HistoricalStore {
	settings := gobreaker.Settings{
		Name:        "historical-store",
		MaxRequests: uint32(threshold),
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"store":     name,
				"from":      from.String(),
				"to":        to.String(),
			}).Info("Circuit breaker state changed")
		},
	}

	return &HistoricalStore{
		db:      db,
		logger:  logger.WithField("component", "historical_store"),
		breaker: gobreaker.NewCircuitBreaker(settings),
		timeout: timeout,
	}
}

// FetchAll returns every eligible historical player with archetype tags and
// career counters. The eligibility floor is applied at the query so the
// engine never caches players without an NBA-level sample.
func (s *HistoricalStore) FetchAll(ctx context.Context) ([]models.HistoricalPlayer, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		queryCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		var players []models.HistoricalPlayer
		err := s.db.WithContext(queryCtx).
			Where("career_games >= ?", models.MinHistoricalGames).
			Order("name").
			Find(&players).Error
		if err != nil {
			return nil, fmt.Errorf("failed to query historical players: %w", err)
		}
		return players, nil
	})
	if err != nil {
		return nil, err
	}

	players := result.([]models.HistoricalPlayer)
	s.logger.WithField("count", len(players)).Debug("Fetched historical population")
	return players, nil
}

// List returns a page of the eligible population for the API surface.
func (s *HistoricalStore) List(ctx context.Context, page, perPage int) ([]models.HistoricalPlayer, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.HistoricalPlayer{}).
		Where("career_games >= ?", models.MinHistoricalGames).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count historical players: %w", err)
	}

	var players []models.HistoricalPlayer
	err = s.db.WithContext(ctx).
		Where("career_games >= ?", models.MinHistoricalGames).
		Order("name").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&players).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list historical players: %w", err)
	}
	return players, total, nil
}
