package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// HistoricalSource is the engine's one external I/O boundary: a read-only
// store of the historical reference population.
type HistoricalSource interface {
	FetchAll(ctx context.Context) ([]models.HistoricalPlayer, error)
}

// Options controls optional parts of an evaluation.
type Options struct {
	// SkipComparables evaluates without touching the historical store.
	SkipComparables bool
}

// Engine evaluates prospect records against context-specific reference
// tables and a lazily fetched historical population. The population is
// loaded at most once (single-flight) and is read-only afterwards, so one
// Engine is safe for concurrent evaluations.
type Engine struct {
	source HistoricalSource
	logger *logrus.Entry

	group      singleflight.Group
	mu         sync.RWMutex
	population []models.HistoricalPlayer
	loaded     bool
}

// New creates an evaluation engine over the given historical source.
func New(source HistoricalSource, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Engine{
		source: source,
		logger: logger.WithField("component", "evaluation_engine"),
	}
}

// Evaluate runs the full pipeline for one record. It is a total function:
// any internal failure produces a neutral result carrying a single negative
// flag instead of an error.
func (e *Engine) Evaluate(ctx context.Context, record *models.ProspectRecord) *models.EvaluationResult {
	return e.EvaluateWithOptions(ctx, record, Options{})
}

// EvaluateWithOptions is Evaluate with explicit options.
func (e *Engine) EvaluateWithOptions(ctx context.Context, record *models.ProspectRecord, opts Options) (result *models.EvaluationResult) {
	name := "unknown prospect"
	if record != nil && record.Name != "" {
		name = record.Name
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.WithFields(logrus.Fields{
				"prospect": name,
				"panic":    fmt.Sprintf("%v", r),
			}).Error("Evaluation pipeline panicked, returning neutral result")
			result = neutralResult(name, fmt.Sprintf("internal evaluation failure: %v", r))
		}
	}()

	if record == nil {
		return neutralResult(name, "no record supplied")
	}

	result = e.evaluate(ctx, record, opts)
	return result
}

func (e *Engine) evaluate(ctx context.Context, record *models.ProspectRecord, opts Options) *models.EvaluationResult {
	evalContext := detectContext(record)
	weights := weightsFor(evalContext)
	profile := normalizePhysical(record)
	stats := deriveStats(record, evalContext)

	pillars := scorePillars(record, stats, profile, evalContext)
	flags := generateFlags(record, stats, profile, evalContext)
	archetypes := classifyArchetype(record, stats, evalContext, e.logger)

	score := blendScore(pillars, weights, record, stats, flags)
	confidence := confidenceScore(stats.GamesPlayed)
	lowSample := lowSampleRisk(stats)

	result := &models.EvaluationResult{
		Name:           record.Name,
		Context:        evalContext,
		CompositeScore: score,
		Confidence:     confidence,
		PillarScores:   pillars,
		Archetypes:     archetypes,
		Flags:          flags,
		Physical:       profile,
		Derived:        stats,
		LowSample:      lowSample,
	}
	result.DraftProjection, result.Tier, result.Readiness = projectDraft(score, lowSample, result.HasNegativeFlag())

	if !opts.SkipComparables {
		population, err := e.Population(ctx)
		if err != nil {
			// Store failure is not fatal to the evaluation; the result just
			// carries no comparables.
			e.logger.WithError(err).WithField("prospect", record.Name).Warn("Historical store unavailable, skipping comparables")
		} else {
			result.Comparables = rankComparables(archetypes, record.Position, profile, stats, population)
		}
	}

	return result
}

// Population returns the cached historical population, fetching it on first
// use. Concurrent first callers collapse into a single fetch and all observe
// the same completed cache.
func (e *Engine) Population(ctx context.Context) ([]models.HistoricalPlayer, error) {
	e.mu.RLock()
	if e.loaded {
		population := e.population
		e.mu.RUnlock()
		return population, nil
	}
	e.mu.RUnlock()

	_, err, _ := e.group.Do("population", func() (interface{}, error) {
		e.mu.RLock()
		loaded := e.loaded
		e.mu.RUnlock()
		if loaded {
			return nil, nil
		}

		fetched, err := e.source.FetchAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch historical population: %w", err)
		}

		e.mu.Lock()
		e.population = fetched
		e.loaded = true
		e.mu.Unlock()

		e.logger.WithField("players", len(fetched)).Info("Historical population cached")
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.population, nil
}

// Invalidate drops the cached population so the next evaluation refetches.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	e.population = nil
	e.loaded = false
	e.mu.Unlock()
}

// Warm eagerly loads the population cache.
func (e *Engine) Warm(ctx context.Context) error {
	_, err := e.Population(ctx)
	return err
}

// neutralResult is the total-function fallback: a zeroed result carrying a
// single negative flag describing the failure.
func neutralResult(name, reason string) *models.EvaluationResult {
	return &models.EvaluationResult{
		Name:            name,
		Context:         models.ContextCollege,
		CompositeScore:  0,
		Confidence:      0,
		PillarScores:    map[models.Pillar]float64{},
		Tier:            "Unrated",
		DraftProjection: "Unrated",
		Readiness:       ReadinessHighRisk,
		Archetypes:      []models.Archetype{models.ArchetypeAllAround},
		Flags: []models.Flag{{
			Name:     "evaluation_failed",
			Polarity: models.FlagNegative,
			Message:  reason,
		}},
		LowSample: true,
	}
}
