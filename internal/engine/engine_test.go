package engine

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

type fakeSource struct {
	mu      sync.Mutex
	calls   int
	players []models.HistoricalPlayer
	err     error
	delay   time.Duration
	panics  bool
}

func (s *fakeSource) FetchAll(ctx context.Context) ([]models.HistoricalPlayer, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.panics {
		panic("historical store exploded")
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.players, s.err
}

func (s *fakeSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestEngine(source *fakeSource) *Engine {
	return New(source, quietLogger())
}

func eliteScorerRecord(games int) *models.ProspectRecord {
	return &models.ProspectRecord{
		Name:        "Test Prospect",
		Position:    "SG",
		Height:      `6'5"`,
		GamesPlayed: ip(games),
		PPG:         f(25),
		FGPct:       f(0.55),
		ThreePct:    f(0.40),
		FTPct:       f(0.85),
	}
}

func TestEvaluateEliteScorer(t *testing.T) {
	eng := newTestEngine(&fakeSource{})
	result := eng.EvaluateWithOptions(context.Background(), eliteScorerRecord(30), Options{SkipComparables: true})

	require.NotNil(t, result)
	assert.Equal(t, models.ContextCollege, result.Context)
	assert.InDelta(t, 1.0, result.Confidence, 0.001)
	assert.False(t, result.LowSample)
	assert.Greater(t, result.CompositeScore, 0.85)

	assert.Equal(t, "Top 5 Pick", result.DraftProjection)
	assert.Equal(t, "Elite Prospect", result.Tier)
	assert.Equal(t, ReadinessNow, result.Readiness)

	names := flagNames(result.Flags)
	assert.Contains(t, names, "elite_scorer")
	assert.Contains(t, names, "elite_shooter")
	assert.Contains(t, names, "shooting_touch")
	assert.NotContains(t, names, "small_sample")
	assert.False(t, result.HasNegativeFlag())
}

func TestEvaluateThinSampleSameTalent(t *testing.T) {
	eng := newTestEngine(&fakeSource{})
	full := eng.EvaluateWithOptions(context.Background(), eliteScorerRecord(30), Options{SkipComparables: true})
	thin := eng.EvaluateWithOptions(context.Background(), eliteScorerRecord(3), Options{SkipComparables: true})

	// The potential score stays close; only confidence and the projection
	// framing change.
	assert.InDelta(t, full.CompositeScore, thin.CompositeScore, 0.06)
	assert.InDelta(t, 0.2, thin.Confidence, 0.001)
	assert.True(t, thin.LowSample)

	assert.Equal(t, "First Round", thin.DraftProjection)
	assert.Equal(t, ReadinessHighRisk, thin.Readiness)
	assert.Contains(t, flagNames(thin.Flags), "small_sample")
}

func TestEvaluateWingspanDeficit(t *testing.T) {
	record := eliteScorerRecord(30)
	record.Height = `6'6"`
	record.Wingspan = `6'4"`

	eng := newTestEngine(&fakeSource{})
	result := eng.EvaluateWithOptions(context.Background(), record, Options{SkipComparables: true})

	assert.Contains(t, flagNames(result.Flags), "limited_physical_potential")
	assert.Equal(t, ReadinessHighRisk, result.Readiness, "a fired negative flag downgrades readiness")
	assert.False(t, result.Physical.WingspanEstimated)
}

func TestEvaluateIdempotent(t *testing.T) {
	source := &fakeSource{players: []models.HistoricalPlayer{{
		Name: "Comp Guard", Position: "SG", HeightIn: 77,
		CareerGames: 800, CareerSeasons: 11, DraftYear: 2012, DraftPick: 13,
		Archetypes: archetypeJSON(t, "Shot Creator"),
	}}}
	eng := newTestEngine(source)

	first := eng.Evaluate(context.Background(), eliteScorerRecord(30))
	second := eng.Evaluate(context.Background(), eliteScorerRecord(30))

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.callCount(), "population fetched once across evaluations")
	require.Len(t, first.Comparables, 1)
	assert.Equal(t, "Comp Guard", first.Comparables[0].Name)
}

func TestEvaluateStoreFailure(t *testing.T) {
	eng := newTestEngine(&fakeSource{err: errors.New("connection refused")})
	result := eng.Evaluate(context.Background(), eliteScorerRecord(30))

	// Store failure only costs the comparables; the evaluation itself stands.
	require.NotNil(t, result)
	assert.Empty(t, result.Comparables)
	assert.Greater(t, result.CompositeScore, 0.85)
	assert.NotEqual(t, "Unrated", result.Tier)
}

func TestEvaluatePanicRecovery(t *testing.T) {
	eng := newTestEngine(&fakeSource{panics: true})
	result := eng.Evaluate(context.Background(), eliteScorerRecord(30))

	require.NotNil(t, result)
	assert.Equal(t, "Test Prospect", result.Name)
	assert.Equal(t, "Unrated", result.Tier)
	assert.Equal(t, ReadinessHighRisk, result.Readiness)
	assert.Zero(t, result.CompositeScore)
	assert.Zero(t, result.Confidence)
	assert.True(t, result.LowSample)

	require.Len(t, result.Flags, 1)
	assert.Equal(t, "evaluation_failed", result.Flags[0].Name)
	assert.Equal(t, models.FlagNegative, result.Flags[0].Polarity)
}

func TestEvaluateNilRecord(t *testing.T) {
	eng := newTestEngine(&fakeSource{})
	result := eng.Evaluate(context.Background(), nil)

	require.NotNil(t, result)
	assert.Equal(t, "unknown prospect", result.Name)
	assert.Equal(t, "Unrated", result.Tier)
	assert.True(t, result.HasNegativeFlag())
}

func TestEvaluateSkipComparables(t *testing.T) {
	source := &fakeSource{}
	eng := newTestEngine(source)

	result := eng.EvaluateWithOptions(context.Background(), eliteScorerRecord(30), Options{SkipComparables: true})

	assert.Empty(t, result.Comparables)
	assert.Zero(t, source.callCount(), "skipping comparables must not touch the store")
}

func TestPopulationSingleFlight(t *testing.T) {
	source := &fakeSource{
		delay:   50 * time.Millisecond,
		players: []models.HistoricalPlayer{{Name: "Only Member", Position: "PG", CareerGames: 500}},
	}
	eng := newTestEngine(source)

	const callers = 16
	var wg sync.WaitGroup
	results := make([][]models.HistoricalPlayer, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = eng.Population(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, source.callCount(), "concurrent first callers collapse into one fetch")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i], 1)
		assert.Equal(t, "Only Member", results[i][0].Name)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	source := &fakeSource{}
	eng := newTestEngine(source)

	_, err := eng.Population(context.Background())
	require.NoError(t, err)
	_, err = eng.Population(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, source.callCount())

	eng.Invalidate()
	_, err = eng.Population(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.callCount())
}

func TestWarm(t *testing.T) {
	source := &fakeSource{}
	eng := newTestEngine(source)

	require.NoError(t, eng.Warm(context.Background()))
	assert.Equal(t, 1, source.callCount())

	eng.Evaluate(context.Background(), eliteScorerRecord(30))
	assert.Equal(t, 1, source.callCount(), "evaluation reuses the warmed cache")
}
