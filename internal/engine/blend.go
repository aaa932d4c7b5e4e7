package engine

import (
	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

const (
	// MinGamesThreshold is the games-played count at which the statistical
	// sample is considered full. Confidence scales linearly below it.
	MinGamesThreshold = 15

	// eliteDefaultRanking substitutes for a missing expert ranking when the
	// prospect is independently tagged as elite.
	eliteDefaultRanking = 0.85

	// neutralSignal stands in for a blend side that has no data at all.
	neutralSignal = 0.5

	redFlagPenalty       = 0.05
	elitePlaymakingBonus = 0.03
	youthBonus           = 0.02
	youthBonusMaxAge     = 19
	youthBonusMinScore   = 0.60
)

// confidenceScore measures data sufficiency only. A low-sample prospect gets
// low confidence, but the potential score itself is never discounted by it;
// the two are surfaced separately.
func confidenceScore(gamesPlayed int) float64 {
	if gamesPlayed <= 0 {
		return 0
	}
	return clamp01(float64(gamesPlayed) / MinGamesThreshold)
}

// rankingSignal normalizes external expert rankings to [0,1] as
// (100 - rank) / 100, averaged over the sources present. When no source
// ranked the prospect but an elite tag is set, an elite-tier default stands
// in. Returns nil when no signal exists.
func rankingSignal(record *models.ProspectRecord) *float64 {
	sum, n := 0.0, 0
	for _, rank := range []*int{record.ESPNRank, record.Rivals247Rank} {
		if rank == nil || *rank <= 0 {
			continue
		}
		sum += clamp01(float64(100-*rank) / 100.0)
		n++
	}
	if n > 0 {
		v := sum / float64(n)
		return &v
	}
	if record.EliteProspect {
		v := eliteDefaultRanking
		return &v
	}
	return nil
}

// statScore folds the available pillar scores with their context weights,
// renormalizing over contributed weight so an absent pillar never penalizes
// the blend. Returns nil when no pillar scored.
func statScore(pillars map[models.Pillar]float64, weights PillarWeights) *float64 {
	avg := &weightedAverage{}
	for pillar, score := range pillars {
		avg.add(score, weights[pillar])
	}
	return avg.score()
}

// blendWeights picks the stat/ranking split. A thin statistical sample hands
// the blend to the rankings; a missing ranking leaves the stats dominant over
// a neutral prior.
func blendWeights(hasStats, hasRank, thinSample bool) (statW, rankW float64) {
	switch {
	case hasStats && hasRank && thinSample:
		return 0.05, 0.95
	case hasStats && hasRank:
		return 0.80, 0.20
	case hasStats:
		return 0.90, 0.10
	case hasRank:
		return 0.05, 0.95
	default:
		return 0.50, 0.50
	}
}

// blendScore combines pillar and ranking signals into the final composite
// score, then applies the small bounded adjustments: a fixed penalty when any
// negative flag fired, a bonus for an elite playmaking signature, and a youth
// bonus for already-strong teenagers.
func blendScore(pillars map[models.Pillar]float64, weights PillarWeights, record *models.ProspectRecord, stats models.DerivedStats, flags []models.Flag) float64 {
	stat := statScore(pillars, weights)
	rank := rankingSignal(record)
	thin := stats.GamesPlayed < MinGamesThreshold

	statW, rankW := blendWeights(stat != nil, rank != nil, thin)

	statV, rankV := neutralSignal, neutralSignal
	if stat != nil {
		statV = *stat
	}
	if rank != nil {
		rankV = *rank
	}
	score := statW*statV + rankW*rankV

	for _, f := range flags {
		if f.Polarity == models.FlagNegative {
			score -= redFlagPenalty
			break
		}
	}

	if hasElitePlaymaking(stats) {
		score += elitePlaymakingBonus
	}

	if record.Age != nil && *record.Age <= youthBonusMaxAge && score >= youthBonusMinScore {
		score += youthBonus
	}

	return clamp01(score)
}

// hasElitePlaymaking detects a high-volume, low-waste playmaking signature.
func hasElitePlaymaking(stats models.DerivedStats) bool {
	if stats.APG == nil || *stats.APG < 6 {
		return false
	}
	ratio := stats.AssistToTurnover()
	return ratio != nil && *ratio >= 2.0
}
