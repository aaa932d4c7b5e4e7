package engine

import (
	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// perGame divides a cumulative total by games played, preferring an already
// aggregated per-game figure when the source supplied one. A zero or unknown
// games count resolves to absent, never to a computed zero.
func perGame(direct, total *float64, games int) *float64 {
	if direct != nil {
		return direct
	}
	if total == nil || games <= 0 {
		return nil
	}
	v := *total / float64(games)
	return &v
}

// ratio computes makes/attempts, preferring a pre-computed percentage. A
// percentage supplied on a 0-100 scale is rescaled to 0-1. A zero or unknown
// denominator resolves to absent so that "no attempts" never reads as 0%.
func ratio(direct, makes, attempts *float64) *float64 {
	if direct != nil {
		v := *direct
		if v > 1.0 {
			v = v / 100.0
		}
		return &v
	}
	if makes == nil || attempts == nil || *attempts <= 0 {
		return nil
	}
	v := *makes / *attempts
	return &v
}

// deriveStats computes per-game and efficiency figures from whichever shape
// of raw statistics the record carries. High-school records keep their stats
// in a nested block, so that block backfills any missing top-level figure.
func deriveStats(record *models.ProspectRecord, context models.CompetitionContext) models.DerivedStats {
	games := 0
	if record.GamesPlayed != nil {
		games = *record.GamesPlayed
	}

	hs := record.HighSchoolStats
	if context == models.ContextHighSchool && hs != nil && games == 0 && hs.GamesPlayed != nil {
		games = *hs.GamesPlayed
	}

	stats := models.DerivedStats{
		PPG:         perGame(record.PPG, record.TotalPoints, games),
		RPG:         perGame(record.RPG, record.TotalRebounds, games),
		APG:         perGame(record.APG, record.TotalAssists, games),
		SPG:         perGame(record.SPG, record.TotalSteals, games),
		BPG:         perGame(record.BPG, record.TotalBlocks, games),
		TPG:         perGame(record.TPG, record.TotalTurnovers, games),
		FGPct:       ratio(record.FGPct, record.FGM, record.FGA),
		ThreePct:    ratio(record.ThreePct, record.ThreePM, record.ThreePA),
		FTPct:       ratio(record.FTPct, record.FTM, record.FTA),
		PER:         record.PER,
		UsageRate:   record.UsageRate,
		BPM:         record.BPM,
		WinShares:   record.WinShares,
		GamesPlayed: games,
	}

	stats.TSPct = trueShooting(record)
	if stats.TSPct == nil {
		stats.TSPct = normalizedPct(record.TSPct)
	}
	stats.EFGPct = effectiveFG(record)
	if stats.EFGPct == nil {
		stats.EFGPct = normalizedPct(record.EFGPct)
	}

	if context == models.ContextHighSchool && hs != nil {
		backfillFromHighSchool(&stats, hs)
	}

	return stats
}

// trueShooting computes a true-shooting percentage from totals:
// points / (2 * (FGA + 0.44 * FTA)). Requires total points and attempts.
func trueShooting(record *models.ProspectRecord) *float64 {
	if record.TotalPoints == nil || record.FGA == nil {
		return nil
	}
	fta := 0.0
	if record.FTA != nil {
		fta = *record.FTA
	}
	denom := 2 * (*record.FGA + 0.44*fta)
	if denom <= 0 {
		return nil
	}
	v := *record.TotalPoints / denom
	return &v
}

// effectiveFG computes (FGM + 0.5 * 3PM) / FGA from totals.
func effectiveFG(record *models.ProspectRecord) *float64 {
	if record.FGM == nil || record.FGA == nil || *record.FGA <= 0 {
		return nil
	}
	threes := 0.0
	if record.ThreePM != nil {
		threes = *record.ThreePM
	}
	v := (*record.FGM + 0.5*threes) / *record.FGA
	return &v
}

func normalizedPct(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	if v > 1.0 {
		v = v / 100.0
	}
	return &v
}

func backfillFromHighSchool(stats *models.DerivedStats, hs *models.HighSchoolStats) {
	if stats.PPG == nil {
		stats.PPG = hs.PPG
	}
	if stats.RPG == nil {
		stats.RPG = hs.RPG
	}
	if stats.APG == nil {
		stats.APG = hs.APG
	}
	if stats.SPG == nil {
		stats.SPG = hs.SPG
	}
	if stats.BPG == nil {
		stats.BPG = hs.BPG
	}
	if stats.FGPct == nil {
		stats.FGPct = normalizedPct(hs.FGPct)
	}
	if stats.ThreePct == nil {
		stats.ThreePct = normalizedPct(hs.ThreePct)
	}
	if stats.FTPct == nil {
		stats.FTPct = normalizedPct(hs.FTPct)
	}
}
