package engine

import (
	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// Readiness labels, most to least NBA-ready.
const (
	ReadinessNow       = "NBA Ready"
	ReadinessShortTerm = "1-2 Years Out"
	ReadinessProject   = "Long-Term Project"
	ReadinessHighRisk  = "High Risk"
)

// projectionBand maps a score floor to human-readable labels. Bands are
// evaluated in order, so they must stay sorted by descending floor.
type projectionBand struct {
	floor      float64
	draftRange string
	tier       string
	readiness  string
}

var standardBands = []projectionBand{
	{0.85, "Top 5 Pick", "Elite Prospect", ReadinessNow},
	{0.75, "Lottery (Top 14)", "All-Star Potential", ReadinessNow},
	{0.65, "First Round", "Starter Potential", ReadinessShortTerm},
	{0.55, "Late First - Early Second", "Rotation Player", ReadinessShortTerm},
	{0.45, "Second Round", "Roster Player", ReadinessProject},
	{0.35, "Late Second Round", "Fringe Roster", ReadinessProject},
	{0.0, "Undrafted", "Long Shot", ReadinessProject},
}

// conservativeBands applies when the low-sample risk indicator is set:
// the same score projects a round later and readiness drops to high risk.
var conservativeBands = []projectionBand{
	{0.85, "Lottery (Top 14)", "All-Star Potential", ReadinessHighRisk},
	{0.75, "First Round", "Starter Potential", ReadinessHighRisk},
	{0.65, "Late First - Early Second", "Rotation Player", ReadinessHighRisk},
	{0.55, "Second Round", "Roster Player", ReadinessHighRisk},
	{0.45, "Late Second Round", "Fringe Roster", ReadinessHighRisk},
	{0.0, "Undrafted - Two-Way Path", "Long Shot", ReadinessHighRisk},
}

// projectDraft maps the composite score to draft-range, tier and readiness
// labels. Any fired negative flag forces readiness to the most conservative
// label regardless of score.
func projectDraft(score float64, lowSample bool, hasNegativeFlag bool) (draftRange, tier, readiness string) {
	bands := standardBands
	if lowSample {
		bands = conservativeBands
	}
	for _, band := range bands {
		if score >= band.floor {
			draftRange, tier, readiness = band.draftRange, band.tier, band.readiness
			break
		}
	}
	if hasNegativeFlag {
		readiness = ReadinessHighRisk
	}
	return draftRange, tier, readiness
}

// lowSampleRisk reports whether the record's games-played count is below the
// confidence threshold, including the no-game-log case.
func lowSampleRisk(stats models.DerivedStats) bool {
	return stats.GamesPlayed < MinGamesThreshold
}
