package engine

import (
	"strings"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// PillarWeights is the blend weight of each pillar for one competition
// context. Weights are renormalized at blend time over the pillars that
// actually produced a score.
type PillarWeights map[models.Pillar]float64

// pillarWeightsByContext shifts high-school records toward the physical and
// skills pillars; small-sample advanced metrics at that level carry little
// signal.
var pillarWeightsByContext = map[models.CompetitionContext]PillarWeights{
	models.ContextHighSchool: {
		models.PillarBasicStats:    0.25,
		models.PillarAdvancedStats: 0.10,
		models.PillarPhysical:      0.35,
		models.PillarSkills:        0.30,
	},
	models.ContextCollege: {
		models.PillarBasicStats:    0.30,
		models.PillarAdvancedStats: 0.25,
		models.PillarPhysical:      0.25,
		models.PillarSkills:        0.20,
	},
	models.ContextOverseas: {
		models.PillarBasicStats:    0.30,
		models.PillarAdvancedStats: 0.25,
		models.PillarPhysical:      0.25,
		models.PillarSkills:        0.20,
	},
	models.ContextGLeague: {
		models.PillarBasicStats:    0.30,
		models.PillarAdvancedStats: 0.25,
		models.PillarPhysical:      0.25,
		models.PillarSkills:        0.20,
	},
	models.ContextPro: {
		models.PillarBasicStats:    0.30,
		models.PillarAdvancedStats: 0.25,
		models.PillarPhysical:      0.25,
		models.PillarSkills:        0.20,
	},
}

// weightsFor returns the pillar weight configuration for a context, falling
// back to the college table for anything unrecognized.
func weightsFor(context models.CompetitionContext) PillarWeights {
	if w, ok := pillarWeightsByContext[context]; ok {
		return w
	}
	return pillarWeightsByContext[models.ContextCollege]
}

// leagueContexts maps explicit league tags to contexts. Matching is done on
// a lowercased substring basis because league names arrive in many forms.
var leagueContexts = []struct {
	substr  string
	context models.CompetitionContext
}{
	{"nba", models.ContextPro},
	{"g league", models.ContextGLeague},
	{"g-league", models.ContextGLeague},
	{"gleague", models.ContextGLeague},
	{"ignite", models.ContextGLeague},
	{"euroleague", models.ContextOverseas},
	{"eurocup", models.ContextOverseas},
	{"acb", models.ContextOverseas},
	{"liga", models.ContextOverseas},
	{"lnb", models.ContextOverseas},
	{"nbl", models.ContextOverseas},
	{"serie a", models.ContextOverseas},
	{"bundesliga", models.ContextOverseas},
	{"vtb", models.ContextOverseas},
	{"cba", models.ContextOverseas},
	{"ncaa", models.ContextCollege},
	{"college", models.ContextCollege},
	{"high school", models.ContextHighSchool},
	{"hs", models.ContextHighSchool},
	{"eybl", models.ContextHighSchool},
	{"aau", models.ContextHighSchool},
}

// detectContext classifies a record's competition level. Priority order:
// explicit league tag, then a nested high-school stat block, then the shape
// of the top-level scoring fields.
func detectContext(record *models.ProspectRecord) models.CompetitionContext {
	if record.League != "" {
		league := strings.ToLower(strings.TrimSpace(record.League))
		for _, entry := range leagueContexts {
			if league == entry.substr || strings.Contains(league, entry.substr) {
				return entry.context
			}
		}
		// An unknown explicit league is assumed to be a domestic pro league.
		return models.ContextOverseas
	}

	if record.HighSchoolStats != nil {
		return models.ContextHighSchool
	}

	// No top-level scoring at all suggests a record sourced from a
	// secondary-school recruiting profile rather than a college box score.
	if record.PPG == nil && record.TotalPoints == nil {
		return models.ContextHighSchool
	}

	return models.ContextCollege
}
