package engine

import (
	"math"
	"strings"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// Competition multipliers scale derived production by the strength of the
// league or conference it came against. Bounded to [0.85, 1.20].
const (
	minMultiplier     = 0.85
	maxMultiplier     = 1.20
	defaultMultiplier = 1.0
)

var leagueMultipliers = []struct {
	substr     string
	multiplier float64
}{
	{"nba", 1.20},
	{"euroleague", 1.15},
	{"acb", 1.12},
	{"g league", 1.10},
	{"g-league", 1.10},
	{"ignite", 1.10},
	{"nbl", 1.05},
	{"lnb", 1.05},
	{"serie a", 1.05},
	{"bundesliga", 1.03},
	{"vtb", 1.03},
	{"cba", 0.98},
	{"ncaa", 1.00},
	{"high school", 0.85},
	{"eybl", 0.88},
	{"aau", 0.85},
}

// conferenceMultipliers applies when no professional league is given. Power
// conferences rate slightly above the baseline, low-majors below it.
var conferenceMultipliers = map[string]float64{
	"acc":            1.05,
	"sec":            1.05,
	"big ten":        1.05,
	"big 12":         1.05,
	"big east":       1.04,
	"pac-12":         1.03,
	"mountain west":  0.98,
	"atlantic 10":    0.97,
	"wcc":            0.96,
	"american":       0.96,
	"mid-major":      0.95,
	"conference usa": 0.93,
	"mac":            0.92,
	"sun belt":       0.92,
}

// competitionMultiplier looks up the adjustment for a record's league, or its
// academic conference when no professional league is tagged.
func competitionMultiplier(record *models.ProspectRecord) float64 {
	if record.League != "" {
		league := strings.ToLower(strings.TrimSpace(record.League))
		for _, entry := range leagueMultipliers {
			if strings.Contains(league, entry.substr) {
				return clampMultiplier(entry.multiplier)
			}
		}
	}
	if record.Conference != "" {
		conf := strings.ToLower(strings.TrimSpace(record.Conference))
		if m, ok := conferenceMultipliers[conf]; ok {
			return clampMultiplier(m)
		}
	}
	return defaultMultiplier
}

func clampMultiplier(m float64) float64 {
	return math.Max(minMultiplier, math.Min(maxMultiplier, m))
}
