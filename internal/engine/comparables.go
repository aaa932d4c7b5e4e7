package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

const (
	maxComparables = 3

	// Primary similarity weights.
	archetypeWeight = 0.60
	positionWeight  = 0.20
	heightWeight    = 0.20

	heightToleranceIn = 4.0

	// Secondary adjustments.
	weightProximityBonusMax = 0.05
	weightToleranceLb       = 40.0
	eraRecencyBonus         = 0.03
	eraRecencyFloor         = 2010
	sharedRoleBonus         = 0.04

	// A low-usage prospect compared against a historical lead scorer is not
	// a meaningful comp even when the other factors line up.
	usageMismatchPenalty = 0.25
	leadScorerUsage      = 28.0
	leadScorerPPG        = 24.0
)

// jaccard computes set overlap between two archetype sets.
func jaccard(a, b []models.Archetype) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := map[models.Archetype]bool{}
	for _, x := range a {
		set[x] = true
	}
	intersection := 0
	union := len(a)
	for _, y := range b {
		if set[y] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// positionSimilarity is a strict equality matrix: positions either match
// exactly or contribute nothing. Zero positional similarity disqualifies the
// candidate entirely before ranking.
func positionSimilarity(prospect, historical string) float64 {
	p := strings.ToUpper(strings.TrimSpace(prospect))
	h := strings.ToUpper(strings.TrimSpace(historical))
	if p == "" || h == "" || p != h {
		return 0
	}
	return 1
}

func heightSimilarity(prospect *float64, historical float64) float64 {
	if prospect == nil || historical <= 0 {
		return 0.5 // unknown height neither helps nor disqualifies
	}
	diff := math.Abs(*prospect - historical)
	return math.Max(0, 1-diff/heightToleranceIn)
}

// sharedShooterRole reports an overlap on the shooting or two-way roles,
// which tend to define how a player is actually used.
func sharedShooterRole(a, b []models.Archetype) bool {
	emphasis := map[models.Archetype]bool{
		models.ArchetypeSharpshooter: true,
		models.ArchetypeThreeAndD:    true,
		models.ArchetypeTwoWayWing:   true,
	}
	inA := map[models.Archetype]bool{}
	for _, x := range a {
		if emphasis[x] {
			inA[x] = true
		}
	}
	for _, y := range b {
		if inA[y] {
			return true
		}
	}
	return false
}

// lowUsageProspect marks prospects whose statistical profile is that of a
// complementary player rather than an offensive hub.
func lowUsageProspect(stats models.DerivedStats, archetypes []models.Archetype) bool {
	if stats.UsageRate != nil {
		return *stats.UsageRate < 20
	}
	for _, a := range archetypes {
		if a == models.ArchetypeShotCreator || a == models.ArchetypeFloorGeneral {
			return false
		}
	}
	return stats.PPG != nil && *stats.PPG < 12
}

func highUsageHistorical(player *models.HistoricalPlayer) bool {
	return player.CareerUsage >= leadScorerUsage || player.CareerPPG >= leadScorerPPG
}

// similarityScore computes the weighted multi-factor similarity between the
// evaluated prospect and one eligible historical player. Returns ok=false
// when the candidate must be discarded.
func similarityScore(prospectArchetypes []models.Archetype, position string, profile models.PhysicalProfile, stats models.DerivedStats, player *models.HistoricalPlayer, playerArchetypes []models.Archetype) (float64, bool) {
	posSim := positionSimilarity(position, player.Position)
	if posSim == 0 {
		return 0, false
	}

	score := archetypeWeight*jaccard(prospectArchetypes, playerArchetypes) +
		positionWeight*posSim +
		heightWeight*heightSimilarity(profile.HeightIn, player.HeightIn)

	if profile.WeightLb != nil && player.WeightLb > 0 {
		diff := math.Abs(*profile.WeightLb - player.WeightLb)
		score += weightProximityBonusMax * math.Max(0, 1-diff/weightToleranceLb)
	}
	if player.DraftYear >= eraRecencyFloor {
		score += eraRecencyBonus
	}
	if sharedShooterRole(prospectArchetypes, playerArchetypes) {
		score += sharedRoleBonus
	}
	if lowUsageProspect(stats, prospectArchetypes) && highUsageHistorical(player) {
		score -= usageMismatchPenalty
	}

	return clamp01(score), true
}

// careerSuccessScore condenses a historical player's outcome to [0,10]:
// longevity, an exceeded-draft-slot bonus, and accolade counts.
func careerSuccessScore(player *models.HistoricalPlayer) float64 {
	score := math.Min(float64(player.CareerSeasons)*0.5, 4.0)

	accolades := player.AccoladeCounts()
	score += math.Min(float64(accolades["all_star"])*0.5, 2.5)
	score += math.Min(float64(accolades["all_nba"])*0.75, 2.0)
	score += math.Min(float64(accolades["championships"])*0.5, 1.5)

	// Outplaying the draft slot: a late pick or undrafted player with a long
	// career beat the market's expectation.
	if (player.DraftPick == 0 || player.DraftPick >= 20) && player.CareerSeasons >= 8 {
		score += 1.5
	}

	return math.Min(score, 10.0)
}

// rankComparables scores every eligible member of the population and returns
// the top matches, annotated with their career outcome.
func rankComparables(prospectArchetypes []models.Archetype, position string, profile models.PhysicalProfile, stats models.DerivedStats, population []models.HistoricalPlayer) []models.ComparablePlayer {
	type scored struct {
		player     *models.HistoricalPlayer
		similarity float64
	}
	var candidates []scored

	for i := range population {
		player := &population[i]
		if !player.Eligible() {
			continue
		}
		playerArchetypes := normalizeArchetypes(player.ArchetypeTags(), nil)
		sim, ok := similarityScore(prospectArchetypes, position, profile, stats, player, playerArchetypes)
		if !ok {
			continue
		}
		candidates = append(candidates, scored{player: player, similarity: sim})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	limit := maxComparables
	if len(candidates) < limit {
		limit = len(candidates)
	}
	comparables := make([]models.ComparablePlayer, 0, limit)
	for _, c := range candidates[:limit] {
		comparables = append(comparables, models.ComparablePlayer{
			Name:          c.player.Name,
			Position:      c.player.Position,
			Similarity:    math.Round(c.similarity*1000) / 10, // percentage, one decimal
			DraftPick:     c.player.DraftPick,
			DraftYear:     c.player.DraftYear,
			CareerSuccess: careerSuccessScore(c.player),
		})
	}
	return comparables
}
