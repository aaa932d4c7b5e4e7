package engine

import (
	"math"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// Normalization caps. Basic production may reach twice the reference ceiling;
// advanced metrics three times, so exceptional performers score above the
// typical-starter reference without running away.
const (
	basicStatCap    = 2.0
	advancedStatCap = 3.0
)

// metricSpec is one metric's weight and reference ceiling within a pillar.
type metricSpec struct {
	weight  float64
	ceiling float64
	// clampNegative zeroes negative values instead of letting a
	// negative-is-bad metric subtract from the pillar.
	clampNegative bool
}

// basicCeilings and advancedCeilings key metric tables by context. High
// school production runs hotter against weaker competition, professional
// leagues compress it.
var basicCeilings = map[models.CompetitionContext]map[string]metricSpec{
	models.ContextHighSchool: {
		"ppg":       {weight: 0.25, ceiling: 25},
		"rpg":       {weight: 0.15, ceiling: 12},
		"apg":       {weight: 0.15, ceiling: 7},
		"spg":       {weight: 0.10, ceiling: 2.5},
		"bpg":       {weight: 0.10, ceiling: 2.5},
		"fg_pct":    {weight: 0.10, ceiling: 0.55},
		"three_pct": {weight: 0.10, ceiling: 0.40},
		"ft_pct":    {weight: 0.05, ceiling: 0.85},
	},
	models.ContextCollege: {
		"ppg":       {weight: 0.25, ceiling: 20},
		"rpg":       {weight: 0.15, ceiling: 10},
		"apg":       {weight: 0.15, ceiling: 6},
		"spg":       {weight: 0.10, ceiling: 2.0},
		"bpg":       {weight: 0.10, ceiling: 2.0},
		"fg_pct":    {weight: 0.10, ceiling: 0.52},
		"three_pct": {weight: 0.10, ceiling: 0.38},
		"ft_pct":    {weight: 0.05, ceiling: 0.82},
	},
}

var proBasicCeilings = map[string]metricSpec{
	"ppg":       {weight: 0.25, ceiling: 16},
	"rpg":       {weight: 0.15, ceiling: 8},
	"apg":       {weight: 0.15, ceiling: 5},
	"spg":       {weight: 0.10, ceiling: 1.5},
	"bpg":       {weight: 0.10, ceiling: 1.5},
	"fg_pct":    {weight: 0.10, ceiling: 0.50},
	"three_pct": {weight: 0.10, ceiling: 0.37},
	"ft_pct":    {weight: 0.05, ceiling: 0.80},
}

var advancedCeilings = map[models.CompetitionContext]map[string]metricSpec{
	models.ContextHighSchool: {
		"per":        {weight: 0.30, ceiling: 35},
		"ts_pct":     {weight: 0.30, ceiling: 0.68},
		"efg_pct":    {weight: 0.20, ceiling: 0.62},
		"bpm":        {weight: 0.10, ceiling: 12, clampNegative: true},
		"win_shares": {weight: 0.10, ceiling: 5},
	},
	models.ContextCollege: {
		"per":        {weight: 0.30, ceiling: 30},
		"ts_pct":     {weight: 0.30, ceiling: 0.65},
		"efg_pct":    {weight: 0.20, ceiling: 0.60},
		"bpm":        {weight: 0.10, ceiling: 10, clampNegative: true},
		"win_shares": {weight: 0.10, ceiling: 6},
	},
}

var proAdvancedCeilings = map[string]metricSpec{
	"per":        {weight: 0.30, ceiling: 25},
	"ts_pct":     {weight: 0.30, ceiling: 0.62},
	"efg_pct":    {weight: 0.20, ceiling: 0.58},
	"bpm":        {weight: 0.10, ceiling: 8, clampNegative: true},
	"win_shares": {weight: 0.10, ceiling: 8},
}

func basicTable(context models.CompetitionContext) map[string]metricSpec {
	if t, ok := basicCeilings[context]; ok {
		return t
	}
	return proBasicCeilings
}

func advancedTable(context models.CompetitionContext) map[string]metricSpec {
	if t, ok := advancedCeilings[context]; ok {
		return t
	}
	return proAdvancedCeilings
}

// positionIdeals holds the height (in) and weight (lb) a team typically
// wants at each position.
var positionIdeals = map[string]struct {
	heightIn float64
	weightLb float64
}{
	"PG": {74, 190},
	"SG": {77, 205},
	"SF": {79, 220},
	"PF": {81, 235},
	"C":  {83, 250},
}

const (
	heightFalloffIn   = 8.0 // inches of deviation that zero the height score
	wingspanCeilingIn = 3.5 // advantage treated as a full score
	weightFalloffLb   = 45.0
)

// weightedAverage folds available metrics into a [0,1] score. The weighted
// sum divides by the weight actually contributed, so a thin metric set is
// renormalized rather than dragged toward zero. Returns nil when every
// metric was absent.
type weightedAverage struct {
	sum    float64
	weight float64
}

func (w *weightedAverage) add(value, weight float64) {
	w.sum += value * weight
	w.weight += weight
}

func (w *weightedAverage) score() *float64 {
	if w.weight <= 0 {
		return nil
	}
	v := clamp01(w.sum / w.weight)
	return &v
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// normalize scales value against a ceiling with the pillar's overflow cap.
func normalize(value float64, spec metricSpec, cap float64) float64 {
	if spec.clampNegative && value < 0 {
		value = 0
	}
	if spec.ceiling <= 0 {
		return 0
	}
	return math.Min(value/spec.ceiling, cap)
}

// scoreBasicStats scores the basic-production pillar.
func scoreBasicStats(stats models.DerivedStats, context models.CompetitionContext) *float64 {
	table := basicTable(context)
	avg := &weightedAverage{}
	metrics := map[string]*float64{
		"ppg": stats.PPG, "rpg": stats.RPG, "apg": stats.APG,
		"spg": stats.SPG, "bpg": stats.BPG,
		"fg_pct": stats.FGPct, "three_pct": stats.ThreePct, "ft_pct": stats.FTPct,
	}
	for name, value := range metrics {
		if value == nil {
			continue
		}
		spec := table[name]
		avg.add(normalize(*value, spec, basicStatCap), spec.weight)
	}
	return avg.score()
}

// scoreAdvancedStats scores the advanced-efficiency pillar.
func scoreAdvancedStats(stats models.DerivedStats, context models.CompetitionContext) *float64 {
	table := advancedTable(context)
	avg := &weightedAverage{}
	metrics := map[string]*float64{
		"per": stats.PER, "ts_pct": stats.TSPct, "efg_pct": stats.EFGPct,
		"bpm": stats.BPM, "win_shares": stats.WinShares,
	}
	for name, value := range metrics {
		if value == nil {
			continue
		}
		spec := table[name]
		avg.add(normalize(*value, spec, advancedStatCap), spec.weight)
	}
	return avg.score()
}

// scorePhysical scores the physical-profile pillar: height against the
// position ideal with a linear falloff, wingspan advantage against a fixed
// ceiling, and weight proximity to the position ideal.
func scorePhysical(profile models.PhysicalProfile, position string) *float64 {
	avg := &weightedAverage{}
	ideal, hasIdeal := positionIdeals[position]

	if profile.HeightIn != nil {
		if hasIdeal {
			diff := math.Abs(*profile.HeightIn - ideal.heightIn)
			avg.add(math.Max(0, 1-diff/heightFalloffIn), 0.45)
		} else {
			// No position to judge against; tall is generically useful.
			avg.add(clamp01((*profile.HeightIn - 70) / 14), 0.45)
		}
	}

	if adv := profile.WingspanAdvantage(); adv != nil {
		avg.add(clamp01(*adv/wingspanCeilingIn), 0.35)
	}

	if profile.WeightLb != nil && hasIdeal {
		diff := math.Abs(*profile.WeightLb - ideal.weightLb)
		avg.add(math.Max(0, 1-diff/weightFalloffLb), 0.20)
	}

	return avg.score()
}

// scoreSkills scores the technical-skill pillar from subjective 0-10 ratings.
func scoreSkills(record *models.ProspectRecord) *float64 {
	avg := &weightedAverage{}
	ratings := []struct {
		value  *float64
		weight float64
	}{
		{record.ShootingRating, 0.22},
		{record.BallHandling, 0.18},
		{record.DefenseRating, 0.18},
		{record.AthleticismRating, 0.18},
		{record.BasketballIQ, 0.14},
		{record.MotorRating, 0.10},
	}
	for _, r := range ratings {
		if r.value == nil {
			continue
		}
		avg.add(clamp01(*r.value/10.0), r.weight)
	}
	return avg.score()
}

// scorePillars produces the full pillar score set for a record. Pillars with
// no contributing metric are left out of the map entirely.
func scorePillars(record *models.ProspectRecord, stats models.DerivedStats, profile models.PhysicalProfile, context models.CompetitionContext) map[models.Pillar]float64 {
	scores := map[models.Pillar]float64{}
	multiplier := competitionMultiplier(record)

	// The multiplier scales production pillars only; physical measurements
	// and skill ratings do not depend on who the games were played against.
	if s := scoreBasicStats(stats, context); s != nil {
		scores[models.PillarBasicStats] = clamp01(*s * multiplier)
	}
	if s := scoreAdvancedStats(stats, context); s != nil {
		scores[models.PillarAdvancedStats] = clamp01(*s * multiplier)
	}
	if s := scorePhysical(profile, record.Position); s != nil {
		scores[models.PillarPhysical] = *s
	}
	if s := scoreSkills(record); s != nil {
		scores[models.PillarSkills] = *s
	}
	return scores
}
