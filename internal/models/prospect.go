package models

// ProspectRecord is the sparse input record for one prospect. Every field
// other than Name may be absent; optional numerics are pointers so that a
// missing value and a genuine zero stay distinguishable.
type ProspectRecord struct {
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"` // PG, SG, SF, PF, C
	Age        *int   `json:"age,omitempty"`
	Team       string `json:"team,omitempty"`
	League     string `json:"league,omitempty"`     // e.g. "NCAA", "G League", "ACB"
	Conference string `json:"conference,omitempty"` // NCAA conference when no pro league

	// Physical measurements, raw mixed encodings ("6'8\"", "203cm", 80.5)
	Height   string `json:"height,omitempty"`
	Weight   string `json:"weight,omitempty"`
	Wingspan string `json:"wingspan,omitempty"`

	GamesPlayed *int `json:"games_played,omitempty"`

	// Per-game stats, when the source already aggregated them
	PPG *float64 `json:"ppg,omitempty"`
	RPG *float64 `json:"rpg,omitempty"`
	APG *float64 `json:"apg,omitempty"`
	SPG *float64 `json:"spg,omitempty"`
	BPG *float64 `json:"bpg,omitempty"`
	TPG *float64 `json:"tpg,omitempty"` // turnovers per game
	MPG *float64 `json:"mpg,omitempty"`

	// Cumulative totals, when the source only has season counts
	TotalPoints    *float64 `json:"total_points,omitempty"`
	TotalRebounds  *float64 `json:"total_rebounds,omitempty"`
	TotalAssists   *float64 `json:"total_assists,omitempty"`
	TotalSteals    *float64 `json:"total_steals,omitempty"`
	TotalBlocks    *float64 `json:"total_blocks,omitempty"`
	TotalTurnovers *float64 `json:"total_turnovers,omitempty"`

	// Shooting makes/attempts (totals)
	FGM     *float64 `json:"fgm,omitempty"`
	FGA     *float64 `json:"fga,omitempty"`
	ThreePM *float64 `json:"three_pm,omitempty"`
	ThreePA *float64 `json:"three_pa,omitempty"`
	FTM     *float64 `json:"ftm,omitempty"`
	FTA     *float64 `json:"fta,omitempty"`

	// Pre-computed percentages, when the source supplies them directly
	FGPct    *float64 `json:"fg_pct,omitempty"`
	ThreePct *float64 `json:"three_pct,omitempty"`
	FTPct    *float64 `json:"ft_pct,omitempty"`

	// Advanced metrics
	PER       *float64 `json:"per,omitempty"`
	TSPct     *float64 `json:"ts_pct,omitempty"`
	EFGPct    *float64 `json:"efg_pct,omitempty"`
	UsageRate *float64 `json:"usage_rate,omitempty"`
	BPM       *float64 `json:"bpm,omitempty"` // box plus/minus, may be negative
	WinShares *float64 `json:"win_shares,omitempty"`

	// Subjective skill ratings on a 0-10 scale
	ShootingRating    *float64 `json:"shooting_rating,omitempty"`
	BallHandling      *float64 `json:"ball_handling_rating,omitempty"`
	DefenseRating     *float64 `json:"defense_rating,omitempty"`
	AthleticismRating *float64 `json:"athleticism_rating,omitempty"`
	BasketballIQ      *float64 `json:"basketball_iq_rating,omitempty"`
	MotorRating       *float64 `json:"motor_rating,omitempty"`

	// External expert rankings (lower is better, 1-100 scale)
	ESPNRank      *int `json:"espn_rank,omitempty"`
	Rivals247Rank *int `json:"rivals_247_rank,omitempty"`
	EliteProspect bool `json:"elite_prospect,omitempty"`

	// High school records nest their season stats
	HighSchoolStats *HighSchoolStats `json:"high_school_stats,omitempty"`

	// Pre-assigned archetypes from an authoritative scouting source.
	// Free-text; normalized before any comparison logic runs.
	Archetypes []string `json:"archetypes,omitempty"`
}

// HighSchoolStats is the nested stat block found on secondary-school records.
type HighSchoolStats struct {
	PPG         *float64 `json:"ppg,omitempty"`
	RPG         *float64 `json:"rpg,omitempty"`
	APG         *float64 `json:"apg,omitempty"`
	SPG         *float64 `json:"spg,omitempty"`
	BPG         *float64 `json:"bpg,omitempty"`
	FGPct       *float64 `json:"fg_pct,omitempty"`
	ThreePct    *float64 `json:"three_pct,omitempty"`
	FTPct       *float64 `json:"ft_pct,omitempty"`
	GamesPlayed *int     `json:"games_played,omitempty"`
}

// PhysicalProfile holds measurements resolved to inches and pounds.
// Wingspan may be shorter than height; that is a signal, not an error.
type PhysicalProfile struct {
	HeightIn   *float64 `json:"height_in,omitempty"`
	WeightLb   *float64 `json:"weight_lb,omitempty"`
	WingspanIn *float64 `json:"wingspan_in,omitempty"`
	// WingspanEstimated marks a wingspan defaulted from height rather than measured.
	WingspanEstimated bool `json:"wingspan_estimated,omitempty"`
}

// WingspanAdvantage returns wingspan minus height, when both are known.
func (p PhysicalProfile) WingspanAdvantage() *float64 {
	if p.HeightIn == nil || p.WingspanIn == nil {
		return nil
	}
	adv := *p.WingspanIn - *p.HeightIn
	return &adv
}

// DerivedStats holds per-game and efficiency figures after derivation.
// A nil field means the metric could not be derived from the record.
type DerivedStats struct {
	PPG *float64 `json:"ppg,omitempty"`
	RPG *float64 `json:"rpg,omitempty"`
	APG *float64 `json:"apg,omitempty"`
	SPG *float64 `json:"spg,omitempty"`
	BPG *float64 `json:"bpg,omitempty"`
	TPG *float64 `json:"tpg,omitempty"`

	FGPct    *float64 `json:"fg_pct,omitempty"`
	ThreePct *float64 `json:"three_pct,omitempty"`
	FTPct    *float64 `json:"ft_pct,omitempty"`
	TSPct    *float64 `json:"ts_pct,omitempty"`
	EFGPct   *float64 `json:"efg_pct,omitempty"`

	PER       *float64 `json:"per,omitempty"`
	UsageRate *float64 `json:"usage_rate,omitempty"`
	BPM       *float64 `json:"bpm,omitempty"`
	WinShares *float64 `json:"win_shares,omitempty"`

	GamesPlayed int `json:"games_played"`
}

// AssistToTurnover returns APG/TPG when both are known and TPG > 0.
func (d DerivedStats) AssistToTurnover() *float64 {
	if d.APG == nil || d.TPG == nil || *d.TPG <= 0 {
		return nil
	}
	ratio := *d.APG / *d.TPG
	return &ratio
}
