package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// MinHistoricalGames is the career games floor below which a historical
// player carries too little NBA-level evidence to rank as a comparable.
const MinHistoricalGames = 100

// HistoricalPlayer is one member of the read-only reference population.
type HistoricalPlayer struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null;index" json:"name"`
	Position string `gorm:"not null" json:"position"`

	HeightIn   float64 `json:"height_in"`
	WeightLb   float64 `json:"weight_lb"`
	WingspanIn float64 `json:"wingspan_in"`

	DraftYear int `json:"draft_year"`
	DraftPick int `json:"draft_pick"` // 0 when undrafted

	CareerGames   int     `json:"career_games"`
	CareerSeasons int     `json:"career_seasons"`
	CareerPPG     float64 `json:"career_ppg"`
	CareerUsage   float64 `json:"career_usage"`

	// Archetypes holds the authoritative archetype tags as a JSON string array.
	Archetypes datatypes.JSON `gorm:"type:jsonb" json:"archetypes"`

	// Accolades holds counters keyed by accolade name, e.g.
	// {"all_star": 5, "all_nba": 2, "championships": 1}.
	Accolades datatypes.JSON `gorm:"type:jsonb" json:"accolades"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (HistoricalPlayer) TableName() string {
	return "historical_players"
}

// Eligible reports whether the player has enough NBA games to serve as a
// similarity candidate.
func (p *HistoricalPlayer) Eligible() bool {
	return p.CareerGames >= MinHistoricalGames
}

// ArchetypeTags decodes the stored archetype list. Unknown labels are kept
// as-is; normalization into the closed set happens in the engine.
func (p *HistoricalPlayer) ArchetypeTags() []string {
	if len(p.Archetypes) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(p.Archetypes, &tags); err != nil {
		return nil
	}
	return tags
}

// AccoladeCounts decodes the stored accolade counters.
func (p *HistoricalPlayer) AccoladeCounts() map[string]int {
	counts := map[string]int{}
	if len(p.Accolades) == 0 {
		return counts
	}
	if err := json.Unmarshal(p.Accolades, &counts); err != nil {
		return map[string]int{}
	}
	return counts
}

// AccoladeCount returns one counter, zero when missing.
func (p *HistoricalPlayer) AccoladeCount(name string) int {
	return p.AccoladeCounts()[name]
}
