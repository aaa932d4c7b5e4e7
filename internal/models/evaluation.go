package models

// CompetitionContext identifies the level a prospect's statistics were produced at.
type CompetitionContext string

const (
	ContextHighSchool CompetitionContext = "high_school"
	ContextCollege    CompetitionContext = "college"
	ContextOverseas   CompetitionContext = "overseas"
	ContextGLeague    CompetitionContext = "gleague"
	ContextPro        CompetitionContext = "pro"
)

// IsPro reports whether statistics from this context are produced against
// professional competition.
func (c CompetitionContext) IsPro() bool {
	return c == ContextOverseas || c == ContextGLeague || c == ContextPro
}

// Pillar is one of the four independent scoring categories.
type Pillar string

const (
	PillarBasicStats    Pillar = "basic_stats"
	PillarAdvancedStats Pillar = "advanced_stats"
	PillarPhysical      Pillar = "physical"
	PillarSkills        Pillar = "skills"
)

// Archetype is the closed set of play-style roles used by classification and
// similarity matching. Legacy free-text labels are normalized into this set
// before any comparison runs.
type Archetype string

const (
	ArchetypeFloorGeneral Archetype = "Floor General"
	ArchetypeShotCreator  Archetype = "Shot Creator"
	ArchetypeSharpshooter Archetype = "Sharpshooter"
	ArchetypeThreeAndD    Archetype = "3-and-D"
	ArchetypeTwoWayWing   Archetype = "Two-Way Wing"
	ArchetypeSlasher      Archetype = "Slasher"
	ArchetypePointForward Archetype = "Point Forward"
	ArchetypeStretchBig   Archetype = "Stretch Big"
	ArchetypeRimProtector Archetype = "Rim Protector"
	ArchetypeAllAround    Archetype = "All-Around"
)

// FlagPolarity tags a qualitative annotation.
type FlagPolarity string

const (
	FlagPositive FlagPolarity = "positive"
	FlagNegative FlagPolarity = "negative"
	FlagInfo     FlagPolarity = "info"
)

// Flag is one qualitative annotation on an evaluation.
type Flag struct {
	Name     string       `json:"name"`
	Polarity FlagPolarity `json:"polarity"`
	Message  string       `json:"message"`
}

// ComparablePlayer is one historical reference-population member ranked by
// similarity to the evaluated prospect.
type ComparablePlayer struct {
	Name          string  `json:"name"`
	Position      string  `json:"position"`
	Similarity    float64 `json:"similarity_pct"` // 0-100
	DraftPick     int     `json:"draft_pick"`     // 0 when undrafted
	DraftYear     int     `json:"draft_year,omitempty"`
	CareerSuccess float64 `json:"career_success"` // 0-10
}

// EvaluationResult is the immutable output of one evaluation call.
type EvaluationResult struct {
	Name    string             `json:"name"`
	Context CompetitionContext `json:"context"`

	// CompositeScore is the blended potential score in [0,1]. Confidence is a
	// separate data-sufficiency measure in [0,1]; a thin statistical sample
	// lowers confidence without discounting the potential score.
	CompositeScore float64 `json:"composite_score"`
	Confidence     float64 `json:"confidence"`

	// PillarScores holds only the pillars that had at least one contributing
	// metric; an absent pillar was excluded from the blend, not zeroed.
	PillarScores map[Pillar]float64 `json:"pillar_scores"`

	Tier            string `json:"tier"`
	DraftProjection string `json:"draft_projection"`
	Readiness       string `json:"readiness"`

	Archetypes []Archetype `json:"archetypes"`

	Flags       []Flag             `json:"flags"`
	Comparables []ComparablePlayer `json:"comparables,omitempty"`

	Physical PhysicalProfile `json:"physical"`
	Derived  DerivedStats    `json:"derived"`

	// LowSample marks an evaluation built on fewer games than the confidence
	// threshold; projections use the conservative tables when set.
	LowSample bool `json:"low_sample"`
}

// HasNegativeFlag reports whether any negative flag fired.
func (r *EvaluationResult) HasNegativeFlag() bool {
	for _, f := range r.Flags {
		if f.Polarity == FlagNegative {
			return true
		}
	}
	return false
}
