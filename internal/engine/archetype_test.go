package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

func TestNormalizeArchetypes(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected []models.Archetype
	}{
		{
			name:     "legacy labels map onto the closed set",
			labels:   []string{"Two-Way Player", "Microwave Scorer"},
			expected: []models.Archetype{models.ArchetypeTwoWayWing, models.ArchetypeShotCreator},
		},
		{
			name:     "canonical names pass through case-insensitively",
			labels:   []string{"stretch big", "RIM PROTECTOR"},
			expected: []models.Archetype{models.ArchetypeStretchBig, models.ArchetypeRimProtector},
		},
		{
			name:     "duplicates collapse",
			labels:   []string{"Shooter", "Sniper", "Sharpshooter"},
			expected: []models.Archetype{models.ArchetypeSharpshooter},
		},
		{
			name:     "unknown label falls back to all-around",
			labels:   []string{"Tweener"},
			expected: []models.Archetype{models.ArchetypeAllAround},
		},
		{
			name:     "blank labels are skipped",
			labels:   []string{"  ", "Glue Guy"},
			expected: []models.Archetype{models.ArchetypeAllAround},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeArchetypes(tt.labels, nil))
		})
	}
}

func TestClassifyArchetypeAuthoritativeTags(t *testing.T) {
	record := models.ProspectRecord{
		Position:   "PG",
		Archetypes: []string{"Shot Blocker"},
	}
	// Provided tags win even when the stat line points elsewhere.
	stats := models.DerivedStats{GamesPlayed: 30, APG: f(9), TPG: f(2)}

	got := classifyArchetype(&record, stats, models.ContextCollege, nil)
	assert.Equal(t, []models.Archetype{models.ArchetypeRimProtector}, got)
}

func TestClassifyArchetypeInference(t *testing.T) {
	tests := []struct {
		name     string
		position string
		stats    models.DerivedStats
		context  models.CompetitionContext
		expected models.Archetype
	}{
		{
			name:     "pass-first guard",
			position: "PG",
			stats:    models.DerivedStats{APG: f(7), TPG: f(2.5), PPG: f(12)},
			context:  models.ContextCollege,
			expected: models.ArchetypeFloorGeneral,
		},
		{
			name:     "high-volume guard scorer",
			position: "SG",
			stats:    models.DerivedStats{PPG: f(22)},
			context:  models.ContextCollege,
			expected: models.ArchetypeShotCreator,
		},
		{
			name:     "shooting specialist with defensive activity",
			position: "SG",
			stats:    models.DerivedStats{PPG: f(11), ThreePct: f(0.41), SPG: f(1.6), BPG: f(1.0)},
			context:  models.ContextCollege,
			expected: models.ArchetypeThreeAndD,
		},
		{
			name:     "shooting specialist without defense",
			position: "SG",
			stats:    models.DerivedStats{PPG: f(11), ThreePct: f(0.41)},
			context:  models.ContextCollege,
			expected: models.ArchetypeSharpshooter,
		},
		{
			name:     "playmaking forward",
			position: "SF",
			stats:    models.DerivedStats{APG: f(6), TPG: f(3), PPG: f(15)},
			context:  models.ContextCollege,
			expected: models.ArchetypePointForward,
		},
		{
			name:     "scoring wing who defends",
			position: "SF",
			stats:    models.DerivedStats{PPG: f(20), SPG: f(1.5), BPG: f(1.2)},
			context:  models.ContextCollege,
			expected: models.ArchetypeTwoWayWing,
		},
		{
			name:     "shot-blocking big",
			position: "C",
			stats:    models.DerivedStats{PPG: f(10), BPG: f(2.4), FGPct: f(0.62)},
			context:  models.ContextCollege,
			expected: models.ArchetypeRimProtector,
		},
		{
			name:     "perimeter big",
			position: "PF",
			stats:    models.DerivedStats{PPG: f(13), ThreePct: f(0.38)},
			context:  models.ContextCollege,
			expected: models.ArchetypeStretchBig,
		},
		{
			name:     "interior finisher without rim protection",
			position: "PF",
			stats:    models.DerivedStats{PPG: f(12), FGPct: f(0.58)},
			context:  models.ContextCollege,
			expected: models.ArchetypeSlasher,
		},
		{
			name:     "pro context lowers the scoring bar",
			position: "SG",
			stats:    models.DerivedStats{PPG: f(15)},
			context:  models.ContextOverseas,
			expected: models.ArchetypeShotCreator,
		},
		{
			name:     "pre-pro context keeps the higher bar",
			position: "SG",
			stats:    models.DerivedStats{PPG: f(15)},
			context:  models.ContextCollege,
			expected: models.ArchetypeAllAround,
		},
		{
			name:     "unknown position uses position-free signatures",
			position: "",
			stats:    models.DerivedStats{APG: f(6), TPG: f(2)},
			context:  models.ContextCollege,
			expected: models.ArchetypeFloorGeneral,
		},
		{
			name:     "no signal at all",
			position: "SF",
			stats:    models.DerivedStats{},
			context:  models.ContextCollege,
			expected: models.ArchetypeAllAround,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := models.ProspectRecord{Position: tt.position}
			got := classifyArchetype(&record, tt.stats, tt.context, nil)
			require.Len(t, got, 1)
			assert.Equal(t, tt.expected, got[0])
		})
	}
}
