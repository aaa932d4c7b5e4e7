package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

func flagNames(flags []models.Flag) []string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.Name)
	}
	return names
}

func TestGenerateFlagsAbsentMetricsNeverFire(t *testing.T) {
	// A record with no shooting data must not be treated as a 0% shooter.
	record := models.ProspectRecord{Position: "SG"}
	stats := models.DerivedStats{GamesPlayed: 30, PPG: f(12)}

	flags := generateFlags(&record, stats, models.PhysicalProfile{}, models.ContextCollege)
	names := flagNames(flags)

	assert.NotContains(t, names, "poor_ft_shooter")
	assert.NotContains(t, names, "broken_jumper")
	assert.NotContains(t, names, "low_efficiency")
	assert.NotContains(t, names, "low_defensive_activity")
	assert.NotContains(t, names, "turnover_prone")
	assert.Contains(t, names, "thin_advanced_data")
}

func TestGenerateFlagsScoringAndShooting(t *testing.T) {
	record := models.ProspectRecord{Position: "SG"}
	stats := models.DerivedStats{
		GamesPlayed: 30,
		PPG:         f(25),
		TSPct:       f(0.62),
		ThreePct:    f(0.41),
		FTPct:       f(0.88),
	}

	flags := generateFlags(&record, stats, models.PhysicalProfile{}, models.ContextCollege)
	names := flagNames(flags)

	assert.Contains(t, names, "elite_scorer")
	assert.Contains(t, names, "efficient_scorer")
	assert.Contains(t, names, "elite_shooter")
	assert.Contains(t, names, "shooting_touch")
	assert.NotContains(t, names, "inefficient_volume")
	assert.NotContains(t, names, "small_sample")
}

func TestGenerateFlagsInefficiency(t *testing.T) {
	record := models.ProspectRecord{Position: "SG"}
	stats := models.DerivedStats{GamesPlayed: 28, PPG: f(19), TSPct: f(0.44)}

	names := flagNames(generateFlags(&record, stats, models.PhysicalProfile{}, models.ContextCollege))

	// Both rules read the same inputs and are expected to co-fire.
	assert.Contains(t, names, "inefficient_volume")
	assert.Contains(t, names, "low_efficiency")
	assert.NotContains(t, names, "efficient_scorer")
}

func TestGenerateFlagsPlaymaking(t *testing.T) {
	t.Run("careful handler", func(t *testing.T) {
		stats := models.DerivedStats{GamesPlayed: 30, APG: f(7), TPG: f(2)}
		names := flagNames(generateFlags(&models.ProspectRecord{}, stats, models.PhysicalProfile{}, models.ContextCollege))
		assert.Contains(t, names, "floor_vision")
		assert.Contains(t, names, "careful_handler")
		assert.NotContains(t, names, "turnover_prone")
	})

	t.Run("turnover prone by volume", func(t *testing.T) {
		stats := models.DerivedStats{GamesPlayed: 30, TPG: f(4.0)}
		names := flagNames(generateFlags(&models.ProspectRecord{}, stats, models.PhysicalProfile{}, models.ContextCollege))
		assert.Contains(t, names, "turnover_prone")
	})

	t.Run("turnover prone by ratio", func(t *testing.T) {
		stats := models.DerivedStats{GamesPlayed: 30, APG: f(1.5), TPG: f(2.5)}
		names := flagNames(generateFlags(&models.ProspectRecord{}, stats, models.PhysicalProfile{}, models.ContextCollege))
		assert.Contains(t, names, "turnover_prone")
	})
}

func TestGenerateFlagsPhysical(t *testing.T) {
	t.Run("measured negative wingspan", func(t *testing.T) {
		profile := models.PhysicalProfile{HeightIn: f(78), WeightLb: f(210), WingspanIn: f(76)}
		names := flagNames(generateFlags(&models.ProspectRecord{Position: "SF"}, models.DerivedStats{GamesPlayed: 30}, profile, models.ContextCollege))
		assert.Contains(t, names, "limited_physical_potential")
	})

	t.Run("estimated wingspan stays silent", func(t *testing.T) {
		profile := models.PhysicalProfile{HeightIn: f(78), WingspanIn: f(80), WingspanEstimated: true}
		names := flagNames(generateFlags(&models.ProspectRecord{Position: "SF"}, models.DerivedStats{GamesPlayed: 30}, profile, models.ContextCollege))
		assert.NotContains(t, names, "elite_length")
		assert.NotContains(t, names, "limited_physical_potential")
	})

	t.Run("measured elite length", func(t *testing.T) {
		profile := models.PhysicalProfile{HeightIn: f(80), WingspanIn: f(85.5)}
		flags := generateFlags(&models.ProspectRecord{Position: "C"}, models.DerivedStats{GamesPlayed: 30}, profile, models.ContextCollege)

		var found *models.Flag
		for i := range flags {
			if flags[i].Name == "elite_length" {
				found = &flags[i]
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, models.FlagPositive, found.Polarity)
		assert.Contains(t, found.Message, "+5.5")
	})

	t.Run("undersized for position", func(t *testing.T) {
		profile := models.PhysicalProfile{HeightIn: f(79)}
		names := flagNames(generateFlags(&models.ProspectRecord{Position: "C"}, models.DerivedStats{GamesPlayed: 30}, profile, models.ContextCollege))
		assert.Contains(t, names, "undersized")
	})
}

func TestGenerateFlagsSampleSize(t *testing.T) {
	t.Run("small sample includes the count", func(t *testing.T) {
		stats := models.DerivedStats{GamesPlayed: 3}
		flags := generateFlags(&models.ProspectRecord{GamesPlayed: ip(3)}, stats, models.PhysicalProfile{}, models.ContextCollege)

		var found *models.Flag
		for i := range flags {
			if flags[i].Name == "small_sample" {
				found = &flags[i]
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, models.FlagNegative, found.Polarity)
		assert.Contains(t, found.Message, "3 games")
	})

	t.Run("explicit zero games is still a sample risk", func(t *testing.T) {
		stats := models.DerivedStats{GamesPlayed: 0, PPG: f(20)}
		flags := generateFlags(&models.ProspectRecord{GamesPlayed: ip(0), PPG: f(20)}, stats, models.PhysicalProfile{}, models.ContextCollege)

		var found *models.Flag
		for i := range flags {
			if flags[i].Name == "small_sample" {
				found = &flags[i]
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, models.FlagNegative, found.Polarity)
		assert.Contains(t, found.Message, "0 games")
		assert.NotContains(t, flagNames(flags), "no_game_log")
	})

	t.Run("missing game log is its own flag", func(t *testing.T) {
		names := flagNames(generateFlags(&models.ProspectRecord{}, models.DerivedStats{}, models.PhysicalProfile{}, models.ContextCollege))
		assert.Contains(t, names, "no_game_log")
		assert.NotContains(t, names, "small_sample")
	})

	t.Run("full sample fires neither", func(t *testing.T) {
		stats := models.DerivedStats{GamesPlayed: 30}
		names := flagNames(generateFlags(&models.ProspectRecord{GamesPlayed: ip(30)}, stats, models.PhysicalProfile{}, models.ContextCollege))
		assert.NotContains(t, names, "small_sample")
		assert.NotContains(t, names, "no_game_log")
	})
}

func TestGenerateFlagsProfileMetadata(t *testing.T) {
	record := models.ProspectRecord{
		Age:         ip(18),
		ESPNRank:    ip(4),
		MotorRating: f(9.0),
	}
	stats := models.DerivedStats{GamesPlayed: 30, PPG: f(16), TSPct: f(0.55)}

	names := flagNames(generateFlags(&record, stats, models.PhysicalProfile{}, models.ContextHighSchool))

	assert.Contains(t, names, "young_for_level")
	assert.Contains(t, names, "consensus_elite")
	assert.Contains(t, names, "high_motor")
	assert.Contains(t, names, "pre_college_competition")
	assert.NotContains(t, names, "older_prospect")
}

func TestGenerateFlagsOlderProspect(t *testing.T) {
	record := models.ProspectRecord{Age: ip(23)}
	names := flagNames(generateFlags(&record, models.DerivedStats{GamesPlayed: 30}, models.PhysicalProfile{}, models.ContextCollege))
	assert.Contains(t, names, "older_prospect")
}
