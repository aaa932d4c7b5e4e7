package engine

import (
	"fmt"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// flagInput is everything a flag rule may inspect.
type flagInput struct {
	record  *models.ProspectRecord
	stats   models.DerivedStats
	profile models.PhysicalProfile
	context models.CompetitionContext
}

// flagRule is one independent qualitative condition. Rules never treat an
// absent metric as zero: a predicate only fires when every metric it reads
// is actually present.
type flagRule struct {
	name     string
	polarity models.FlagPolarity
	message  func(in flagInput) string
	applies  func(in flagInput) bool
}

func staticMessage(msg string) func(flagInput) string {
	return func(flagInput) string { return msg }
}

func hasF(v *float64) bool { return v != nil }

var flagRules = []flagRule{
	// Scoring and efficiency
	{
		name: "elite_scorer", polarity: models.FlagPositive,
		message: staticMessage("Elite scoring production"),
		applies: func(in flagInput) bool { return hasF(in.stats.PPG) && *in.stats.PPG >= 22 },
	},
	{
		name: "efficient_scorer", polarity: models.FlagPositive,
		message: staticMessage("High-volume scoring on strong efficiency"),
		applies: func(in flagInput) bool {
			return hasF(in.stats.PPG) && hasF(in.stats.TSPct) && *in.stats.PPG >= 15 && *in.stats.TSPct >= 0.60
		},
	},
	{
		name: "inefficient_volume", polarity: models.FlagNegative,
		message: staticMessage("Volume scoring on poor efficiency"),
		applies: func(in flagInput) bool {
			return hasF(in.stats.PPG) && hasF(in.stats.TSPct) && *in.stats.PPG >= 15 && *in.stats.TSPct < 0.48
		},
	},
	{
		name: "low_efficiency", polarity: models.FlagNegative,
		message: staticMessage("True shooting well below positional norms"),
		applies: func(in flagInput) bool { return hasF(in.stats.TSPct) && *in.stats.TSPct < 0.45 },
	},

	// Shooting
	{
		name: "elite_shooter", polarity: models.FlagPositive,
		message: staticMessage("Elite three-point accuracy"),
		applies: func(in flagInput) bool { return hasF(in.stats.ThreePct) && *in.stats.ThreePct >= 0.40 },
	},
	{
		name: "shooting_touch", polarity: models.FlagPositive,
		message: staticMessage("Free-throw stroke projects shooting development"),
		applies: func(in flagInput) bool { return hasF(in.stats.FTPct) && *in.stats.FTPct >= 0.85 },
	},
	{
		name: "broken_jumper", polarity: models.FlagNegative,
		message: staticMessage("Three-point shot is a real concern"),
		applies: func(in flagInput) bool { return hasF(in.stats.ThreePct) && *in.stats.ThreePct < 0.28 },
	},
	{
		name: "poor_ft_shooter", polarity: models.FlagNegative,
		message: staticMessage("Poor free-throw shooting"),
		applies: func(in flagInput) bool { return hasF(in.stats.FTPct) && *in.stats.FTPct < 0.60 },
	},

	// Playmaking
	{
		name: "floor_vision", polarity: models.FlagPositive,
		message: staticMessage("High-level playmaking volume"),
		applies: func(in flagInput) bool { return hasF(in.stats.APG) && *in.stats.APG >= 6 },
	},
	{
		name: "careful_handler", polarity: models.FlagPositive,
		message: staticMessage("Excellent assist-to-turnover balance"),
		applies: func(in flagInput) bool {
			ratio := in.stats.AssistToTurnover()
			return ratio != nil && *ratio >= 2.5
		},
	},
	{
		name: "turnover_prone", polarity: models.FlagNegative,
		message: staticMessage("Turnover-prone with the ball"),
		applies: func(in flagInput) bool {
			if hasF(in.stats.TPG) && *in.stats.TPG >= 3.5 {
				return true
			}
			ratio := in.stats.AssistToTurnover()
			return ratio != nil && *ratio < 0.8
		},
	},

	// Defense and motor
	{
		name: "rim_protector", polarity: models.FlagPositive,
		message: staticMessage("Legitimate rim protection"),
		applies: func(in flagInput) bool { return hasF(in.stats.BPG) && *in.stats.BPG >= 2.0 },
	},
	{
		name: "ball_hawk", polarity: models.FlagPositive,
		message: staticMessage("Disruptive perimeter defender"),
		applies: func(in flagInput) bool { return hasF(in.stats.SPG) && *in.stats.SPG >= 2.0 },
	},
	{
		name: "two_way_impact", polarity: models.FlagPositive,
		message: staticMessage("Produces on both ends of the floor"),
		applies: func(in flagInput) bool {
			return hasF(in.stats.PPG) && hasF(in.stats.SPG) && hasF(in.stats.BPG) &&
				*in.stats.PPG >= 14 && *in.stats.SPG+*in.stats.BPG >= 2.5
		},
	},
	{
		name: "low_defensive_activity", polarity: models.FlagNegative,
		message: staticMessage("Minimal defensive event creation"),
		applies: func(in flagInput) bool {
			return hasF(in.stats.SPG) && hasF(in.stats.BPG) && *in.stats.SPG+*in.stats.BPG < 0.8
		},
	},
	{
		name: "high_motor", polarity: models.FlagPositive,
		message: staticMessage("Scouts rate the motor as elite"),
		applies: func(in flagInput) bool { return hasF(in.record.MotorRating) && *in.record.MotorRating >= 8.5 },
	},
	{
		name: "motor_questions", polarity: models.FlagNegative,
		message: staticMessage("Scouts question the motor"),
		applies: func(in flagInput) bool { return hasF(in.record.MotorRating) && *in.record.MotorRating <= 4.0 },
	},

	// Physical profile
	{
		name: "elite_length", polarity: models.FlagPositive,
		message: func(in flagInput) string {
			return fmt.Sprintf("Exceptional wingspan advantage (+%.1f\")", *in.profile.WingspanAdvantage())
		},
		applies: func(in flagInput) bool {
			adv := in.profile.WingspanAdvantage()
			return adv != nil && !in.profile.WingspanEstimated && *adv >= 5.0
		},
	},
	{
		name: "limited_physical_potential", polarity: models.FlagNegative,
		message: staticMessage("Wingspan shorter than height limits physical upside"),
		applies: func(in flagInput) bool {
			adv := in.profile.WingspanAdvantage()
			return adv != nil && !in.profile.WingspanEstimated && *adv < 0
		},
	},
	{
		name: "undersized", polarity: models.FlagNegative,
		message: staticMessage("Well below ideal height for the position"),
		applies: func(in flagInput) bool {
			ideal, ok := positionIdeals[in.record.Position]
			return ok && in.profile.HeightIn != nil && *in.profile.HeightIn <= ideal.heightIn-3
		},
	},
	{
		name: "elite_athlete", polarity: models.FlagPositive,
		message: staticMessage("Elite athleticism grade"),
		applies: func(in flagInput) bool {
			return hasF(in.record.AthleticismRating) && *in.record.AthleticismRating >= 9.0
		},
	},

	// Sample and profile metadata
	{
		name: "small_sample", polarity: models.FlagNegative,
		message: func(in flagInput) string {
			return fmt.Sprintf("Small sample size (%d games)", in.stats.GamesPlayed)
		},
		applies: func(in flagInput) bool {
			if in.stats.GamesPlayed >= MinGamesThreshold {
				return false
			}
			// An explicit zero is a known-empty log and still a sample risk;
			// only a wholly absent count is left to no_game_log.
			return in.stats.GamesPlayed > 0 || in.record.GamesPlayed != nil
		},
	},
	{
		name: "no_game_log", polarity: models.FlagNegative,
		message: staticMessage("No games-played count available"),
		applies: func(in flagInput) bool { return in.record.GamesPlayed == nil && in.stats.GamesPlayed == 0 },
	},
	{
		name: "young_for_level", polarity: models.FlagPositive,
		message: staticMessage("Producing while among the youngest at the level"),
		applies: func(in flagInput) bool {
			return in.record.Age != nil && *in.record.Age <= 18 && hasF(in.stats.PPG) && *in.stats.PPG >= 10
		},
	},
	{
		name: "older_prospect", polarity: models.FlagNegative,
		message: staticMessage("Old for a draft class; less remaining development"),
		applies: func(in flagInput) bool { return in.record.Age != nil && *in.record.Age >= 23 },
	},
	{
		name: "consensus_elite", polarity: models.FlagPositive,
		message: staticMessage("Ranked inside the top ten by expert consensus"),
		applies: func(in flagInput) bool {
			return (in.record.ESPNRank != nil && *in.record.ESPNRank <= 10) ||
				(in.record.Rivals247Rank != nil && *in.record.Rivals247Rank <= 10)
		},
	},
	{
		name: "thin_advanced_data", polarity: models.FlagInfo,
		message: staticMessage("No advanced metrics available for this record"),
		applies: func(in flagInput) bool {
			return in.stats.PER == nil && in.stats.TSPct == nil && in.stats.BPM == nil && in.stats.WinShares == nil
		},
	},
	{
		name: "pre_college_competition", polarity: models.FlagInfo,
		message: staticMessage("Statistics produced against secondary-school competition"),
		applies: func(in flagInput) bool { return in.context == models.ContextHighSchool },
	},
}

// generateFlags evaluates every rule independently; co-firing is expected.
func generateFlags(record *models.ProspectRecord, stats models.DerivedStats, profile models.PhysicalProfile, context models.CompetitionContext) []models.Flag {
	in := flagInput{record: record, stats: stats, profile: profile, context: context}
	var flags []models.Flag
	for _, rule := range flagRules {
		if rule.applies(in) {
			flags = append(flags, models.Flag{
				Name:     rule.name,
				Polarity: rule.polarity,
				Message:  rule.message(in),
			})
		}
	}
	return flags
}
