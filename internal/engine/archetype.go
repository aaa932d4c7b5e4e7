package engine

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// legacyLabels normalizes free-text archetype labels from older scouting
// exports into the closed Archetype set. Matching is case-insensitive on a
// trimmed label.
var legacyLabels = map[string]models.Archetype{
	"floor general":    models.ArchetypeFloorGeneral,
	"pure point guard": models.ArchetypeFloorGeneral,
	"playmaker":        models.ArchetypeFloorGeneral,
	"shot creator":     models.ArchetypeShotCreator,
	"scorer":           models.ArchetypeShotCreator,
	"bucket getter":    models.ArchetypeShotCreator,
	"microwave scorer": models.ArchetypeShotCreator,
	"sharpshooter":     models.ArchetypeSharpshooter,
	"shooter":          models.ArchetypeSharpshooter,
	"sniper":           models.ArchetypeSharpshooter,
	"3-and-d":          models.ArchetypeThreeAndD,
	"3&d":              models.ArchetypeThreeAndD,
	"three and d":      models.ArchetypeThreeAndD,
	"two-way wing":     models.ArchetypeTwoWayWing,
	"two way wing":     models.ArchetypeTwoWayWing,
	"two-way player":   models.ArchetypeTwoWayWing,
	"slasher":          models.ArchetypeSlasher,
	"rim runner":       models.ArchetypeSlasher,
	"point forward":    models.ArchetypePointForward,
	"stretch big":      models.ArchetypeStretchBig,
	"stretch four":     models.ArchetypeStretchBig,
	"stretch 4":        models.ArchetypeStretchBig,
	"rim protector":    models.ArchetypeRimProtector,
	"shot blocker":     models.ArchetypeRimProtector,
	"all-around":       models.ArchetypeAllAround,
	"all around":       models.ArchetypeAllAround,
	"glue guy":         models.ArchetypeAllAround,
}

// normalizeArchetypes adapts raw labels into the closed set, dropping
// duplicates. Labels that match no known role fall back to All-Around with a
// warning so that a typo upstream cannot invent a role downstream.
func normalizeArchetypes(labels []string, logger *logrus.Entry) []models.Archetype {
	seen := map[models.Archetype]bool{}
	var result []models.Archetype
	for _, label := range labels {
		key := strings.ToLower(strings.TrimSpace(label))
		if key == "" {
			continue
		}
		archetype, ok := legacyLabels[key]
		if !ok {
			// Exact match against the canonical names as well.
			for _, a := range allArchetypes {
				if key == strings.ToLower(string(a)) {
					archetype, ok = a, true
					break
				}
			}
		}
		if !ok {
			if logger != nil {
				logger.WithField("label", label).Warn("Unknown archetype label, treating as All-Around")
			}
			archetype = models.ArchetypeAllAround
		}
		if !seen[archetype] {
			seen[archetype] = true
			result = append(result, archetype)
		}
	}
	return result
}

var allArchetypes = []models.Archetype{
	models.ArchetypeFloorGeneral,
	models.ArchetypeShotCreator,
	models.ArchetypeSharpshooter,
	models.ArchetypeThreeAndD,
	models.ArchetypeTwoWayWing,
	models.ArchetypeSlasher,
	models.ArchetypePointForward,
	models.ArchetypeStretchBig,
	models.ArchetypeRimProtector,
	models.ArchetypeAllAround,
}

// traits are the qualitative signatures inferred from derived stats. The
// thresholds differ between professional and pre-professional contexts
// because production compresses against stronger competition.
type traits struct {
	highScoringLoad    bool
	efficientPlaymaker bool
	activeDefender     bool
	accurateShooter    bool
	interiorFinisher   bool
	shotBlocker        bool
}

func inferTraits(stats models.DerivedStats, context models.CompetitionContext) traits {
	pro := context.IsPro()

	ppgLoad, apgLoad, stocksLoad, bpgLoad := 18.0, 5.0, 2.5, 1.8
	if pro {
		ppgLoad, apgLoad, stocksLoad, bpgLoad = 14.0, 4.0, 2.0, 1.2
	}

	t := traits{}
	if stats.PPG != nil && *stats.PPG >= ppgLoad {
		t.highScoringLoad = true
	}
	if stats.APG != nil && *stats.APG >= apgLoad {
		if ratio := stats.AssistToTurnover(); ratio == nil || *ratio >= 1.5 {
			t.efficientPlaymaker = true
		}
	}
	if stats.SPG != nil && stats.BPG != nil && *stats.SPG+*stats.BPG >= stocksLoad {
		t.activeDefender = true
	}
	if stats.BPG != nil && *stats.BPG >= bpgLoad {
		t.shotBlocker = true
	}
	if stats.ThreePct != nil && *stats.ThreePct >= 0.36 {
		t.accurateShooter = true
	}
	if stats.FGPct != nil && *stats.FGPct >= 0.55 && (stats.ThreePct == nil || *stats.ThreePct < 0.30) {
		t.interiorFinisher = true
	}
	return t
}

// classifyArchetype resolves the single best-fit role for a prospect. An
// authoritative archetype list on the record wins outright; otherwise an
// ordered, position-gated decision tree runs over the inferred traits. A
// prospect that matches nothing is a generic all-around player.
func classifyArchetype(record *models.ProspectRecord, stats models.DerivedStats, context models.CompetitionContext, logger *logrus.Entry) []models.Archetype {
	if len(record.Archetypes) > 0 {
		if normalized := normalizeArchetypes(record.Archetypes, logger); len(normalized) > 0 {
			return normalized
		}
	}

	t := inferTraits(stats, context)
	position := strings.ToUpper(strings.TrimSpace(record.Position))

	var inferred models.Archetype
	switch position {
	case "PG", "SG":
		switch {
		case t.efficientPlaymaker && !t.highScoringLoad:
			inferred = models.ArchetypeFloorGeneral
		case t.highScoringLoad:
			inferred = models.ArchetypeShotCreator
		case t.accurateShooter && t.activeDefender:
			inferred = models.ArchetypeThreeAndD
		case t.accurateShooter:
			inferred = models.ArchetypeSharpshooter
		case t.activeDefender:
			inferred = models.ArchetypeTwoWayWing
		}
	case "SF":
		switch {
		case t.efficientPlaymaker:
			inferred = models.ArchetypePointForward
		case t.highScoringLoad && t.activeDefender:
			inferred = models.ArchetypeTwoWayWing
		case t.highScoringLoad:
			inferred = models.ArchetypeShotCreator
		case t.accurateShooter && t.activeDefender:
			inferred = models.ArchetypeThreeAndD
		case t.accurateShooter:
			inferred = models.ArchetypeSharpshooter
		case t.interiorFinisher:
			inferred = models.ArchetypeSlasher
		}
	case "PF", "C":
		switch {
		case t.shotBlocker:
			inferred = models.ArchetypeRimProtector
		case t.accurateShooter:
			inferred = models.ArchetypeStretchBig
		case t.efficientPlaymaker:
			inferred = models.ArchetypePointForward
		case t.interiorFinisher:
			inferred = models.ArchetypeSlasher
		}
	default:
		// Position unknown: use the position-independent signatures only.
		switch {
		case t.efficientPlaymaker:
			inferred = models.ArchetypeFloorGeneral
		case t.highScoringLoad:
			inferred = models.ArchetypeShotCreator
		case t.accurateShooter:
			inferred = models.ArchetypeSharpshooter
		case t.shotBlocker:
			inferred = models.ArchetypeRimProtector
		}
	}

	if inferred == "" {
		inferred = models.ArchetypeAllAround
	}
	return []models.Archetype{inferred}
}
