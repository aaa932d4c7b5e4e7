package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
)

// Canonical units are inches and pounds. Source records mix feet/inches
// strings, centimeters, kilograms and bare numbers.

const (
	cmPerInch = 2.54
	lbPerKg   = 2.20462

	// Wingspan defaults to height plus this offset when unmeasured.
	defaultWingspanOffsetIn = 2.0
)

var feetInchesRe = regexp.MustCompile(`^(\d)\s*['\-]\s*(\d{1,2}(?:\.\d+)?)"?$`)

// parseHeight resolves a raw height or wingspan encoding to inches.
// Returns nil when the value is absent or unparseable.
func parseHeight(raw string) *float64 {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return nil
	}

	if m := feetInchesRe.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.ParseFloat(m[1], 64)
		inches, _ := strconv.ParseFloat(m[2], 64)
		if inches < 12 {
			v := feet*12 + inches
			return &v
		}
		return nil
	}

	// "6 ft 8 in" / "6ft 8in"
	if strings.Contains(s, "ft") {
		parts := strings.SplitN(s, "ft", 2)
		feet, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil
		}
		inchPart := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(parts[1]), "in"))
		inches := 0.0
		if inchPart != "" {
			inches, err = strconv.ParseFloat(inchPart, 64)
			if err != nil {
				return nil
			}
		}
		v := feet*12 + inches
		return &v
	}

	isCm := strings.HasSuffix(s, "cm")
	s = strings.TrimSpace(strings.TrimSuffix(s, "cm"))
	s = strings.TrimSpace(strings.TrimSuffix(s, `"`))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return nil
	}

	// Bare numbers above any plausible inch measurement are centimeters.
	if isCm || v > 120 {
		v = v / cmPerInch
	}
	if v < 48 || v > 96 {
		return nil
	}
	return &v
}

// parseWeight resolves a raw weight encoding to pounds.
func parseWeight(raw string) *float64 {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return nil
	}

	isKg := strings.HasSuffix(s, "kg")
	s = strings.TrimSuffix(s, "kg")
	isLb := strings.HasSuffix(s, "lbs") || strings.HasSuffix(s, "lb")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "lbs"), "lb")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return nil
	}

	// A bare number below any plausible pound weight is kilograms.
	if isKg || (!isLb && v < 100) {
		v = v * lbPerKg
	}
	if v < 100 || v > 400 {
		return nil
	}
	return &v
}

// normalizePhysical resolves a record's raw measurements into a canonical
// profile. Wingspan falls back to height plus a fixed offset when unmeasured;
// a measured wingspan shorter than height is preserved as-is because the
// deficit is itself a scouting signal.
func normalizePhysical(record *models.ProspectRecord) models.PhysicalProfile {
	profile := models.PhysicalProfile{
		HeightIn: parseHeight(record.Height),
		WeightLb: parseWeight(record.Weight),
	}

	if ws := parseHeight(record.Wingspan); ws != nil {
		profile.WingspanIn = ws
	} else if profile.HeightIn != nil {
		estimated := *profile.HeightIn + defaultWingspanOffsetIn
		profile.WingspanIn = &estimated
		profile.WingspanEstimated = true
	}

	return profile
}
