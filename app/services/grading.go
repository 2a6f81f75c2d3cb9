package services

import (
	"math"
	"sort"
	"strings"

	"sukuu-backend/app/models"
)

// DefaultPassThreshold is used when no weight config, grading scale or passing
// band can be resolved for a scope.
const DefaultPassThreshold = 50.0

// MapGradeLetter classifies a mark against scale bands. Bands are checked by
// descending min_percentage; the first band whose inclusive range contains the
// mark wins. A missing max defaults to 100. A nil mark, empty band set or
// unmatched mark all return nil rather than an error.
func MapGradeLetter(mark *float64, bands []*models.GradeBand) *string {
	if mark == nil || len(bands) == 0 {
		return nil
	}

	ordered := make([]*models.GradeBand, len(bands))
	copy(ordered, bands)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MinPercentage > ordered[j].MinPercentage
	})

	for _, band := range ordered {
		max := 100.0
		if band.MaxPercentage != nil {
			max = *band.MaxPercentage
		}
		if *mark >= band.MinPercentage && *mark <= max {
			letter := band.Grade
			return &letter
		}
	}
	return nil
}

// ThresholdScope identifies the configuration context a pass threshold is
// resolved for.
type ThresholdScope struct {
	AcademicYearID string
	ClassID        *string
	SubjectID      *string
}

// MatchWeightConfig finds the best-matching weight config for a scope using an
// exact-match-or-wildcard lookup: a config field that is set must equal the
// scope's value, an unset field matches anything. Among matches the most
// specific wins (subject beats class beats the year default). This is a
// simplification of full precedence scoring; ties keep the first match.
func MatchWeightConfig(configs []*models.WeightConfig, scope ThresholdScope) *models.WeightConfig {
	var best *models.WeightConfig
	bestScore := -1

	for _, cfg := range configs {
		if cfg.AcademicYearID != scope.AcademicYearID {
			continue
		}
		if cfg.ClassID != nil && (scope.ClassID == nil || *cfg.ClassID != *scope.ClassID) {
			continue
		}
		if cfg.SubjectID != nil && (scope.SubjectID == nil || *cfg.SubjectID != *scope.SubjectID) {
			continue
		}

		score := 0
		if cfg.SubjectID != nil {
			score += 2
		}
		if cfg.ClassID != nil {
			score++
		}
		if score > bestScore {
			best = cfg
			bestScore = score
		}
	}
	return best
}

// isPassingLetter reports whether a band letter counts as a pass. Labels
// starting with A, B, C or P qualify, case-insensitively.
func isPassingLetter(grade string) bool {
	if grade == "" {
		return false
	}
	switch strings.ToUpper(grade[:1]) {
	case "A", "B", "C", "P":
		return true
	}
	return false
}

// ResolvePassThreshold derives the pass mark for a scope from its best-matching
// weight config's grading scale: the minimum min_percentage among passing
// bands. Missing config, scale or passing bands fall back to the default of 50.
func ResolvePassThreshold(configs []*models.WeightConfig, scope ThresholdScope) float64 {
	cfg := MatchWeightConfig(configs, scope)
	if cfg == nil || cfg.GradingScale == nil || len(cfg.GradingScale.Bands) == 0 {
		return DefaultPassThreshold
	}

	threshold := math.MaxFloat64
	found := false
	for _, band := range cfg.GradingScale.Bands {
		if !isPassingLetter(band.Grade) {
			continue
		}
		if band.MinPercentage < threshold {
			threshold = band.MinPercentage
			found = true
		}
	}
	if !found {
		return DefaultPassThreshold
	}
	return threshold
}
