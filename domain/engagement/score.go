package engagement

import (
	"math"

	"sciscroll/domain/content"
)

// Scoring weights. They sum to 1.0 so fully saturated telemetry scores
// exactly 1.0 and all-zero telemetry scores exactly 0.0.
const (
	weightTime     = 0.30
	weightScroll   = 0.20
	weightClick    = 0.30
	weightVariance = 0.20

	timeSaturationMS = 60000.0 // 60s of dwell maxes the time factor
	scrollSaturation = 10.0    // 10 scroll events max the scroll factor
	clickWeight      = 0.5     // each go-deeper click adds 0.5, capped at 1.0
)

// Strategy selection thresholds. Lower bounds are inclusive: exactly
// 0.65 selects deeper and exactly 0.35 selects branch.
const (
	deeperThreshold = 0.65
	branchThreshold = 0.35
)

// ComputeScore derives the engagement score in [0, 1] from a sanitized
// sample, rounded to 4 decimal places. Deterministic and total: it is
// purely a function of the current sample, with no history.
func ComputeScore(s Sample) float64 {
	timeFactor := math.Min(1.0, float64(s.TotalTimeOnNodeMS)/timeSaturationMS)
	scrollFactor := math.Min(1.0, float64(s.ScrollEvents)/scrollSaturation)
	clickFactor := math.Min(1.0, float64(s.GoDeeperClicks)*clickWeight)

	// Section variance: how evenly the dwell time spreads across the
	// node's sections.
	varianceFactor := 0.0
	sections := s.SectionsInCurrentNode
	if sections < 1 {
		sections = 1
	}
	if s.TotalTimeOnNodeMS > 0 {
		expectedPerSection := float64(s.TotalTimeOnNodeMS) / float64(sections)
		if expectedPerSection > 0 {
			varianceFactor = math.Min(1.0, float64(s.TimePerSectionMS)/expectedPerSection)
		}
	}

	score := weightTime*timeFactor +
		weightScroll*scrollFactor +
		weightClick*clickFactor +
		weightVariance*varianceFactor

	score = math.Max(0.0, math.Min(1.0, score))
	return math.Round(score*10000) / 10000
}

// SelectStrategy maps an engagement score to a content strategy.
func SelectStrategy(score float64) content.Strategy {
	switch {
	case score >= deeperThreshold:
		return content.StrategyDeeper
	case score >= branchThreshold:
		return content.StrategyBranch
	default:
		return content.StrategyPivot
	}
}
