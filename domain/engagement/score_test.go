package engagement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sciscroll/domain/content"
)

func TestComputeScore_AllZero(t *testing.T) {
	score := ComputeScore(DefaultSample())
	assert.Equal(t, 0.0, score)
}

func TestComputeScore_FullySaturated(t *testing.T) {
	s := Sample{
		TotalTimeOnNodeMS:     120000,
		ScrollEvents:          25,
		GoDeeperClicks:        5,
		SectionsInCurrentNode: 4,
		TimePerSectionMS:      60000,
	}
	score := ComputeScore(s)
	assert.Equal(t, 1.0, score)
}

func TestComputeScore_PartialEngagement(t *testing.T) {
	// 30s dwell = 0.5 time factor, 5 scrolls = 0.5 scroll factor,
	// 1 click = 0.5 click factor, even section spread = 1.0 variance.
	s := Sample{
		TotalTimeOnNodeMS:     30000,
		ScrollEvents:          5,
		GoDeeperClicks:        1,
		SectionsInCurrentNode: 3,
		TimePerSectionMS:      10000,
	}
	score := ComputeScore(s)
	// 0.30*0.5 + 0.20*0.5 + 0.30*0.5 + 0.20*1.0 = 0.6
	assert.Equal(t, 0.6, score)
}

func TestComputeScore_VarianceZeroWithoutDwell(t *testing.T) {
	s := Sample{
		ScrollEvents:          10,
		SectionsInCurrentNode: 3,
		TimePerSectionMS:      5000,
	}
	// Only the scroll factor contributes.
	assert.Equal(t, 0.2, ComputeScore(s))
}

func TestComputeScore_RoundedToFourDecimals(t *testing.T) {
	s := Sample{
		TotalTimeOnNodeMS:     10000,
		SectionsInCurrentNode: 1,
	}
	// 0.30 * (10000/60000) = 0.05, variance saturates at 0 since
	// time_per_section is 0.
	assert.Equal(t, 0.05, ComputeScore(s))

	s.TotalTimeOnNodeMS = 20000
	// 0.30 * (1/3) = 0.1 exactly after rounding
	assert.Equal(t, 0.1, ComputeScore(s))
}

func TestSelectStrategy_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  content.Strategy
	}{
		{1.0, content.StrategyDeeper},
		{0.65, content.StrategyDeeper},
		{0.6499, content.StrategyBranch},
		{0.5, content.StrategyBranch},
		{0.35, content.StrategyBranch},
		{0.3499, content.StrategyPivot},
		{0.0, content.StrategyPivot},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SelectStrategy(tc.score), "score %v", tc.score)
	}
}

func TestSanitize_NilInput(t *testing.T) {
	s := Sanitize(nil)
	assert.Equal(t, DefaultSample(), s)
	assert.Equal(t, 1, s.SectionsInCurrentNode)
}

func TestSanitize_MalformedValues(t *testing.T) {
	raw := map[string]any{
		"current_node_id":          42,
		"total_time_on_node_ms":    "not a number",
		"scroll_events":            -3.0,
		"go_deeper_clicks":         2.0,
		"sections_in_current_node": 0.0,
		"time_per_section_ms":      nil,
	}
	s := Sanitize(raw)

	assert.Equal(t, "", s.CurrentNodeID)
	assert.Equal(t, 0, s.TotalTimeOnNodeMS)
	assert.Equal(t, 0, s.ScrollEvents)
	assert.Equal(t, 2, s.GoDeeperClicks)
	assert.Equal(t, 1, s.SectionsInCurrentNode)
	assert.Equal(t, 0, s.TimePerSectionMS)
}

func TestSanitize_DecodedJSONNumbers(t *testing.T) {
	// json.Unmarshal delivers all numbers as float64.
	raw := map[string]any{
		"current_node_id":          "black-holes",
		"total_time_on_node_ms":    45000.0,
		"scroll_events":            8.0,
		"go_deeper_clicks":         1.0,
		"sections_in_current_node": 3.0,
		"time_per_section_ms":      15000.0,
	}
	s := Sanitize(raw)

	assert.Equal(t, "black-holes", s.CurrentNodeID)
	assert.Equal(t, 45000, s.TotalTimeOnNodeMS)
	assert.Equal(t, 8, s.ScrollEvents)
	assert.Equal(t, 3, s.SectionsInCurrentNode)
}

func TestScorePipeline_HighEngagementSelectsDeeper(t *testing.T) {
	raw := map[string]any{
		"total_time_on_node_ms":    90000.0,
		"scroll_events":            15.0,
		"go_deeper_clicks":         3.0,
		"sections_in_current_node": 3.0,
		"time_per_section_ms":      30000.0,
	}
	score := ComputeScore(Sanitize(raw))
	assert.Equal(t, content.StrategyDeeper, SelectStrategy(score))
	assert.Equal(t, 1.0, score)
}

func TestScorePipeline_LowEngagementSelectsPivot(t *testing.T) {
	raw := map[string]any{
		"total_time_on_node_ms": 3000.0,
		"scroll_events":         1.0,
	}
	score := ComputeScore(Sanitize(raw))
	assert.Equal(t, content.StrategyPivot, SelectStrategy(score))
}
