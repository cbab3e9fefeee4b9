package engagement

// Sample is one request's interaction telemetry, sanitized. All numeric
// fields are non-negative and SectionsInCurrentNode is at least 1, so
// downstream arithmetic never divides by zero.
type Sample struct {
	CurrentNodeID         string `json:"current_node_id"`
	TotalTimeOnNodeMS     int    `json:"total_time_on_node_ms"`
	ScrollEvents          int    `json:"scroll_events"`
	GoDeeperClicks        int    `json:"go_deeper_clicks"`
	SectionsInCurrentNode int    `json:"sections_in_current_node"`
	TimePerSectionMS      int    `json:"time_per_section_ms"`
}

// DefaultSample returns the all-default sample used when telemetry is
// missing or malformed.
func DefaultSample() Sample {
	return Sample{SectionsInCurrentNode: 1}
}

// Sanitize coerces raw frontend telemetry into a safe Sample. Missing
// keys take defaults, non-numeric values take defaults, negative values
// are clamped to zero. It never fails: garbage in, defaults out.
func Sanitize(raw map[string]any) Sample {
	s := DefaultSample()
	if raw == nil {
		return s
	}

	if v, ok := raw["current_node_id"].(string); ok {
		s.CurrentNodeID = v
	}
	s.TotalTimeOnNodeMS = intField(raw, "total_time_on_node_ms", 0)
	s.ScrollEvents = intField(raw, "scroll_events", 0)
	s.GoDeeperClicks = intField(raw, "go_deeper_clicks", 0)
	s.SectionsInCurrentNode = intField(raw, "sections_in_current_node", 1)
	s.TimePerSectionMS = intField(raw, "time_per_section_ms", 0)

	if s.SectionsInCurrentNode < 1 {
		s.SectionsInCurrentNode = 1
	}
	return s
}

// intField reads a non-negative integer from decoded JSON. json.Unmarshal
// delivers numbers as float64; anything else falls back to the default.
func intField(raw map[string]any, key string, def int) int {
	v, ok := raw[key]
	if !ok || v == nil {
		return maxInt(0, def)
	}
	switch n := v.(type) {
	case float64:
		return maxInt(0, int(n))
	case int:
		return maxInt(0, n)
	default:
		return maxInt(0, def)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
