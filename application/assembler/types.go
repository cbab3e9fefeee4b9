package assembler

import (
	"sciscroll/domain/content"
	"sciscroll/infrastructure/topicgraph"
)

// GraphEdge is one directed edge in the frontend's exploration graph.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphView is the seed graph returned with an initial response: the
// root topic plus its first ring of suggestions.
type GraphView struct {
	Nodes []topicgraph.Ref `json:"nodes"`
	Edges []GraphEdge      `json:"edges"`
}

// InitialContent is the payload for starting a new topic exploration.
// StrategyUsed is always "deeper": a fresh topic assumes an engaged
// reader.
type InitialContent struct {
	ContentBlocks []content.Block  `json:"content_blocks"`
	Graph         GraphView        `json:"graph"`
	NextNodes     []topicgraph.Ref `json:"next_nodes"`
	StrategyUsed  content.Strategy `json:"strategy_used"`
}

// GeneratedContent is the payload for a follow-up content batch.
type GeneratedContent struct {
	ContentBlocks   []content.Block  `json:"content_blocks"`
	NextNodes       []topicgraph.Ref `json:"next_nodes"`
	StrategyUsed    content.Strategy `json:"strategy_used"`
	EngagementScore float64          `json:"engagement_score"`
}
