// Package validation checks assembled responses before they leave the
// service. Violations are reported as human-readable strings so the
// handler can log every problem in one line rather than failing on the
// first.
package validation

import (
	"fmt"
	"math"

	"sciscroll/application/assembler"
	"sciscroll/domain/content"
	"sciscroll/infrastructure/topicgraph"
)

// ValidateBlock checks one content block's structural invariants.
func ValidateBlock(i int, b content.Block) []string {
	var problems []string

	if b.ID == "" {
		problems = append(problems, fmt.Sprintf("content_blocks[%d]: missing id", i))
	}
	if b.Type == "" {
		problems = append(problems, fmt.Sprintf("content_blocks[%d]: missing type", i))
	}
	if b.GroupID == "" {
		problems = append(problems, fmt.Sprintf("content_blocks[%d]: missing group_id", i))
	}
	if b.GroupRole == "" {
		problems = append(problems, fmt.Sprintf("content_blocks[%d]: missing group_role", i))
	}

	switch {
	case b.Type == content.BlockTypeText:
		if b.Content == "" {
			problems = append(problems, fmt.Sprintf("content_blocks[%d]: text block has empty content", i))
		}
		if !content.TextRoles[b.GroupRole] {
			problems = append(problems, fmt.Sprintf("content_blocks[%d]: unknown text role %q", i, b.GroupRole))
		}
	case content.IsMediaKind(content.MediaKind(b.Type)):
		if b.Media == nil {
			problems = append(problems, fmt.Sprintf("content_blocks[%d]: %s block has no media payload", i, b.Type))
		} else {
			if b.Media.URL == "" {
				problems = append(problems, fmt.Sprintf("content_blocks[%d]: media payload has empty url", i))
			}
			if b.Media.Source == "" {
				problems = append(problems, fmt.Sprintf("content_blocks[%d]: media payload has empty source", i))
			}
		}
		if !content.MediaRoles[b.GroupRole] {
			problems = append(problems, fmt.Sprintf("content_blocks[%d]: unknown media role %q", i, b.GroupRole))
		}
	default:
		problems = append(problems, fmt.Sprintf("content_blocks[%d]: unknown block type %q", i, b.Type))
	}

	return problems
}

// ValidateGenerate checks a follow-up response: non-empty blocks, a
// recognized strategy, an in-range score, and valid next-node refs.
func ValidateGenerate(resp *assembler.GeneratedContent) []string {
	var problems []string

	problems = append(problems, validateBlocks(resp.ContentBlocks)...)
	problems = append(problems, validateStrategy(resp.StrategyUsed)...)

	if math.IsNaN(resp.EngagementScore) || resp.EngagementScore < 0 || resp.EngagementScore > 1 {
		problems = append(problems, fmt.Sprintf("engagement_score: %v out of range [0, 1]", resp.EngagementScore))
	}

	problems = append(problems, validateNextNodes(resp.NextNodes)...)

	return problems
}

// ValidateInitial checks an initial response. Initial responses always
// use the deeper strategy and must carry a non-empty seed graph.
func ValidateInitial(resp *assembler.InitialContent) []string {
	var problems []string

	problems = append(problems, validateBlocks(resp.ContentBlocks)...)

	if resp.StrategyUsed != content.StrategyDeeper {
		problems = append(problems, fmt.Sprintf("strategy_used: initial response must be %q, got %q", content.StrategyDeeper, resp.StrategyUsed))
	}
	if len(resp.Graph.Nodes) == 0 {
		problems = append(problems, "graph: no nodes")
	}
	for i, e := range resp.Graph.Edges {
		if e.Source == "" || e.Target == "" {
			problems = append(problems, fmt.Sprintf("graph.edges[%d]: missing endpoint", i))
		}
	}

	problems = append(problems, validateNextNodes(resp.NextNodes)...)

	return problems
}

func validateBlocks(blocks []content.Block) []string {
	var problems []string
	if len(blocks) == 0 {
		problems = append(problems, "content_blocks: empty")
	}
	seen := make(map[string]bool, len(blocks))
	for i, b := range blocks {
		problems = append(problems, ValidateBlock(i, b)...)
		if b.ID != "" && seen[b.ID] {
			problems = append(problems, fmt.Sprintf("content_blocks[%d]: duplicate id %q", i, b.ID))
		}
		seen[b.ID] = true
	}
	return problems
}

func validateStrategy(s content.Strategy) []string {
	if !content.IsValidStrategy(s) {
		return []string{fmt.Sprintf("strategy_used: unknown strategy %q", s)}
	}
	return nil
}

func validateNextNodes(refs []topicgraph.Ref) []string {
	var problems []string
	if len(refs) > 3 {
		problems = append(problems, fmt.Sprintf("next_nodes: %d suggestions exceeds limit of 3", len(refs)))
	}
	for i, r := range refs {
		if r.ID == "" {
			problems = append(problems, fmt.Sprintf("next_nodes[%d]: missing id", i))
		}
		if r.Label == "" {
			problems = append(problems, fmt.Sprintf("next_nodes[%d]: missing label", i))
		}
	}
	return problems
}
