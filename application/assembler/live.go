package assembler

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sciscroll/domain/content"
	"sciscroll/infrastructure/media"
	"sciscroll/infrastructure/orchestrator"
	"sciscroll/infrastructure/topicgraph"
)

// initialEngagementScore seeds the planner for a fresh topic; it sits
// in the "deeper" band.
const initialEngagementScore = 0.7

// GenerateLive assembles a response through the orchestrator, resolving
// each planned media request against its external provider. Any
// orchestrator failure falls back entirely to the mock path; any single
// provider failure is substituted with mock media. The live path never
// produces an empty or malformed response because of an external
// failure.
func (a *Assembler) GenerateLive(
	ctx context.Context,
	topicID string,
	strategy content.Strategy,
	visited []string,
	lastParagraph string,
	engagementScore float64,
) ([]content.Block, []topicgraph.Ref) {
	if a.planner == nil {
		return a.Generate(topicID, strategy, visited)
	}

	visitedSet := toSet(visited)
	label := a.labelFor(topicID)

	plan, err := a.planner.GeneratePlan(ctx, a.planRequest(topicID, label, strategy, visited, lastParagraph, engagementScore))
	if err != nil || plan == nil {
		a.logger.Warn("Orchestrator unavailable, falling back to mock content",
			zap.String("topic", topicID),
			zap.String("strategy", string(strategy)),
			zap.Error(err),
		)
		return a.Generate(topicID, strategy, visited)
	}

	blocks := make([]content.Block, 0, len(plan.Groups)*2)
	for _, group := range plan.Groups {
		groupID := content.NewID("grp")

		if group.Text != "" {
			role := group.GroupRoleText
			if role == "" {
				role = "explanation"
			}
			blocks = append(blocks, content.Block{
				ID:        content.NewID("text"),
				Type:      content.BlockTypeText,
				Content:   group.Text,
				GroupID:   groupID,
				GroupRole: role,
			})
		}

		if group.MediaRequest != nil {
			kind := content.MediaKind(group.MediaRequest.Type)
			if kind == "" {
				kind = content.KindUnsplash
			}
			role := group.GroupRoleMedia
			if role == "" {
				role = "visual"
			}
			blocks = append(blocks, content.Block{
				ID:        content.NewID(string(kind)),
				Type:      string(kind),
				Content:   fmt.Sprintf("%s - %s content", label, kind),
				GroupID:   groupID,
				GroupRole: role,
				Media:     a.resolveMedia(ctx, kind, group.MediaRequest, label),
			})
		}
	}

	nextNodes := a.plannedNextNodes(plan, visitedSet)
	if len(nextNodes) == 0 {
		mainTopic := a.graph.ResolveMainTopic(topicID)
		nextNodes = a.suggestNextNodes(mainTopic, strategy, visitedSet)
	}

	return blocks, nextNodes
}

// InitialLive assembles the initial response through the orchestrator,
// falling back to the mock path via GenerateLive's own fallback.
func (a *Assembler) InitialLive(ctx context.Context, topicLabel string) *InitialContent {
	topicID := topicgraph.Slugify(topicLabel)
	root := a.rootRef(topicID, topicLabel)

	blocks, nextNodes := a.GenerateLive(ctx, topicID, content.StrategyDeeper, nil, "", initialEngagementScore)

	return &InitialContent{
		ContentBlocks: blocks,
		Graph:         buildInitialGraph(root, nextNodes),
		NextNodes:     nextNodes,
		StrategyUsed:  content.StrategyDeeper,
	}
}

// planRequest gathers everything the orchestrator needs: topic context,
// engagement state, candidate next nodes per strategy, and which media
// providers can actually be called.
func (a *Assembler) planRequest(
	topicID, label string,
	strategy content.Strategy,
	visited []string,
	lastParagraph string,
	engagementScore float64,
) orchestrator.PlanRequest {
	description := "Unknown topic"
	if node, ok := a.graph.GetNode(topicID); ok {
		description = node.Description
	}

	visitedSet := toSet(visited)
	mainTopic := a.graph.ResolveMainTopic(topicID)
	var candidates []orchestrator.CandidateNode
	for _, strat := range content.Strategies {
		for _, n := range a.graph.GetSubtopicNodes(mainTopic, strat, visitedSet) {
			candidates = append(candidates, orchestrator.CandidateNode{
				ID:       n.ID,
				Label:    n.Label,
				Strategy: strat,
			})
		}
	}

	var available []content.MediaKind
	if a.providers != nil {
		available = a.providers.AvailableKinds()
	}

	return orchestrator.PlanRequest{
		TopicLabel:      label,
		Description:     description,
		Strategy:        strategy,
		EngagementScore: engagementScore,
		VisitedNodes:    visited,
		LastParagraph:   lastParagraph,
		AvailableMedia:  available,
		CandidateNodes:  candidates,
	}
}

// resolveMedia executes one planned media request against the matching
// provider, substituting mock media when the provider is missing, fails,
// or finds nothing.
func (a *Assembler) resolveMedia(ctx context.Context, kind content.MediaKind, req *orchestrator.MediaRequest, topicLabel string) *content.MediaPayload {
	query := req.Query
	if query == "" {
		query = topicLabel
	}
	if kind == content.KindWikipediaImage {
		query = a.cleanWikipediaQuery(query, topicLabel)
	}

	if a.providers != nil {
		if provider, ok := a.providers.Get(kind); ok {
			payload, err := provider.Search(ctx, media.Query{
				Text:       query,
				TopText:    req.TopText,
				BottomText: req.BottomText,
			})
			if err != nil {
				a.logger.Warn("Media provider call failed, using mock media",
					zap.String("kind", string(kind)),
					zap.String("query", query),
					zap.Error(err),
				)
			}
			if payload != nil {
				return payload
			}
		}
	}

	return content.MockMedia(kind, topicLabel, topicgraph.Slugify(topicLabel))
}

// cleanWikipediaQuery maps a free-form planner query to a canonical
// article title: a known node label contained in the query wins, a long
// query degrades to the topic label, short queries pass through.
func (a *Assembler) cleanWikipediaQuery(query, topicLabel string) string {
	lower := strings.ToLower(query)
	for _, node := range a.graph.Nodes() {
		if len(node.Label) > 2 && strings.Contains(lower, strings.ToLower(node.Label)) {
			return node.Label
		}
	}
	if len(strings.Fields(query)) > 3 {
		return topicLabel
	}
	return query
}

// plannedNextNodes filters the plan's suggestions to unvisited slugs
// that exist in the topic graph.
func (a *Assembler) plannedNextNodes(plan *orchestrator.ContentPlan, visited map[string]bool) []topicgraph.Ref {
	var refs []topicgraph.Ref
	for _, id := range plan.NextNodes {
		if visited[id] {
			continue
		}
		if node, ok := a.graph.GetNode(id); ok {
			refs = append(refs, node.Ref())
		}
	}
	if len(refs) > maxNextNodes {
		refs = refs[:maxNextNodes]
	}
	return refs
}
