package assembler

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sciscroll/domain/content"
	"sciscroll/infrastructure/orchestrator"
	"sciscroll/infrastructure/topicgraph"
)

func newTestAssembler(planner orchestrator.Planner) *Assembler {
	asm := New(
		topicgraph.New(),
		content.DefaultTextPools(),
		content.DefaultGenericPool(),
		DefaultGroupsPerResponse,
		planner,
		nil,
		zap.NewNop(),
	)
	return asm.WithRand(rand.New(rand.NewSource(99)))
}

func TestGenerate_BlockStructure(t *testing.T) {
	asm := newTestAssembler(nil)

	blocks, nextNodes := asm.Generate("black-holes", content.StrategyDeeper, nil)

	require.Len(t, blocks, DefaultGroupsPerResponse*2)
	assert.NotEmpty(t, nextNodes)

	seen := make(map[string]bool)
	for i, b := range blocks {
		assert.False(t, seen[b.ID], "duplicate block id %s", b.ID)
		seen[b.ID] = true

		if i%2 == 0 {
			assert.Equal(t, content.BlockTypeText, b.Type)
			assert.NotEmpty(t, b.Content)
			assert.Nil(t, b.Media)
		} else {
			assert.True(t, content.IsMediaKind(content.MediaKind(b.Type)), "unexpected type %s", b.Type)
			require.NotNil(t, b.Media)
			assert.NotEmpty(t, b.Media.URL)
		}
	}

	// Text and media blocks pair under a shared group id.
	for i := 0; i < len(blocks); i += 2 {
		assert.Equal(t, blocks[i].GroupID, blocks[i+1].GroupID)
	}
}

func TestGenerate_MediaVariety(t *testing.T) {
	asm := newTestAssembler(nil)

	blocks, _ := asm.Generate("quantum-mechanics", content.StrategyBranch, nil)

	var prev string
	for i := 1; i < len(blocks); i += 2 {
		if prev != "" {
			assert.NotEqual(t, prev, blocks[i].Type, "adjacent media kinds repeat")
		}
		prev = blocks[i].Type
	}
}

func TestGenerate_VisitedExcluded(t *testing.T) {
	asm := newTestAssembler(nil)

	visited := []string{"event-horizon", "singularity"}
	_, nextNodes := asm.Generate("black-holes", content.StrategyDeeper, visited)

	for _, ref := range nextNodes {
		assert.NotContains(t, visited, ref.ID)
	}
}

func TestGenerate_MaxThreeNextNodes(t *testing.T) {
	asm := newTestAssembler(nil)

	_, nextNodes := asm.Generate("black-holes", content.StrategyDeeper, nil)
	assert.LessOrEqual(t, len(nextNodes), 3)
}

func TestGenerate_StrategyFallbackWhenExhausted(t *testing.T) {
	asm := newTestAssembler(nil)

	g := topicgraph.New()
	visited := g.GetSubtopics("black-holes", content.StrategyDeeper)

	_, nextNodes := asm.Generate("black-holes", content.StrategyDeeper, visited)
	assert.NotEmpty(t, nextNodes, "expected fallback to another strategy's subtopics")
	for _, ref := range nextNodes {
		assert.NotContains(t, visited, ref.ID)
	}
}

func TestGenerate_UnknownTopicUsesGenericTemplates(t *testing.T) {
	asm := newTestAssembler(nil)

	blocks, _ := asm.Generate("alien-technology", content.StrategyPivot, nil)

	require.NotEmpty(t, blocks)
	for _, b := range blocks {
		assert.NotContains(t, b.Content, "{label}")
		assert.NotContains(t, b.Content, "{slug}")
		if b.IsText() {
			assert.Contains(t, b.Content, "Alien Technology")
		}
	}
}

func TestGenerate_SubtopicResolvesToOwningTopic(t *testing.T) {
	asm := newTestAssembler(nil)

	// A subtopic draws from its main topic's pool rather than the
	// generic templates.
	blocks, _ := asm.Generate("hawking-radiation", content.StrategyDeeper, nil)
	require.NotEmpty(t, blocks)
	for _, b := range blocks {
		assert.NotContains(t, b.Content, "{label}")
	}
}

func TestInitial_Shape(t *testing.T) {
	asm := newTestAssembler(nil)

	resp := asm.Initial("Black Holes")

	assert.Equal(t, content.StrategyDeeper, resp.StrategyUsed)
	assert.GreaterOrEqual(t, len(resp.ContentBlocks), 4)
	assert.NotEmpty(t, resp.NextNodes)

	require.NotEmpty(t, resp.Graph.Nodes)
	assert.Equal(t, "black-holes", resp.Graph.Nodes[0].ID)

	// Every edge runs from the root to a suggested node.
	for _, e := range resp.Graph.Edges {
		assert.Equal(t, "black-holes", e.Source)
		assert.NotEqual(t, e.Source, e.Target)
	}
}

func TestInitial_RoundTripExcludesVisited(t *testing.T) {
	asm := newTestAssembler(nil)

	initial := asm.Initial("Black Holes")
	require.NotEmpty(t, initial.NextNodes)

	_, followUp := asm.Generate("black-holes", content.StrategyDeeper, []string{"black-holes"})
	for _, ref := range followUp {
		assert.NotEqual(t, "black-holes", ref.ID)
	}
}

type stubPlanner struct {
	plan *orchestrator.ContentPlan
	err  error
}

func (s *stubPlanner) GeneratePlan(ctx context.Context, req orchestrator.PlanRequest) (*orchestrator.ContentPlan, error) {
	return s.plan, s.err
}

func TestGenerateLive_NilPlannerFallsBack(t *testing.T) {
	asm := newTestAssembler(nil)

	blocks, nextNodes := asm.GenerateLive(context.Background(), "black-holes", content.StrategyDeeper, nil, "", 0.8)
	assert.Len(t, blocks, DefaultGroupsPerResponse*2)
	assert.NotEmpty(t, nextNodes)
}

func TestGenerateLive_PlannerErrorFallsBack(t *testing.T) {
	asm := newTestAssembler(&stubPlanner{err: errors.New("upstream timeout")})

	blocks, nextNodes := asm.GenerateLive(context.Background(), "black-holes", content.StrategyDeeper, nil, "", 0.8)
	assert.Len(t, blocks, DefaultGroupsPerResponse*2)
	assert.NotEmpty(t, nextNodes)
}

func TestGenerateLive_UsesPlan(t *testing.T) {
	plan := &orchestrator.ContentPlan{
		Groups: []orchestrator.PlanGroup{
			{
				Text:           "The event horizon is a one-way membrane.",
				GroupRoleText:  "explanation",
				MediaRequest:   &orchestrator.MediaRequest{Type: "wikipedia_image", Query: "Event Horizon"},
				GroupRoleMedia: "visual",
			},
			{
				Text:          "Nothing inside can signal out.",
				GroupRoleText: "context",
			},
		},
		NextNodes: []string{"singularity", "black-holes", "not-a-real-node"},
	}
	asm := newTestAssembler(&stubPlanner{plan: plan})

	blocks, nextNodes := asm.GenerateLive(
		context.Background(), "black-holes", content.StrategyDeeper, []string{"black-holes"}, "", 0.8)

	// Two text blocks, one media block. No registry is configured, so
	// the media request resolves to a mock payload.
	require.Len(t, blocks, 3)
	assert.Equal(t, content.BlockTypeText, blocks[0].Type)
	assert.Equal(t, "wikipedia_image", blocks[1].Type)
	require.NotNil(t, blocks[1].Media)
	assert.NotEmpty(t, blocks[1].Media.URL)
	assert.Equal(t, content.BlockTypeText, blocks[2].Type)

	// Visited and unknown suggestions are filtered out.
	require.Len(t, nextNodes, 1)
	assert.Equal(t, "singularity", nextNodes[0].ID)
}

func TestGenerateLive_EmptyPlanSuggestionsFallBackToGraph(t *testing.T) {
	plan := &orchestrator.ContentPlan{
		Groups:    []orchestrator.PlanGroup{{Text: "A lone paragraph.", GroupRoleText: "explanation"}},
		NextNodes: []string{"not-a-real-node"},
	}
	asm := newTestAssembler(&stubPlanner{plan: plan})

	_, nextNodes := asm.GenerateLive(context.Background(), "black-holes", content.StrategyDeeper, nil, "", 0.8)
	assert.NotEmpty(t, nextNodes)
}

func TestTextsDoNotRepeatUntilPoolExhausted(t *testing.T) {
	asm := newTestAssembler(nil)

	blocks, _ := asm.Generate("black-holes", content.StrategyDeeper, nil)

	texts := make(map[string]int)
	for _, b := range blocks {
		if b.IsText() {
			texts[b.Content]++
		}
	}
	pool := content.DefaultTextPools()["black-holes"][content.StrategyDeeper]
	if len(pool) >= DefaultGroupsPerResponse {
		for text, count := range texts {
			assert.Equal(t, 1, count, "text repeated before pool exhaustion: %q", strings.Split(text, ".")[0])
		}
	}
}
