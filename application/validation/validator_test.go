package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sciscroll/application/assembler"
	"sciscroll/domain/content"
	"sciscroll/infrastructure/topicgraph"
)

func textBlock(id, groupID string) content.Block {
	return content.Block{
		ID:        id,
		Type:      content.BlockTypeText,
		Content:   "Some paragraph.",
		GroupID:   groupID,
		GroupRole: "explanation",
	}
}

func mediaBlock(id, groupID string) content.Block {
	return content.Block{
		ID:        id,
		Type:      string(content.KindUnsplash),
		Content:   "Black Holes - unsplash content",
		GroupID:   groupID,
		GroupRole: "visual",
		Media:     content.MockMedia(content.KindUnsplash, "Black Holes", "black-holes"),
	}
}

func TestValidateBlock_ValidPair(t *testing.T) {
	assert.Empty(t, ValidateBlock(0, textBlock("text-1", "grp-1")))
	assert.Empty(t, ValidateBlock(1, mediaBlock("unsplash-1", "grp-1")))
}

func TestValidateBlock_MissingFields(t *testing.T) {
	problems := ValidateBlock(0, content.Block{})
	assert.NotEmpty(t, problems)
	assert.Contains(t, problems[0], "content_blocks[0]")
}

func TestValidateBlock_WrongRoleVocabulary(t *testing.T) {
	b := textBlock("text-1", "grp-1")
	b.GroupRole = "visual" // media role on a text block
	problems := ValidateBlock(0, b)
	assert.NotEmpty(t, problems)

	m := mediaBlock("unsplash-1", "grp-1")
	m.GroupRole = "explanation" // text role on a media block
	problems = ValidateBlock(1, m)
	assert.NotEmpty(t, problems)
}

func TestValidateBlock_MediaWithoutPayload(t *testing.T) {
	m := mediaBlock("reddit-1", "grp-1")
	m.Media = nil
	problems := ValidateBlock(0, m)
	assert.NotEmpty(t, problems)
}

func TestValidateBlock_MediaPayloadRequiresURLAndSource(t *testing.T) {
	m := mediaBlock("unsplash-1", "grp-1")
	m.Media.Source = ""
	problems := ValidateBlock(0, m)
	assert.NotEmpty(t, problems)
	assert.Contains(t, problems[0], "empty source")

	m = mediaBlock("unsplash-2", "grp-1")
	m.Media.URL = ""
	m.Media.Source = ""
	problems = ValidateBlock(0, m)
	assert.Len(t, problems, 2)
}

func TestValidateBlock_UnknownType(t *testing.T) {
	b := content.Block{
		ID:        "x-1",
		Type:      "hologram",
		GroupID:   "grp-1",
		GroupRole: "visual",
	}
	problems := ValidateBlock(0, b)
	assert.NotEmpty(t, problems)
}

func TestValidateGenerate_Valid(t *testing.T) {
	resp := &assembler.GeneratedContent{
		ContentBlocks: []content.Block{
			textBlock("text-1", "grp-1"),
			mediaBlock("unsplash-1", "grp-1"),
		},
		NextNodes:       []topicgraph.Ref{{ID: "singularity", Label: "Singularity"}},
		StrategyUsed:    content.StrategyDeeper,
		EngagementScore: 0.72,
	}
	assert.Empty(t, ValidateGenerate(resp))
}

func TestValidateGenerate_Violations(t *testing.T) {
	resp := &assembler.GeneratedContent{
		ContentBlocks: []content.Block{
			textBlock("text-1", "grp-1"),
			textBlock("text-1", "grp-2"), // duplicate id
		},
		NextNodes:       []topicgraph.Ref{{ID: "", Label: ""}},
		StrategyUsed:    content.Strategy("sideways"),
		EngagementScore: 1.5,
	}
	problems := ValidateGenerate(resp)
	assert.GreaterOrEqual(t, len(problems), 4)
}

func TestValidateGenerate_EmptyBlocks(t *testing.T) {
	resp := &assembler.GeneratedContent{
		StrategyUsed:    content.StrategyPivot,
		EngagementScore: 0.1,
	}
	problems := ValidateGenerate(resp)
	assert.Contains(t, problems, "content_blocks: empty")
}

func TestValidateInitial_Valid(t *testing.T) {
	root := topicgraph.Ref{ID: "black-holes", Label: "Black Holes"}
	next := topicgraph.Ref{ID: "event-horizon", Label: "Event Horizon"}
	resp := &assembler.InitialContent{
		ContentBlocks: []content.Block{
			textBlock("text-1", "grp-1"),
			mediaBlock("unsplash-1", "grp-1"),
		},
		Graph: assembler.GraphView{
			Nodes: []topicgraph.Ref{root, next},
			Edges: []assembler.GraphEdge{{Source: root.ID, Target: next.ID}},
		},
		NextNodes:    []topicgraph.Ref{next},
		StrategyUsed: content.StrategyDeeper,
	}
	assert.Empty(t, ValidateInitial(resp))
}

func TestValidateInitial_RequiresDeeperAndGraph(t *testing.T) {
	resp := &assembler.InitialContent{
		ContentBlocks: []content.Block{textBlock("text-1", "grp-1")},
		StrategyUsed:  content.StrategyBranch,
	}
	problems := ValidateInitial(resp)
	assert.NotEmpty(t, problems)

	var sawStrategy, sawGraph bool
	for _, p := range problems {
		if p == "graph: no nodes" {
			sawGraph = true
		}
		if len(p) >= 13 && p[:13] == "strategy_used" {
			sawStrategy = true
		}
	}
	assert.True(t, sawStrategy)
	assert.True(t, sawGraph)
}
