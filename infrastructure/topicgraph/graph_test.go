package topicgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sciscroll/domain/content"
)

func TestGraph_GetNode(t *testing.T) {
	g := New()

	node, ok := g.GetNode("black-holes")
	assert.True(t, ok)
	assert.Equal(t, "Black Holes", node.Label)
	assert.NotEmpty(t, node.Description)

	_, ok = g.GetNode("alien-technology")
	assert.False(t, ok)
}

func TestGraph_MainTopics(t *testing.T) {
	g := New()

	mains := g.MainTopics()
	assert.Len(t, mains, 6)
	for _, id := range []string{
		"black-holes", "quantum-mechanics", "crispr-gene-editing",
		"dark-matter", "climate-science", "neural-networks",
	} {
		assert.True(t, g.IsMainTopic(id), "expected %s to be a main topic", id)
	}
	assert.False(t, g.IsMainTopic("event-horizon"))
}

func TestGraph_GetSubtopics(t *testing.T) {
	g := New()

	deeper := g.GetSubtopics("black-holes", content.StrategyDeeper)
	assert.NotEmpty(t, deeper)
	assert.Contains(t, deeper, "event-horizon")
	assert.Contains(t, deeper, "hawking-radiation")

	// Every referenced subtopic slug resolves to a catalog node.
	for _, main := range g.MainTopics() {
		for _, strategy := range content.Strategies {
			for _, sub := range g.GetSubtopics(main, strategy) {
				_, ok := g.GetNode(sub)
				assert.True(t, ok, "subtopic %s of %s has no node entry", sub, main)
			}
		}
	}
}

func TestGraph_GetSubtopicNodes_Excludes(t *testing.T) {
	g := New()

	all := g.GetSubtopicNodes("black-holes", content.StrategyDeeper, nil)
	assert.NotEmpty(t, all)

	exclude := map[string]bool{all[0].ID: true}
	filtered := g.GetSubtopicNodes("black-holes", content.StrategyDeeper, exclude)
	assert.Len(t, filtered, len(all)-1)
	for _, n := range filtered {
		assert.NotEqual(t, all[0].ID, n.ID)
	}
}

func TestGraph_FindTopicForNode(t *testing.T) {
	g := New()

	main, ok := g.FindTopicForNode("event-horizon")
	assert.True(t, ok)
	assert.Equal(t, "black-holes", main)

	_, ok = g.FindTopicForNode("not-a-node")
	assert.False(t, ok)
}

func TestGraph_ResolveMainTopic(t *testing.T) {
	g := New()

	// A main topic resolves to itself.
	assert.Equal(t, "black-holes", g.ResolveMainTopic("black-holes"))
	// A subtopic resolves to its owner.
	assert.Equal(t, "black-holes", g.ResolveMainTopic("hawking-radiation"))
	// Unknown ids pass through unchanged.
	assert.Equal(t, "alien-technology", g.ResolveMainTopic("alien-technology"))
}
