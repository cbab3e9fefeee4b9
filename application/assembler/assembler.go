// Package assembler turns a topic, strategy, and visited-node list into
// ordered content blocks and next-topic suggestions. The mock path
// draws from static pools; the live path delegates planning to the
// orchestrator and falls back to the mock path on any failure.
package assembler

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"sciscroll/domain/content"
	"sciscroll/infrastructure/media"
	"sciscroll/infrastructure/orchestrator"
	"sciscroll/infrastructure/topicgraph"
)

// DefaultGroupsPerResponse is the number of text/media pairs assembled
// on the mock path.
const DefaultGroupsPerResponse = 4

const maxNextNodes = 3

// Assembler builds content responses. All of its fields are read-only
// reference data or stateless collaborators, so one Assembler is shared
// across concurrent requests; per-request mutable state (the variety
// tracker, used-text set) lives inside each call.
type Assembler struct {
	graph     *topicgraph.Graph
	pools     content.TextPools
	generic   content.GenericPool
	groups    int
	planner   orchestrator.Planner
	providers *media.Registry
	logger    *zap.Logger
	rng       *rand.Rand
}

// New creates an assembler. planner may be nil (mock mode); providers
// may be empty.
func New(
	graph *topicgraph.Graph,
	pools content.TextPools,
	generic content.GenericPool,
	groupsPerResponse int,
	planner orchestrator.Planner,
	providers *media.Registry,
	logger *zap.Logger,
) *Assembler {
	if groupsPerResponse <= 0 {
		groupsPerResponse = DefaultGroupsPerResponse
	}
	return &Assembler{
		graph:     graph,
		pools:     pools,
		generic:   generic,
		groups:    groupsPerResponse,
		planner:   planner,
		providers: providers,
		logger:    logger,
	}
}

// WithRand returns a copy of the assembler using a seeded random
// source. Test-only determinism hook; the returned assembler must not
// be shared across goroutines.
func (a *Assembler) WithRand(rng *rand.Rand) *Assembler {
	clone := *a
	clone.rng = rng
	return &clone
}

// Generate assembles a mock-path response: groupsPerResponse text/media
// pairs plus up to three next-node suggestions that exclude visited
// nodes.
func (a *Assembler) Generate(topicID string, strategy content.Strategy, visited []string) ([]content.Block, []topicgraph.Ref) {
	visitedSet := toSet(visited)
	tracker := content.NewVarietyTracker(nil, a.rng)
	usedTexts := make(map[string]bool)
	blocks := make([]content.Block, 0, a.groups*2)

	mainTopic := a.graph.ResolveMainTopic(topicID)
	label := a.labelFor(topicID)
	slug := topicgraph.Slugify(label)

	for i := 0; i < a.groups; i++ {
		groupID := content.NewID("grp")
		kind := tracker.Next()

		text := a.pickText(mainTopic, strategy, usedTexts)
		usedTexts[text] = true
		blocks = append(blocks, content.Block{
			ID:        content.NewID("text"),
			Type:      content.BlockTypeText,
			Content:   text,
			GroupID:   groupID,
			GroupRole: content.TextRoleFor(kind),
		})

		blocks = append(blocks, content.Block{
			ID:        content.NewID(string(kind)),
			Type:      string(kind),
			Content:   fmt.Sprintf("%s - %s content", label, kind),
			GroupID:   groupID,
			GroupRole: content.MediaRoleFor(kind),
			Media:     content.MockMedia(kind, label, slug),
		})
	}

	return blocks, a.suggestNextNodes(mainTopic, strategy, visitedSet)
}

// Initial assembles the mock-path response for starting a topic.
func (a *Assembler) Initial(topicLabel string) *InitialContent {
	topicID := topicgraph.Slugify(topicLabel)
	root := a.rootRef(topicID, topicLabel)

	blocks, nextNodes := a.Generate(topicID, content.StrategyDeeper, nil)

	return &InitialContent{
		ContentBlocks: blocks,
		Graph:         buildInitialGraph(root, nextNodes),
		NextNodes:     nextNodes,
		StrategyUsed:  content.StrategyDeeper,
	}
}

// suggestNextNodes picks up to maxNextNodes unvisited subtopics for the
// strategy. When the strategy's subtopics are all visited, the other
// strategies are tried in fixed order; oversized candidate sets are
// sampled uniformly without replacement.
func (a *Assembler) suggestNextNodes(mainTopic string, strategy content.Strategy, visited map[string]bool) []topicgraph.Ref {
	nodes := a.graph.GetSubtopicNodes(mainTopic, strategy, visited)
	if len(nodes) == 0 {
		for _, fallback := range content.Strategies {
			nodes = a.graph.GetSubtopicNodes(mainTopic, fallback, visited)
			if len(nodes) > 0 {
				break
			}
		}
	}

	if len(nodes) > maxNextNodes {
		a.shuffleNodes(nodes)
		nodes = nodes[:maxNextNodes]
	}

	refs := make([]topicgraph.Ref, 0, len(nodes))
	for _, n := range nodes {
		refs = append(refs, n.Ref())
	}
	return refs
}

// pickText draws one paragraph for the topic and strategy, avoiding
// repeats until the pool is exhausted. Topics without a dedicated pool
// use the generic templated pool with label/slug substitution.
func (a *Assembler) pickText(topicID string, strategy content.Strategy, used map[string]bool) string {
	pool := a.pools[topicID][strategy]

	if len(pool) == 0 {
		label := a.labelFor(topicID)
		templates := a.generic[strategy]
		if len(templates) == 0 {
			templates = a.generic[content.StrategyDeeper]
		}
		pool = make([]string, 0, len(templates))
		for _, t := range templates {
			t = strings.ReplaceAll(t, "{label}", label)
			t = strings.ReplaceAll(t, "{slug}", topicID)
			pool = append(pool, t)
		}
	}

	available := make([]string, 0, len(pool))
	for _, t := range pool {
		if !used[t] {
			available = append(available, t)
		}
	}
	if len(available) == 0 {
		available = pool
	}
	if len(available) == 0 {
		return fmt.Sprintf("Exploring %s.", strings.ReplaceAll(topicID, "-", " "))
	}
	return available[a.intn(len(available))]
}

// labelFor resolves a display label: the catalog label when the slug is
// known, a title-cased rendering of the slug otherwise.
func (a *Assembler) labelFor(topicID string) string {
	if node, ok := a.graph.GetNode(topicID); ok {
		return node.Label
	}
	return titleCase(strings.ReplaceAll(topicID, "-", " "))
}

func (a *Assembler) rootRef(topicID, topicLabel string) topicgraph.Ref {
	if node, ok := a.graph.GetNode(topicID); ok {
		return node.Ref()
	}
	return topicgraph.Ref{ID: topicID, Label: topicLabel}
}

// buildInitialGraph seeds the frontend graph with the root node and an
// edge to each suggestion.
func buildInitialGraph(root topicgraph.Ref, nextNodes []topicgraph.Ref) GraphView {
	graph := GraphView{
		Nodes: []topicgraph.Ref{root},
		Edges: []GraphEdge{},
	}
	for _, nn := range nextNodes {
		if nn.ID == root.ID {
			continue
		}
		graph.Nodes = append(graph.Nodes, nn)
		graph.Edges = append(graph.Edges, GraphEdge{Source: root.ID, Target: nn.ID})
	}
	return graph
}

func (a *Assembler) intn(n int) int {
	if a.rng != nil {
		return a.rng.Intn(n)
	}
	return rand.Intn(n)
}

func (a *Assembler) shuffleNodes(nodes []topicgraph.Node) {
	swap := func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] }
	if a.rng != nil {
		a.rng.Shuffle(len(nodes), swap)
	} else {
		rand.Shuffle(len(nodes), swap)
	}
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
