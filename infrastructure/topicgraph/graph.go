// Package topicgraph holds the static topic graph: the node catalog and
// the per-main-topic, strategy-keyed subtopic edges that drive
// next-node suggestions.
package topicgraph

import (
	"sciscroll/domain/content"
)

// Node is one topic in the graph. Identity is the slug.
type Node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Ref is the compact node reference returned to the frontend.
type Ref struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Ref returns the node's compact reference.
func (n Node) Ref() Ref {
	return Ref{ID: n.ID, Label: n.Label}
}

// Graph is the immutable topic graph. Built once at startup and shared
// read-only across requests.
type Graph struct {
	nodes     map[string]Node
	subtopics map[string]map[content.Strategy][]string
}

// New builds the default seeded graph.
func New() *Graph {
	return &Graph{
		nodes:     defaultNodes(),
		subtopics: defaultSubtopics(),
	}
}

// GetNode looks up a node by slug, returning false when unknown.
func (g *Graph) GetNode(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// IsMainTopic reports whether the slug is a main topic with its own
// subtopic lists.
func (g *Graph) IsMainTopic(id string) bool {
	_, ok := g.subtopics[id]
	return ok
}

// GetSubtopics returns the subtopic slugs of a main topic for one
// strategy. Unknown topics or strategies yield nil.
func (g *Graph) GetSubtopics(mainTopic string, strategy content.Strategy) []string {
	byStrategy, ok := g.subtopics[mainTopic]
	if !ok {
		return nil
	}
	return byStrategy[strategy]
}

// GetSubtopicNodes resolves a main topic's subtopics for a strategy to
// nodes, skipping excluded slugs and slugs missing from the catalog.
func (g *Graph) GetSubtopicNodes(mainTopic string, strategy content.Strategy, exclude map[string]bool) []Node {
	var nodes []Node
	for _, id := range g.GetSubtopics(mainTopic, strategy) {
		if exclude[id] {
			continue
		}
		if n, ok := g.nodes[id]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// FindTopicForNode reverse-looks-up the main topic owning a subtopic
// slug. Returns false when the slug belongs to no main topic.
func (g *Graph) FindTopicForNode(id string) (string, bool) {
	for mainTopic, byStrategy := range g.subtopics {
		for _, ids := range byStrategy {
			for _, sub := range ids {
				if sub == id {
					return mainTopic, true
				}
			}
		}
	}
	return "", false
}

// ResolveMainTopic maps any slug to its owning main topic: itself when
// it is a main topic, the reverse lookup otherwise. Unknown slugs map
// to themselves so callers fall through to generic content.
func (g *Graph) ResolveMainTopic(id string) string {
	if g.IsMainTopic(id) {
		return id
	}
	if main, ok := g.FindTopicForNode(id); ok {
		return main
	}
	return id
}

// MainTopics returns the slugs of all main topics.
func (g *Graph) MainTopics() []string {
	topics := make([]string, 0, len(g.subtopics))
	for id := range g.subtopics {
		topics = append(topics, id)
	}
	return topics
}

// Nodes returns the full node catalog, keyed by slug.
func (g *Graph) Nodes() map[string]Node {
	return g.nodes
}
